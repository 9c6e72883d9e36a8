package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/piwi3910/SketchBoard/internal/canvas"
	"github.com/piwi3910/SketchBoard/internal/model"
)

var errUsage = errors.New("usage")

// session applies text commands to a canvas and prints the results.
type session struct {
	m   *canvas.CanvasModel
	out io.Writer
}

func newSession(m *canvas.CanvasModel, out io.Writer) *session {
	return &session{m: m, out: out}
}

// executeLine runs one command. done is true when the command asks to stop.
func (s *session) executeLine(line string) (done bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return false, nil
	}
	name, rest := args[0], args[1:]
	switch name {
	case "quit", "exit":
		return true, nil
	case "help":
		s.printHelp()
	case "shapes":
		s.printShapes()
	case "selection":
		s.printSelection()
	case "guides":
		s.printGuides()
	case "view":
		fmt.Fprintf(s.out, "zoom=%g pan=%g,%g\n", s.m.Zoom(), s.m.StagePos().X, s.m.StagePos().Y)
	case "select":
		err = s.cmdSelect(rest)
	case "clear":
		s.m.ClearSelection()
		s.printSelection()
	case "box":
		err = s.cmdBox(rest)
	case "move":
		err = s.cmdMove(rest)
	case "set":
		err = s.cmdSet(rest)
	case "toggle":
		if len(rest) != 1 {
			return false, fmt.Errorf("%w: toggle <id>", errUsage)
		}
		s.m.ToggleVisibility(rest[0])
	case "add":
		fmt.Fprintf(s.out, "added %s\n", s.m.AddShape())
	case "delete":
		s.m.DeleteSelected()
		s.printSelection()
	case "snap":
		err = s.cmdSnap(rest)
	case "unsnap":
		s.m.ClearGuides()
	case "push":
		s.m.PushHistory()
	case "undo":
		s.m.Undo()
	case "redo":
		s.m.Redo()
	case "zoom":
		var z []float64
		if z, err = parseFloats(rest, 1); err != nil {
			return false, fmt.Errorf("%w: zoom <scale>", err)
		}
		s.m.SetZoom(z[0])
	case "pan":
		var p []float64
		if p, err = parseFloats(rest, 2); err != nil {
			return false, fmt.Errorf("%w: pan <x> <y>", err)
		}
		s.m.SetStagePos(model.Point{X: p[0], Y: p[1]})
	default:
		return false, fmt.Errorf("unknown command %q (try help)", name)
	}
	return false, err
}

func (s *session) cmdSelect(args []string) error {
	if len(args) < 1 || len(args) > 2 || (len(args) == 2 && args[1] != "append") {
		return fmt.Errorf("%w: select <id> [append]", errUsage)
	}
	s.m.SetSelected(args[0], len(args) == 2)
	s.printSelection()
	return nil
}

func (s *session) cmdBox(args []string) error {
	v, err := parseFloats(args, 4)
	if err != nil {
		return fmt.Errorf("%w: box <x> <y> <width> <height>", err)
	}
	s.m.SelectByBox(model.Box{X: v[0], Y: v[1], Width: v[2], Height: v[3]})
	s.printSelection()
	return nil
}

func (s *session) cmdMove(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: move <id> <x> <y>", errUsage)
	}
	v, err := parseFloats(args[1:], 2)
	if err != nil {
		return fmt.Errorf("%w: move <id> <x> <y>", err)
	}
	s.m.UpdateShapePosition(args[0], v[0], v[1])
	return nil
}

// cmdSnap emulates one drag step: the shape is moved to x,y, snapped to its
// neighbours and stored at the corrected position.
func (s *session) cmdSnap(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: snap <id> <x> <y>", errUsage)
	}
	v, err := parseFloats(args[1:], 2)
	if err != nil {
		return fmt.Errorf("%w: snap <id> <x> <y>", err)
	}
	moving, ok := s.m.Shape(args[0])
	if !ok {
		dx, dy := s.m.ComputeGuidesAndSnap(nil)
		fmt.Fprintf(s.out, "snap dx=%g dy=%g\n", dx, dy)
		return nil
	}
	moving.X, moving.Y = v[0], v[1]
	dx, dy := s.m.ComputeGuidesAndSnap(&moving)
	s.m.UpdateShapePosition(moving.ID, moving.X+dx, moving.Y+dy)
	fmt.Fprintf(s.out, "snap dx=%g dy=%g\n", dx, dy)
	s.printGuides()
	return nil
}

func (s *session) cmdSet(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: set <id> key=value...", errUsage)
	}
	var patch model.ShapePatch
	for _, kv := range args[1:] {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("%w: expected key=value, got %q", errUsage, kv)
		}
		if err := setPatchField(&patch, key, value); err != nil {
			return err
		}
	}
	s.m.UpdateShapeTransform(args[0], patch)
	return nil
}

func setPatchField(p *model.ShapePatch, key, value string) error {
	switch key {
	case "fill":
		p.Fill = &value
		return nil
	case "visible":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid visible value %q: %w", value, err)
		}
		p.Visible = &b
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	switch key {
	case "x":
		p.X = &f
	case "y":
		p.Y = &f
	case "width":
		p.Width = &f
	case "height":
		p.Height = &f
	case "rotation":
		p.Rotation = &f
	default:
		return fmt.Errorf("unknown shape field %q", key)
	}
	return nil
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, errUsage
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = f
	}
	return out, nil
}

func (s *session) printShapes() {
	for _, sh := range s.m.Shapes() {
		fmt.Fprintf(s.out, "%s %s x=%g y=%g w=%g h=%g fill=%s rot=%g visible=%t\n",
			sh.ID, sh.Kind, sh.X, sh.Y, sh.Width, sh.Height, sh.Fill, sh.Rotation, sh.Visible)
	}
}

func (s *session) printSelection() {
	fmt.Fprintf(s.out, "selected: %s\n", strings.Join(s.m.SelectedIDs(), ","))
}

func (s *session) printGuides() {
	g := s.m.Guides()
	fmt.Fprintf(s.out, "guides: v=%s h=%s\n", formatGuide(g.V), formatGuide(g.H))
}

func formatGuide(g *model.GuideLine) string {
	if g == nil {
		return "none"
	}
	return fmt.Sprintf("%g,%g,%g,%g", g[0], g[1], g[2], g[3])
}

func (s *session) printHelp() {
	fmt.Fprint(s.out, `commands:
  shapes | selection | guides | view
  select <id> [append]      clear
  box <x> <y> <w> <h>       select shapes intersecting a box
  move <id> <x> <y>         set position
  set <id> key=value...     keys: x y width height fill rotation visible
  toggle <id>               flip visibility
  add | delete              add a rectangle, delete the selection
  snap <id> <x> <y>         drag step with snapping
  unsnap                    clear guides
  push | undo | redo
  zoom <scale> | pan <x> <y>
  quit
`)
}
