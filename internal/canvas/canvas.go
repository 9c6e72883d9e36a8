// Package canvas holds the authoritative state of the shape editor: the
// shapes, the selection, the alignment guides shown while dragging, the
// view transform and the undo/redo history.
//
// A CanvasModel is not safe for concurrent use. The rendering layer calls it
// from its event loop and every method runs to completion without blocking.
// Unknown ids, empty selections and empty history stacks are silent no-ops.
package canvas

import (
	"slices"

	"github.com/piwi3910/SketchBoard/internal/applog"
	"github.com/piwi3910/SketchBoard/internal/engine"
	"github.com/piwi3910/SketchBoard/internal/history"
	"github.com/piwi3910/SketchBoard/internal/model"
)

// CanvasModel is the single public surface of the canvas state.
type CanvasModel struct {
	cfg      model.CanvasConfig
	shapes   []model.Shape
	selected []string
	guides   model.Guides
	zoom     float64
	stagePos model.Point

	history *history.History
	snapper *engine.Snapper
	newID   IDGenerator

	listeners      []listener
	nextListenerID int
	revision       uint64
}

// New creates a canvas seeded with model.DefaultShapes.
func New(opts ...Option) *CanvasModel {
	m := &CanvasModel{
		cfg:      model.DefaultCanvasConfig(),
		shapes:   model.DefaultShapes(),
		selected: []string{},
		newID:    UUIDv7(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.zoom = m.cfg.InitialZoom
	m.history = history.NewHistoryWithDepth(m.cfg.HistoryDepth)
	m.snapper = engine.NewSnapper(engine.SnapOptionsFromConfig(m.cfg))
	return m
}

// Config returns the configuration the canvas was created with.
func (m *CanvasModel) Config() model.CanvasConfig {
	return m.cfg
}

// --- Shape store ---

// Shapes returns a copy of the shapes in paint order.
func (m *CanvasModel) Shapes() []model.Shape {
	return slices.Clone(m.shapes)
}

// Shape returns the shape with the given id.
func (m *CanvasModel) Shape(id string) (model.Shape, bool) {
	if s := m.find(id); s != nil {
		return *s, true
	}
	return model.Shape{}, false
}

func (m *CanvasModel) find(id string) *model.Shape {
	for i := range m.shapes {
		if m.shapes[i].ID == id {
			return &m.shapes[i]
		}
	}
	return nil
}

// AddShape appends a rectangle built from the configured default shape,
// selects only that rectangle and returns its id. The state before the add
// is pushed to history.
func (m *CanvasModel) AddShape() string {
	m.pushHistory("Add Shape")
	id := m.newID()
	m.shapes = append(m.shapes, m.cfg.DefaultShape.NewShape(id))
	m.selected = []string{id}
	applog.Logger().Debug("shape added", "id", id)
	m.notify(ChangeShapes)
	m.notify(ChangeSelection)
	return id
}

// DeleteSelected removes every selected shape and clears the selection.
// Selected ids that no longer exist are skipped. Does nothing when the
// selection is empty.
func (m *CanvasModel) DeleteSelected() {
	if len(m.selected) == 0 {
		return
	}
	m.pushHistory("Delete Shapes")
	removed := 0
	for _, id := range m.selected {
		if i := m.indexOf(id); i >= 0 {
			m.shapes = slices.Delete(m.shapes, i, i+1)
			removed++
		}
	}
	applog.Logger().Debug("shapes deleted", "selected", len(m.selected), "removed", removed)
	m.selected = []string{}
	m.notify(ChangeShapes)
	m.notify(ChangeSelection)
}

func (m *CanvasModel) indexOf(id string) int {
	return slices.IndexFunc(m.shapes, func(s model.Shape) bool { return s.ID == id })
}

// UpdateShapePosition moves a shape's top-left corner. It is not recorded
// in history; callers checkpoint with PushHistory before a drag if needed.
func (m *CanvasModel) UpdateShapePosition(id string, x, y float64) {
	s := m.find(id)
	if s == nil {
		applog.Logger().Debug("position update for unknown shape ignored", "id", id)
		return
	}
	s.X = x
	s.Y = y
	m.notify(ChangeShapes)
}

// UpdateShapeTransform merges patch onto a shape. Sizes are not validated.
// It is not recorded in history.
func (m *CanvasModel) UpdateShapeTransform(id string, patch model.ShapePatch) {
	s := m.find(id)
	if s == nil {
		applog.Logger().Debug("transform update for unknown shape ignored", "id", id)
		return
	}
	patch.Apply(s)
	m.notify(ChangeShapes)
}

// ToggleVisibility flips a shape's Visible flag. Hidden shapes stay
// selectable and editable.
func (m *CanvasModel) ToggleVisibility(id string) {
	s := m.find(id)
	if s == nil {
		applog.Logger().Debug("visibility toggle for unknown shape ignored", "id", id)
		return
	}
	s.Visible = !s.Visible
	m.notify(ChangeShapes)
}

// --- Selection ---

// SelectedIDs returns a copy of the selected ids in selection order.
func (m *CanvasModel) SelectedIDs() []string {
	return slices.Clone(m.selected)
}

// IsSelected reports whether id is part of the selection.
func (m *CanvasModel) IsSelected(id string) bool {
	return slices.Contains(m.selected, id)
}

// SetSelected changes the selection. An empty id clears it. Otherwise,
// with appendSel false the selection becomes just id, and with appendSel
// true id is added unless already present.
func (m *CanvasModel) SetSelected(id string, appendSel bool) {
	switch {
	case id == "":
		m.selected = []string{}
	case appendSel:
		if slices.Contains(m.selected, id) {
			return
		}
		m.selected = append(m.selected, id)
	default:
		m.selected = []string{id}
	}
	m.notify(ChangeSelection)
}

// ClearSelection empties the selection.
func (m *CanvasModel) ClearSelection() {
	m.SetSelected("", false)
}

// SelectByBox replaces the selection with every shape intersecting box,
// in paint order.
func (m *CanvasModel) SelectByBox(box model.Box) {
	m.selected = engine.SelectByBox(m.shapes, box)
	m.notify(ChangeSelection)
}

// --- Guides ---

// Guides returns the current alignment guides.
func (m *CanvasModel) Guides() model.Guides {
	return m.guides
}

// ComputeGuidesAndSnap replaces the guides with those matching moving and
// returns the correction that snaps moving into alignment. moving is
// compared with its in-flight geometry, not the stored copy. A nil moving
// clears the guides and returns zero.
func (m *CanvasModel) ComputeGuidesAndSnap(moving *model.Shape) (dx, dy float64) {
	had := !m.guides.IsEmpty()
	res := m.snapper.Snap(m.shapes, moving)
	m.guides = res.Guides
	if had || !m.guides.IsEmpty() {
		m.notify(ChangeGuides)
	}
	return res.DX, res.DY
}

// ClearGuides removes both guides. Call it when a drag ends or is cancelled.
func (m *CanvasModel) ClearGuides() {
	if m.guides.IsEmpty() {
		return
	}
	m.guides = model.Guides{}
	m.notify(ChangeGuides)
}

// --- View transform ---

// Zoom returns the display scale. The model does not interpret it.
func (m *CanvasModel) Zoom() float64 {
	return m.zoom
}

// SetZoom stores the display scale.
func (m *CanvasModel) SetZoom(z float64) {
	m.zoom = z
	m.notify(ChangeView)
}

// StagePos returns the pan offset.
func (m *CanvasModel) StagePos() model.Point {
	return m.stagePos
}

// SetStagePos stores the pan offset.
func (m *CanvasModel) SetStagePos(p model.Point) {
	m.stagePos = p
	m.notify(ChangeView)
}

// --- History ---

// PushHistory records the current shapes as an undo checkpoint and drops
// the redo branch.
func (m *CanvasModel) PushHistory() {
	m.pushHistory("Checkpoint")
}

func (m *CanvasModel) pushHistory(label string) {
	m.history.Push(history.MakeSnapshot(m.shapes, label))
}

// CanUndo reports whether Undo would change anything.
func (m *CanvasModel) CanUndo() bool {
	return m.history.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (m *CanvasModel) CanRedo() bool {
	return m.history.CanRedo()
}

// Undo restores the most recent checkpoint. The current shapes move to the
// redo stack.
func (m *CanvasModel) Undo() {
	snap, ok := m.history.Undo(history.MakeSnapshot(m.shapes, "Current"))
	if !ok {
		return
	}
	applog.Logger().Debug("undo", "label", snap.Label)
	m.restore(snap)
}

// Redo reapplies the most recently undone state. The current shapes move to
// the undo stack.
func (m *CanvasModel) Redo() {
	snap, ok := m.history.Redo(history.MakeSnapshot(m.shapes, "Current"))
	if !ok {
		return
	}
	applog.Logger().Debug("redo", "label", snap.Label)
	m.restore(snap)
}

// restore overwrites the shapes in place and drops selected ids that no
// longer exist.
func (m *CanvasModel) restore(snap history.Snapshot) {
	m.shapes = append(m.shapes[:0], history.Clone(snap.Shapes)...)
	m.notify(ChangeShapes)

	kept := slices.DeleteFunc(slices.Clone(m.selected), func(id string) bool {
		return m.indexOf(id) < 0
	})
	if len(kept) != len(m.selected) {
		m.selected = kept
		m.notify(ChangeSelection)
	}
}
