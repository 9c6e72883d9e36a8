package engine

import (
	"math"

	"github.com/piwi3910/SketchBoard/internal/model"
)

// SnapOptions controls the alignment search.
type SnapOptions struct {
	Tolerance float64 // max distance at which an alignment snaps
	Extent    float64 // length of the emitted guide lines
}

// DefaultSnapOptions mirrors the defaults of model.DefaultCanvasConfig.
func DefaultSnapOptions() SnapOptions {
	return SnapOptions{Tolerance: model.DefaultSnapTolerance, Extent: model.DefaultGuideExtent}
}

// SnapOptionsFromConfig extracts the snap settings of a canvas configuration.
func SnapOptionsFromConfig(cfg model.CanvasConfig) SnapOptions {
	return SnapOptions{Tolerance: cfg.SnapTolerance, Extent: cfg.GuideExtent}
}

// SnapResult is the correction to apply to a dragged shape and the guides
// that explain it.
type SnapResult struct {
	DX     float64
	DY     float64
	Guides model.Guides
}

// Snapper computes alignment guides for a shape being dragged.
type Snapper struct {
	Options SnapOptions
}

func NewSnapper(opts SnapOptions) *Snapper {
	return &Snapper{Options: opts}
}

// axisMatch tracks the winning candidate on one axis.
type axisMatch struct {
	found  bool
	target float64 // where the moving shape's X (or Y) should land
	guide  model.GuideLine
}

// Snap compares moving against every other shape and returns the delta that
// brings it into alignment.
//
// Candidates are checked per other shape in store order, and within a shape
// in the fixed order center-x, center-y, left, right, top, bottom. Every
// candidate within tolerance overwrites the previous match on its axis, so
// the last match wins. This is not the nearest match.
//
// A nil moving shape yields a zero result with no guides. The moving shape
// is excluded from the comparison by ID.
func (s *Snapper) Snap(shapes []model.Shape, moving *model.Shape) SnapResult {
	if moving == nil {
		return SnapResult{}
	}
	tol := s.Options.Tolerance
	extent := s.Options.Extent

	var mx, my axisMatch
	for _, o := range shapes {
		if o.ID == moving.ID {
			continue
		}

		// center align
		if within(o.CenterX(), moving.CenterX(), tol) {
			mx = axisMatch{true, o.CenterX() - moving.Width/2, model.VerticalGuide(o.CenterX(), extent)}
		}
		if within(o.CenterY(), moving.CenterY(), tol) {
			my = axisMatch{true, o.CenterY() - moving.Height/2, model.HorizontalGuide(o.CenterY(), extent)}
		}

		// left/right align
		if within(o.Left(), moving.Left(), tol) {
			mx = axisMatch{true, o.Left(), model.VerticalGuide(o.Left(), extent)}
		}
		if within(o.Right(), moving.Right(), tol) {
			mx = axisMatch{true, o.Right() - moving.Width, model.VerticalGuide(o.Right(), extent)}
		}

		// top/bottom align
		if within(o.Top(), moving.Top(), tol) {
			my = axisMatch{true, o.Top(), model.HorizontalGuide(o.Top(), extent)}
		}
		if within(o.Bottom(), moving.Bottom(), tol) {
			my = axisMatch{true, o.Bottom() - moving.Height, model.HorizontalGuide(o.Bottom(), extent)}
		}
	}

	var res SnapResult
	if mx.found {
		res.DX = mx.target - moving.X
		g := mx.guide
		res.Guides.V = &g
	}
	if my.found {
		res.DY = my.target - moving.Y
		g := my.guide
		res.Guides.H = &g
	}
	return res
}

// ComputeGuidesAndSnap runs a Snapper with the given options.
func ComputeGuidesAndSnap(shapes []model.Shape, moving *model.Shape, opts SnapOptions) SnapResult {
	return NewSnapper(opts).Snap(shapes, moving)
}

func within(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
