package model

import (
	"errors"
	"fmt"
)

// Defaults used when no configuration file overrides them.
const (
	DefaultSnapTolerance = 6
	DefaultGuideExtent   = 4000
	DefaultHistoryDepth  = 50
)

// ShapeTemplate is the geometry and color given to shapes created by AddShape.
type ShapeTemplate struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   string  `json:"fill"`
}

// NewShape builds a visible rectangle from the template with the given id.
func (t ShapeTemplate) NewShape(id string) Shape {
	return Shape{
		ID:      id,
		Kind:    KindRect,
		X:       t.X,
		Y:       t.Y,
		Width:   t.Width,
		Height:  t.Height,
		Fill:    t.Fill,
		Visible: true,
	}
}

// CanvasConfig holds the tunable constants of the canvas model.
type CanvasConfig struct {
	SnapTolerance float64       `json:"snap_tolerance"` // max distance at which an alignment snaps
	GuideExtent   float64       `json:"guide_extent"`   // length of guide lines drawn across the canvas
	HistoryDepth  int           `json:"history_depth"`  // undo snapshots kept, oldest evicted first
	InitialZoom   float64       `json:"initial_zoom"`
	DefaultShape  ShapeTemplate `json:"default_shape"`
}

// DefaultCanvasConfig returns the configuration used when none is loaded.
func DefaultCanvasConfig() CanvasConfig {
	return CanvasConfig{
		SnapTolerance: DefaultSnapTolerance,
		GuideExtent:   DefaultGuideExtent,
		HistoryDepth:  DefaultHistoryDepth,
		InitialZoom:   1,
		DefaultShape: ShapeTemplate{
			X:      200,
			Y:      200,
			Width:  140,
			Height: 90,
			Fill:   "#cccccc",
		},
	}
}

// Validate checks that the configuration can drive a canvas.
func (c CanvasConfig) Validate() error {
	var errs []error
	if c.SnapTolerance < 0 {
		errs = append(errs, fmt.Errorf("snap_tolerance must be >= 0, got %g", c.SnapTolerance))
	}
	if c.GuideExtent <= 0 {
		errs = append(errs, fmt.Errorf("guide_extent must be > 0, got %g", c.GuideExtent))
	}
	if c.HistoryDepth <= 0 {
		errs = append(errs, fmt.Errorf("history_depth must be > 0, got %d", c.HistoryDepth))
	}
	if c.InitialZoom <= 0 {
		errs = append(errs, fmt.Errorf("initial_zoom must be > 0, got %g", c.InitialZoom))
	}
	if c.DefaultShape.Width <= 0 || c.DefaultShape.Height <= 0 {
		errs = append(errs, fmt.Errorf("default_shape size must be > 0, got %gx%g",
			c.DefaultShape.Width, c.DefaultShape.Height))
	}
	return errors.Join(errs...)
}
