package model

// Kind identifies how the rendering layer draws a shape. Geometry is always
// the bounding box, whatever the kind.
type Kind string

const (
	KindRect   Kind = "rect"   // Axis-aligned rectangle
	KindCircle Kind = "circle" // Circle inscribed in its bounding box
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "Circle"
	default:
		return "Rectangle"
	}
}

// Point represents a 2D coordinate in canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape is a single object on the canvas.
// X and Y are the top-left corner of the bounding box, also for circles.
type Shape struct {
	ID       string  `json:"id"`
	Kind     Kind    `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Fill     string  `json:"fill,omitempty"`
	Rotation float64 `json:"rotation,omitempty"` // degrees, not used by hit testing or snapping
	Visible  bool    `json:"visible"`
}

func (s Shape) Left() float64    { return s.X }
func (s Shape) Right() float64   { return s.X + s.Width }
func (s Shape) Top() float64     { return s.Y }
func (s Shape) Bottom() float64  { return s.Y + s.Height }
func (s Shape) CenterX() float64 { return s.X + s.Width/2 }
func (s Shape) CenterY() float64 { return s.Y + s.Height/2 }

// ShapePatch lists the fields to overwrite on a shape. Nil fields are left
// untouched. ID and Kind are fixed at creation and cannot be patched.
type ShapePatch struct {
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Fill     *string  `json:"fill,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`
	Visible  *bool    `json:"visible,omitempty"`
}

// Apply merges the non-nil fields of the patch onto s.
// No geometry validation happens here; a patch may set a zero or negative size.
func (p ShapePatch) Apply(s *Shape) {
	if p.X != nil {
		s.X = *p.X
	}
	if p.Y != nil {
		s.Y = *p.Y
	}
	if p.Width != nil {
		s.Width = *p.Width
	}
	if p.Height != nil {
		s.Height = *p.Height
	}
	if p.Fill != nil {
		s.Fill = *p.Fill
	}
	if p.Rotation != nil {
		s.Rotation = *p.Rotation
	}
	if p.Visible != nil {
		s.Visible = *p.Visible
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p ShapePatch) IsEmpty() bool {
	return p.X == nil && p.Y == nil && p.Width == nil && p.Height == nil &&
		p.Fill == nil && p.Rotation == nil && p.Visible == nil
}

// Box is a rectangle given by a corner and signed extents, as produced by a
// rubber-band drag that may go up or left of its origin.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Normalize returns the min and max corners of the box.
func (b Box) Normalize() (min, max Point) {
	min = Point{X: b.X, Y: b.Y}
	max = Point{X: b.X + b.Width, Y: b.Y + b.Height}
	if max.X < min.X {
		min.X, max.X = max.X, min.X
	}
	if max.Y < min.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	return min, max
}

// GuideLine is a line segment {x1, y1, x2, y2} drawn as snap feedback.
type GuideLine [4]float64

// VerticalGuide returns a guide at x spanning 0..extent on the y axis.
func VerticalGuide(x, extent float64) GuideLine {
	return GuideLine{x, 0, x, extent}
}

// HorizontalGuide returns a guide at y spanning 0..extent on the x axis.
func HorizontalGuide(y, extent float64) GuideLine {
	return GuideLine{0, y, extent, y}
}

// Guides holds the active alignment guides. A nil line means no guide on
// that axis.
type Guides struct {
	V *GuideLine `json:"v"`
	H *GuideLine `json:"h"`
}

// IsEmpty reports whether neither guide is set.
func (g Guides) IsEmpty() bool {
	return g.V == nil && g.H == nil
}

// DefaultShapes returns the seed shapes every new canvas starts with.
func DefaultShapes() []Shape {
	return []Shape{
		{ID: "1", Kind: KindRect, X: 80, Y: 60, Width: 140, Height: 100, Fill: "#FFB6C1", Visible: true},
		{ID: "2", Kind: KindRect, X: 320, Y: 160, Width: 150, Height: 110, Fill: "#90EE90", Visible: true},
		{ID: "3", Kind: KindCircle, X: 600, Y: 240, Width: 100, Height: 100, Fill: "#87CEFA", Visible: true},
		{ID: "4", Kind: KindRect, X: 940, Y: 220, Width: 200, Height: 120, Fill: "#FFD700", Visible: true},
		{ID: "5", Kind: KindRect, X: 220, Y: 480, Width: 130, Height: 100, Fill: "#FFA07A", Visible: true},
		{ID: "6", Kind: KindRect, X: 560, Y: 580, Width: 100, Height: 80, Fill: "#B0C4DE", Visible: true},
		{ID: "7", Kind: KindRect, X: 820, Y: 480, Width: 140, Height: 110, Fill: "#98FB98", Visible: true},
		{ID: "8", Kind: KindCircle, X: 1160, Y: 360, Width: 120, Height: 120, Fill: "#FF69B4", Visible: true},
		{ID: "9", Kind: KindRect, X: 420, Y: 720, Width: 150, Height: 130, Fill: "#20B2AA", Visible: true},
		{ID: "10", Kind: KindRect, X: 760, Y: 120, Width: 100, Height: 100, Fill: "#9370DB", Visible: true},
	}
}
