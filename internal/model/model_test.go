package model

import (
	"testing"
)

func TestShapeEdges(t *testing.T) {
	s := Shape{X: 10, Y: 20, Width: 100, Height: 50}
	if s.Left() != 10 || s.Right() != 110 {
		t.Errorf("expected x edges 10/110, got %f/%f", s.Left(), s.Right())
	}
	if s.Top() != 20 || s.Bottom() != 70 {
		t.Errorf("expected y edges 20/70, got %f/%f", s.Top(), s.Bottom())
	}
	if s.CenterX() != 60 || s.CenterY() != 45 {
		t.Errorf("expected center 60,45, got %f,%f", s.CenterX(), s.CenterY())
	}
}

func TestKindString(t *testing.T) {
	if KindRect.String() != "Rectangle" {
		t.Errorf("expected Rectangle, got %s", KindRect.String())
	}
	if KindCircle.String() != "Circle" {
		t.Errorf("expected Circle, got %s", KindCircle.String())
	}
}

func TestShapePatchApply(t *testing.T) {
	s := Shape{ID: "a", Kind: KindCircle, X: 1, Y: 2, Width: 3, Height: 4, Fill: "red", Visible: true}
	w := 30.0
	fill := "blue"
	hidden := false
	ShapePatch{Width: &w, Fill: &fill, Visible: &hidden}.Apply(&s)

	if s.Width != 30 || s.Fill != "blue" || s.Visible {
		t.Errorf("patched fields not applied: %+v", s)
	}
	if s.X != 1 || s.Y != 2 || s.Height != 4 || s.ID != "a" || s.Kind != KindCircle {
		t.Errorf("untouched fields changed: %+v", s)
	}
}

func TestShapePatchAllowsNonPositiveSize(t *testing.T) {
	s := Shape{Width: 10, Height: 10}
	zero, neg := 0.0, -5.0
	ShapePatch{Width: &zero, Height: &neg}.Apply(&s)
	if s.Width != 0 || s.Height != -5 {
		t.Errorf("expected permissive patch, got %fx%f", s.Width, s.Height)
	}
}

func TestShapePatchIsEmpty(t *testing.T) {
	if !(ShapePatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	r := 45.0
	if (ShapePatch{Rotation: &r}).IsEmpty() {
		t.Error("patch with rotation should not be empty")
	}
}

func TestBoxNormalize(t *testing.T) {
	min, max := Box{X: 100, Y: 50, Width: -40, Height: -20}.Normalize()
	if min != (Point{X: 60, Y: 30}) || max != (Point{X: 100, Y: 50}) {
		t.Errorf("unexpected corners %+v %+v", min, max)
	}
}

func TestGuideConstructors(t *testing.T) {
	if VerticalGuide(12, 4000) != (GuideLine{12, 0, 12, 4000}) {
		t.Error("vertical guide has wrong layout")
	}
	if HorizontalGuide(7, 4000) != (GuideLine{0, 7, 4000, 7}) {
		t.Error("horizontal guide has wrong layout")
	}
}

func TestDefaultShapesSeed(t *testing.T) {
	shapes := DefaultShapes()
	if len(shapes) != 10 {
		t.Fatalf("expected 10 seed shapes, got %d", len(shapes))
	}
	seen := map[string]bool{}
	for _, s := range shapes {
		if seen[s.ID] {
			t.Errorf("duplicate seed id %s", s.ID)
		}
		seen[s.ID] = true
		if s.Width <= 0 || s.Height <= 0 {
			t.Errorf("seed shape %s has non-positive size", s.ID)
		}
		if !s.Visible {
			t.Errorf("seed shape %s should be visible", s.ID)
		}
	}
	if shapes[2].Kind != KindCircle || shapes[7].Kind != KindCircle {
		t.Error("shapes 3 and 8 should be circles")
	}
}
