package engine

import "github.com/piwi3910/SketchBoard/internal/model"

// SelectByBox returns the IDs of every shape whose bounding box intersects
// box, in store order. The box may have negative extents; shape edges are
// taken as stored. Edges that only touch count as intersecting.
func SelectByBox(shapes []model.Shape, box model.Box) []string {
	min, max := box.Normalize()
	hits := []string{}
	for _, s := range shapes {
		separated := s.Right() < min.X || s.Left() > max.X ||
			s.Bottom() < min.Y || s.Top() > max.Y
		if !separated {
			hits = append(hits, s.ID)
		}
	}
	return hits
}
