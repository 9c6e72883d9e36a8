// Package history keeps bounded undo/redo stacks of shape snapshots.
package history

import (
	"github.com/tiendc/go-deepcopy"

	"github.com/piwi3910/SketchBoard/internal/applog"
	"github.com/piwi3910/SketchBoard/internal/model"
)

const defaultMaxDepth = model.DefaultHistoryDepth

// Snapshot captures the shape collection at a point in time.
type Snapshot struct {
	Shapes []model.Shape
	Label  string // Human-readable description (e.g. "Add Shape")
}

// History manages undo/redo stacks of canvas snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return NewHistoryWithDepth(defaultMaxDepth)
}

// NewHistoryWithDepth creates a History that keeps at most depth undo
// snapshots. A depth below 1 falls back to the default.
func NewHistoryWithDepth(depth int) *History {
	if depth < 1 {
		depth = defaultMaxDepth
	}
	return &History{maxDepth: depth}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// This should be called before the modification is applied.
// Once the stack holds more than the max depth, the oldest entries go first.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		evicted := len(h.undoStack) - h.maxDepth
		h.undoStack = h.undoStack[evicted:]
		applog.Logger().Debug("history evicted oldest snapshots", "count", evicted)
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot from the undo stack and pushes
// the current state onto the redo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent snapshot from the redo stack and pushes
// the current state onto the undo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	next := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return next, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoDepth returns the number of snapshots available to undo.
func (h *History) UndoDepth() int {
	return len(h.undoStack)
}

// RedoDepth returns the number of snapshots available to redo.
func (h *History) RedoDepth() int {
	return len(h.redoStack)
}

// MaxDepth returns the undo stack bound.
func (h *History) MaxDepth() int {
	return h.maxDepth
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// Clone returns a deep copy of a shapes slice. Mutating the live shapes
// afterwards never alters the copy.
func Clone(shapes []model.Shape) []model.Shape {
	if shapes == nil {
		return nil
	}
	var cp []model.Shape
	if err := deepcopy.Copy(&cp, shapes); err != nil {
		// Shape holds only value fields, so a plain copy is still deep.
		applog.Logger().Warn("deep copy failed, using value copy", "error", err)
		cp = make([]model.Shape, len(shapes))
		copy(cp, shapes)
	}
	return cp
}

// MakeSnapshot creates a snapshot from the current shapes with a label.
func MakeSnapshot(shapes []model.Shape, label string) Snapshot {
	return Snapshot{
		Shapes: Clone(shapes),
		Label:  label,
	}
}
