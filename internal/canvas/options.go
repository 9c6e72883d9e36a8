package canvas

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/piwi3910/SketchBoard/internal/model"
)

// IDGenerator produces identifiers for new shapes. Every call must return a
// value not returned before.
type IDGenerator func() string

// UUIDv7 returns a generator of time-ordered RFC 9562 UUIDs.
func UUIDv7() IDGenerator {
	return func() string {
		return uuid.Must(uuid.NewV7()).String()
	}
}

// Sequence returns a generator of "<prefix>1", "<prefix>2", ...
func Sequence(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	}
}

// Option configures a CanvasModel during creation.
type Option func(*CanvasModel)

// WithConfig replaces the default configuration.
func WithConfig(cfg model.CanvasConfig) Option {
	return func(m *CanvasModel) { m.cfg = cfg }
}

// WithIDGenerator sets the source of ids for AddShape.
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *CanvasModel) { m.newID = gen }
}

// WithShapes seeds the canvas with the given shapes instead of the default
// set. The slice is copied.
func WithShapes(shapes []model.Shape) Option {
	return func(m *CanvasModel) {
		m.shapes = append([]model.Shape(nil), shapes...)
	}
}
