package canvas

// ChangeKind names the part of the model a change touched.
type ChangeKind int

const (
	ChangeShapes    ChangeKind = iota // Shape collection or a shape's properties
	ChangeSelection                   // Selected ids
	ChangeGuides                      // Alignment guides
	ChangeView                        // Zoom or pan
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeShapes:
		return "shapes"
	case ChangeSelection:
		return "selection"
	case ChangeGuides:
		return "guides"
	case ChangeView:
		return "view"
	default:
		return "unknown"
	}
}

// Change is delivered to subscribers after a mutation is applied.
type Change struct {
	Kind     ChangeKind
	Revision uint64
}

type listener struct {
	id int
	fn func(Change)
}

// Subscribe registers fn to be called synchronously after every change.
// The returned function removes the registration.
func (m *CanvasModel) Subscribe(fn func(Change)) (unsubscribe func()) {
	m.nextListenerID++
	id := m.nextListenerID
	m.listeners = append(m.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range m.listeners {
			if l.id == id {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// Revision returns a counter that increases on every change, for renderers
// that poll instead of subscribing.
func (m *CanvasModel) Revision() uint64 {
	return m.revision
}

func (m *CanvasModel) notify(kind ChangeKind) {
	m.revision++
	c := Change{Kind: kind, Revision: m.revision}
	for _, l := range append([]listener(nil), m.listeners...) {
		l.fn(c)
	}
}
