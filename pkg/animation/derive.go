package animation

// Derived is a read-only animated value computed from a source on every read.
//
// It holds no state of its own, so it can never disagree with its source.
// Listeners added to a Derived are registered on the source.
type Derived struct {
	source ValueListenable
	fn     func(float64) float64
}

var _ ValueListenable = Derived{}

// Derive returns a value that applies fn to source.
func Derive(source ValueListenable, fn func(float64) float64) Derived {
	return Derived{source: source, fn: fn}
}

// Value returns fn applied to the source's current value.
func (d Derived) Value() float64 {
	return d.fn(d.source.Value())
}

// AddListener registers fn with the source. Returns an unsubscribe function.
func (d Derived) AddListener(fn func()) func() {
	return d.source.AddListener(fn)
}
