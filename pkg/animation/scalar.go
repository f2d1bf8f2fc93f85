package animation

// Listenable is implemented by values that notify listeners when they change.
type Listenable interface {
	// AddListener registers fn to run after every change.
	// It returns a function that removes the listener.
	AddListener(fn func()) func()
}

// ValueListenable is a read-only handle on an animated number.
type ValueListenable interface {
	Listenable
	Value() float64
}

// Scalar is a mutable number whose writes are observed by listeners.
//
// A Scalar has exactly one writer: the component that created it. Hand
// consumers the result of ReadOnly so they cannot write.
type Scalar struct {
	value          float64
	listeners      map[int]func()
	nextListenerID int
}

// NewScalar returns a Scalar holding initial.
func NewScalar(initial float64) *Scalar {
	return &Scalar{
		value:     initial,
		listeners: make(map[int]func()),
	}
}

// Value returns the current value.
func (s *Scalar) Value() float64 {
	return s.value
}

// Set stores v and notifies listeners if it differs from the current value.
func (s *Scalar) Set(v float64) {
	if v == s.value {
		return
	}
	s.value = v
	s.notify()
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (s *Scalar) AddListener(fn func()) func() {
	if s.listeners == nil {
		s.listeners = make(map[int]func())
	}
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// ReadOnly returns a handle that exposes Value and AddListener only.
func (s *Scalar) ReadOnly() ValueListenable {
	return readOnly{s}
}

func (s *Scalar) notify() {
	for _, listener := range s.listeners {
		listener()
	}
}

// readOnly hides the Scalar so consumers cannot type-assert back to it.
type readOnly struct {
	s *Scalar
}

func (r readOnly) Value() float64 { return r.s.Value() }

func (r readOnly) AddListener(fn func()) func() { return r.s.AddListener(fn) }
