package validation

// State is the interaction state of one field since its form was mounted.
type State int

const (
	Pristine State = iota
	Touched
)

func (s State) String() string {
	if s == Touched {
		return "touched"
	}
	return "pristine"
}

// Field tracks one input. Its message is recomputed from the current value on
// every read and is hidden until the field is touched or the caller forces
// validation display.
type Field[T any] struct {
	rule     Rule[T]
	value    T
	state    State
	external string
}

func NewField[T any](rule Rule[T], initial T) *Field[T] {
	return &Field[T]{rule: rule, value: initial}
}

func (f *Field[T]) Value() T { return f.value }
func (f *Field[T]) State() State { return f.state }

// Change records a new value. The first change touches the field and any
// server error is dropped.
func (f *Field[T]) Change(v T) {
	f.value = v
	f.state = Touched
	f.external = ""
}

func (f *Field[T]) Blur() {
	f.state = Touched
}

// SetExternalError attaches a message from a failed server round-trip. Pass ""
// to clear it.
func (f *Field[T]) SetExternalError(msg string) {
	f.external = msg
}

// Reset returns the field to a freshly mounted state.
func (f *Field[T]) Reset(initial T) {
	f.value = initial
	f.state = Pristine
	f.external = ""
}

// Error evaluates the local rule regardless of touched state.
func (f *Field[T]) Error() string {
	if f.rule == nil {
		return ""
	}
	return f.rule(f.value)
}

func (f *Field[T]) Valid() bool {
	return f.Error() == ""
}

// Message is what the form displays for this field.
func (f *Field[T]) Message(showValidation bool) string {
	if f.state != Touched && !showValidation {
		return ""
	}
	if f.external != "" {
		return f.external
	}
	return f.Error()
}
