package rpncalc

// Frame is a value that can be held on a Stack. Variant reports which kind of
// frame it is.
type Frame interface {
	Variant() Kind
}

// MaxStackCapacity is the largest capacity NewStack accepts.
const MaxStackCapacity = 1 << 20

// Stack is a bounded LIFO of tagged frames. The capacity and the set of frame
// kinds it accepts are fixed when it is created. A Stack is not safe for
// concurrent use.
type Stack[T Frame] struct {
	frames []T
	kinds  []Kind
}

// NewStack creates a stack holding up to capacity frames of the given kinds.
// Only Number, Operator, and Function frames can be stored. If kinds is empty,
// all three are accepted. The error is OutOfMemory if the capacity cannot be
// allocated.
func NewStack[T Frame](capacity int, kinds ...Kind) (*Stack[T], error) {
	if capacity < 1 || capacity > MaxStackCapacity {
		return nil, &Error{Kind: OutOfMemory}
	}
	if len(kinds) == 0 {
		kinds = []Kind{Number, Operator, Function}
	}
	for _, k := range kinds {
		if !stackable(k) {
			return nil, &Error{Kind: UnknownType, Text: k.String()}
		}
	}
	s := Stack[T]{
		frames: make([]T, 0, capacity),
		kinds:  append([]Kind(nil), kinds...),
	}
	return &s, nil
}

func stackable(k Kind) bool {
	return k == Number || k == Operator || k == Function
}

// Push adds v to the top of the stack. The error is StackFull if the stack is
// at capacity or UnknownType if the stack does not hold frames of v's kind.
func (s *Stack[T]) Push(v T) error {
	k := v.Variant()
	if !s.accepts(k) {
		return &Error{Kind: UnknownType, Text: k.String()}
	}
	if len(s.frames) == cap(s.frames) {
		return &Error{Kind: StackFull}
	}
	s.frames = append(s.frames, v)
	return nil
}

func (s *Stack[T]) accepts(k Kind) bool {
	for _, a := range s.kinds {
		if a == k {
			return true
		}
	}
	return false
}

// Pop removes and returns the top frame if it has kind want. The error is
// StackEmpty if there are no frames or InvalidType if the top frame has a
// different kind, in which case it stays on the stack.
func (s *Stack[T]) Pop(want Kind) (T, error) {
	var zero T
	if len(s.frames) == 0 {
		return zero, &Error{Kind: StackEmpty}
	}
	top := s.frames[len(s.frames)-1]
	if k := top.Variant(); k != want {
		return zero, &Error{Kind: InvalidType, Text: k.String()}
	}
	s.frames[len(s.frames)-1] = zero
	s.frames = s.frames[:len(s.frames)-1]
	return top, nil
}

// PopAny removes and returns the top frame whatever its kind. The error is
// StackEmpty if there are no frames.
func (s *Stack[T]) PopAny() (T, error) {
	var zero T
	if len(s.frames) == 0 {
		return zero, &Error{Kind: StackEmpty}
	}
	top := s.frames[len(s.frames)-1]
	s.frames[len(s.frames)-1] = zero
	s.frames = s.frames[:len(s.frames)-1]
	return top, nil
}

// Peek returns the top frame without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.frames) == 0 {
		var zero T
		return zero, false
	}
	return s.frames[len(s.frames)-1], true
}

// Len returns the number of frames on the stack.
func (s *Stack[T]) Len() int {
	return len(s.frames)
}

// Cap returns the capacity of the stack.
func (s *Stack[T]) Cap() int {
	return cap(s.frames)
}
