package scopestack

// Stack is an immutable-by-push sequence of active [Frame] values, ordered
// innermost (top) first. The zero Stack is empty and ready to use.
type Stack struct {
	top  *node
	size int
}

type node struct {
	frame Frame
	prev  *node
}

// Push returns a new Stack with frame on top. The receiver is unmodified;
// the new Stack structurally shares every frame below frame with s.
func (s Stack) Push(frame Frame) Stack {
	return Stack{top: &node{frame: frame, prev: s.top}, size: s.size + 1}
}

// Pop returns the Stack with the top frame removed and the frame that was
// removed. Popping an empty Stack returns the empty Stack and a zero Frame.
func (s Stack) Pop() (Stack, Frame) {
	if s.top == nil {
		return s, Frame{}
	}
	return Stack{top: s.top.prev, size: s.size - 1}, s.top.frame
}

// Top returns the innermost frame and true, or a zero Frame and false if empty.
func (s Stack) Top() (Frame, bool) {
	if s.top == nil {
		return Frame{}, false
	}
	return s.top.frame, true
}

// Len returns the number of frames currently on the stack.
func (s Stack) Len() int { return s.size }

// Frames yields frames from innermost to outermost without allocating a slice.
func (s Stack) Frames(yield func(Frame) bool) {
	for n := s.top; n != nil; n = n.prev {
		if !yield(n.frame) {
			return
		}
	}
}

// InLoop reports whether a Loop frame is anywhere on the stack. Used to
// validate break/continue.
func (s Stack) InLoop() bool {
	found := false
	s.Frames(func(f Frame) bool {
		if f.Kind() == FrameLoop {
			found = true
			return false
		}
		return true
	})
	return found
}

// InFunction reports whether a Function frame is anywhere on the stack.
// Used to validate return.
func (s Stack) InFunction() bool {
	found := false
	s.Frames(func(f Frame) bool {
		if f.Kind() == FrameFunction {
			found = true
			return false
		}
		return true
	})
	return found
}

// InFunctionOrMain reports whether a Function or Main frame is anywhere on
// the stack. Used to validate fail/propagate.
func (s Stack) InFunctionOrMain() bool {
	found := false
	s.Frames(func(f Frame) bool {
		if f.Kind() == FrameFunction || f.Kind() == FrameMain {
			found = true
			return false
		}
		return true
	})
	return found
}

// HasUnsafeOrTrust reports whether any enclosing Block frame's modifiers
// include Unsafe or Trust. Used to suppress the "failable must be handled"
// diagnostic; combine with a call-site modifier check (the caller ORs in
// any modifiers attached directly to the command/call under analysis).
func (s Stack) HasUnsafeOrTrust() bool {
	found := false
	s.Frames(func(f Frame) bool {
		if f.Kind() == FrameBlock && (f.Modifiers().Has(ModifierUnsafe) || f.Modifiers().Has(ModifierTrust)) {
			found = true
			return false
		}
		return true
	})
	return found
}

// DocAccumulator returns the top frame if it is a DocString accumulator,
// for attaching accumulated documentation to the next function definition.
func (s Stack) DocAccumulator() (Frame, bool) {
	top, ok := s.Top()
	if !ok || top.Kind() != FrameDocString {
		return Frame{}, false
	}
	return top, true
}
