package Queues

type node[T any] struct {
	v  T
	nx *node[T]
}

// linkedStack is a singly linked LIFO. Not safe for concurrent use.
type linkedStack[T any] struct {
	top *node[T]
	sz  uint
}

func MakeLinkedStack[T any]() Stack[T] {
	return &linkedStack[T]{}
}

func (s *linkedStack[T]) Push(item T) {
	s.top = &node[T]{item, s.top}
	s.sz++
}

func (s *linkedStack[T]) Pop() (T, error) {
	if s.top == nil {
		return *new(T), &EmptyStackError{}
	}
	t := s.top
	s.top, t.nx = t.nx, nil
	s.sz--
	return t.v, nil
}

// Peek returns the top item, or the zero value when s is empty.
func (s linkedStack[T]) Peek() T {
	if s.top == nil {
		return *new(T)
	}
	return s.top.v
}

func (s linkedStack[T]) Empty() bool {
	return s.top == nil
}

func (s linkedStack[T]) Size() uint {
	return s.sz
}
