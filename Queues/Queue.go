package Queues

// Queue is a FIFO container. Pop on an empty Queue returns an
// EmptyQueueError and the zero value of T.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

// Stack is a LIFO container. Pop on an empty Stack returns an
// EmptyStackError and the zero value of T.
type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}
