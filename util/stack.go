package util

// Stack is a LIFO of T.
type Stack[T any] struct {
	items []T
}

// Push adds item on top.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item, or the zero value when empty.
func (s *Stack[T]) Pop() (item T) {
	if len(s.items) == 0 {
		return
	}
	idx := len(s.items) - 1
	item = s.items[idx]
	s.items = s.items[:idx]
	return
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (item T) {
	if len(s.items) == 0 {
		return
	}
	return s.items[len(s.items)-1]
}

// Len returns the number of items.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Clear empties the stack.
func (s *Stack[T]) Clear() {
	s.items = nil
}
