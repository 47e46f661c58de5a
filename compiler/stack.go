package compiler

// Stack is a bounded stack of instruction positions.
type Stack struct {
	Data []uint32

	capacity int
}

// NewStack creates a stack that holds at most capacity positions.
func NewStack(capacity int) *Stack {
	return &Stack{
		Data:     make([]uint32, 0, capacity),
		capacity: capacity,
	}
}

func (s *Stack) Push(value uint32) (err error) {
	if s.Full() {
		err = ErrStackFull
		return
	}

	s.Data = append(s.Data, value)
	return
}

func (s *Stack) Pop() (value uint32, err error) {
	value, err = s.Peek()
	if err == nil {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Peek() (value uint32, err error) {
	if s.Empty() {
		err = ErrStackEmpty
		return
	}

	return s.Data[len(s.Data)-1], nil
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= s.capacity
}

// Len is the current depth.
func (s *Stack) Len() int {
	return len(s.Data)
}

// Cap is the maximum depth.
func (s *Stack) Cap() int {
	return s.capacity
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
