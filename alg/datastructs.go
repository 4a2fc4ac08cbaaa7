package alg

import "reflect"

// Index gives positional access; position 0 is the top of a stack or
// the head of a queue.
type Index interface {
	Index(int) (int, bool)
}

type Stack interface {
	Index
	Clear()
	Push(int)
	Pop() (int, bool)
	Peek() (int, bool)
	Size() int
	Contains(int) bool

	Copy() Stack
	Equal(Stack) bool
}

type Queue interface {
	Index
	Clear()
	Enqueue(int)
	Dequeue() (int, bool)
	Peek() (int, bool)
	Size() int
	Contains(int) bool

	Copy() Queue
	Equal(Queue) bool
}

// StackArray keeps the top of the stack at the end of the array
type StackArray struct {
	Array []int
}

var _ Stack = &StackArray{}

func (s *StackArray) Equal(other Stack) bool {
	return reflect.DeepEqual(s, other)
}

func (s *StackArray) Clear() {
	s.Array = s.Array[0:0]
}

func (s *StackArray) Push(val int) {
	s.Array = append(s.Array, val)
}

func (s *StackArray) Pop() (int, bool) {
	if s.Size() == 0 {
		return 0, false
	}
	retval := s.Array[len(s.Array)-1]
	s.Array = s.Array[:len(s.Array)-1]
	return retval, true
}

func (s *StackArray) Index(index int) (int, bool) {
	if index < 0 || index >= s.Size() {
		return 0, false
	}
	return s.Array[len(s.Array)-1-index], true
}

func (s *StackArray) Peek() (int, bool) {
	return s.Index(0)
}

func (s *StackArray) Size() int {
	return len(s.Array)
}

func (s *StackArray) Contains(val int) bool {
	for _, cur := range s.Array {
		if cur == val {
			return true
		}
	}
	return false
}

// Copy never shares the backing array, so pushes on the copy can't
// overwrite values still visible through the original.
func (s *StackArray) Copy() Stack {
	newArray := make([]int, len(s.Array), cap(s.Array))
	copy(newArray, s.Array)
	return &StackArray{newArray}
}

func NewStackArray(size int) *StackArray {
	return &StackArray{make([]int, 0, size)}
}

type QueueSlice struct {
	slice []int
}

var _ Queue = &QueueSlice{}

func (q *QueueSlice) Clear() {
	q.slice = q.slice[0:0]
}

func (q *QueueSlice) Equal(other Queue) bool {
	return reflect.DeepEqual(q, other)
}

func (q *QueueSlice) Enqueue(val int) {
	q.slice = append(q.slice, val)
}

func (q *QueueSlice) Dequeue() (int, bool) {
	if q.Size() == 0 {
		return 0, false
	}
	retval := q.slice[0]
	q.slice = q.slice[1:]
	return retval, true
}

func (q *QueueSlice) Index(index int) (int, bool) {
	if index < 0 || index >= q.Size() {
		return 0, false
	}
	return q.slice[index], true
}

func (q *QueueSlice) Peek() (int, bool) {
	return q.Index(0)
}

func (q *QueueSlice) Size() int {
	return len(q.slice)
}

func (q *QueueSlice) Contains(val int) bool {
	for _, cur := range q.slice {
		if cur == val {
			return true
		}
	}
	return false
}

func (q *QueueSlice) Copy() Queue {
	newSlice := make([]int, len(q.slice))
	copy(newSlice, q.slice)
	return &QueueSlice{newSlice}
}

func NewQueueSlice(size int) *QueueSlice {
	return &QueueSlice{make([]int, 0, size)}
}
