package collection

import (
	"container/heap"
)

type priorityQueue[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (pq priorityQueue[T]) Len() int { return len(pq.items) }

func (pq priorityQueue[T]) Less(i, j int) bool {
	return pq.less(pq.items[i], pq.items[j])
}

func (pq priorityQueue[T]) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

func (pq *priorityQueue[T]) Push(x interface{}) {
	pq.items = append(pq.items, x.(T))
}

func (pq *priorityQueue[T]) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // avoid memory leak
	pq.items = old[0 : n-1]
	return item
}

// PriorityQueue pops the least item first according to less.
type PriorityQueue[T any] struct {
	pq priorityQueue[T]
}

func NewPriorityQueue[T any](capacity int, less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		pq: priorityQueue[T]{items: make([]T, 0, capacity), less: less},
	}
}

// NewPriorityQueueFrom heapifies items in place. The queue owns the slice
// afterwards.
func NewPriorityQueueFrom[T any](items []T, less func(a, b T) bool) *PriorityQueue[T] {
	ret := &PriorityQueue[T]{
		pq: priorityQueue[T]{items: items, less: less},
	}
	heap.Init(&ret.pq)
	return ret
}

func (q *PriorityQueue[T]) Push(item T) {
	heap.Push(&q.pq, item)
}

func (q *PriorityQueue[T]) Pop() (ret T, ok bool) {
	if q.pq.Len() == 0 {
		return ret, false
	}
	return heap.Pop(&q.pq).(T), true
}

func (q *PriorityQueue[T]) Peek() (ret T, ok bool) {
	if q.pq.Len() == 0 {
		return ret, false
	}
	return q.pq.items[0], true
}

func (q *PriorityQueue[T]) Len() int {
	return q.pq.Len()
}
