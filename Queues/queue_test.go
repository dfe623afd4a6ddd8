package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue_Order(t *testing.T) {
	for _, c := range []uint{0, 1, 4} {
		q := MakeArrayQueue[int](c)
		next := 0
		for i := 0; i < 100; i++ {
			q.Push(i)
			if i%3 == 2 { //keep the ring wrapping while it grows
				if v, err := q.Pop(); err != nil || v != next {
					t.Fatalf("cap %d: popped %v, %v; want %v", c, v, err, next)
				}
				next++
			}
		}
		if q.Size() != uint(100-next) {
			t.Errorf("cap %d: size is %d, want %d", c, q.Size(), 100-next)
		}
		q.Shrink()
		for ; !q.Empty(); next++ {
			if q.Peek() != next {
				t.Fatalf("cap %d: peeked %v, want %v", c, q.Peek(), next)
			}
			if v, _ := q.Pop(); v != next {
				t.Fatalf("cap %d: popped %v, want %v", c, v, next)
			}
		}
		if next != 100 {
			t.Errorf("cap %d: drained %d items, want 100", c, next)
		}
	}
}

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[string](2)
	var e *EmptyQueueError
	if _, err := q.Pop(); !errors.As(err, &e) {
		t.Errorf("pop on empty queue returned %v", err)
	}
	q.Push("a")
	q.Clear()
	if !q.Empty() || q.Peek() != "" {
		t.Errorf("queue not empty after Clear")
	}
}
