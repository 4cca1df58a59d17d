// Package immqueue 불변(persistent) FIFO 큐.
//
// 두 개의 불변 스택으로 구성한다. in 스택에 넣고 out 스택에서 꺼내며,
// out이 비면 in을 뒤집어 옮긴다. 모든 연산은 새 큐를 돌려주고 기존 큐는 그대로다.
package immqueue

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrEmptyQueue 빈 큐에서 Dequeue/Peek
var ErrEmptyQueue = errors.New("queue is empty")

// stack 불변 연결 스택. nil이 빈 스택.
type stack[T any] struct {
	head T
	tail *stack[T]
	size int
}

func (s *stack[T]) push(v T) *stack[T] {
	return &stack[T]{head: v, tail: s, size: s.len() + 1}
}

func (s *stack[T]) len() int {
	if s == nil {
		return 0
	}
	return s.size
}

func (s *stack[T]) reverse() *stack[T] {
	var r *stack[T]
	for body := s; body != nil; body = body.tail {
		r = r.push(body.head)
	}
	return r
}

// Queue 불변 큐. 제로 값이 빈 큐다.
// 큐가 비어 있지 않으면 out 스택도 비어 있지 않다.
type Queue[T any] struct {
	in  *stack[T]
	out *stack[T]
}

// Empty 빈 큐
func Empty[T any]() Queue[T] {
	return Queue[T]{}
}

// Of 앞에서부터 vals 순서로 들어 있는 큐
func Of[T any](vals ...T) Queue[T] {
	q := Empty[T]()
	for _, v := range vals {
		q = q.Enqueue(v)
	}
	return q
}

func normalize[T any](in, out *stack[T]) Queue[T] {
	if out == nil {
		return Queue[T]{out: in.reverse()}
	}
	return Queue[T]{in: in, out: out}
}

// Enqueue 뒤에 v를 붙인 새 큐
func (q Queue[T]) Enqueue(v T) Queue[T] {
	return normalize(q.in.push(v), q.out)
}

// Dequeue 맨 앞 원소를 뺀 새 큐
func (q Queue[T]) Dequeue() (Queue[T], error) {
	if q.IsEmpty() {
		return q, ErrEmptyQueue
	}
	return normalize(q.in, q.out.tail), nil
}

// Peek 맨 앞 원소
func (q Queue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.out.head, nil
}

// Len 원소 수
func (q Queue[T]) Len() int {
	return q.in.len() + q.out.len()
}

// IsEmpty 비어 있는지
func (q Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Slice 앞에서 뒤 순서의 원소 복사본
func (q Queue[T]) Slice() []T {
	out := make([]T, 0, q.Len())
	for s := q.out; s != nil; s = s.tail {
		out = append(out, s.head)
	}
	for s := q.in.reverse(); s != nil; s = s.tail {
		out = append(out, s.head)
	}
	return out
}

// String 앞에서 뒤 순서, 쉼표 구분
func (q Queue[T]) String() string {
	vals := q.Slice()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
