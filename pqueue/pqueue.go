// Copyright 2026 The Algorithms-DataStructures Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pqueue

import (
	"iter"
	"reflect"
	"slices"

	"github.com/efficientgo/core/errors"
	"golang.org/x/exp/constraints"
)

// CompareFunc is a three-way comparison. It returns a negative number when
// a orders before b, zero when they are equal and a positive number otherwise.
// It must describe a total order over the values stored in a Queue.
type CompareFunc[T any] func(a, b T) int

// Queue is an indexed binary min-heap. The zero value is not usable; create
// one with New, NewFunc, FromSlice, FromSliceFunc, FromSeq or FromSeqFunc.
type Queue[T comparable] struct {
	entries []T
	index   *positionIndex[T]
	compare CompareFunc[T]
	opts    options
}

// New returns an empty Queue ordered by the natural order of T.
func New[T constraints.Ordered](opts ...Option) *Queue[T] {
	return NewFunc(compareOrdered[T], opts...)
}

// NewFunc returns an empty Queue ordered by compare. It panics if compare is
// nil.
func NewFunc[T comparable](compare CompareFunc[T], opts ...Option) *Queue[T] {
	if compare == nil {
		panic("pqueue: nil CompareFunc")
	}
	o := buildOptions(opts)
	return &Queue[T]{
		entries: make([]T, 0, o.capacity),
		index:   newPositionIndex[T](o.indexDegree, o.capacity),
		compare: compare,
		opts:    o,
	}
}

// FromSlice builds a Queue holding values using bottom-up heapify, which takes
// linear time. The input slice is copied and left untouched.
func FromSlice[T constraints.Ordered](values []T, opts ...Option) (*Queue[T], error) {
	return FromSliceFunc(values, compareOrdered[T], opts...)
}

// FromSliceFunc is like FromSlice but orders elements with compare.
func FromSliceFunc[T comparable](values []T, compare CompareFunc[T], opts ...Option) (*Queue[T], error) {
	for i, v := range values {
		if invalid(v) {
			return nil, errors.Wrapf(ErrInvalidArgument, "value at index %d", i)
		}
	}
	q := NewFunc(compare, opts...)
	q.entries = append(slices.Grow(q.entries, len(values)), values...)
	for i, v := range q.entries {
		q.index.add(v, i)
	}
	for i := len(q.entries)/2 - 1; i >= 0; i-- {
		q.sink(i)
	}
	return q, nil
}

// FromSeq builds a Queue by adding every value yielded by seq, one at a time.
func FromSeq[T constraints.Ordered](seq iter.Seq[T], opts ...Option) (*Queue[T], error) {
	return FromSeqFunc(seq, compareOrdered[T], opts...)
}

// FromSeqFunc is like FromSeq but orders elements with compare. It stops at
// the first value that cannot be added.
func FromSeqFunc[T comparable](seq iter.Seq[T], compare CompareFunc[T], opts ...Option) (*Queue[T], error) {
	q := NewFunc(compare, opts...)
	for v := range seq {
		if err := q.Add(v); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int { return len(q.entries) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return len(q.entries) == 0 }

// Peek returns the minimum element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return q.entries[0], nil
}

// Contains reports whether at least one occurrence of v is in the queue.
func (q *Queue[T]) Contains(v T) bool {
	return q.index.has(v)
}

// Add inserts v. Nil pointers, nil interfaces and NaN are rejected with
// ErrInvalidArgument.
func (q *Queue[T]) Add(v T) error {
	if invalid(v) {
		return errors.Wrapf(ErrInvalidArgument, "cannot add %v", v)
	}
	q.push(v)
	return nil
}

func (q *Queue[T]) push(v T) {
	q.entries = append(q.entries, v)
	last := len(q.entries) - 1
	q.index.add(v, last)
	q.swim(last)
}

// Poll removes and returns the minimum element.
func (q *Queue[T]) Poll() (T, error) {
	return q.RemoveAt(0)
}

// RemoveAt removes and returns the element at heap position pos.
func (q *Queue[T]) RemoveAt(pos int) (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}
	if pos < 0 || pos >= len(q.entries) {
		return zero, errors.Wrapf(ErrOutOfRange, "position %d, size %d", pos, len(q.entries))
	}
	return q.removeAt(pos), nil
}

// Remove deletes one occurrence of v, the one at the lowest heap position.
// It returns true on success and ErrNotFound when v is absent, including when
// the queue is empty.
func (q *Queue[T]) Remove(v T) (bool, error) {
	pos, ok := q.index.lowest(v)
	if !ok {
		return false, errors.Wrapf(ErrNotFound, "value %v", v)
	}
	q.removeAt(pos)
	return true, nil
}

// Clear removes all elements. The backing storage is released rather than
// zeroed, so the cost does not depend on the previous size.
func (q *Queue[T]) Clear() {
	q.entries = make([]T, 0, q.opts.capacity)
	q.index.reset(q.opts.capacity)
}

// Drain polls every element and returns them in ascending order, leaving the
// queue empty.
func (q *Queue[T]) Drain() []T {
	out := make([]T, 0, len(q.entries))
	for !q.IsEmpty() {
		out = append(out, q.removeAt(0))
	}
	return out
}

// Values returns a copy of the elements in level order.
func (q *Queue[T]) Values() []T {
	return slices.Clone(q.entries)
}

// Positions returns the heap positions currently holding v, ascending.
func (q *Queue[T]) Positions(v T) []int {
	return q.index.positions(v)
}

// IsValidHeap reports whether every element orders no later than its
// children. It walks the whole heap and is meant for tests.
func (q *Queue[T]) IsValidHeap() bool {
	return q.validFrom(0)
}

func (q *Queue[T]) validFrom(k int) bool {
	n := len(q.entries)
	if k >= n {
		return true
	}
	l, r := left(k), right(k)
	if l < n && !q.lessOrEqual(k, l) {
		return false
	}
	if r < n && !q.lessOrEqual(k, r) {
		return false
	}
	return q.validFrom(l) && q.validFrom(r)
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// invalid reports values that cannot be stored: nil references, values of
// non-comparable dynamic types and values that are not equal to themselves
// (NaN), which could never be found again in the position index.
func invalid[T comparable](v T) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	// An interface T may hold a dynamic type that cannot be compared or hashed.
	if !rv.Type().Comparable() {
		return true
	}
	if v != v {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
