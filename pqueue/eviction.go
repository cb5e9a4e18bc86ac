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
	"slices"

	"github.com/efficientgo/core/errors"
)

// EvictionPolicy trims a Queue from its minimum end and returns the evicted
// elements in the order they were removed.
type EvictionPolicy[T comparable] func(q *Queue[T]) ([]T, error)

// Evict applies policy to the queue.
func (q *Queue[T]) Evict(policy EvictionPolicy[T]) ([]T, error) {
	return policy(q)
}

// EvictSmallest evicts up to count of the smallest elements.
func EvictSmallest[T comparable](count int) EvictionPolicy[T] {
	return func(q *Queue[T]) ([]T, error) {
		return q.pollUpTo(count), nil
	}
}

// EvictAndReplaceWith evicts up to count of the smallest elements and adds
// back a single element produced by reducer from the evicted ones. If the
// reduced value cannot be added the queue is put back exactly as it was,
// positions included, and the error is returned.
func EvictAndReplaceWith[T comparable](count int, reducer func([]T) T) EvictionPolicy[T] {
	return func(q *Queue[T]) ([]T, error) {
		before := slices.Clone(q.entries)
		evicted := q.pollUpTo(count)
		if len(evicted) == 0 {
			return nil, nil
		}
		if err := q.Add(reducer(evicted)); err != nil {
			q.restore(before)
			return nil, errors.Wrap(err, "adding reduced value")
		}
		return evicted, nil
	}
}

func (q *Queue[T]) pollUpTo(count int) []T {
	n := min(count, len(q.entries))
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, q.removeAt(0))
	}
	return out
}

// restore replaces the heap with entries, which must already be in heap
// order, and rebuilds the position index from it.
func (q *Queue[T]) restore(entries []T) {
	q.entries = entries
	q.index.reset(len(entries))
	for i, v := range entries {
		q.index.add(v, i)
	}
}
