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

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (q *Queue[T]) lessOrEqual(i, j int) bool {
	return q.compare(q.entries[i], q.entries[j]) <= 0
}

func (q *Queue[T]) less(i, j int) bool {
	return q.compare(q.entries[i], q.entries[j]) < 0
}

// swap exchanges two positions in both the slice and the index.
func (q *Queue[T]) swap(i, j int) {
	x, y := q.entries[i], q.entries[j]
	q.entries[i], q.entries[j] = y, x
	if x == y {
		return
	}
	q.index.move(x, i, j)
	q.index.move(y, j, i)
}

// swim moves the element at i towards the root while its parent orders after
// it.
func (q *Queue[T]) swim(i int) {
	for i > 0 {
		p := parent(i)
		if q.lessOrEqual(p, i) {
			break
		}
		q.swap(i, p)
		i = p
	}
}

// sink moves the element at i towards the leaves, swapping with the smaller
// child. On a tie between children the left one wins. It reports whether the
// element moved.
func (q *Queue[T]) sink(i int) bool {
	n := len(q.entries)
	start := i
	for {
		l := left(i)
		if l >= n || l < 0 {
			break
		}
		smallest := l
		if r := l + 1; r < n && q.less(r, l) {
			smallest = r
		}
		if q.lessOrEqual(i, smallest) {
			break
		}
		q.swap(i, smallest)
		i = smallest
	}
	return i != start
}

// removeAt deletes the element at pos, which must be in range, and restores
// heap order. The last element fills the hole and is then sifted up or down.
func (q *Queue[T]) removeAt(pos int) T {
	last := len(q.entries) - 1
	removed := q.entries[pos]
	if pos != last {
		q.swap(pos, last)
	}
	q.index.remove(removed, last)
	var zero T
	q.entries[last] = zero
	q.entries = q.entries[:last]
	if pos != last && !q.sink(pos) {
		q.swim(pos)
	}
	return removed
}
