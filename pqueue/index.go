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

import "github.com/google/btree"

// freeListSize bounds the number of B-tree nodes a single index keeps around
// for reuse.
const freeListSize = 32

// positionIndex maps each distinct value to the ascending set of heap
// positions it occupies. A value whose set becomes empty is removed from the
// map immediately.
type positionIndex[T comparable] struct {
	degree int
	free   *btree.FreeListG[int]
	sets   map[T]*btree.BTreeG[int]
}

func newPositionIndex[T comparable](degree, capacity int) *positionIndex[T] {
	return &positionIndex[T]{
		degree: degree,
		free:   btree.NewFreeListG[int](freeListSize),
		sets:   make(map[T]*btree.BTreeG[int], capacity),
	}
}

func (x *positionIndex[T]) add(v T, pos int) {
	set, ok := x.sets[v]
	if !ok {
		set = btree.NewWithFreeListG[int](x.degree, btree.Less[int](), x.free)
		x.sets[v] = set
	}
	set.ReplaceOrInsert(pos)
}

func (x *positionIndex[T]) remove(v T, pos int) {
	set, ok := x.sets[v]
	if !ok {
		return
	}
	set.Delete(pos)
	if set.Len() == 0 {
		delete(x.sets, v)
	}
}

// move relocates one tracked occurrence of v from position from to position to.
func (x *positionIndex[T]) move(v T, from, to int) {
	set := x.sets[v]
	set.Delete(from)
	set.ReplaceOrInsert(to)
}

// lowest returns the smallest position tracked for v.
func (x *positionIndex[T]) lowest(v T) (int, bool) {
	set, ok := x.sets[v]
	if !ok {
		return 0, false
	}
	return set.Min()
}

func (x *positionIndex[T]) has(v T) bool {
	_, ok := x.sets[v]
	return ok
}

func (x *positionIndex[T]) positions(v T) []int {
	set, ok := x.sets[v]
	if !ok {
		return nil
	}
	out := make([]int, 0, set.Len())
	set.Ascend(func(pos int) bool {
		out = append(out, pos)
		return true
	})
	return out
}

// distinct returns the number of values currently tracked.
func (x *positionIndex[T]) distinct() int {
	return len(x.sets)
}

// reset drops every tracked value. The free list is kept.
func (x *positionIndex[T]) reset(capacity int) {
	x.sets = make(map[T]*btree.BTreeG[int], capacity)
}
