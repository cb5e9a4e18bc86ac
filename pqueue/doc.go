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

// Package pqueue provides an indexed binary min-heap.
//
// A Queue keeps its elements in a dense slice laid out in level order, so the
// slice index of an element is its heap position and position 0 holds the
// minimum. Alongside the slice the Queue maintains a position index that maps
// every distinct value to the ascending set of positions it occupies. The
// index is what makes Contains constant time and lets Remove delete an
// arbitrary element in O(log n) instead of scanning the heap.
//
// Duplicate values are supported: each occurrence is tracked separately. When
// a value occurs more than once, Remove deletes the occurrence at the lowest
// position.
//
// All operations that fail (see ErrEmpty, ErrNotFound, ErrOutOfRange and
// ErrInvalidArgument) leave the Queue exactly as it was before the call.
//
// A Queue is not safe for concurrent use. Callers that share one between
// goroutines must serialize access, for example with the promqueue package.
package pqueue
