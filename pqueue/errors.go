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

import "github.com/efficientgo/core/errors"

var (
	// ErrInvalidArgument is returned when a nil or NaN value is added.
	ErrInvalidArgument = errors.New("pqueue: invalid argument")
	// ErrEmpty is returned by operations that need an element when the queue
	// holds none.
	ErrEmpty = errors.New("pqueue: queue is empty")
	// ErrNotFound is returned by Remove when the value is not in the queue.
	ErrNotFound = errors.New("pqueue: value not found")
	// ErrOutOfRange is returned by RemoveAt for a position outside [0, Len()).
	ErrOutOfRange = errors.New("pqueue: position out of range")
)
