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

// Option configures a Queue at construction time.
type Option func(o *options)

type options struct {
	capacity    int
	indexDegree int
}

const (
	defaultIndexDegree = 2
	minIndexDegree     = 2
)

func defaultOptions() options {
	return options{indexDegree: defaultIndexDegree}
}

// WithCapacity preallocates room for n elements. It has no effect on the
// behaviour of the Queue.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithIndexDegree sets the B-tree degree used for the per-value position
// sets. Values below 2 are raised to 2.
func WithIndexDegree(d int) Option {
	return func(o *options) {
		o.indexDegree = max(d, minIndexDegree)
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
