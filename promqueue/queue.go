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

// Package promqueue wraps pqueue.Queue for use from multiple goroutines and
// instruments it with Prometheus metrics.
package promqueue

import (
	"log/slog"
	"sync"

	"github.com/efficientgo/core/errors"

	"github.com/Mihrock1/algorithms-datastructures/pqueue"
)

// Queue is a pqueue.Queue guarded by a read-write lock. Mutations hold the
// write lock for their whole duration; Peek, Contains, Len and IsEmpty share
// the read lock.
type Queue[T comparable] struct {
	mu sync.RWMutex
	q  *pqueue.Queue[T]

	metrics *metrics
	logger  *slog.Logger
}

// New wraps q. The caller must not use q directly afterwards.
//
// Metrics are registered with the Registerer given by WithRegisterer. If they
// collide with already registered ones New returns the registration error,
// which wraps a prometheus.AlreadyRegisteredError.
func New[T comparable](q *pqueue.Queue[T], options ...Option) (*Queue[T], error) {
	if q == nil {
		return nil, errors.New("nil queue")
	}
	o := defaultOpts
	for _, opt := range options {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	if o.logger == nil {
		o.logger = slog.New(nopSlogHandler{})
	}

	w := &Queue[T]{
		q:      q,
		logger: o.logger.With("queue", o.queueName),
	}
	w.metrics = newMetrics(o, func() float64 { return float64(w.Len()) })
	if err := w.metrics.register(o.registerer); err != nil {
		return nil, err
	}
	return w, nil
}

// Len returns the number of elements.
func (w *Queue[T]) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.q.Len()
}

// IsEmpty reports whether the queue holds no elements.
func (w *Queue[T]) IsEmpty() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.q.IsEmpty()
}

// Peek returns the minimum element without removing it.
func (w *Queue[T]) Peek() (T, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.q.Peek()
}

// Contains reports whether v is in the queue.
func (w *Queue[T]) Contains(v T) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.q.Contains(v)
}

// Add inserts v.
func (w *Queue[T]) Add(v T) error {
	w.mu.Lock()
	err := w.q.Add(v)
	w.mu.Unlock()

	w.done(opAdd, err)
	return err
}

// Poll removes and returns the minimum element.
func (w *Queue[T]) Poll() (T, error) {
	w.mu.Lock()
	v, err := w.q.Poll()
	w.mu.Unlock()

	w.done(opPoll, err)
	return v, err
}

// RemoveAt removes and returns the element at heap position pos.
func (w *Queue[T]) RemoveAt(pos int) (T, error) {
	w.mu.Lock()
	v, err := w.q.RemoveAt(pos)
	w.mu.Unlock()

	w.done(opRemoveAt, err)
	return v, err
}

// Remove deletes the occurrence of v at the lowest heap position.
func (w *Queue[T]) Remove(v T) (bool, error) {
	w.mu.Lock()
	ok, err := w.q.Remove(v)
	w.mu.Unlock()

	w.done(opRemove, err)
	return ok, err
}

// Clear removes all elements.
func (w *Queue[T]) Clear() {
	w.mu.Lock()
	dropped := w.q.Len()
	w.q.Clear()
	w.mu.Unlock()

	w.logger.Debug("queue cleared", "dropped", dropped)
	w.done(opClear, nil)
}

// Evict applies policy while holding the write lock.
func (w *Queue[T]) Evict(policy pqueue.EvictionPolicy[T]) ([]T, error) {
	w.mu.Lock()
	evicted, err := w.q.Evict(policy)
	w.mu.Unlock()

	if err == nil {
		w.logger.Debug("elements evicted", "count", len(evicted))
	}
	w.done(opEvict, err)
	return evicted, err
}

// Snapshot returns the elements in level order.
func (w *Queue[T]) Snapshot() []T {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.q.Values()
}

func (w *Queue[T]) done(op string, err error) {
	w.metrics.observe(op, err)
	if err != nil {
		w.logger.Debug("queue operation failed", "operation", op, "err", err)
	}
}
