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

package promqueue

import (
	"github.com/efficientgo/core/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Mihrock1/algorithms-datastructures/pqueue"
)

const (
	opAdd      = "add"
	opPoll     = "poll"
	opRemove   = "remove"
	opRemoveAt = "remove_at"
	opClear    = "clear"
	opEvict    = "evict"
)

const (
	reasonEmpty           = "empty"
	reasonNotFound        = "not_found"
	reasonOutOfRange      = "out_of_range"
	reasonInvalidArgument = "invalid_argument"
	reasonOther           = "other"
)

type metrics struct {
	elements   prometheus.GaugeFunc
	operations *prometheus.CounterVec
	failures   *prometheus.CounterVec
}

func newMetrics(o opts, size func() float64) *metrics {
	constLabels := prometheus.Labels{"queue": o.queueName}
	return &metrics{
		elements: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   o.namespace,
			Name:        "elements",
			Help:        "Number of elements currently held by the queue.",
			ConstLabels: constLabels,
		}, size),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "operations_total",
			Help:        "Total number of successful queue operations.",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "operation_failures_total",
			Help:        "Total number of failed queue operations by reason.",
			ConstLabels: constLabels,
		}, []string{"operation", "reason"}),
	}
}

// register registers all collectors with reg. On failure the collectors
// registered so far are unregistered again and the error is returned.
func (m *metrics) register(reg prometheus.Registerer) error {
	if reg == nil {
		return nil
	}
	cs := []prometheus.Collector{m.elements, m.operations, m.failures}
	for i, c := range cs {
		if err := reg.Register(c); err != nil {
			for _, done := range cs[:i] {
				reg.Unregister(done)
			}
			return errors.Wrap(err, "registering queue metrics")
		}
	}
	return nil
}

func (m *metrics) observe(op string, err error) {
	if err == nil {
		m.operations.WithLabelValues(op).Inc()
		return
	}
	m.failures.WithLabelValues(op, reason(err)).Inc()
}

func reason(err error) string {
	switch {
	case errors.Is(err, pqueue.ErrEmpty):
		return reasonEmpty
	case errors.Is(err, pqueue.ErrNotFound):
		return reasonNotFound
	case errors.Is(err, pqueue.ErrOutOfRange):
		return reasonOutOfRange
	case errors.Is(err, pqueue.ErrInvalidArgument):
		return reasonInvalidArgument
	}
	return reasonOther
}
