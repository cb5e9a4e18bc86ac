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
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/efficientgo/core/errors"
	"github.com/efficientgo/core/testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/Mihrock1/algorithms-datastructures/pqueue"
)

func gaugeValue(t *testing.T, reg prometheus.Gatherer, name string) float64 {
	t.Helper()

	mfs, err := reg.Gather()
	testutil.Ok(t, err)
	var found *dto.MetricFamily
	for _, mf := range mfs {
		if mf.GetName() == name {
			found = mf
		}
	}
	testutil.Assert(t, found != nil, "metric %s not gathered", name)
	testutil.Equals(t, dto.MetricType_GAUGE, found.GetType())
	testutil.Equals(t, 1, len(found.GetMetric()))
	return found.GetMetric()[0].GetGauge().GetValue()
}

func TestQueueMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	w, err := New(pqueue.New[int](), WithRegisterer(reg), WithQueueName("jobs"))
	testutil.Ok(t, err)

	for _, v := range []int{3, 1, 2} {
		testutil.Ok(t, w.Add(v))
	}
	v, err := w.Poll()
	testutil.Ok(t, err)
	testutil.Equals(t, 1, v)

	_, err = w.Remove(42)
	testutil.Assert(t, errors.Is(err, pqueue.ErrNotFound), "got %v", err)
	_, err = w.RemoveAt(10)
	testutil.Assert(t, errors.Is(err, pqueue.ErrOutOfRange), "got %v", err)

	testutil.Equals(t, 2.0, gaugeValue(t, reg, "pqueue_elements"))

	expected := `
# HELP pqueue_elements Number of elements currently held by the queue.
# TYPE pqueue_elements gauge
pqueue_elements{queue="jobs"} 2
# HELP pqueue_operation_failures_total Total number of failed queue operations by reason.
# TYPE pqueue_operation_failures_total counter
pqueue_operation_failures_total{operation="remove",queue="jobs",reason="not_found"} 1
pqueue_operation_failures_total{operation="remove_at",queue="jobs",reason="out_of_range"} 1
# HELP pqueue_operations_total Total number of successful queue operations.
# TYPE pqueue_operations_total counter
pqueue_operations_total{operation="add",queue="jobs"} 3
pqueue_operations_total{operation="poll",queue="jobs"} 1
`
	err = promtestutil.GatherAndCompare(reg, strings.NewReader(expected),
		"pqueue_elements", "pqueue_operation_failures_total", "pqueue_operations_total")
	testutil.Ok(t, err)
}

func TestQueueEmptyAndClear(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	w, err := New(pqueue.New[string](), WithRegisterer(reg), WithNamespace("tasks"))
	testutil.Ok(t, err)

	_, err = w.Poll()
	testutil.Assert(t, errors.Is(err, pqueue.ErrEmpty), "got %v", err)
	_, err = w.Peek()
	testutil.Assert(t, errors.Is(err, pqueue.ErrEmpty), "got %v", err)

	testutil.Ok(t, w.Add("b"))
	testutil.Ok(t, w.Add("a"))
	testutil.Assert(t, w.Contains("a"))
	top, err := w.Peek()
	testutil.Ok(t, err)
	testutil.Equals(t, "a", top)
	testutil.Equals(t, []string{"a", "b"}, w.Snapshot())

	w.Clear()
	testutil.Assert(t, w.IsEmpty())
	testutil.Equals(t, 0.0, gaugeValue(t, reg, "tasks_elements"))

	c, err := w.metrics.failures.GetMetricWithLabelValues(opPoll, reasonEmpty)
	testutil.Ok(t, err)
	testutil.Equals(t, 1.0, promtestutil.ToFloat64(c))
	testutil.Equals(t, 1.0, promtestutil.ToFloat64(w.metrics.operations.WithLabelValues(opClear)))
}

func TestQueueEvict(t *testing.T) {
	q, err := pqueue.FromSlice([]int{9, 4, 7, 1})
	testutil.Ok(t, err)
	w, err := New(q)
	testutil.Ok(t, err)

	evicted, err := w.Evict(pqueue.EvictSmallest[int](2))
	testutil.Ok(t, err)
	testutil.Equals(t, []int{1, 4}, evicted)
	testutil.Equals(t, 2, w.Len())
	testutil.Equals(t, 1.0, promtestutil.ToFloat64(w.metrics.operations.WithLabelValues(opEvict)))
}

func TestQueueLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	w, err := New(pqueue.New[int](), WithLogger(logger), WithQueueName("audit"))
	testutil.Ok(t, err)

	_, err = w.Poll()
	testutil.NotOk(t, err)

	out := buf.String()
	testutil.Assert(t, strings.Contains(out, `msg="queue operation failed"`), out)
	testutil.Assert(t, strings.Contains(out, "queue=audit"), out)
	testutil.Assert(t, strings.Contains(out, "operation=poll"), out)
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(pqueue.New[int](), WithQueueName(""))
	testutil.NotOk(t, err)

	_, err = New[int](nil)
	testutil.NotOk(t, err)
}

func TestNewReturnsRegistrationError(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	first, err := New(pqueue.New[int](), WithRegisterer(reg), WithQueueName("jobs"))
	testutil.Ok(t, err)

	err = testutil.FaultOrPanicToErr(func() {
		_, err := New(pqueue.New[int](), WithRegisterer(reg), WithQueueName("jobs"))
		var are prometheus.AlreadyRegisteredError
		testutil.Assert(t, errors.As(err, &are), "got %v", err)
	})
	testutil.Ok(t, err)

	// The first queue keeps reporting through the registry.
	testutil.Ok(t, first.Add(5))
	testutil.Equals(t, 1.0, gaugeValue(t, reg, "pqueue_elements"))

	// A different queue name yields distinct series and registers fine.
	_, err = New(pqueue.New[int](), WithRegisterer(reg), WithQueueName("other"))
	testutil.Ok(t, err)
}

func TestQueueConcurrentUse(t *testing.T) {
	w, err := New(pqueue.New[int]())
	testutil.Ok(t, err)

	const (
		workers   = 8
		perWorker = 200
	)
	removed := make([][]int, workers)
	var wg sync.WaitGroup
	for g := 0; g < workers; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				v := g*perWorker + i
				if err := w.Add(v); err != nil {
					t.Error(err)
					return
				}
				_ = w.Contains(v)
				_ = w.Len()
				if _, err := w.Peek(); err != nil && !errors.Is(err, pqueue.ErrEmpty) {
					t.Error(err)
					return
				}
				switch i % 4 {
				case 1:
					p, err := w.Poll()
					if err == nil {
						removed[g] = append(removed[g], p)
					} else if !errors.Is(err, pqueue.ErrEmpty) {
						t.Error(err)
						return
					}
				case 3:
					ok, err := w.Remove(v)
					if ok {
						removed[g] = append(removed[g], v)
					} else if !errors.Is(err, pqueue.ErrNotFound) {
						t.Error(err)
						return
					}
				}
			}
		}(g)
	}
	wg.Wait()

	var got []int
	for _, r := range removed {
		got = append(got, r...)
	}
	testutil.Equals(t, workers*perWorker-len(got), w.Len())

	prev := -1
	for !w.IsEmpty() {
		v, err := w.Poll()
		testutil.Ok(t, err)
		testutil.Assert(t, v > prev, "polled %d after %d", v, prev)
		prev = v
		got = append(got, v)
	}

	// Every added value came out exactly once.
	slices.Sort(got)
	want := make([]int, workers*perWorker)
	for i := range want {
		want[i] = i
	}
	testutil.Equals(t, want, got)
}
