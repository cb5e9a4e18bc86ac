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
	"context"
	"log/slog"

	"github.com/efficientgo/core/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Queue.
type Option func(o *opts) error

type opts struct {
	registerer prometheus.Registerer
	namespace  string
	queueName  string
	logger     *slog.Logger
}

var defaultOpts = opts{
	namespace: "pqueue",
	queueName: "default",
}

// WithRegisterer registers the queue metrics with reg. By default the metrics
// are created but not registered anywhere.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *opts) error {
		o.registerer = reg
		return nil
	}
}

// WithNamespace sets the metric namespace. Defaults to "pqueue".
func WithNamespace(ns string) Option {
	return func(o *opts) error {
		o.namespace = ns
		return nil
	}
}

// WithQueueName sets the value of the "queue" label attached to every metric.
func WithQueueName(name string) Option {
	return func(o *opts) error {
		if name == "" {
			return errors.New("queue name must not be empty")
		}
		o.queueName = name
		return nil
	}
}

// WithLogger returns Option that allows providing slog logger.
// By default, nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *opts) error {
		o.logger = logger
		return nil
	}
}

type nopSlogHandler struct{}

func (n nopSlogHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (n nopSlogHandler) Handle(context.Context, slog.Record) error { return nil }
func (n nopSlogHandler) WithAttrs([]slog.Attr) slog.Handler        { return n }
func (n nopSlogHandler) WithGroup(string) slog.Handler             { return n }
