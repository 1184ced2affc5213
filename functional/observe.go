// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

import (
	"time"

	"github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
)

// observer wraps calls with logging and metrics. Results and errors are never
// altered, and panics are not intercepted.
type observer struct {
	name    string
	logger  hclog.Logger
	metrics *metrics.Metrics
}

func newObserver(opt ...Option) (*observer, error) {
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}
	return &observer{
		name:    opts.withName,
		logger:  opts.withLogger.Named(opts.withName),
		metrics: opts.withMetrics,
	}, nil
}

func (o *observer) start() time.Time {
	if o.metrics != nil {
		o.metrics.IncrCounter([]string{o.name, "call"}, 1)
	}
	return time.Now()
}

func (o *observer) done(start time.Time, err error) {
	if o.metrics != nil {
		o.metrics.MeasureSince([]string{o.name, "duration"}, start)
	}
	if err == nil {
		return
	}
	if o.metrics != nil {
		o.metrics.IncrCounter([]string{o.name, "error"}, 1)
	}
	o.logger.Debug("call failed", "error", err)
}

// ObserveRunnable returns f instrumented per the options: every call is
// counted and timed, and each error is counted and logged at debug level.
func ObserveRunnable(f ErrorableRunnable, opt ...Option) (ErrorableRunnable, error) {
	if f == nil {
		return nil, nilParameter("runnable")
	}
	o, err := newObserver(opt...)
	if err != nil {
		return nil, err
	}
	return func() (err error) {
		defer func(start time.Time) { o.done(start, err) }(o.start())
		return f()
	}, nil
}

func ObserveProducer[V any](f ErrorableProducer[V], opt ...Option) (ErrorableProducer[V], error) {
	if f == nil {
		return nil, nilParameter("producer")
	}
	o, err := newObserver(opt...)
	if err != nil {
		return nil, err
	}
	return func() (v V, err error) {
		defer func(start time.Time) { o.done(start, err) }(o.start())
		return f()
	}, nil
}

func ObserveConsumer[T any](f ErrorableConsumer[T], opt ...Option) (ErrorableConsumer[T], error) {
	if f == nil {
		return nil, nilParameter("consumer")
	}
	o, err := newObserver(opt...)
	if err != nil {
		return nil, err
	}
	return func(t T) (err error) {
		defer func(start time.Time) { o.done(start, err) }(o.start())
		return f(t)
	}, nil
}

func ObserveFunction[A, V any](f ErrorableFunction[A, V], opt ...Option) (ErrorableFunction[A, V], error) {
	if f == nil {
		return nil, nilParameter("function")
	}
	o, err := newObserver(opt...)
	if err != nil {
		return nil, err
	}
	return func(a A) (v V, err error) {
		defer func(start time.Time) { o.done(start, err) }(o.start())
		return f(a)
	}, nil
}

func ObserveBiFunction[A, B, V any](f ErrorableBiFunction[A, B, V], opt ...Option) (ErrorableBiFunction[A, B, V], error) {
	if f == nil {
		return nil, nilParameter("function")
	}
	o, err := newObserver(opt...)
	if err != nil {
		return nil, err
	}
	return func(a A, b B) (v V, err error) {
		defer func(start time.Time) { o.done(start, err) }(o.start())
		return f(a, b)
	}, nil
}

func ObservePredicate[T any](p ErrorablePredicate[T], opt ...Option) (ErrorablePredicate[T], error) {
	if p == nil {
		return nil, nilParameter("predicate")
	}
	o, err := newObserver(opt...)
	if err != nil {
		return nil, err
	}
	return func(t T) (ok bool, err error) {
		defer func(start time.Time) { o.done(start, err) }(o.start())
		return p(t)
	}, nil
}
