// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

import (
	"errors"

	"github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
)

// getOpts - iterate the inbound Options and return a struct
func getOpts(opt ...Option) (*options, error) {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			if err := o(&opts); err != nil {
				return nil, err
			}
		}
	}
	return &opts, nil
}

// Option - how Options are passed as arguments
type Option func(*options) error

// options = how options are represented
type options struct {
	withLogger  hclog.Logger
	withMetrics *metrics.Metrics
	withName    string
}

func getDefaultOptions() options {
	return options{
		withLogger: hclog.NewNullLogger(),
		withName:   "functional",
	}
}

// WithLogger sets the logger failures are reported to. By default nothing is
// logged.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		o.withLogger = logger
		return nil
	}
}

// WithMetrics sets where call counts and timings are emitted. By default no
// metrics are emitted.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) error {
		o.withMetrics = m
		return nil
	}
}

// WithName sets the name used as metric key prefix and in log lines.
func WithName(name string) Option {
	return func(o *options) error {
		if name == "" {
			return errors.New("empty name")
		}
		o.withName = name
		return nil
	}
}
