// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package unchecked

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
	withMessage string
}

func getDefaultOptions() options {
	return options{}
}

// WithMessage sets a descriptive message that prefixes the cause text.
func WithMessage(msg string) Option {
	return func(o *options) error {
		o.withMessage = msg
		return nil
	}
}
