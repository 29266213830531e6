// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cycle

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrNilLogger is returned by WithLogger(nil).
	ErrNilLogger = errors.New("cycle: nil logger")

	// ErrInvalidSizeHint is returned when the size hint is negative.
	ErrInvalidSizeHint = errors.New("cycle: size hint must not be negative")
)

// discardLogger is the default logger of a run.
var discardLogger = slog.New(slog.DiscardHandler)

// Option configures a detector run.
type Option func(*config) error

// config holds the configuration of a detector run.
type config struct {
	logger   *slog.Logger
	sizeHint int
}

// newConfig applies opts over the defaults.
func newConfig(opts []Option) (config, error) {
	cfg := config{logger: discardLogger}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// WithLogger sets the logger that receives the run's debug records:
// start, recurrence and exhaustion. Runs log nothing above Debug.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return ErrNilLogger
		}
		c.logger = l
		return nil
	}
}

// WithSizeHint sets the expected number of distinct values before
// recurrence. Naive uses it to presize its history.
func WithSizeHint(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidSizeHint, n)
		}
		c.sizeHint = n
		return nil
	}
}
