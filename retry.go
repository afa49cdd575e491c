package brfunds

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/phuslu/log"
)

const (
	DefaultAttempts = 5
	DefaultInterval = time.Second
)

// Retrier retries a remote call that fails with a *TransientShapeError.
//
// Any other error is returned at once. A Retrier holds no state between calls
// and can be shared.
type Retrier struct {
	Attempts int           // maximum number of calls, DefaultAttempts if <= 0
	Interval time.Duration // fixed wait between two calls
	Logger   *log.Logger   // optional
}

// NewRetrier returns a Retrier with the default bound and interval.
func NewRetrier() *Retrier {
	return &Retrier{Attempts: DefaultAttempts, Interval: DefaultInterval}
}

func (r *Retrier) attempts() int {
	if r.Attempts <= 0 {
		return DefaultAttempts
	}
	return r.Attempts
}

// Do calls op until it succeeds, fails with a non transient error, or the
// attempts are exhausted. In the last case it returns a *DataUnavailableError
// for id.
func (r *Retrier) Do(ctx context.Context, id string, op func(context.Context) error) error {
	max := r.attempts()
	calls := 0
	operation := func() error {
		calls++
		err := op(ctx)
		if err == nil {
			return nil
		}
		var shape *TransientShapeError
		if !errors.As(err, &shape) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		if r.Logger != nil {
			r.Logger.Warn().Str("id", id).Int("attempt", calls).Int("max", max).Dur("wait", wait).Err(err).Msg("transient response shape, retrying")
		}
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(r.Interval), uint64(max-1)), ctx)
	err := backoff.RetryNotify(operation, b, notify)
	if err == nil {
		return nil
	}
	var shape *TransientShapeError
	if errors.As(err, &shape) && ctx.Err() == nil {
		return &DataUnavailableError{ID: id, Attempts: calls, Err: err}
	}
	return err
}
