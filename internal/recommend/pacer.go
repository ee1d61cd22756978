package recommend

import (
	"context"
	"time"
)

// Pacer holds back a result for presentation pacing. It does no work.
type Pacer interface {
	Pace(ctx context.Context) error
}

type PacerFunc func(ctx context.Context) error

func (f PacerFunc) Pace(ctx context.Context) error {
	return f(ctx)
}

// NoDelay returns immediately.
var NoDelay Pacer = PacerFunc(func(context.Context) error { return nil })

// Delay waits for d, or until ctx is done.
func Delay(d time.Duration) Pacer {
	if d <= 0 {
		return NoDelay
	}
	return PacerFunc(func(ctx context.Context) error {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}
