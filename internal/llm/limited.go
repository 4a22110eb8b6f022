package llm

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Limited bounds each call with a timeout and paces calls with a token
// bucket. Failures are returned as-is; there are no retries.
type Limited struct {
	next    Client
	timeout time.Duration
	limiter *rate.Limiter
}

// NewLimited wraps next. A zero timeout disables the deadline and a zero
// rps disables pacing.
func NewLimited(next Client, timeout time.Duration, rps float64) *Limited {
	l := &Limited{next: next, timeout: timeout}
	if rps > 0 {
		l.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return l
}

// Complete waits for a token, then calls the wrapped client.
func (l *Limited) Complete(ctx context.Context, req Request) (*Completion, error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "llm: rate limit wait")
		}
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	return l.next.Complete(ctx, req)
}
