package retry

import (
	"context"
	"math"
	"math/rand"
	"time"
)

type Operation = func() error

type Action int

const (
	Stop Action = iota
	Wait
)

// Decision tells the caller what to do after an attempt.
type Decision struct {
	Action Action
	Delay  time.Duration
}

// Policy is a pure backoff schedule. It never sleeps; Retrier does.
type Policy struct {
	MaxAttempts   int
	BackoffFactor float64
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Jitter        time.Duration

	// Retryable reports whether err is worth another attempt. Nil retries everything.
	Retryable func(err error) bool
}

func NewDefaultPolicy() *Policy {
	return &Policy{
		MaxAttempts:   3,
		BackoffFactor: 2,
		InitialDelay:  time.Second,
		MaxDelay:      20 * time.Second,
	}
}

// Next decides what follows attempt number attempt (1-based) that ended with err.
func (p *Policy) Next(attempt int, err error) Decision {
	if err == nil || attempt >= p.MaxAttempts {
		return Decision{Action: Stop}
	}
	if p.Retryable != nil && !p.Retryable(err) {
		return Decision{Action: Stop}
	}

	factor := p.BackoffFactor
	if factor < 1 {
		factor = 1
	}
	delay := time.Duration(float64(p.InitialDelay) * math.Pow(factor, float64(attempt-1)))
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}

	return Decision{Action: Wait, Delay: delay}
}

type Retrier struct {
	policy *Policy
	rnd    *rand.Rand
}

func NewRetrier(policy *Policy) *Retrier {
	return &Retrier{
		policy: policy,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultPolicy())
}

// Do runs op until it succeeds or the policy says stop, returning the last error.
// Waiting between attempts is interrupted by ctx.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	for attempt := 1; ; attempt++ {
		err := op()

		d := r.policy.Next(attempt, err)
		if d.Action == Stop {
			return err
		}

		delay := d.Delay
		if r.policy.Jitter > 0 {
			delay += time.Duration(r.rnd.Float64() * float64(r.policy.Jitter))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}
