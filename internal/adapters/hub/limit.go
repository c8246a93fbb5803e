package hub

import (
	"time"

	"golang.org/x/time/rate"
)

// windowLimiter admits at most n frames per fixed window. Each window gets a
// fresh bucket of n tokens that never refills, so a burst at the end of one
// window and the start of the next is the most a client can squeeze in.
//
// Only the connection's read loop calls allow, so no locking is needed.
type windowLimiter struct {
	n      int
	window time.Duration
	now    func() time.Time

	start  time.Time
	bucket *rate.Limiter
}

func newWindowLimiter(n int, window time.Duration, now func() time.Time) *windowLimiter {
	if now == nil {
		now = time.Now
	}
	return &windowLimiter{n: n, window: window, now: now}
}

func (l *windowLimiter) allow() bool {
	t := l.now()
	if l.bucket == nil || t.Sub(l.start) >= l.window {
		l.start = t
		l.bucket = rate.NewLimiter(0, l.n)
	}
	return l.bucket.AllowN(t, 1)
}
