// Package timing gates simulation steps and paces the frame loop.
package timing

import "time"

// StepGate fires at most once per Interval of loop time.
type StepGate struct {
	Interval time.Duration
	last     time.Duration
}

func NewStepGate(interval time.Duration, now time.Duration) *StepGate {
	return &StepGate{Interval: interval, last: now}
}

// Ready reports whether strictly more than Interval has passed since the last
// time the gate fired, and re-arms it if so.
func (g *StepGate) Ready(now time.Duration) bool {
	if now-g.last > g.Interval {
		g.last = now
		return true
	}
	return false
}

// FrameLimiter throttles a loop to a target frame rate.
type FrameLimiter struct {
	frame time.Duration
	start time.Time
	sleep func(time.Duration)
}

func NewFrameLimiter(fps int) *FrameLimiter {
	if fps <= 0 {
		fps = 60
	}
	return &FrameLimiter{
		frame: time.Second / time.Duration(fps),
		start: time.Now(),
		sleep: time.Sleep,
	}
}

// Frame returns the per-frame budget.
func (f *FrameLimiter) Frame() time.Duration { return f.frame }

// Delay returns how long to sleep after a frame that took elapsed.
func (f *FrameLimiter) Delay(elapsed time.Duration) time.Duration {
	if elapsed >= f.frame {
		return 0
	}
	return f.frame - elapsed
}

// Wait sleeps out the remainder of the current frame and starts the next.
func (f *FrameLimiter) Wait() {
	if d := f.Delay(time.Since(f.start)); d > 0 {
		f.sleep(d)
	}
	f.start = time.Now()
}
