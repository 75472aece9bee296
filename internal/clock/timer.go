package clock

// IntervalTimer fires once per interval of a millisecond time base.
// It is polled, never called back, so a fixed time sequence always produces
// the same firings.
type IntervalTimer struct {
	interval int64
	baseline int64
}

// NewIntervalTimer creates a timer firing every intervalMs milliseconds,
// counting from baseline 0.
func NewIntervalTimer(intervalMs int64) IntervalTimer {
	return IntervalTimer{interval: intervalMs}
}

// Reset restarts the interval at now.
func (t *IntervalTimer) Reset(now int64) {
	t.baseline = now
}

// Baseline returns the time the current interval started.
func (t IntervalTimer) Baseline() int64 {
	return t.baseline
}

// Fire reports whether an interval has elapsed at now. It fires at most once
// per call; after a stall longer than one interval the baseline snaps to now
// instead of firing a burst.
func (t *IntervalTimer) Fire(now int64) bool {
	if t.interval <= 0 || now-t.baseline < t.interval {
		return false
	}
	t.baseline += t.interval
	if now-t.baseline >= t.interval {
		t.baseline = now
	}
	return true
}
