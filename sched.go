package listview

// slot is a single-slot overwrite queue: at most one value is pending and
// a newer Put replaces it. Both the "one pending recompute, newest wins"
// latch and the "one queued next-section request" behavior are instances
// of it.
type slot[T any] struct {
	value T
	full  bool
}

// Put stores v, discarding any previously pending value.
func (s *slot[T]) Put(v T) {
	s.value = v
	s.full = true
}

// Take removes and returns the pending value, if any.
func (s *slot[T]) Take() (T, bool) {
	if !s.full {
		var zero T
		return zero, false
	}
	v := s.value
	var zero T
	s.value = zero
	s.full = false
	return v, true
}

// Full reports whether a value is pending.
func (s *slot[T]) Full() bool { return s.full }

// Clear discards any pending value.
func (s *slot[T]) Clear() {
	var zero T
	s.value = zero
	s.full = false
}

// countdown is a one-shot timer in virtual frame time, advanced by the
// controller's Advance calls. A zero delay fires on the next tick.
type countdown struct {
	remaining float32
	armed     bool
}

// Arm starts (or restarts) the countdown with the given delay in seconds.
func (c *countdown) Arm(delay float32) {
	c.remaining = delay
	c.armed = true
}

// Cancel disarms the countdown without firing.
func (c *countdown) Cancel() {
	c.armed = false
	c.remaining = 0
}

// Armed reports whether the countdown is running.
func (c *countdown) Armed() bool { return c.armed }

// Tick advances the countdown by dt seconds and reports whether it fired
// this tick. A fired countdown disarms itself.
func (c *countdown) Tick(dt float32) bool {
	if !c.armed {
		return false
	}
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	c.armed = false
	c.remaining = 0
	return true
}
