package listview

// jumpPhase tracks the buffered section-jump state machine:
// Idle -> Buffering -> Jumping -> Settling -> Idle.
type jumpPhase uint8

const (
	jumpIdle jumpPhase = iota
	jumpBuffering
	jumpJumping
	jumpSettling
)

// jumpState is the controller-owned state of one jump in flight, plus the
// single queued next-section request (newest wins, depth one).
type jumpState struct {
	phase   jumpPhase
	targetY float32
	settle  countdown
	queued  slot[string]
}

func (j *jumpState) cancel() {
	j.phase = jumpIdle
	j.settle.Cancel()
	j.queued.Clear()
}

// ScrollToSection jumps the viewport to the named section while bounding
// the rows forced into existence at once. While a jump is in flight the
// request only overwrites the queued next section and does nothing else.
// An unknown section id is reported when the jump would start. The
// controller does nothing after it is torn down.
func (c *Controller[T]) ScrollToSection(id string) error {
	if c.torn {
		return nil
	}
	if c.jumpActive() {
		c.jump.queued.Put(id)
		return nil
	}
	return c.beginJump(id)
}

func (c *Controller[T]) jumpActive() bool { return c.jump.phase != jumpIdle }

// beginJump suspends normal scroll tracking and sets the buffer window
// over the target section, starting at its header row and extending by
// initialNumToRender rows, clamped to the end of the list.
func (c *Controller[T]) beginJump(id string) error {
	sec, err := c.geom.SectionRange(id)
	if err != nil {
		return err
	}

	c.pending.Clear()
	c.debounce.Cancel()
	c.jump.settle.Cancel()

	// The buffer spans the header row plus initialNumToRender rows,
	// trimmed so the buffer never holds more than maxNumToRender rows.
	// The end clamp pulls the start back so the clamp alone never
	// shrinks it.
	n := c.cfg.initialNum
	if n > c.cfg.maxNum-1 {
		n = c.cfg.maxNum - 1
	}
	total := c.geom.RowCount()
	first := sec.FirstRow
	last := first + n
	if last > total-1 {
		last = total - 1
		first = last - n
		if first < 0 {
			first = 0
		}
	}

	w := Window{First: first, Last: last}
	c.buffer = &w
	c.jump.targetY = sec.StartY
	c.jump.phase = jumpBuffering
	c.notifyWindowChanged()
	return nil
}

// advanceJump runs one frame of the jump state machine. Each transition
// happens at a frame boundary so the host has had a chance to paint the
// state committed by the previous one.
func (c *Controller[T]) advanceJump(dt float32) {
	switch c.jump.phase {
	case jumpBuffering:
		// The buffer window was painted last frame; teleport now.
		c.host.SetScrollOffset(c.jump.targetY)
		c.scrollY = c.jump.targetY
		c.jump.phase = jumpJumping
		if c.cfg.jumpFrameDelay {
			// Platforms with paint-ordering sensitivity need one more
			// frame between the teleport and the window snap.
			return
		}
		fallthrough

	case jumpJumping:
		if c.buffer != nil {
			c.setWindow(*c.buffer)
			c.target = c.window
			c.buffer = nil
		}
		c.jump.phase = jumpSettling
		if id, ok := c.jump.queued.Take(); ok {
			// Restart immediately for the newest queued request without
			// returning to Idle. An unknown id falls through to settle.
			if c.beginJump(id) == nil {
				return
			}
		}
		c.jump.settle.Arm(c.cfg.settleDelay)

	case jumpSettling:
		if c.jump.settle.Tick(dt) {
			c.finishJump()
		}
	}
}

// finishJump returns the machine to Idle and resumes scroll tracking.
func (c *Controller[T]) finishJump() {
	c.jump.phase = jumpIdle
	if c.cfg.renderAhead > 0 {
		c.scheduleRecompute(0)
	}
}
