package listview

// Host is the platform capability set the controller consumes. The
// rendering host owns the actual viewport; the controller only ever asks
// it to teleport.
type Host interface {
	// SetScrollOffset moves the viewport to the given pixel offset
	// synchronously, without animation.
	SetScrollOffset(y float32)
}

// Controller owns the row window, the buffer window, and all scroll
// scheduling state for one list. It is single-threaded and cooperative:
// the host pumps it with Advance once per frame, and every deferral
// (coalescing delay, frame boundary, settle delay) resolves inside
// Advance against the latest committed state, never a stale snapshot.
//
// A Controller must not be shared across goroutines.
type Controller[T any] struct {
	cfg  config
	geom *Geometry[T]
	host Host

	window Window
	target Window
	buffer *Window // present only during a section jump

	scrollY   float32
	viewportH float32
	contentH  float32 // host-reported; 0 means use geometry total
	direction ScrollDirection

	pending  slot[struct{}] // recompute latch: at most one pending
	debounce countdown

	jump jumpState

	endReachedFired bool
	torn            bool
}

// NewController creates a controller over the given geometry. The
// configuration invariants are checked once here; a violation is fatal
// and no controller is returned.
func NewController[T any](geom *Geometry[T], host Host, opts ...ControllerOption) (*Controller[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := &Controller[T]{
		cfg:    cfg,
		geom:   geom,
		host:   host,
		window: Window{First: 0, Last: -1},
		target: Window{First: 0, Last: -1},
	}
	c.resetWindowForData()
	return c, nil
}

// SetData rebuilds the geometry wholesale from new sectioned data and
// re-anchors the row window synchronously. Catching the window up to the
// current scroll position stays scroll-driven: the next OnScroll
// schedules convergence as usual. A nil order means natural key order.
func (c *Controller[T]) SetData(data map[string][]T, order []string) {
	if c.jumpActive() {
		// The jump's target section may not exist in the new data.
		c.jump.cancel()
		c.buffer = nil
	}
	c.geom.Rebuild(data, order)
	c.endReachedFired = false
	c.resetWindowForData()
}

func (c *Controller[T]) resetWindowForData() {
	total := c.geom.RowCount()
	if total == 0 {
		c.setWindow(Window{First: 0, Last: -1})
		c.target = c.window
		c.buffer = nil
		return
	}
	if c.window.Empty() {
		// Fresh data: materialize the initial window.
		last := c.cfg.initialNum
		if last > total {
			last = total
		}
		c.setWindow(Window{First: 0, Last: last - 1})
		c.target = c.window
		return
	}
	// Replaced data: clamp the existing window into the new row space.
	w := c.window
	if w.Last > total-1 {
		w.Last = total - 1
	}
	if w.First > w.Last {
		w.First = w.Last
	}
	if w.Count() > c.cfg.maxNum {
		w.First = w.Last - c.cfg.maxNum + 1
	}
	c.setWindow(w)
	c.target = w
}

// OnScroll records a viewport scroll-position update and schedules one
// coalesced recompute. Scheduling while a recompute is already pending is
// a no-op; the pending recompute reads the latest state when it runs.
func (c *Controller[T]) OnScroll(offsetY, viewportHeight float32) {
	if c.torn {
		return
	}
	if offsetY > c.scrollY {
		c.direction = ScrollDown
	} else if offsetY < c.scrollY {
		c.direction = ScrollUp
	}
	c.scrollY = offsetY
	c.viewportH = viewportHeight
	c.checkEndReached()

	if c.jumpActive() {
		// A programmatic jump suppresses normal tracking.
		return
	}
	if c.cfg.renderAhead == 0 {
		// Windowing disabled: the initial window stays static.
		return
	}
	c.scheduleRecompute(c.cfg.incrementDelay)
}

// OnContentSize records the host-reported scrollable content height used
// for the end-reached signal.
func (c *Controller[T]) OnContentSize(h float32) {
	c.contentH = h
	c.checkEndReached()
}

// Advance pumps the controller by dt seconds of frame time. All deferred
// work runs here: the coalescing delay, convergence ticks, jump phase
// transitions, and the settle delay.
func (c *Controller[T]) Advance(dt float32) {
	if c.torn {
		return
	}
	if c.jumpActive() {
		c.advanceJump(dt)
		return
	}
	if c.debounce.Tick(dt) {
		if _, ok := c.pending.Take(); ok {
			c.recompute()
		}
	}
}

// scheduleRecompute latches one recompute after the given delay. The
// latch is a single-slot queue: while one is pending, further requests
// coalesce into it.
func (c *Controller[T]) scheduleRecompute(delay float32) {
	if c.pending.Full() {
		return
	}
	c.pending.Put(struct{}{})
	c.debounce.Arm(delay)
}

// recompute runs one convergence tick against the latest scroll state and
// re-schedules itself until the window reaches its target.
func (c *Controller[T]) recompute() {
	total := c.geom.RowCount()
	if total == 0 {
		c.setWindow(Window{First: 0, Last: -1})
		c.target = c.window
		return
	}
	if c.cfg.renderAhead == 0 {
		return
	}

	firstVis, lastVis := c.geom.VisibleRowRange(c.scrollY, c.viewportH)
	res := stepWindow(stepInput{
		Direction:     c.direction,
		FirstVisible:  firstVis,
		LastVisible:   lastVis,
		FirstRendered: c.window.First,
		LastRendered:  c.window.Last,
		TotalRows:     total,
		MaxToRender:   c.cfg.maxNum,
		PageSize:      c.cfg.pageSize,
		RenderAhead:   c.cfg.renderAhead,
		RenderBehind:  c.cfg.renderBehind,
	})
	c.target = res.Target
	c.setWindow(res.Window)
	if !res.converged() {
		// Spread the remaining distance over further ticks.
		c.scheduleRecompute(0)
	}
}

func (c *Controller[T]) setWindow(w Window) {
	if w == c.window {
		return
	}
	c.window = w
	c.notifyWindowChanged()
}

func (c *Controller[T]) notifyWindowChanged() {
	if c.cfg.onWindowChanged != nil {
		c.cfg.onWindowChanged()
	}
}

// checkEndReached fires the one-shot end-reached signal when the bottom
// of the scrollable content enters the viewport, and re-arms it once the
// bottom leaves again.
func (c *Controller[T]) checkEndReached() {
	bottom := c.contentH
	if bottom <= 0 {
		bottom = c.geom.TotalHeight()
	}
	if bottom <= 0 || c.viewportH <= 0 {
		return
	}
	atEnd := c.scrollY+c.viewportH >= bottom
	if atEnd && !c.endReachedFired {
		c.endReachedFired = true
		if c.cfg.onEndReached != nil {
			c.cfg.onEndReached()
		}
	} else if !atEnd {
		c.endReachedFired = false
	}
}

// Window returns the currently materialized row window.
func (c *Controller[T]) Window() Window { return c.window }

// TargetWindow returns the ideal window the convergence loop is moving
// toward.
func (c *Controller[T]) TargetWindow() Window { return c.target }

// BufferWindow returns the jump buffer window, present only while a
// section jump is in flight.
func (c *Controller[T]) BufferWindow() (Window, bool) {
	if c.buffer == nil {
		return Window{}, false
	}
	return *c.buffer, true
}

// Converged reports whether the window has reached its target and no
// recompute is pending.
func (c *Controller[T]) Converged() bool {
	return c.window == c.target && !c.pending.Full()
}

// Direction returns the last derived scroll direction.
func (c *Controller[T]) Direction() ScrollDirection { return c.direction }

// ScrollOffset returns the last recorded viewport scroll state.
func (c *Controller[T]) ScrollOffset() (offsetY, viewportHeight float32) {
	return c.scrollY, c.viewportH
}

// Geometry returns the controller's geometry index.
func (c *Controller[T]) Geometry() *Geometry[T] { return c.geom }

// Teardown cancels all pending timers and latches. The controller does
// nothing after it is torn down.
func (c *Controller[T]) Teardown() {
	c.pending.Clear()
	c.debounce.Cancel()
	c.jump.cancel()
	c.buffer = nil
	c.torn = true
}
