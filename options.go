package listview

// config holds the windowing budgets and timings for a controller.
type config struct {
	initialNum     int
	maxNum         int
	renderAhead    int
	renderBehind   int
	pageSize       int
	incrementDelay float32
	settleDelay    float32
	jumpFrameDelay bool

	onEndReached    func()
	onWindowChanged func()
}

// ControllerOption configures a Controller instance.
type ControllerOption func(*config)

const (
	defaultInitialNum     = 10
	defaultMaxNum         = 40
	defaultRenderAhead    = 10
	defaultRenderBehind   = 2
	defaultPageSize       = 5
	defaultIncrementDelay = 0.017
	defaultSettleDelay    = 0.1
)

func defaultConfig() config {
	return config{
		initialNum:     defaultInitialNum,
		maxNum:         defaultMaxNum,
		renderAhead:    defaultRenderAhead,
		renderBehind:   defaultRenderBehind,
		pageSize:       defaultPageSize,
		incrementDelay: defaultIncrementDelay,
		settleDelay:    defaultSettleDelay,
	}
}

// WithInitialRendered sets the initial and jump window size in rows.
func WithInitialRendered(n int) ControllerOption {
	return func(c *config) { c.initialNum = n }
}

// WithMaxRendered sets the hard cap on simultaneously materialized rows.
func WithMaxRendered(n int) ControllerOption {
	return func(c *config) { c.maxNum = n }
}

// WithRenderAhead sets how many rows to keep materialized beyond the
// visible edge in the scroll direction. Zero disables windowing entirely:
// the initial window is kept static.
func WithRenderAhead(n int) ControllerOption {
	return func(c *config) { c.renderAhead = n }
}

// WithRenderBehind sets how many rows to keep materialized behind the
// visible edge opposite the scroll direction.
func WithRenderBehind(n int) ControllerOption {
	return func(c *config) { c.renderBehind = n }
}

// WithPageSize sets the most rows the off-screen edge may advance per
// scheduling tick.
func WithPageSize(n int) ControllerOption {
	return func(c *config) { c.pageSize = n }
}

// WithIncrementDelay sets the coalescing delay, in seconds, before a
// scroll-triggered recompute runs.
func WithIncrementDelay(seconds float32) ControllerOption {
	return func(c *config) { c.incrementDelay = seconds }
}

// WithSettleDelay sets how long, in seconds, the controller waits after a
// section jump before normal scroll tracking resumes. The delay tolerates
// scroll-position reporting lag on some platforms.
func WithSettleDelay(seconds float32) ControllerOption {
	return func(c *config) { c.settleDelay = seconds }
}

// WithJumpFrameDelay makes the jump state machine wait one frame boundary
// after moving the viewport before snapping the main window, for
// platforms that need an extra paint cycle to avoid a blank flash.
func WithJumpFrameDelay(enabled bool) ControllerOption {
	return func(c *config) { c.jumpFrameDelay = enabled }
}

// WithEndReachedFunc sets the handler fired once each time the bottom of
// the scrollable content enters the viewport.
func WithEndReachedFunc(fn func()) ControllerOption {
	return func(c *config) { c.onEndReached = fn }
}

// WithWindowChangedFunc sets the handler fired whenever the set of
// materialized rows changes and the host should re-render.
func WithWindowChangedFunc(fn func()) ControllerOption {
	return func(c *config) { c.onWindowChanged = fn }
}

// validate checks the configuration invariants once at setup. Violations
// are fatal: the controller refuses to operate rather than produce
// undefined windowing behavior.
func (c *config) validate() error {
	if c.maxNum < 1 {
		return &ConfigError{Option: "maxNumToRender", Reason: "must be at least 1"}
	}
	if c.initialNum < 1 {
		return &ConfigError{Option: "initialNumToRender", Reason: "must be at least 1"}
	}
	if c.initialNum > c.maxNum {
		return &ConfigError{Option: "initialNumToRender", Reason: "must not exceed maxNumToRender"}
	}
	if c.pageSize < 1 {
		return &ConfigError{Option: "pageSize", Reason: "must be at least 1"}
	}
	if c.renderAhead < 0 || c.renderBehind < 0 {
		return &ConfigError{Option: "numToRenderAhead/numToRenderBehind", Reason: "must not be negative"}
	}
	if c.renderAhead >= c.maxNum {
		return &ConfigError{Option: "numToRenderAhead", Reason: "must be less than maxNumToRender"}
	}
	if c.renderBehind >= c.maxNum {
		return &ConfigError{Option: "numToRenderBehind", Reason: "must be less than maxNumToRender"}
	}
	return nil
}
