package listview

// stepInput carries everything one convergence tick needs. The step is a
// pure function of its input so ticks can be reasoned about and tested in
// isolation from scheduling.
type stepInput struct {
	Direction                   ScrollDirection
	FirstVisible, LastVisible   int
	FirstRendered, LastRendered int
	TotalRows                   int

	MaxToRender  int
	PageSize     int
	RenderAhead  int
	RenderBehind int
}

// stepResult is one incremental step toward the ideal target window.
// When Window != Target the caller must schedule another tick; that is
// what spreads large window moves across scheduling ticks.
type stepResult struct {
	Window Window
	Target Window
}

func (r stepResult) converged() bool { return r.Window == r.Target }

// stepWindow computes the next row window given the current one, the
// visible range, and the rendering budgets. The leading edge in the
// direction of travel is computed first against its ideal target and its
// per-tick bound; the trailing edge follows directly from the leading
// edge. Only the off-screen edge is bounded by PageSize per tick; the
// edge protecting the visible rows moves immediately.
func stepWindow(in stepInput) stepResult {
	if in.TotalRows == 0 {
		empty := Window{First: 0, Last: -1}
		return stepResult{Window: empty, Target: empty}
	}

	if in.Direction == ScrollUp {
		return stepUp(in)
	}
	return stepDown(in)
}

func stepDown(in stepInput) stepResult {
	numRendered := 0
	if in.LastRendered >= in.FirstRendered {
		numRendered = in.LastRendered - in.FirstRendered + 1
	}

	// Leading edge: ideal target, then bounded so the off-screen buffer
	// grows by at most PageSize rows this tick.
	targetLast := min3(
		in.TotalRows-1,
		in.LastVisible+in.RenderAhead-in.RenderBehind,
		in.FirstVisible+numRendered+in.RenderAhead-in.RenderBehind,
	)
	if targetLast < 0 {
		targetLast = 0
	}
	last := targetLast
	if stepped := in.LastRendered + in.PageSize; stepped < last {
		last = stepped
	}
	if last < 0 {
		last = 0
	}

	// Trailing edge: computed directly from the just-stepped leading
	// edge. Never hides the first visible row and never exceeds the
	// budget. Not PageSize-bounded: it snaps in one tick.
	first := trailingFirst(in, last)
	targetFirst := trailingFirst(in, targetLast)

	return stepResult{
		Window: Window{First: first, Last: last},
		Target: Window{First: targetFirst, Last: targetLast},
	}
}

func trailingFirst(in stepInput, last int) int {
	first := max3(0, in.FirstVisible-in.RenderBehind, last-in.MaxToRender+1)
	if first > last {
		first = last
	}
	return first
}

func stepUp(in stepInput) stepResult {
	// Leading edge while scrolling up is the first row: ideal target,
	// then bounded so it retreats by at most PageSize rows this tick.
	targetFirst := in.FirstVisible - in.RenderAhead + in.RenderBehind
	if targetFirst < 0 {
		targetFirst = 0
	}
	first := targetFirst
	if stepped := in.FirstRendered - in.PageSize; stepped > first {
		first = stepped
	}
	if first > in.TotalRows-1 {
		first = in.TotalRows - 1
	}

	// Trailing edge: keeps the previously rendered last row, reduced if
	// needed so the rendered count stays within budget.
	last := trailingLast(in, first)
	targetLast := trailingLast(in, targetFirst)

	return stepResult{
		Window: Window{First: first, Last: last},
		Target: Window{First: targetFirst, Last: targetLast},
	}
}

func trailingLast(in stepInput, first int) int {
	last := in.LastRendered
	if capped := first + in.MaxToRender - 1; capped < last {
		last = capped
	}
	if last > in.TotalRows-1 {
		last = in.TotalRows - 1
	}
	if last < first {
		last = first
	}
	return last
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
