package listview

// RenderRow is one materialized row handed to the rendering host.
type RenderRow[T any] struct {
	Index int
	Row   Row[T]
}

// RenderPlan tells the host which rows to materialize and what spacer
// heights stand in for everything else. Outside a jump only LeadRows is
// populated. During a jump both the main and the buffer window appear,
// ordered by position, with MidSpacer filling the pixel gap between them
// so content above, within, and below the jump target stays physically
// accurate.
type RenderPlan[T any] struct {
	TopSpacer    float32
	LeadRows     []RenderRow[T]
	MidSpacer    float32
	TrailRows    []RenderRow[T]
	BottomSpacer float32
}

// Plan builds the render plan for the current row and buffer windows.
func (c *Controller[T]) Plan() RenderPlan[T] {
	main := c.window
	buf, hasBuf := c.BufferWindow()

	if !hasBuf {
		return c.singleWindowPlan(main)
	}
	if main.Empty() {
		return c.singleWindowPlan(buf)
	}

	lead, trail := main, buf
	bufferLeads := buf.First < main.First
	if bufferLeads {
		lead, trail = buf, main
	}
	if trail.First <= lead.Last+1 {
		// Overlapping or adjacent windows collapse into one span.
		merged := Window{First: lead.First, Last: lead.Last}
		if trail.Last > merged.Last {
			merged.Last = trail.Last
		}
		return c.singleWindowPlan(merged)
	}

	mid, _ := c.geom.HeightBetween(lead.Last, trail.First)
	if bufferLeads {
		// The gap below a buffer that sits entirely before the main
		// window is omitted: it is replaced as soon as the jump snaps,
		// and keeping it causes a visible flash on some platforms.
		mid = 0
	}
	return RenderPlan[T]{
		TopSpacer:    c.geom.OffsetBeforeRow(lead.First),
		LeadRows:     c.rowsIn(lead),
		MidSpacer:    mid,
		TrailRows:    c.rowsIn(trail),
		BottomSpacer: c.geom.OffsetAfterRow(trail.Last),
	}
}

func (c *Controller[T]) singleWindowPlan(w Window) RenderPlan[T] {
	if w.Empty() {
		return RenderPlan[T]{}
	}
	return RenderPlan[T]{
		TopSpacer:    c.geom.OffsetBeforeRow(w.First),
		LeadRows:     c.rowsIn(w),
		BottomSpacer: c.geom.OffsetAfterRow(w.Last),
	}
}

func (c *Controller[T]) rowsIn(w Window) []RenderRow[T] {
	rows := make([]RenderRow[T], 0, w.Count())
	for i := w.First; i <= w.Last; i++ {
		row, err := c.geom.RowAt(i)
		if err != nil {
			break
		}
		rows = append(rows, RenderRow[T]{Index: i, Row: row})
	}
	return rows
}
