package listview

import "testing"

func defaultStepInput() stepInput {
	return stepInput{
		Direction:    ScrollDown,
		TotalRows:    100,
		MaxToRender:  20,
		PageSize:     5,
		RenderAhead:  4,
		RenderBehind: 2,
	}
}

func TestStepDownConvergesInOneTick(t *testing.T) {
	in := defaultStepInput()
	in.FirstVisible, in.LastVisible = 8, 10
	in.FirstRendered, in.LastRendered = 0, 10

	res := stepWindow(in)

	// target last = min(99, 10+4-2, 8+11+4-2) = 12, stepped = min(12, 15) = 12
	// first = max(0, 8-2, 12-20+1) = 6
	want := Window{First: 6, Last: 12}
	if res.Window != want {
		t.Errorf("window = %+v, want %+v", res.Window, want)
	}
	if res.Target != want {
		t.Errorf("target = %+v, want %+v", res.Target, want)
	}
	if !res.converged() {
		t.Error("step should converge in one tick")
	}
}

func TestStepDownPageSizeBoundsLeadingEdge(t *testing.T) {
	in := defaultStepInput()
	in.RenderAhead = 15
	in.FirstVisible, in.LastVisible = 20, 25
	in.FirstRendered, in.LastRendered = 0, 10

	res := stepWindow(in)

	// The ideal target is far ahead but the leading edge may only
	// advance pageSize rows this tick.
	if res.Window.Last != in.LastRendered+in.PageSize {
		t.Errorf("last = %d, want %d (pageSize-bounded)", res.Window.Last, in.LastRendered+in.PageSize)
	}
	if res.converged() {
		t.Error("a pageSize-bounded step must not report convergence")
	}
	if res.Target.Last <= res.Window.Last {
		t.Errorf("target last %d should be past stepped last %d", res.Target.Last, res.Window.Last)
	}
}

// The trailing edge during downward scrolling is not pageSize-bounded:
// the first row snaps immediately, however far that is, so the visible
// rows are never hidden while the leading edge catches up.
func TestStepDownFirstRowNotStepBounded(t *testing.T) {
	in := defaultStepInput()
	in.FirstVisible, in.LastVisible = 50, 55
	in.FirstRendered, in.LastRendered = 0, 10

	res := stepWindow(in)

	if res.Window.Last != 15 {
		t.Errorf("last = %d, want 15 (pageSize-bounded)", res.Window.Last)
	}
	// first would be 48 but may never pass the stepped last row.
	if res.Window.First != res.Window.Last {
		t.Errorf("first = %d, want clamped to last %d", res.Window.First, res.Window.Last)
	}
	if res.Window.First == 0 {
		t.Error("first row should have moved immediately, not stayed")
	}
}

func TestStepUpMirrors(t *testing.T) {
	in := defaultStepInput()
	in.Direction = ScrollUp
	in.FirstVisible, in.LastVisible = 40, 45
	in.FirstRendered, in.LastRendered = 42, 60

	res := stepWindow(in)

	// target first = max(0, 40-4+2) = 38, stepped = max(38, 42-5) = 38
	if res.Window.First != 38 {
		t.Errorf("first = %d, want 38", res.Window.First)
	}
	// last keeps the previously rendered last row within budget:
	// min(60, 38+20-1) = 57
	if res.Window.Last != 57 {
		t.Errorf("last = %d, want 57", res.Window.Last)
	}
}

func TestStepUpPageSizeBoundsLeadingEdge(t *testing.T) {
	in := defaultStepInput()
	in.Direction = ScrollUp
	in.RenderAhead = 15
	in.FirstVisible, in.LastVisible = 30, 35
	in.FirstRendered, in.LastRendered = 50, 60

	res := stepWindow(in)

	if res.Window.First != in.FirstRendered-in.PageSize {
		t.Errorf("first = %d, want %d (pageSize-bounded)", res.Window.First, in.FirstRendered-in.PageSize)
	}
	if res.converged() {
		t.Error("a pageSize-bounded step must not report convergence")
	}
}

func TestStepBudgetInvariant(t *testing.T) {
	directions := []ScrollDirection{ScrollDown, ScrollUp}
	for _, dir := range directions {
		in := defaultStepInput()
		in.Direction = dir
		for firstVis := 0; firstVis < in.TotalRows; firstVis += 7 {
			in.FirstVisible = firstVis
			in.LastVisible = min3(in.TotalRows-1, firstVis+5, in.TotalRows-1)
			for firstRen := 0; firstRen < in.TotalRows; firstRen += 13 {
				in.FirstRendered = firstRen
				in.LastRendered = min3(in.TotalRows-1, firstRen+10, in.TotalRows-1)

				res := stepWindow(in)
				w := res.Window
				if w.First < 0 || w.Last > in.TotalRows-1 {
					t.Fatalf("%v firstVis=%d firstRen=%d: window %+v out of range", dir, firstVis, firstRen, w)
				}
				if w.Count() > in.MaxToRender {
					t.Fatalf("%v firstVis=%d firstRen=%d: window %+v exceeds budget %d", dir, firstVis, firstRen, w, in.MaxToRender)
				}
			}
		}
	}
}

func TestStepConvergenceTerminates(t *testing.T) {
	in := defaultStepInput()
	in.FirstVisible, in.LastVisible = 80, 85
	in.FirstRendered, in.LastRendered = 0, 9

	// The jump distance is ~80 rows; at pageSize 5 per tick convergence
	// must land well within distance/pageSize plus slack.
	maxTicks := (in.TotalRows/in.PageSize + 4)
	ticks := 0
	for {
		res := stepWindow(in)
		in.FirstRendered = res.Window.First
		in.LastRendered = res.Window.Last
		ticks++
		if res.converged() {
			break
		}
		if ticks > maxTicks {
			t.Fatalf("no convergence after %d ticks, window %+v target %+v", ticks, res.Window, res.Target)
		}
	}

	// Visibility guarantee once the target is reached.
	if in.FirstRendered > in.FirstVisible {
		t.Errorf("first rendered %d should cover first visible %d", in.FirstRendered, in.FirstVisible)
	}
	if in.LastRendered < in.LastVisible {
		t.Errorf("last rendered %d should cover last visible %d", in.LastRendered, in.LastVisible)
	}
}

func TestStepEmptyList(t *testing.T) {
	in := defaultStepInput()
	in.TotalRows = 0
	in.FirstVisible, in.LastVisible = 0, -1

	res := stepWindow(in)
	if !res.Window.Empty() || res.Window.First != 0 {
		t.Errorf("empty list window = %+v, want {0 -1}", res.Window)
	}
	if !res.converged() {
		t.Error("empty list should be converged")
	}
}

func TestStepAtEndOfList(t *testing.T) {
	in := defaultStepInput()
	in.FirstVisible, in.LastVisible = 95, 99
	in.FirstRendered, in.LastRendered = 90, 99

	res := stepWindow(in)
	if res.Window.Last != 99 {
		t.Errorf("last = %d, want clamped to 99", res.Window.Last)
	}
	if !res.converged() {
		t.Error("window already covering the end should be converged")
	}
}
