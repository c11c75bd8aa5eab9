package listview_test

import (
	"testing"

	"github.com/go-theft-auto/listview"
)

// stubHost records viewport teleports.
type stubHost struct {
	offsets []float32
}

func (h *stubHost) SetScrollOffset(y float32) {
	h.offsets = append(h.offsets, y)
}

// Ten sections A..J of 50 cells each, header 20px, cell 50px.
// 510 rows, 25200px of content, 2520px per section.
func bigListData() (map[string][]string, []string) {
	data := make(map[string][]string)
	order := make([]string, 0, 10)
	for s := 0; s < 10; s++ {
		id := string(rune('A' + s))
		cells := make([]string, 50)
		for i := range cells {
			cells[i] = id + "-cell"
		}
		data[id] = cells
		order = append(order, id)
	}
	return data, order
}

func newTestController(t *testing.T, opts ...listview.ControllerOption) (*listview.Controller[string], *stubHost) {
	t.Helper()
	host := &stubHost{}
	geom := listview.NewGeometry[string](listview.WithRowHeights(20, 50))
	base := []listview.ControllerOption{
		listview.WithInitialRendered(12),
		listview.WithMaxRendered(30),
		listview.WithRenderAhead(10),
		listview.WithRenderBehind(4),
		listview.WithPageSize(10),
	}
	ctrl, err := listview.NewController(geom, host, append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	data, order := bigListData()
	ctrl.SetData(data, order)
	return ctrl, host
}

// pump advances frames until the convergence loop reaches its target.
func pump(t *testing.T, c *listview.Controller[string], maxFrames int) {
	t.Helper()
	for i := 0; i < maxFrames; i++ {
		c.Advance(0.02)
		if c.Converged() {
			return
		}
	}
	t.Fatalf("not converged after %d frames: window %+v target %+v",
		maxFrames, c.Window(), c.TargetWindow())
}

func TestControllerConfigInvariants(t *testing.T) {
	geom := listview.NewGeometry[string]()
	host := &stubHost{}

	_, err := listview.NewController(geom, host,
		listview.WithMaxRendered(10), listview.WithRenderAhead(10))
	if err == nil {
		t.Error("numToRenderAhead >= maxNumToRender must be rejected")
	}

	_, err = listview.NewController(geom, host,
		listview.WithMaxRendered(10), listview.WithRenderBehind(15))
	if err == nil {
		t.Error("numToRenderBehind >= maxNumToRender must be rejected")
	}

	_, err = listview.NewController(geom, host, listview.WithPageSize(0))
	if err == nil {
		t.Error("zero pageSize must be rejected")
	}

	// An initial window larger than the hard cap would materialize more
	// rows than maxNumToRender allows on the very first SetData.
	_, err = listview.NewController(geom, host,
		listview.WithInitialRendered(25), listview.WithMaxRendered(20))
	if err == nil {
		t.Error("initialNumToRender > maxNumToRender must be rejected")
	}
}

func TestControllerInitialWindow(t *testing.T) {
	ctrl, _ := newTestController(t)

	want := listview.Window{First: 0, Last: 11}
	if ctrl.Window() != want {
		t.Errorf("initial window = %+v, want %+v", ctrl.Window(), want)
	}
}

func TestControllerCoalescesScrollEvents(t *testing.T) {
	ctrl, _ := newTestController(t, listview.WithIncrementDelay(0.05))
	before := ctrl.Window()

	// A burst of scroll events schedules exactly one recompute, which
	// reads the latest offset when the delay expires.
	ctrl.OnScroll(3000, 600)
	ctrl.OnScroll(6000, 600)
	ctrl.OnScroll(10000, 600)

	ctrl.Advance(0.02)
	if ctrl.Window() != before {
		t.Fatal("recompute ran before the coalescing delay expired")
	}

	pump(t, ctrl, 100)
	first, last := visibleRange(ctrl, 10000, 600)
	w := ctrl.Window()
	if w.First > first || w.Last < last {
		t.Errorf("window %+v does not cover the latest visible range [%d, %d]", w, first, last)
	}
}

func visibleRange(c *listview.Controller[string], y, vh float32) (int, int) {
	return c.Geometry().VisibleRowRange(y, vh)
}

func TestControllerTracksScrollDown(t *testing.T) {
	ctrl, _ := newTestController(t)

	ctrl.OnScroll(10000, 600)
	pump(t, ctrl, 100)

	first, last := visibleRange(ctrl, 10000, 600)
	w := ctrl.Window()
	if w.First > first {
		t.Errorf("first rendered %d hides first visible %d", w.First, first)
	}
	if w.Last < last {
		t.Errorf("last rendered %d below last visible %d", w.Last, last)
	}
	if w.Count() > 30 {
		t.Errorf("window %+v exceeds maxNumToRender", w)
	}
	if ctrl.Direction() != listview.ScrollDown {
		t.Errorf("direction = %v, want down", ctrl.Direction())
	}
}

func TestControllerTracksScrollUp(t *testing.T) {
	ctrl, _ := newTestController(t)

	ctrl.OnScroll(10000, 600)
	pump(t, ctrl, 100)
	ctrl.OnScroll(5000, 600)
	pump(t, ctrl, 100)

	if ctrl.Direction() != listview.ScrollUp {
		t.Errorf("direction = %v, want up", ctrl.Direction())
	}
	first, last := visibleRange(ctrl, 5000, 600)
	w := ctrl.Window()
	if w.First > first || w.Last < last {
		t.Errorf("window %+v does not cover visible [%d, %d]", w, first, last)
	}
	if w.Count() > 30 {
		t.Errorf("window %+v exceeds maxNumToRender", w)
	}
}

func TestControllerWindowBudgetAfterEveryFrame(t *testing.T) {
	ctrl, _ := newTestController(t)

	offsets := []float32{0, 4000, 12000, 25000, 8000, 100, 24000}
	for _, y := range offsets {
		ctrl.OnScroll(y, 600)
		for i := 0; i < 40; i++ {
			ctrl.Advance(0.02)
			w := ctrl.Window()
			if w.Count() > 30 {
				t.Fatalf("after scroll to %v: window %+v exceeds budget", y, w)
			}
			if w.First < 0 || w.Last > ctrl.Geometry().RowCount()-1 {
				t.Fatalf("after scroll to %v: window %+v out of range", y, w)
			}
		}
	}
}

func TestControllerEndReachedOneShot(t *testing.T) {
	fired := 0
	ctrl, _ := newTestController(t, listview.WithEndReachedFunc(func() { fired++ }))

	total := ctrl.Geometry().TotalHeight()
	ctrl.OnScroll(total-600, 600)
	if fired != 1 {
		t.Fatalf("end reached fired %d times, want 1", fired)
	}

	// Still at the bottom: no refire.
	ctrl.OnScroll(total-550, 600)
	if fired != 1 {
		t.Fatalf("end reached refired while still at bottom, count %d", fired)
	}

	// Leave and come back: fires again.
	ctrl.OnScroll(1000, 600)
	ctrl.OnScroll(total-580, 600)
	if fired != 2 {
		t.Fatalf("end reached fired %d times after returning, want 2", fired)
	}
}

func TestControllerWindowingDisabled(t *testing.T) {
	ctrl, _ := newTestController(t, listview.WithRenderAhead(0))

	before := ctrl.Window()
	ctrl.OnScroll(12000, 600)
	for i := 0; i < 20; i++ {
		ctrl.Advance(0.02)
	}
	if ctrl.Window() != before {
		t.Errorf("window moved with windowing disabled: %+v -> %+v", before, ctrl.Window())
	}
}

func TestControllerEmptyData(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.SetData(map[string][]string{}, nil)

	w := ctrl.Window()
	if !w.Empty() || w.First != 0 {
		t.Errorf("window on empty data = %+v, want {0 -1}", w)
	}

	plan := ctrl.Plan()
	if len(plan.LeadRows) != 0 || plan.TopSpacer != 0 || plan.BottomSpacer != 0 {
		t.Errorf("plan on empty data should be empty, got %+v", plan)
	}
}

func TestControllerDataReplaceClampsWindow(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.OnScroll(20000, 600)
	pump(t, ctrl, 120)

	// Replace with a much smaller dataset; the window must land inside it.
	ctrl.SetData(map[string][]string{"A": {"a0", "a1", "a2"}}, []string{"A"})
	w := ctrl.Window()
	if w.Last > ctrl.Geometry().RowCount()-1 {
		t.Errorf("window %+v outside replaced data (%d rows)", w, ctrl.Geometry().RowCount())
	}
	if w.First < 0 || w.First > w.Last {
		t.Errorf("window %+v invalid after data replace", w)
	}
}

func TestControllerWindowChangedNotification(t *testing.T) {
	changed := 0
	host := &stubHost{}
	geom := listview.NewGeometry[string](listview.WithRowHeights(20, 50))
	ctrl, err := listview.NewController(geom, host,
		listview.WithWindowChangedFunc(func() { changed++ }))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	data, order := bigListData()
	ctrl.SetData(data, order)
	if changed == 0 {
		t.Error("SetData should notify the host of the initial window")
	}

	n := changed
	ctrl.OnScroll(10000, 600)
	for i := 0; i < 100; i++ {
		ctrl.Advance(0.02)
	}
	if changed == n {
		t.Error("convergence should notify the host as the window moves")
	}
}

func TestControllerTeardown(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.OnScroll(10000, 600)
	ctrl.Teardown()

	before := ctrl.Window()
	for i := 0; i < 20; i++ {
		ctrl.Advance(0.02)
	}
	if ctrl.Window() != before {
		t.Error("a torn-down controller must not mutate its window")
	}
	if err := ctrl.ScrollToSection("A"); err != nil {
		t.Errorf("ScrollToSection after teardown should be a no-op, got %v", err)
	}
	if _, ok := ctrl.BufferWindow(); ok {
		t.Error("no buffer window may appear after teardown")
	}
}

func BenchmarkControllerScrollConvergence(b *testing.B) {
	host := &stubHost{}
	geom := listview.NewGeometry[string](listview.WithRowHeights(20, 50))
	ctrl, err := listview.NewController(geom, host,
		listview.WithMaxRendered(30),
		listview.WithRenderAhead(10),
		listview.WithRenderBehind(4),
		listview.WithPageSize(10),
	)
	if err != nil {
		b.Fatal(err)
	}
	data := make(map[string][]string)
	order := make([]string, 0, 26)
	for s := 0; s < 26; s++ {
		id := string(rune('A' + s))
		cells := make([]string, 1000)
		data[id] = cells
		order = append(order, id)
	}
	ctrl.SetData(data, order)
	total := ctrl.Geometry().TotalHeight()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		y := float32(i%100) / 100 * (total - 600)
		ctrl.OnScroll(y, 600)
		for f := 0; f < 8; f++ {
			ctrl.Advance(0.02)
		}
	}
}
