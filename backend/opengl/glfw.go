package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/listview"
)

// ScrollTarget is the controller-facing half of the viewport wiring. It
// receives scroll-position updates and content-size reports.
type ScrollTarget interface {
	OnScroll(offsetY, viewportHeight float32)
	OnContentSize(height float32)
}

// Viewport adapts a GLFW window into a scrollable viewport. Wheel input
// moves the scroll position and feeds the target; the target in turn may
// teleport the viewport through SetScrollOffset.
type Viewport struct {
	window *glfw.Window
	target ScrollTarget

	scrollY    float32
	height     float32
	contentH   float32
	wheelSpeed float32
}

var _ listview.Host = (*Viewport)(nil)

// NewViewport creates a viewport over the given window and registers the
// scroll and framebuffer-size callbacks. Call Attach to wire a target;
// the viewport and its controller reference each other, so the viewport
// is built first and the controller attached after.
func NewViewport(window *glfw.Window) *Viewport {
	v := &Viewport{
		window:     window,
		wheelSpeed: 40,
	}

	_, h := window.GetFramebufferSize()
	v.height = float32(h)

	window.SetScrollCallback(v.scrollCallback)
	window.SetFramebufferSizeCallback(v.sizeCallback)

	return v
}

// Attach wires the controller-facing target. Events arriving before
// Attach are dropped.
func (v *Viewport) Attach(target ScrollTarget) {
	v.target = target
}

// SetWheelSpeed sets the pixel distance one wheel notch scrolls.
func (v *Viewport) SetWheelSpeed(px float32) {
	v.wheelSpeed = px
}

// SetScrollOffset teleports the viewport without generating a scroll
// event. This is the listview.Host entry point.
func (v *Viewport) SetScrollOffset(y float32) {
	v.scrollY = v.clamp(y)
}

// SetContentHeight records the total scrollable height and forwards it to
// the target. The current scroll position is re-clamped against it.
func (v *Viewport) SetContentHeight(h float32) {
	v.contentH = h
	v.scrollY = v.clamp(v.scrollY)
	if v.target != nil {
		v.target.OnContentSize(h)
	}
}

// ScrollBy moves the scroll position by dy pixels and reports the new
// position to the target.
func (v *Viewport) ScrollBy(dy float32) {
	v.scrollY = v.clamp(v.scrollY + dy)
	v.notify()
}

// ScrollTo moves the scroll position to y and reports it to the target.
func (v *Viewport) ScrollTo(y float32) {
	v.scrollY = v.clamp(y)
	v.notify()
}

func (v *Viewport) notify() {
	if v.target != nil {
		v.target.OnScroll(v.scrollY, v.height)
	}
}

// ScrollOffset returns the current scroll position.
func (v *Viewport) ScrollOffset() float32 {
	return v.scrollY
}

// Height returns the current viewport height in pixels.
func (v *Viewport) Height() float32 {
	return v.height
}

func (v *Viewport) clamp(y float32) float32 {
	max := v.contentH - v.height
	if max < 0 {
		max = 0
	}
	if y < 0 {
		return 0
	}
	if y > max {
		return max
	}
	return y
}

func (v *Viewport) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	// Wheel up scrolls toward the top of the content.
	v.ScrollBy(-float32(yoff) * v.wheelSpeed)
}

func (v *Viewport) sizeCallback(w *glfw.Window, width, height int) {
	v.height = float32(height)
	v.scrollY = v.clamp(v.scrollY)
	v.notify()
}
