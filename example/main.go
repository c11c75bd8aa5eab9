// Example demonstrates a virtualized, sectioned contact list in a GLFW
// window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, builds an alphabet-sectioned list of
// generated contact names, and renders only the rows the controller asks
// for. Scroll with the mouse wheel; press a letter key to jump to that
// section.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/listview"
	"github.com/go-theft-auto/listview/backend/opengl"
)

const (
	windowWidth  = 480
	windowHeight = 640
	windowTitle  = "listview example"

	headerHeight = 28
	cellHeight   = 52
)

var (
	headerColor  = opengl.Color{R: 0.16, G: 0.24, B: 0.38, A: 1}
	cellColor    = opengl.Color{R: 0.20, G: 0.20, B: 0.22, A: 1}
	cellAltColor = opengl.Color{R: 0.24, G: 0.24, B: 0.26, A: 1}
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// contactData generates an alphabet-sectioned name list.
func contactData() (map[string][]string, []string) {
	data := make(map[string][]string)
	var order []string
	for s := 'A'; s <= 'Z'; s++ {
		id := string(s)
		names := make([]string, 24)
		for i := range names {
			names[i] = fmt.Sprintf("%s. Contact %02d", id, i+1)
		}
		data[id] = names
		order = append(order, id)
	}
	return data, order
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	// Viewport first, controller second: the controller teleports the
	// viewport through the Host interface, the viewport feeds scroll
	// events back after Attach.
	viewport := opengl.NewViewport(window)

	geom := listview.NewGeometry[string](
		listview.WithRowHeights(headerHeight, cellHeight),
	)
	ctrl, err := listview.NewController(geom, viewport,
		listview.WithInitialRendered(14),
		listview.WithMaxRendered(40),
		listview.WithRenderAhead(12),
		listview.WithRenderBehind(4),
		listview.WithPageSize(6),
		listview.WithEndReachedFunc(func() {
			fmt.Println("end of list reached")
		}),
	)
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	defer ctrl.Teardown()
	viewport.Attach(ctrl)

	data, order := contactData()
	ctrl.SetData(data, order)
	viewport.SetContentHeight(geom.TotalHeight())

	// Letter keys jump to the matching section.
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if key >= glfw.KeyA && key <= glfw.KeyZ {
			id := string(rune('A' + key - glfw.KeyA))
			if err := ctrl.ScrollToSection(id); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	})

	lastTime := glfw.GetTime()

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		ctrl.Advance(dt)

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		drawList(renderer, ctrl, float32(w))

		renderer.Flush()
		window.SwapBuffers()
	}

	return nil
}

// drawList renders the controller's current plan. Each row is drawn at
// its absolute content position shifted by the scroll offset; the plan's
// spacers need no drawing since the background already covers them.
func drawList(renderer *opengl.Renderer, ctrl *listview.Controller[string], width float32) {
	scrollY, viewportH := ctrl.ScrollOffset()
	geom := ctrl.Geometry()
	plan := ctrl.Plan()

	draw := func(rows []listview.RenderRow[string]) {
		for _, rr := range rows {
			y := geom.OffsetBeforeRow(rr.Index) - scrollY
			rh := geom.RowHeight(rr.Index)
			if y+rh < 0 || y > viewportH {
				continue
			}
			switch rr.Row.Kind {
			case listview.RowHeader:
				renderer.Rect(0, y, width, rh-1, headerColor)
			case listview.RowCell:
				c := cellColor
				if rr.Row.Local%2 == 1 {
					c = cellAltColor
				}
				renderer.Rect(8, y, width-16, rh-1, c)
			}
		}
	}
	draw(plan.LeadRows)
	draw(plan.TrailRows)
}
