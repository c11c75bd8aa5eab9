/*
Package listview virtualizes very large, sectioned, fixed-row-height
lists. Given the viewport's scroll position it decides which contiguous
slice of rows must actually exist and converts that slice into pixel
offsets, so rows outside the window are represented only by empty
spacers. It is built for hosts where materializing a row is expensive
and must be spread across several frames instead of done all at once.

# Overview

Two components, layered:

  - Geometry: the flattened header+cell row sequence and all
    index<->pixel math. No knowledge of scrolling or scheduling.
  - Controller: the current (and, during a section jump, buffered) row
    window, the scroll-driven convergence loop, and the buffered-jump
    state machine.

The controller is single-threaded and cooperative. The host feeds it
scroll signals and pumps it once per frame with Advance(deltaTime); all
deferred work (the scroll-coalescing delay, convergence ticks, jump
transitions, the settle delay) resolves inside Advance against the
latest committed state.

# Quick Start

	geom := listview.NewGeometry[Contact](listview.WithRowHeights(24, 48))
	ctrl, err := listview.NewController(geom, host,
	    listview.WithMaxRendered(40),
	    listview.WithRenderAhead(10),
	    listview.WithWindowChangedFunc(requestRender),
	)
	if err != nil {
	    // fatal configuration error
	}
	ctrl.SetData(contactsBySection, sectionOrder)

	// Frame loop
	for running {
	    ctrl.OnScroll(scrollY, viewportHeight)
	    ctrl.Advance(deltaTime)

	    plan := ctrl.Plan()
	    drawSpacer(plan.TopSpacer)
	    for _, r := range plan.LeadRows {
	        drawRow(r)
	    }
	    drawSpacer(plan.MidSpacer)
	    for _, r := range plan.TrailRows {
	        drawRow(r)
	    }
	    drawSpacer(plan.BottomSpacer)
	}

Jump to a section with ctrl.ScrollToSection("M"); the controller
pre-materializes a small buffer window at the target, teleports the
viewport, then snaps the main window over without exceeding the
configured budgets.

See example/ for a runnable GLFW/OpenGL host and cmd/teademo for a
terminal host built on Bubble Tea.
*/
package listview
