package carousel

// dragAnchor is valid only while a drag session is open.
type dragAnchor struct {
	pointerStartX int
	offsetAtStart int
}

// PointerDown opens a drag session at pointer position x. The automatic
// driver and any running navigation animation are stopped first.
func (c *Controller) PointerDown(x int) {
	if c.closed || c.dragging {
		return
	}
	c.Stop()
	c.stopAnimation()
	c.dragging = true
	c.anchor = dragAnchor{pointerStartX: x, offsetAtStart: c.offset}
}

// PointerMove scrolls by the distance the pointer travelled since
// PointerDown. It reports whether the event belonged to a drag session, in
// which case the view should suppress its default handling (text selection).
func (c *Controller) PointerMove(x int) bool {
	if c.closed || !c.dragging {
		return false
	}
	delta := x - c.anchor.pointerStartX
	c.offset = clamp(c.anchor.offsetAtStart-delta, 0, c.maxOffset)
	return true
}

// PointerUp ends the drag session and restarts the automatic driver.
func (c *Controller) PointerUp() { c.endDrag() }

// PointerLeave ends the drag session when the pointer leaves the viewport
// while still pressed.
func (c *Controller) PointerLeave() { c.endDrag() }

// Dragging reports whether a drag session is open.
func (c *Controller) Dragging() bool { return c.dragging }

func (c *Controller) endDrag() {
	if c.closed || !c.dragging {
		return
	}
	c.dragging = false
	c.anchor = dragAnchor{}
	c.Start()
}
