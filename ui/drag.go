package ui

// WidgetID identifies a slider. IDs are assigned by the caller and must be
// stable from frame to frame.
type WidgetID int

// DragController records which widget, if any, owns the pointer. Sliders are
// updated against it in draw order, so when grips overlap the first one
// checked wins.
type DragController struct {
	active WidgetID
	held   bool
}

// Active returns the owning widget.
func (dc *DragController) Active() (WidgetID, bool) {
	return dc.active, dc.held
}

func (dc *DragController) Owns(id WidgetID) bool {
	return dc.held && dc.active == id
}

func (dc *DragController) acquire(id WidgetID) bool {
	if dc.held {
		return false
	}
	dc.active = id
	dc.held = true
	return true
}

func (dc *DragController) release(id WidgetID) {
	if dc.Owns(id) {
		dc.held = false
	}
}
