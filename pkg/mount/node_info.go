package mount

// EventHandler identifies one event callback of a component. Handlers are
// compared by pointer identity.
type EventHandler struct {
	// Owner is the component that declared the handler.
	Owner Component
	// ID distinguishes handlers declared by the same owner.
	ID int
	// Params are extra values passed along with each dispatch.
	Params []any
	// Callback receives dispatched events. Nil handlers dispatch nothing.
	Callback func(event any) any
}

// NewEventHandler creates a handler for owner with the given id.
func NewEventHandler(owner Component, id int) *EventHandler {
	return &EventHandler{Owner: owner, ID: id}
}

// Dispatch delivers event to the callback and returns its result.
func (h *EventHandler) Dispatch(event any) any {
	if h == nil || h.Callback == nil {
		return nil
	}
	return h.Callback(event)
}

// NodeInfo carries the view-level attributes of a render node. Descriptors
// share it by pointer; Data never copies it.
type NodeInfo struct {
	ContentDescription string

	ClickHandler       *EventHandler
	LongClickHandler   *EventHandler
	FocusChangeHandler *EventHandler
	TouchHandler       *EventHandler

	// DispatchPopulateAccessibilityEventHandler, when set, makes the node
	// accessible regardless of importance.
	DispatchPopulateAccessibilityEventHandler *EventHandler

	ViewTag  any
	ViewTags map[int]any
}

// HasClickHandler reports whether a click handler is set.
func (n *NodeInfo) HasClickHandler() bool {
	return n != nil && n.ClickHandler != nil
}

// HasLongClickHandler reports whether a long-click handler is set.
func (n *NodeInfo) HasLongClickHandler() bool {
	return n != nil && n.LongClickHandler != nil
}

// HasFocusChangeHandler reports whether a focus-change handler is set.
func (n *NodeInfo) HasFocusChangeHandler() bool {
	return n != nil && n.FocusChangeHandler != nil
}

// HasTouchHandler reports whether a touch handler is set.
func (n *NodeInfo) HasTouchHandler() bool {
	return n != nil && n.TouchHandler != nil
}

// NeedsAccessibilityDelegate reports whether an accessibility event dispatch
// handler is set.
func (n *NodeInfo) NeedsAccessibilityDelegate() bool {
	return n != nil && n.DispatchPopulateAccessibilityEventHandler != nil
}

// Description returns the content description, or "" for a nil NodeInfo.
func (n *NodeInfo) Description() string {
	if n == nil {
		return ""
	}
	return n.ContentDescription
}
