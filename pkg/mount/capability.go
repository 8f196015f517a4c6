package mount

// Component is the render-tree component a descriptor originates from.
type Component interface {
	// Name returns a diagnostic name for the component type.
	Name() string
}

// AccessibilityCapable is implemented by components that can declare
// accessibility support. Components that do not implement it are treated as
// not implementing accessibility.
type AccessibilityCapable interface {
	ImplementsAccessibility() bool
}

// ViewState is the intrinsic state exposed by view-like content. Data reads it
// once, at construction.
type ViewState interface {
	IsClickable() bool
	IsEnabled() bool
	IsLongClickable() bool
	IsFocusable() bool
	IsSelected() bool
}

// Host is the container that physically places content. Content allocation and
// release belong to the host and its pool, never to the Item.
type Host interface {
	// Attach adds the item's content to the host.
	Attach(item *Item)

	// Detach removes the item's content from the host.
	Detach(item *Item)
}

// implementsAccessibility is the capability query for c. A nil component, or
// one without the capability, answers false.
func implementsAccessibility(c Component) bool {
	if c == nil {
		return false
	}
	capable, ok := c.(AccessibilityCapable)
	return ok && capable.ImplementsAccessibility()
}
