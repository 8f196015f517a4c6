package mount

import "github.com/go-drift/rendercore/pkg/errors"

// Data is the cached view of a descriptor plus the content's intrinsic state.
//
// The five view booleans are read from the content once, in NewData, and are
// never refreshed. Update replaces only the descriptor-derived fields.
type Data struct {
	descriptor    *Descriptor
	component     Component
	nodeInfo      *NodeInfo
	flags         LayoutFlags
	importance    Importance
	orientation   Orientation
	transitionKey string

	// resolved once per construction or update
	implementsAccessibility bool

	viewClickable     bool
	viewEnabled       bool
	viewLongClickable bool
	viewFocusable     bool
	viewSelected      bool
}

// NewData derives mount data from desc and snapshots content's intrinsic state.
// Content without ViewState (a drawable, for example) snapshots all false.
func NewData(desc *Descriptor, content any) *Data {
	if desc == nil {
		panic(&errors.InvariantError{Op: "mount.NewData", Message: "descriptor must not be nil"})
	}
	d := &Data{}
	d.apply(desc)
	if view, ok := content.(ViewState); ok {
		d.viewClickable = view.IsClickable()
		d.viewEnabled = view.IsEnabled()
		d.viewLongClickable = view.IsLongClickable()
		d.viewFocusable = view.IsFocusable()
		d.viewSelected = view.IsSelected()
	}
	return d
}

// Update replaces the descriptor-derived fields with those of desc.
// The intrinsic view snapshot is left untouched.
func (d *Data) Update(desc *Descriptor) {
	if desc == nil {
		panic(&errors.InvariantError{Op: "mount.Data.Update", Message: "descriptor must not be nil"})
	}
	d.apply(desc)
}

func (d *Data) apply(desc *Descriptor) {
	d.descriptor = desc
	d.component = desc.component
	d.nodeInfo = desc.nodeInfo
	d.flags = desc.flags
	d.importance = desc.importance
	d.orientation = desc.orientation
	d.transitionKey = desc.transitionKey
	d.implementsAccessibility = implementsAccessibility(desc.component)
}

// Descriptor returns the descriptor the data was last derived from.
func (d *Data) Descriptor() *Descriptor { return d.descriptor }

// Component returns the originating component.
func (d *Data) Component() Component { return d.component }

// NodeInfo returns the descriptor's node info by identity.
func (d *Data) NodeInfo() *NodeInfo { return d.nodeInfo }

// LayoutFlags returns the layout flags verbatim, unknown bits included.
func (d *Data) LayoutFlags() LayoutFlags { return d.flags }

// Importance returns the accessibility importance verbatim.
func (d *Data) Importance() Importance { return d.importance }

// Orientation returns the layout orientation.
func (d *Data) Orientation() Orientation { return d.orientation }

// TransitionKey returns the transition key, "" when absent.
func (d *Data) TransitionKey() string { return d.transitionKey }

// IsViewClickable returns the clickable state captured at construction.
// Update never refreshes the captured view state.
func (d *Data) IsViewClickable() bool { return d.viewClickable }

// IsViewEnabled returns the enabled state captured at construction.
func (d *Data) IsViewEnabled() bool { return d.viewEnabled }

// IsViewLongClickable returns the long-clickable state captured at construction.
func (d *Data) IsViewLongClickable() bool { return d.viewLongClickable }

// IsViewFocusable returns the focusable state captured at construction.
func (d *Data) IsViewFocusable() bool { return d.viewFocusable }

// IsViewSelected returns the selected state captured at construction.
func (d *Data) IsViewSelected() bool { return d.viewSelected }

// IsAccessible reports whether the node takes part in accessibility.
//
// Without a component the node is never accessible. Otherwise an accessibility
// event dispatch handler makes it accessible, then ImportanceNo excludes it,
// ImportanceYes includes it, and ImportanceAuto defers to the component.
func (d *Data) IsAccessible() bool {
	if d.component == nil {
		return false
	}
	if d.nodeInfo.NeedsAccessibilityDelegate() {
		return true
	}
	switch d.importance {
	case ImportanceNo:
		return false
	case ImportanceYes:
		return true
	default:
		return d.implementsAccessibility
	}
}
