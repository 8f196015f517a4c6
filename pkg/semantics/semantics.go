// Package semantics projects mounted items onto an accessibility semantics tree.
package semantics

import (
	"strings"

	"github.com/go-drift/rendercore/pkg/mount"
	"github.com/go-drift/rendercore/pkg/rendering"
)

// SemanticsFlag is a set of boolean semantic properties.
type SemanticsFlag uint32

const (
	SemanticsHasEnabledState SemanticsFlag = 1 << iota
	SemanticsIsEnabled
	SemanticsHasSelectedState
	SemanticsIsSelected
	SemanticsIsFocusable
	SemanticsIsButton
	SemanticsIsHidden
)

// Has reports whether every bit of flag is set.
func (f SemanticsFlag) Has(flag SemanticsFlag) bool {
	return flag != 0 && f&flag == flag
}

// Set returns f with flag set.
func (f SemanticsFlag) Set(flag SemanticsFlag) SemanticsFlag {
	return f | flag
}

// SemanticsAction is a set of actions a node accepts.
type SemanticsAction uint32

const (
	SemanticsActionTap SemanticsAction = 1 << iota
	SemanticsActionLongPress
	SemanticsActionFocus
)

// Has reports whether every bit of action is set.
func (a SemanticsAction) Has(action SemanticsAction) bool {
	return action != 0 && a&action == action
}

// Set returns a with action set.
func (a SemanticsAction) Set(action SemanticsAction) SemanticsAction {
	return a | action
}

func (a SemanticsAction) String() string {
	var parts []string
	if a.Has(SemanticsActionTap) {
		parts = append(parts, "tap")
	}
	if a.Has(SemanticsActionLongPress) {
		parts = append(parts, "longPress")
	}
	if a.Has(SemanticsActionFocus) {
		parts = append(parts, "focus")
	}
	return strings.Join(parts, ",")
}

// SemanticsConfiguration describes the semantic properties of one node.
type SemanticsConfiguration struct {
	Label   string
	Flags   SemanticsFlag
	Actions SemanticsAction
}

// IsEmpty reports whether the configuration carries any semantic information.
func (c SemanticsConfiguration) IsEmpty() bool {
	return c.Label == "" && c.Flags == 0 && c.Actions == 0
}

// EnsureFocusable marks the configuration as focusable when it has meaningful content.
func (c *SemanticsConfiguration) EnsureFocusable() {
	if c == nil {
		return
	}
	if c.Flags.Has(SemanticsIsHidden) || c.Flags.Has(SemanticsIsFocusable) {
		return
	}
	if c.Label != "" || c.Actions != 0 {
		c.Flags = c.Flags.Set(SemanticsIsFocusable)
	}
}

// ConfigurationFor derives the semantics of mounted data. It returns false
// when the data is not accessible.
func ConfigurationFor(data *mount.Data) (SemanticsConfiguration, bool) {
	if data == nil || !data.IsAccessible() {
		return SemanticsConfiguration{}, false
	}
	info := data.NodeInfo()

	config := SemanticsConfiguration{Label: info.Description()}
	config.Flags = SemanticsHasEnabledState | SemanticsHasSelectedState
	if data.IsViewEnabled() {
		config.Flags = config.Flags.Set(SemanticsIsEnabled)
	}
	if data.IsViewSelected() {
		config.Flags = config.Flags.Set(SemanticsIsSelected)
	}
	if data.IsViewFocusable() {
		config.Flags = config.Flags.Set(SemanticsIsFocusable)
	}
	if info.HasClickHandler() || data.IsViewClickable() {
		config.Flags = config.Flags.Set(SemanticsIsButton)
		config.Actions = config.Actions.Set(SemanticsActionTap)
	}
	if info.HasLongClickHandler() || data.IsViewLongClickable() {
		config.Actions = config.Actions.Set(SemanticsActionLongPress)
	}
	if info.HasFocusChangeHandler() || data.IsViewFocusable() {
		config.Actions = config.Actions.Set(SemanticsActionFocus)
	}
	config.EnsureFocusable()
	return config, true
}

// RootID is reserved for the root of a semantics tree. Nodes built for items
// are numbered from RootID+1 by the tree builder.
const RootID uint64 = 0

// SemanticsNode represents a node in the semantics tree.
type SemanticsNode struct {
	// ID uniquely identifies this node within its tree.
	ID uint64

	// ItemID is the descriptor id of the mounted item the node was built
	// from. It is meaningless on the root.
	ItemID uint64

	// Rect is the bounding rectangle in host coordinates.
	Rect rendering.Rect

	// Config contains the semantic configuration.
	Config SemanticsConfiguration

	// Parent is the parent node, or nil for root.
	Parent *SemanticsNode

	// Children are the child nodes.
	Children []*SemanticsNode
}

// NewSemanticsNodeWithID creates a new semantics node with a specific ID.
func NewSemanticsNodeWithID(id uint64) *SemanticsNode {
	return &SemanticsNode{ID: id}
}

// AddChild appends child and sets its parent.
func (n *SemanticsNode) AddChild(child *SemanticsNode) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// BuildSemanticsTree creates a semantics tree node with children.
func BuildSemanticsTree(config SemanticsConfiguration, rect rendering.Rect, children ...*SemanticsNode) *SemanticsNode {
	node := &SemanticsNode{Config: config, Rect: rect}
	for _, child := range children {
		node.AddChild(child)
	}
	return node
}

// NodeFor builds the node for a mounted item, or nil if it is not accessible.
// The node's ID is left for the tree builder to assign.
func NodeFor(item *mount.Item) *SemanticsNode {
	config, ok := ConfigurationFor(item.Data())
	if !ok {
		return nil
	}
	node := &SemanticsNode{ItemID: item.Descriptor().ID()}
	node.Config = config
	node.Rect = item.Descriptor().Bounds()
	return node
}

// Walk visits n and its descendants depth first.
func (n *SemanticsNode) Walk(visit func(node *SemanticsNode, depth int)) {
	n.walk(visit, 0)
}

func (n *SemanticsNode) walk(visit func(*SemanticsNode, int), depth int) {
	visit(n, depth)
	for _, child := range n.Children {
		child.walk(visit, depth+1)
	}
}
