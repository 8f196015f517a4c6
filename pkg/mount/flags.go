package mount

import (
	"fmt"
	"strings"
)

// LayoutFlags is the bit set produced by the layout pass for one render node.
// Bits outside the named set are carried verbatim and ignored by every
// predicate; they belong to the upstream pass, not to this layer.
type LayoutFlags uint32

const (
	// LayoutFlagDuplicateParentState makes the content mirror its host's
	// pressed/focused drawable state.
	LayoutFlagDuplicateParentState LayoutFlags = 1 << iota
	// LayoutFlagDisableTouchable excludes the content from touch delegation.
	LayoutFlagDisableTouchable
	// LayoutFlagMatchHostBounds sizes the content to its host.
	LayoutFlagMatchHostBounds
	// LayoutFlagDrawableOutputsDisabled suppresses drawable outputs for the node.
	LayoutFlagDrawableOutputsDisabled
	// LayoutFlagDuplicateChildrenStates makes the host propagate state to children.
	LayoutFlagDuplicateChildrenStates
)

var layoutFlagTable = [...]struct {
	flag LayoutFlags
	name string
}{
	{LayoutFlagDuplicateParentState, "duplicate_parent_state"},
	{LayoutFlagDisableTouchable, "disable_touchable"},
	{LayoutFlagMatchHostBounds, "match_host_bounds"},
	{LayoutFlagDrawableOutputsDisabled, "drawable_outputs_disabled"},
	{LayoutFlagDuplicateChildrenStates, "duplicate_children_states"},
}

// knownLayoutFlags is the union of every named bit.
var knownLayoutFlags = func() LayoutFlags {
	var all LayoutFlags
	for _, e := range layoutFlagTable {
		all |= e.flag
	}
	return all
}()

// Has reports whether every bit of flag is set.
func (f LayoutFlags) Has(flag LayoutFlags) bool {
	return flag != 0 && f&flag == flag
}

// Set returns f with flag set.
func (f LayoutFlags) Set(flag LayoutFlags) LayoutFlags {
	return f | flag
}

// Clear returns f with flag cleared.
func (f LayoutFlags) Clear(flag LayoutFlags) LayoutFlags {
	return f &^ flag
}

// Known returns f restricted to the named bits.
func (f LayoutFlags) Known() LayoutFlags {
	return f & knownLayoutFlags
}

// DuplicateParentState reports LayoutFlagDuplicateParentState.
func (f LayoutFlags) DuplicateParentState() bool {
	return f.Has(LayoutFlagDuplicateParentState)
}

// TouchableDisabled reports LayoutFlagDisableTouchable.
func (f LayoutFlags) TouchableDisabled() bool {
	return f.Has(LayoutFlagDisableTouchable)
}

// MatchHostBounds reports LayoutFlagMatchHostBounds.
func (f LayoutFlags) MatchHostBounds() bool {
	return f.Has(LayoutFlagMatchHostBounds)
}

// DrawableOutputsDisabled reports LayoutFlagDrawableOutputsDisabled.
func (f LayoutFlags) DrawableOutputsDisabled() bool {
	return f.Has(LayoutFlagDrawableOutputsDisabled)
}

// String lists the named bits joined by "|", followed by any unknown bits in hex.
func (f LayoutFlags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for _, e := range layoutFlagTable {
		if f.Has(e.flag) {
			parts = append(parts, e.name)
		}
	}
	if rest := f &^ knownLayoutFlags; rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// IsDuplicateParentState decodes LayoutFlagDuplicateParentState from flags.
func IsDuplicateParentState(flags LayoutFlags) bool {
	return flags.DuplicateParentState()
}

// IsTouchableDisabled decodes LayoutFlagDisableTouchable from flags.
func IsTouchableDisabled(flags LayoutFlags) bool {
	return flags.TouchableDisabled()
}

// LayoutFlagNames returns the names of the named bits in bit order.
func LayoutFlagNames() []string {
	names := make([]string, len(layoutFlagTable))
	for i, e := range layoutFlagTable {
		names[i] = e.name
	}
	return names
}

// ParseLayoutFlag returns the bit registered under name.
func ParseLayoutFlag(name string) (LayoutFlags, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range layoutFlagTable {
		if e.name == name {
			return e.flag, true
		}
	}
	return 0, false
}
