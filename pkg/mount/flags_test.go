package mount

import "testing"

func TestLayoutFlagsDecode(t *testing.T) {
	tests := []struct {
		name                 string
		flags                LayoutFlags
		duplicateParentState bool
		touchableDisabled    bool
	}{
		{"zero", 0, false, false},
		{"duplicate parent state", LayoutFlagDuplicateParentState, true, false},
		{"disable touchable", LayoutFlagDisableTouchable, false, true},
		{"both", LayoutFlagDuplicateParentState | LayoutFlagDisableTouchable, true, true},
		{"unknown bits only", 1 << 20, false, false},
		{"114", 114, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateParentState(tt.flags); got != tt.duplicateParentState {
				t.Errorf("IsDuplicateParentState(%d) = %v", tt.flags, got)
			}
			if got := IsTouchableDisabled(tt.flags); got != tt.touchableDisabled {
				t.Errorf("IsTouchableDisabled(%d) = %v", tt.flags, got)
			}
		})
	}
}

func TestLayoutFlagsSetClear(t *testing.T) {
	var f LayoutFlags
	f = f.Set(LayoutFlagMatchHostBounds)
	if !f.MatchHostBounds() {
		t.Fatal("Set did not set the bit")
	}
	if f.Has(0) {
		t.Error("Has(0) should be false")
	}
	f = f.Clear(LayoutFlagMatchHostBounds)
	if f != 0 {
		t.Errorf("Clear left %d", f)
	}
}

func TestLayoutFlagsKnown(t *testing.T) {
	f := LayoutFlagDrawableOutputsDisabled | 1<<30
	if got := f.Known(); got != LayoutFlagDrawableOutputsDisabled {
		t.Errorf("Known() = %d", got)
	}
	if !f.DrawableOutputsDisabled() {
		t.Error("DrawableOutputsDisabled() = false")
	}
}

func TestLayoutFlagsString(t *testing.T) {
	tests := []struct {
		flags LayoutFlags
		want  string
	}{
		{0, "0"},
		{LayoutFlagDisableTouchable, "disable_touchable"},
		{LayoutFlagDuplicateParentState | LayoutFlagDuplicateChildrenStates, "duplicate_parent_state|duplicate_children_states"},
		{LayoutFlagDisableTouchable | 1<<8, "disable_touchable|0x100"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("LayoutFlags(%d).String() = %q, want %q", uint32(tt.flags), got, tt.want)
		}
	}
}

func TestParseLayoutFlag(t *testing.T) {
	for _, name := range LayoutFlagNames() {
		flag, ok := ParseLayoutFlag(name)
		if !ok {
			t.Fatalf("ParseLayoutFlag(%q) failed", name)
		}
		if flag.String() != name {
			t.Errorf("round trip of %q gave %q", name, flag.String())
		}
	}
	if _, ok := ParseLayoutFlag(" Disable_Touchable "); !ok {
		t.Error("parsing should ignore case and spaces")
	}
	if _, ok := ParseLayoutFlag("wobble"); ok {
		t.Error("unknown names should not parse")
	}
}

func TestImportanceText(t *testing.T) {
	tests := []struct {
		in   string
		want Importance
	}{
		{"", ImportanceAuto},
		{"auto", ImportanceAuto},
		{"YES", ImportanceYes},
		{" no ", ImportanceNo},
	}
	for _, tt := range tests {
		var got Importance
		if err := got.UnmarshalText([]byte(tt.in)); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	var imp Importance
	if err := imp.UnmarshalText([]byte("sometimes")); err == nil {
		t.Error("expected error for unknown importance")
	}
	if _, err := Importance(9).MarshalText(); err == nil {
		t.Error("expected error marshaling unknown importance")
	}
	if got := Importance(9).String(); got != "Importance(9)" {
		t.Errorf("String() = %q", got)
	}
	text, err := ImportanceNo.MarshalText()
	if err != nil || string(text) != "no" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
}

func TestNodeInfoNilPredicates(t *testing.T) {
	var info *NodeInfo
	if info.HasClickHandler() || info.HasLongClickHandler() || info.HasFocusChangeHandler() ||
		info.HasTouchHandler() || info.NeedsAccessibilityDelegate() {
		t.Error("nil NodeInfo should report no handlers")
	}
	if info.Description() != "" {
		t.Error("nil NodeInfo should have an empty description")
	}
}

func TestEventHandlerDispatch(t *testing.T) {
	owner := &testComponent{name: "owner"}
	h := NewEventHandler(owner, 2)
	if got := h.Dispatch("tap"); got != nil {
		t.Errorf("Dispatch without callback = %v", got)
	}
	h.Callback = func(event any) any { return event.(string) + "!" }
	if got := h.Dispatch("tap"); got != "tap!" {
		t.Errorf("Dispatch = %v", got)
	}
	var nilHandler *EventHandler
	if nilHandler.Dispatch("tap") != nil {
		t.Error("nil handler should dispatch nothing")
	}
}
