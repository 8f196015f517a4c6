package mount

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/rendercore/pkg/errors"
	"github.com/go-drift/rendercore/pkg/rendering"
)

// testComponent is a component with an optional accessibility declaration.
type testComponent struct {
	name       string
	accessible bool
}

func (c *testComponent) Name() string { return c.name }

func (c *testComponent) ImplementsAccessibility() bool { return c.accessible }

// plainComponent declares no capability at all.
type plainComponent struct{}

func (plainComponent) Name() string { return "plain" }

// testView is view-like content whose state can change out of band.
type testView struct {
	clickable, enabled, longClickable, focusable, selected bool
}

func (v *testView) IsClickable() bool     { return v.clickable }
func (v *testView) IsEnabled() bool       { return v.enabled }
func (v *testView) IsLongClickable() bool { return v.longClickable }
func (v *testView) IsFocusable() bool     { return v.focusable }
func (v *testView) IsSelected() bool      { return v.selected }

// testDrawable has no view state.
type testDrawable struct{ id int }

// testHost records attach and detach calls.
type testHost struct {
	attached []*Item
	detached []*Item
}

func (h *testHost) Attach(item *Item) { h.attached = append(h.attached, item) }
func (h *testHost) Detach(item *Item) { h.detached = append(h.detached, item) }

// fixture mirrors one render node with every node info slot filled in.
type fixture struct {
	component *testComponent
	host      *testHost
	content   *testView
	info      *NodeInfo
	flags     LayoutFlags
}

func newFixture() *fixture {
	component := &testComponent{name: "inline"}
	return &fixture{
		component: component,
		host:      &testHost{},
		content:   &testView{},
		info: &NodeInfo{
			ContentDescription: "contentDescription",
			ClickHandler:       NewEventHandler(component, 5),
			LongClickHandler:   NewEventHandler(component, 3),
			FocusChangeHandler: NewEventHandler(component, 9),
			TouchHandler:       NewEventHandler(component, 1),
			ViewTag:            "tag",
			ViewTags:           map[int]any{},
		},
		flags: 114,
	}
}

func (f *fixture) descriptor(component Component, importance Importance) *Descriptor {
	return NewDescriptor(component, f.info, rendering.Rect{}, f.flags, importance,
		WithOrientation(OrientationPortrait))
}

func (f *fixture) create(content any) *Item {
	return NewItem(f.descriptor(f.component, ImportanceYes), f.host, content)
}

func TestItemIsBound(t *testing.T) {
	f := newFixture()
	item := f.create(f.content)

	if item.IsBound() {
		t.Fatal("new item should not be bound")
	}
	item.SetBound(true)
	if !item.IsBound() {
		t.Error("IsBound() = false after SetBound(true)")
	}
	item.SetBound(false)
	if item.IsBound() {
		t.Error("IsBound() = true after SetBound(false)")
	}
}

func TestItemGetters(t *testing.T) {
	f := newFixture()
	item := f.create(f.content)
	data := item.Data()

	if data.Component() != Component(f.component) {
		t.Error("Component() is not the constructing component")
	}
	if item.Host() != Host(f.host) {
		t.Error("Host() is not the constructing host")
	}
	if item.Content() != any(f.content) {
		t.Error("Content() is not the constructing content")
	}
	if data.NodeInfo() != f.info {
		t.Fatal("NodeInfo() is not the descriptor's node info")
	}
	if got := data.NodeInfo().ContentDescription; got != "contentDescription" {
		t.Errorf("ContentDescription = %q", got)
	}
	if data.NodeInfo().ClickHandler != f.info.ClickHandler {
		t.Error("click handler changed identity")
	}
	if data.NodeInfo().FocusChangeHandler != f.info.FocusChangeHandler {
		t.Error("focus change handler changed identity")
	}
	if data.NodeInfo().TouchHandler != f.info.TouchHandler {
		t.Error("touch handler changed identity")
	}
	if data.LayoutFlags() != f.flags {
		t.Errorf("LayoutFlags() = %d, want %d", data.LayoutFlags(), f.flags)
	}
	if data.Importance() != ImportanceYes {
		t.Errorf("Importance() = %v, want yes", data.Importance())
	}
	if data.Orientation() != OrientationPortrait {
		t.Errorf("Orientation() = %v, want portrait", data.Orientation())
	}
	if item.Descriptor() != data.Descriptor() {
		t.Error("Item.Descriptor() should match Data.Descriptor()")
	}
}

func TestItemFlags(t *testing.T) {
	f := newFixture()

	f.flags = LayoutFlagDuplicateParentState | LayoutFlagDisableTouchable
	item := f.create(f.content)
	if !IsDuplicateParentState(item.Data().LayoutFlags()) {
		t.Error("duplicate parent state should be set")
	}
	if !IsTouchableDisabled(item.Data().LayoutFlags()) {
		t.Error("touchable should be disabled")
	}

	f.flags = 0
	item = f.create(f.content)
	if IsDuplicateParentState(item.Data().LayoutFlags()) {
		t.Error("duplicate parent state should be clear")
	}
	if IsTouchableDisabled(item.Data().LayoutFlags()) {
		t.Error("touchable should not be disabled")
	}
}

func TestItemViewFlags(t *testing.T) {
	f := newFixture()
	view := &testView{clickable: true, enabled: true, longClickable: true}

	data := f.create(view).Data()
	assertSnapshot(t, data, [5]bool{true, true, true, false, false})

	view.clickable = false
	view.enabled = false
	view.longClickable = false
	view.focusable = true
	view.selected = true

	data = f.create(view).Data()
	assertSnapshot(t, data, [5]bool{false, false, false, true, true})
}

func TestItemDrawableContentSnapshotsFalse(t *testing.T) {
	f := newFixture()
	data := f.create(&testDrawable{id: 1}).Data()
	assertSnapshot(t, data, [5]bool{})
}

func TestItemUpdateDoesNotChangeViewFlags(t *testing.T) {
	f := newFixture()
	desc := NewDescriptor(f.component, f.info, rendering.Rect{}, 0, ImportanceAuto)
	view := &testView{}

	item := NewItem(desc, f.host, view)
	item.SetData(NewData(desc, view))
	if item.Data().IsViewClickable() {
		t.Fatal("snapshot should start non-clickable")
	}

	view.clickable = true

	item.Update(desc)
	if item.Data().IsViewClickable() {
		t.Error("Update re-read the clickable state")
	}

	next := NewDescriptor(&testComponent{name: "next"}, &NodeInfo{}, rendering.Rect{}, LayoutFlagDisableTouchable, ImportanceNo)
	item.Update(next)
	if item.Data().IsViewClickable() {
		t.Error("Update with a new descriptor re-read the clickable state")
	}
}

func TestItemUpdateReplacesDescriptorFields(t *testing.T) {
	f := newFixture()
	item := f.create(f.content)
	item.SetBound(true)
	data := item.Data()

	nextComponent := &testComponent{name: "next", accessible: true}
	nextInfo := &NodeInfo{ContentDescription: "next"}
	next := NewDescriptor(nextComponent, nextInfo, rendering.RectFromLTWH(0, 0, 4, 4),
		LayoutFlagDisableTouchable, ImportanceAuto, WithID(7), WithTransitionKey("fade"))

	item.Update(next)

	if item.Data() != data {
		t.Error("Update should keep the same Data instance")
	}
	if data.Component() != Component(nextComponent) || data.NodeInfo() != nextInfo {
		t.Error("Update did not replace component and node info")
	}
	if data.LayoutFlags() != LayoutFlagDisableTouchable || data.Importance() != ImportanceAuto {
		t.Error("Update did not replace flags and importance")
	}
	if data.TransitionKey() != "fade" || item.Descriptor() != next {
		t.Error("Update did not replace transition key and descriptor")
	}
	if !data.IsAccessible() {
		t.Error("capability should be re-resolved on update")
	}
	if item.Content() != any(f.content) || item.Host() != Host(f.host) || !item.IsBound() {
		t.Error("Update must not touch content, host or bound")
	}
}

func TestItemAccessibility(t *testing.T) {
	f := newFixture()
	accessible := &testComponent{name: "drawable", accessible: true}
	withDelegate := &NodeInfo{
		DispatchPopulateAccessibilityEventHandler: NewEventHandler(accessible, 7),
	}

	tests := []struct {
		name       string
		component  Component
		info       *NodeInfo
		importance Importance
		want       bool
	}{
		{"nil component auto", nil, f.info, ImportanceAuto, false},
		{"nil component yes", nil, f.info, ImportanceYes, false},
		{"nil component with delegate", nil, withDelegate, ImportanceYes, false},
		{"non accessible component", f.component, f.info, ImportanceAuto, false},
		{"component without capability", plainComponent{}, f.info, ImportanceAuto, false},
		{"accessible component auto", accessible, f.info, ImportanceAuto, true},
		{"accessible component no", accessible, f.info, ImportanceNo, false},
		{"non accessible component yes", f.component, f.info, ImportanceYes, true},
		{"delegate overrides capability", f.component, withDelegate, ImportanceAuto, true},
		{"delegate overrides no", accessible, withDelegate, ImportanceNo, true},
		{"nil node info", accessible, nil, ImportanceAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := NewDescriptor(tt.component, tt.info, rendering.Rect{}, f.flags, tt.importance)
			item := NewItem(desc, f.host, f.content)
			if got := item.Data().IsAccessible(); got != tt.want {
				t.Errorf("IsAccessible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewItemNilContentPanics(t *testing.T) {
	f := newFixture()
	defer func() {
		r := recover()
		var inv *errors.InvariantError
		err, ok := r.(error)
		if !ok || !stderrors.As(err, &inv) {
			t.Fatalf("recovered %v, want *errors.InvariantError", r)
		}
		if inv.Op != "mount.NewItem" {
			t.Errorf("Op = %q", inv.Op)
		}
	}()
	f.create(nil)
}

func TestSetDataNilPanics(t *testing.T) {
	f := newFixture()
	item := f.create(f.content)
	defer func() {
		if _, ok := recover().(*errors.InvariantError); !ok {
			t.Fatal("expected an invariant panic")
		}
	}()
	item.SetData(nil)
}

func TestItemString(t *testing.T) {
	f := newFixture()
	desc := NewDescriptor(f.component, nil, rendering.Rect{}, 0, ImportanceAuto, WithID(3))
	item := NewItem(desc, f.host, f.content)
	if got, want := item.String(), "item#3(inline, *mount.testView)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func assertSnapshot(t *testing.T, d *Data, want [5]bool) {
	t.Helper()
	got := [5]bool{
		d.IsViewClickable(),
		d.IsViewEnabled(),
		d.IsViewLongClickable(),
		d.IsViewFocusable(),
		d.IsViewSelected(),
	}
	if got != want {
		t.Errorf("snapshot (clickable, enabled, longClickable, focusable, selected) = %v, want %v", got, want)
	}
}
