package content

import (
	"image"
	"testing"

	"github.com/go-drift/rendercore/pkg/mount"
	"github.com/go-drift/rendercore/pkg/rendering"
)

var (
	_ mount.ViewState = (*View)(nil)
	_ Typed           = (*View)(nil)
	_ Typed           = (*Drawable)(nil)
)

func TestViewSnapshotThroughMountData(t *testing.T) {
	view := NewView("button")
	view.SetClickable(true)
	view.SetSelected(true)

	data := mount.NewData(mount.NewDescriptor(nil, nil, rendering.Rect{}, 0, mount.ImportanceAuto), view)
	if !data.IsViewClickable() || !data.IsViewEnabled() || !data.IsViewSelected() {
		t.Error("snapshot missed view state")
	}
	if data.IsViewFocusable() || data.IsViewLongClickable() {
		t.Error("snapshot reported unset state")
	}
}

func TestDrawableHasNoViewState(t *testing.T) {
	var c any = NewDrawable("icon", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if _, ok := c.(mount.ViewState); ok {
		t.Fatal("Drawable must not expose view state")
	}
}

func TestViewReset(t *testing.T) {
	v := NewView("row")
	v.SetClickable(true)
	v.SetEnabled(false)
	v.SetFocusable(true)
	v.Reset()
	if v.IsClickable() || !v.IsEnabled() || v.IsFocusable() || v.Kind() != "row" {
		t.Errorf("Reset left %+v", v)
	}
}

func TestDrawableReset(t *testing.T) {
	d := NewDrawable("icon", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	d.Reset()
	if d.Image() != nil || d.Kind() != "icon" {
		t.Errorf("Reset left image=%v kind=%q", d.Image(), d.Kind())
	}
}
