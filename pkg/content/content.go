// Package content provides the native content kinds a host can mount.
package content

import "image"

// Typed is implemented by content that can be pooled by kind.
type Typed interface {
	Kind() string
}

// View is mutable view-like content. Its state can change at any time; mount
// data reads it once.
type View struct {
	kind          string
	clickable     bool
	enabled       bool
	longClickable bool
	focusable     bool
	selected      bool
}

// NewView creates an enabled view of the given kind.
func NewView(kind string) *View {
	return &View{kind: kind, enabled: true}
}

// Kind returns the pool kind.
func (v *View) Kind() string { return v.kind }

// IsClickable reports whether the view reacts to clicks.
func (v *View) IsClickable() bool { return v.clickable }

// IsEnabled reports whether the view is enabled.
func (v *View) IsEnabled() bool { return v.enabled }

// IsLongClickable reports whether the view reacts to long clicks.
func (v *View) IsLongClickable() bool { return v.longClickable }

// IsFocusable reports whether the view can take focus.
func (v *View) IsFocusable() bool { return v.focusable }

// IsSelected reports whether the view is selected.
func (v *View) IsSelected() bool { return v.selected }

// SetClickable sets the clickable state.
func (v *View) SetClickable(b bool) { v.clickable = b }

// SetEnabled sets the enabled state.
func (v *View) SetEnabled(b bool) { v.enabled = b }

// SetLongClickable sets the long-clickable state.
func (v *View) SetLongClickable(b bool) { v.longClickable = b }

// SetFocusable sets the focusable state.
func (v *View) SetFocusable(b bool) { v.focusable = b }

// SetSelected sets the selected state.
func (v *View) SetSelected(b bool) { v.selected = b }

// Reset restores the state NewView produces, before the view is pooled.
func (v *View) Reset() {
	*v = View{kind: v.kind, enabled: true}
}

// Drawable is image-backed content. It exposes no view state.
type Drawable struct {
	kind string
	img  image.Image
}

// NewDrawable wraps img.
func NewDrawable(kind string, img image.Image) *Drawable {
	return &Drawable{kind: kind, img: img}
}

// Kind returns the pool kind.
func (d *Drawable) Kind() string { return d.kind }

// Image returns the backing image, possibly nil.
func (d *Drawable) Image() image.Image { return d.img }

// SetImage replaces the backing image.
func (d *Drawable) SetImage(img image.Image) { d.img = img }

// Reset drops the backing image before the drawable is pooled.
func (d *Drawable) Reset() { d.img = nil }
