// Package host provides ComponentHost, an indexed container of mount items.
//
// A ComponentHost owns placement of its items' content: it decides where
// content sits, runs bind-time setup, rasterises drawable content and hands
// released content back to a pool. Like the mount package it is driven from a
// single thread and does no locking.
package host

import (
	"fmt"
	"image/draw"
	"sort"

	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/rendercore/pkg/content"
	"github.com/go-drift/rendercore/pkg/errors"
	"github.com/go-drift/rendercore/pkg/logging"
	"github.com/go-drift/rendercore/pkg/mount"
	"github.com/go-drift/rendercore/pkg/rendering"
	"github.com/go-drift/rendercore/pkg/semantics"
)

// Binder runs bind-time setup for mounted items.
type Binder interface {
	Bind(item *mount.Item)
	Unbind(item *mount.Item)
}

// ContentPool receives content released by Detach.
type ContentPool interface {
	Release(content any)
}

// Option configures a ComponentHost.
type Option func(*ComponentHost)

// WithLogger sets the logger. The default is logging.Named("host").
func WithLogger(l *zap.Logger) Option {
	return func(h *ComponentHost) { h.logger = l }
}

// WithPool sets the pool that receives detached content.
func WithPool(p ContentPool) Option {
	return func(h *ComponentHost) { h.pool = p }
}

// WithBinder appends a binder run by Bind and Unbind.
func WithBinder(b Binder) Option {
	return func(h *ComponentHost) { h.binders = append(h.binders, b) }
}

// WithBounds sets the host's own bounds, used for the semantics root and for
// content that matches host bounds.
func WithBounds(r rendering.Rect) Option {
	return func(h *ComponentHost) { h.bounds = r }
}

// ComponentHost is an ordered container of mount items.
type ComponentHost struct {
	name    string
	bounds  rendering.Rect
	items   map[int]*mount.Item
	indexOf map[*mount.Item]int
	binders []Binder
	pool    ContentPool
	logger  *zap.Logger
}

var _ mount.Host = (*ComponentHost)(nil)

// New creates an empty host.
func New(name string, opts ...Option) *ComponentHost {
	h := &ComponentHost{
		name:    name,
		items:   make(map[int]*mount.Item),
		indexOf: make(map[*mount.Item]int),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logging.Named("host")
	}
	h.logger = h.logger.With(zap.String("host", name))
	return h
}

// Name returns the host name.
func (h *ComponentHost) Name() string { return h.name }

// Bounds returns the host bounds.
func (h *ComponentHost) Bounds() rendering.Rect { return h.bounds }

func (h *ComponentHost) String() string { return "host(" + h.name + ")" }

func (h *ComponentHost) report(op string, item *mount.Item, format string, args ...any) {
	desc := ""
	if item != nil {
		desc = item.String()
	}
	errors.Report(&errors.MountError{
		Op:   op,
		Kind: errors.KindMount,
		Item: desc,
		Err:  fmt.Errorf(format, args...),
	})
}

// Attach places item at the lowest free index.
func (h *ComponentHost) Attach(item *mount.Item) {
	index := 0
	for {
		if _, taken := h.items[index]; !taken {
			break
		}
		index++
	}
	h.mount("host.Attach", index, item)
}

// Mount places item at index.
func (h *ComponentHost) Mount(index int, item *mount.Item) {
	h.mount("host.Mount", index, item)
}

func (h *ComponentHost) mount(op string, index int, item *mount.Item) {
	if item.Host() != mount.Host(h) {
		h.report(op, item, "item belongs to %v, not %v", item.Host(), h)
		return
	}
	if existing, ok := h.indexOf[item]; ok {
		h.report(op, item, "item already attached at index %d", existing)
		return
	}
	if index < 0 {
		h.report(op, item, "negative index %d", index)
		return
	}
	if occupant, ok := h.items[index]; ok {
		h.report(op, item, "index %d is occupied by %v", index, occupant)
		return
	}
	h.items[index] = item
	h.indexOf[item] = index
	h.logger.Debug("attached", zap.Stringer("item", item), zap.Int("index", index))
}

// Detach removes item, unbinding it first if needed, and releases its content
// to the pool.
func (h *ComponentHost) Detach(item *mount.Item) {
	index, ok := h.indexOf[item]
	if !ok {
		h.report("host.Detach", item, "item is not attached")
		return
	}
	if item.IsBound() {
		h.Unbind(item)
		// A panicking binder leaves the flag set; a detached item is never bound.
		item.SetBound(false)
	}
	delete(h.items, index)
	delete(h.indexOf, item)
	if h.pool != nil {
		h.pool.Release(item.Content())
	}
	h.logger.Debug("detached", zap.Stringer("item", item), zap.Int("index", index))
}

// Move moves the item at from to to. An item already at to takes from's place.
func (h *ComponentHost) Move(from, to int) {
	item, ok := h.items[from]
	if !ok {
		h.report("host.Move", nil, "no item at index %d", from)
		return
	}
	if to < 0 {
		h.report("host.Move", item, "negative index %d", to)
		return
	}
	if from == to {
		return
	}
	if other, ok := h.items[to]; ok {
		h.items[from] = other
		h.indexOf[other] = from
	} else {
		delete(h.items, from)
	}
	h.items[to] = item
	h.indexOf[item] = to
}

// ItemAt returns the item at index, or nil.
func (h *ComponentHost) ItemAt(index int) *mount.Item {
	return h.items[index]
}

// IndexOf returns item's index and whether it is attached.
func (h *ComponentHost) IndexOf(item *mount.Item) (int, bool) {
	index, ok := h.indexOf[item]
	return index, ok
}

// ItemCount returns the number of attached items.
func (h *ComponentHost) ItemCount() int {
	return len(h.items)
}

// Items returns the attached items ordered by index.
func (h *ComponentHost) Items() []*mount.Item {
	indices := make([]int, 0, len(h.items))
	for i := range h.items {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	items := make([]*mount.Item, len(indices))
	for i, index := range indices {
		items[i] = h.items[index]
	}
	return items
}

// Bind runs every binder for item and marks it bound. Binding a bound item is
// a no-op. If a binder panics the panic is reported and item stays unbound.
func (h *ComponentHost) Bind(item *mount.Item) {
	if _, ok := h.indexOf[item]; !ok {
		h.report("host.Bind", item, "item is not attached")
		return
	}
	if item.IsBound() {
		return
	}
	if h.runBinders("host.Bind", func(b Binder) { b.Bind(item) }) {
		item.SetBound(true)
		h.logger.Debug("bound", zap.Stringer("item", item))
	}
}

// Unbind runs every binder's Unbind for item and clears the bound flag.
func (h *ComponentHost) Unbind(item *mount.Item) {
	if !item.IsBound() {
		return
	}
	if h.runBinders("host.Unbind", func(b Binder) { b.Unbind(item) }) {
		item.SetBound(false)
		h.logger.Debug("unbound", zap.Stringer("item", item))
	}
}

func (h *ComponentHost) runBinders(op string, fn func(Binder)) (ok bool) {
	defer errors.RecoverWithCallback(op, func(any) { ok = false })
	for _, b := range h.binders {
		fn(b)
	}
	return true
}

// ImplementsAccessibility reports whether any attached item is accessible.
func (h *ComponentHost) ImplementsAccessibility() bool {
	for _, item := range h.items {
		if item.Data().IsAccessible() {
			return true
		}
	}
	return false
}

// ContentDescriptions returns the non-empty content descriptions of the
// attached items in index order.
func (h *ComponentHost) ContentDescriptions() []string {
	var out []string
	for _, item := range h.Items() {
		if d := item.Data().NodeInfo().Description(); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// HitTest returns the topmost touchable item whose bounds contain p, or nil.
// Items at higher indices are on top.
func (h *ComponentHost) HitTest(p rendering.Offset) *mount.Item {
	touchable := h.TouchableItems()
	for i := len(touchable) - 1; i >= 0; i-- {
		if h.targetBounds(touchable[i]).Contains(p) {
			return touchable[i]
		}
	}
	return nil
}

// targetBounds is where item's content is placed in host coordinates.
func (h *ComponentHost) targetBounds(item *mount.Item) rendering.Rect {
	if item.Data().LayoutFlags().MatchHostBounds() {
		return h.bounds
	}
	return item.Descriptor().Bounds()
}

// TouchableItems returns the items whose layout flags allow touch delegation.
func (h *ComponentHost) TouchableItems() []*mount.Item {
	var out []*mount.Item
	for _, item := range h.Items() {
		if !mount.IsTouchableDisabled(item.Data().LayoutFlags()) {
			out = append(out, item)
		}
	}
	return out
}

// Draw rasterises drawable content into dst, scaling each image into its
// target bounds in index order. Items outside dst are skipped. A panic while
// drawing one item is reported and the remaining items are still drawn.
func (h *ComponentHost) Draw(dst draw.Image) {
	clip := rendering.RectFromImage(dst.Bounds())
	for _, item := range h.Items() {
		d, ok := item.Content().(*content.Drawable)
		if !ok || d.Image() == nil || item.Data().LayoutFlags().DrawableOutputsDisabled() {
			continue
		}
		target := h.targetBounds(item)
		if target.Intersect(clip).IsEmpty() {
			continue
		}
		h.drawItem(dst, target, d)
	}
}

func (h *ComponentHost) drawItem(dst draw.Image, target rendering.Rect, d *content.Drawable) {
	defer errors.Recover("host.Draw")
	src := d.Image()
	xdraw.BiLinear.Scale(dst, target.ImageRect(), src, src.Bounds(), xdraw.Over, nil)
}

// Semantics builds the semantics tree for the host: a root covering the host
// bounds with one child per accessible item. The root takes semantics.RootID
// and children are numbered after it in index order.
func (h *ComponentHost) Semantics() *semantics.SemanticsNode {
	root := semantics.NewSemanticsNodeWithID(semantics.RootID)
	root.Rect = h.bounds
	id := semantics.RootID
	for _, item := range h.Items() {
		if node := semantics.NodeFor(item); node != nil {
			id++
			node.ID = id
			root.AddChild(node)
		}
	}
	return root
}
