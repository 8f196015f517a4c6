// Package mount binds immutable render descriptors to native content held by a
// host, and caches the flags the rest of the pipeline reads from that binding.
//
// A Descriptor is produced once per layout pass. An Item binds one descriptor,
// one content instance and one host; its Data combines the descriptor's fields
// with a snapshot of the content's intrinsic state taken once at construction.
// Reusing an Item across passes with Update replaces the descriptor fields and
// keeps the snapshot, so content mutated out of band never feeds back into the
// render tree.
//
// Everything in this package is driven from the single thread that runs
// reconciliation and has no internal locking.
package mount

import "github.com/go-drift/rendercore/pkg/rendering"

// Descriptor is the immutable, layout-computed description of one render node.
type Descriptor struct {
	id            uint64
	component     Component
	nodeInfo      *NodeInfo
	bounds        rendering.Rect
	flags         LayoutFlags
	importance    Importance
	orientation   Orientation
	transitionKey string
}

// DescriptorOption configures optional descriptor fields.
type DescriptorOption func(*Descriptor)

// WithID sets the render unit id.
func WithID(id uint64) DescriptorOption {
	return func(d *Descriptor) { d.id = id }
}

// WithOrientation sets the orientation the node was laid out for.
func WithOrientation(o Orientation) DescriptorOption {
	return func(d *Descriptor) { d.orientation = o }
}

// WithTransitionKey sets the transition key.
func WithTransitionKey(key string) DescriptorOption {
	return func(d *Descriptor) { d.transitionKey = key }
}

// NewDescriptor creates a descriptor. component and info may be nil.
func NewDescriptor(
	component Component,
	info *NodeInfo,
	bounds rendering.Rect,
	flags LayoutFlags,
	importance Importance,
	opts ...DescriptorOption,
) *Descriptor {
	d := &Descriptor{
		component:  component,
		nodeInfo:   info,
		bounds:     bounds,
		flags:      flags,
		importance: importance,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ID returns the render unit id, 0 when unset.
func (d *Descriptor) ID() uint64 { return d.id }

// Component returns the originating component.
func (d *Descriptor) Component() Component { return d.component }

// NodeInfo returns the node info, possibly nil.
func (d *Descriptor) NodeInfo() *NodeInfo { return d.nodeInfo }

// Bounds returns the bounding rectangle.
func (d *Descriptor) Bounds() rendering.Rect { return d.bounds }

// LayoutFlags returns the layout flag bits as produced upstream.
func (d *Descriptor) LayoutFlags() LayoutFlags { return d.flags }

// Importance returns the accessibility importance.
func (d *Descriptor) Importance() Importance { return d.importance }

// Orientation returns the layout orientation.
func (d *Descriptor) Orientation() Orientation { return d.orientation }

// TransitionKey returns the transition key, "" when absent.
func (d *Descriptor) TransitionKey() string { return d.transitionKey }
