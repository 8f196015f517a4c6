// Package scene loads render-node fixtures and mounts them into a host.
package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/rendercore/pkg/content"
	"github.com/go-drift/rendercore/pkg/host"
	"github.com/go-drift/rendercore/pkg/mount"
	"github.com/go-drift/rendercore/pkg/pool"
	"github.com/go-drift/rendercore/pkg/rendering"
)

// ErrInvalidScene is wrapped by every scene validation failure.
var ErrInvalidScene = errors.New("invalid scene")

// Scene describes components and render nodes.
type Scene struct {
	Host       HostSpec        `yaml:"host" toml:"host"`
	Components []ComponentSpec `yaml:"components" toml:"components"`
	Nodes      []NodeSpec      `yaml:"nodes" toml:"nodes"`
}

// HostSpec describes the host the nodes are mounted into.
type HostSpec struct {
	Name   string    `yaml:"name" toml:"name"`
	Bounds []float64 `yaml:"bounds" toml:"bounds"`
}

// ComponentSpec declares a component.
type ComponentSpec struct {
	Name       string `yaml:"name" toml:"name"`
	Accessible bool   `yaml:"accessible" toml:"accessible"`
}

// ContentSpec describes the content a node is bound to.
type ContentSpec struct {
	// Kind is "view" or "drawable".
	Kind string `yaml:"kind" toml:"kind"`
	// Type is the pool kind; it defaults to Kind.
	Type          string `yaml:"type" toml:"type"`
	Clickable     bool   `yaml:"clickable" toml:"clickable"`
	Enabled       *bool  `yaml:"enabled" toml:"enabled"`
	LongClickable bool   `yaml:"long_clickable" toml:"long_clickable"`
	Focusable     bool   `yaml:"focusable" toml:"focusable"`
	Selected      bool   `yaml:"selected" toml:"selected"`
	// Color fills a drawable, as #rrggbb or #rrggbbaa.
	Color string `yaml:"color" toml:"color"`
}

// NodeSpec describes one render node.
type NodeSpec struct {
	ID            uint64           `yaml:"id" toml:"id"`
	Component     string           `yaml:"component" toml:"component"`
	Content       ContentSpec      `yaml:"content" toml:"content"`
	Description   string           `yaml:"description" toml:"description"`
	Handlers      []string         `yaml:"handlers" toml:"handlers"`
	Flags         []string         `yaml:"flags" toml:"flags"`
	RawFlags      uint32           `yaml:"raw_flags" toml:"raw_flags"`
	Importance    mount.Importance `yaml:"importance" toml:"importance"`
	Bounds        []float64        `yaml:"bounds" toml:"bounds"`
	TransitionKey string           `yaml:"transition_key" toml:"transition_key"`
}

// Load reads a scene file; the format follows the extension.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	var s Scene
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	case ".toml":
		err = toml.Unmarshal(data, &s)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidScene, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidScene, path, err)
	}
	return &s, nil
}

// component is a scene-declared component.
type component struct {
	name       string
	accessible bool
}

func (c *component) Name() string                  { return c.name }
func (c *component) ImplementsAccessibility() bool { return c.accessible }

// Descriptors builds one descriptor per node, keyed by node id.
func (s *Scene) Descriptors() (map[uint64]*mount.Descriptor, error) {
	components := make(map[string]*component, len(s.Components))
	for _, c := range s.Components {
		components[c.Name] = &component{name: c.Name, accessible: c.Accessible}
	}

	out := make(map[uint64]*mount.Descriptor, len(s.Nodes))
	for _, n := range s.Nodes {
		if _, dup := out[n.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node id %d", ErrInvalidScene, n.ID)
		}
		desc, err := n.descriptor(components)
		if err != nil {
			return nil, err
		}
		out[n.ID] = desc
	}
	return out, nil
}

func (n NodeSpec) descriptor(components map[string]*component) (*mount.Descriptor, error) {
	var c mount.Component
	if n.Component != "" {
		found, ok := components[n.Component]
		if !ok {
			return nil, fmt.Errorf("%w: node %d: unknown component %q", ErrInvalidScene, n.ID, n.Component)
		}
		c = found
	}

	flags := mount.LayoutFlags(n.RawFlags)
	for _, name := range n.Flags {
		flag, ok := mount.ParseLayoutFlag(name)
		if !ok {
			return nil, fmt.Errorf("%w: node %d: unknown flag %q (known: %s)",
				ErrInvalidScene, n.ID, name, strings.Join(mount.LayoutFlagNames(), ", "))
		}
		flags = flags.Set(flag)
	}

	bounds, err := parseRect(n.Bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: node %d: %v", ErrInvalidScene, n.ID, err)
	}

	info := &mount.NodeInfo{ContentDescription: n.Description}
	for i, h := range n.Handlers {
		handler := mount.NewEventHandler(c, i)
		switch strings.ToLower(h) {
		case "click":
			info.ClickHandler = handler
		case "long_click":
			info.LongClickHandler = handler
		case "focus_change":
			info.FocusChangeHandler = handler
		case "touch":
			info.TouchHandler = handler
		case "accessibility":
			info.DispatchPopulateAccessibilityEventHandler = handler
		default:
			return nil, fmt.Errorf("%w: node %d: unknown handler %q", ErrInvalidScene, n.ID, h)
		}
	}

	return mount.NewDescriptor(c, info, bounds, flags, n.Importance,
		mount.WithID(n.ID), mount.WithTransitionKey(n.TransitionKey)), nil
}

func parseRect(v []float64) (rendering.Rect, error) {
	switch len(v) {
	case 0:
		return rendering.Rect{}, nil
	case 4:
		return rendering.RectFromLTWH(v[0], v[1], v[2], v[3]), nil
	default:
		return rendering.Rect{}, fmt.Errorf("bounds need [left, top, width, height], got %d values", len(v))
	}
}

// Mounted is a scene mounted into a host.
type Mounted struct {
	Host  *host.ComponentHost
	Pool  *pool.Pool
	Items map[uint64]*mount.Item
}

// Kinds returns the pool kind of every node, keyed by pool kind, with the
// content kind ("view" or "drawable") it creates. A pool kind used for both
// content kinds is rejected.
func (s *Scene) Kinds() (map[string]string, error) {
	kinds := make(map[string]string)
	for _, n := range s.Nodes {
		kind, poolKind, err := n.kinds()
		if err != nil {
			return nil, err
		}
		if prev, ok := kinds[poolKind]; ok && prev != kind {
			return nil, fmt.Errorf("%w: node %d: pool kind %q is both %s and %s",
				ErrInvalidScene, n.ID, poolKind, prev, kind)
		}
		kinds[poolKind] = kind
	}
	return kinds, nil
}

// Register registers a factory in p for every pool kind the scene uses.
func (s *Scene) Register(p *pool.Pool) error {
	kinds, err := s.Kinds()
	if err != nil {
		return err
	}
	for poolKind, kind := range kinds {
		p.Register(factory(kind, poolKind))
	}
	return nil
}

func factory(kind, poolKind string) pool.Factory {
	if kind == "drawable" {
		return pool.FactoryFunc{K: poolKind, Fn: func() (any, error) { return content.NewDrawable(poolKind, nil), nil }}
	}
	return pool.FactoryFunc{K: poolKind, Fn: func() (any, error) { return content.NewView(poolKind), nil }}
}

// Mount creates a host, acquires content for every node from p and attaches
// one item per node in scene order.
func (s *Scene) Mount(p *pool.Pool, opts ...host.Option) (*Mounted, error) {
	descs, err := s.Descriptors()
	if err != nil {
		return nil, err
	}
	if err := s.Register(p); err != nil {
		return nil, err
	}
	hostBounds, err := parseRect(s.Host.Bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: host: %v", ErrInvalidScene, err)
	}
	name := s.Host.Name
	if name == "" {
		name = "root"
	}

	opts = append([]host.Option{host.WithPool(p), host.WithBounds(hostBounds)}, opts...)
	h := host.New(name, opts...)
	m := &Mounted{Host: h, Pool: p, Items: make(map[uint64]*mount.Item, len(s.Nodes))}

	for _, n := range s.Nodes {
		c, err := acquire(p, n)
		if err != nil {
			return nil, err
		}
		item := mount.NewItem(descs[n.ID], h, c)
		h.Attach(item)
		m.Items[n.ID] = item
	}
	return m, nil
}

// Apply runs an update pass: every node in next updates the item with the
// same id in place.
func (m *Mounted) Apply(next *Scene) error {
	descs, err := next.Descriptors()
	if err != nil {
		return err
	}
	for _, n := range next.Nodes {
		item, ok := m.Items[n.ID]
		if !ok {
			return fmt.Errorf("%w: update for unmounted node %d", ErrInvalidScene, n.ID)
		}
		item.Update(descs[n.ID])
	}
	return nil
}

func (n NodeSpec) kinds() (kind, poolKind string, err error) {
	kind = strings.ToLower(n.Content.Kind)
	switch kind {
	case "":
		kind = "view"
	case "view", "drawable":
	default:
		return "", "", fmt.Errorf("%w: node %d: unknown content kind %q", ErrInvalidScene, n.ID, n.Content.Kind)
	}
	poolKind = n.Content.Type
	if poolKind == "" {
		poolKind = kind
	}
	return kind, poolKind, nil
}

func acquire(p *pool.Pool, n NodeSpec) (any, error) {
	_, poolKind, err := n.kinds()
	if err != nil {
		return nil, err
	}
	c, err := p.Acquire(poolKind)
	if err != nil {
		return nil, err
	}

	spec := n.Content
	switch c := c.(type) {
	case *content.View:
		c.SetClickable(spec.Clickable)
		c.SetEnabled(spec.Enabled == nil || *spec.Enabled)
		c.SetLongClickable(spec.LongClickable)
		c.SetFocusable(spec.Focusable)
		c.SetSelected(spec.Selected)
	case *content.Drawable:
		if spec.Color != "" {
			col, err := parseColor(spec.Color)
			if err != nil {
				return nil, fmt.Errorf("%w: node %d: %v", ErrInvalidScene, n.ID, err)
			}
			rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
			rgba.SetRGBA(0, 0, col)
			c.SetImage(rgba)
		}
	}
	return c, nil
}

func parseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q must be #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
