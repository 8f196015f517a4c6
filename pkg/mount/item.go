package mount

import (
	"fmt"

	"github.com/go-drift/rendercore/pkg/errors"
)

// Item binds a descriptor and its Data to one content instance inside a host.
//
// The content is fixed for the lifetime of the item; swapping content means
// creating a new Item. The host reference is used for diagnostics and removal
// only. The bound flag is independent of everything else.
type Item struct {
	data    *Data
	content any
	host    Host
	bound   bool
}

// NewItem binds desc to content inside host. content must not be nil.
func NewItem(desc *Descriptor, host Host, content any) *Item {
	if content == nil {
		panic(&errors.InvariantError{Op: "mount.NewItem", Message: "content must not be nil"})
	}
	return &Item{
		data:    NewData(desc, content),
		content: content,
		host:    host,
	}
}

// Host returns the owning host.
func (it *Item) Host() Host { return it.host }

// Content returns the bound content instance.
func (it *Item) Content() any { return it.content }

// Data returns the current mount data.
func (it *Item) Data() *Data { return it.data }

// Descriptor returns the descriptor the data was last derived from.
func (it *Item) Descriptor() *Descriptor { return it.data.descriptor }

// SetData replaces the mount data wholesale.
func (it *Item) SetData(data *Data) {
	if data == nil {
		panic(&errors.InvariantError{Op: "mount.Item.SetData", Message: "data must not be nil"})
	}
	it.data = data
}

// IsBound reports whether bind-time setup has run for the item.
func (it *Item) IsBound() bool { return it.bound }

// SetBound records whether bind-time setup has run.
func (it *Item) SetBound(bound bool) { it.bound = bound }

// Update reuses the item for desc. Content, host and the bound flag are kept,
// as is the content snapshot held by Data.
func (it *Item) Update(desc *Descriptor) {
	it.data.Update(desc)
}

func (it *Item) String() string {
	name := "<nil>"
	if c := it.data.component; c != nil {
		name = c.Name()
	}
	return fmt.Sprintf("item#%d(%s, %T)", it.data.descriptor.id, name, it.content)
}
