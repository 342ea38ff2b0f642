package memory

import (
	"context"
	"fmt"
	"sync"

	"custom-hats/core/host"
)

// Host is an in-process host. It is safe for concurrent use.
type Host struct {
	mu        sync.RWMutex
	options   []host.Option
	created   bool
	instances []*host.Instance
	preview   *host.Instance
	actor     int
	connected bool
	models    map[string]struct{}
}

var (
	_ host.OptionStore  = (*Host)(nil)
	_ host.Instances    = (*Host)(nil)
	_ host.Instantiator = (*Host)(nil)
)

// New creates a host whose option collection does not exist yet.
func New() *Host {
	return &Host{}
}

// InitOptions creates the option collection, as the host does once its catalog is initialized.
func (h *Host) InitOptions(opts []host.Option) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.options = append([]host.Option(nil), opts...)
	h.created = true
}

func (h *Host) Options(_ context.Context) ([]host.Option, bool, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.created {
		return nil, false, nil
	}
	return append([]host.Option(nil), h.options...), true, nil
}

func (h *Host) ReplaceOptions(_ context.Context, opts []host.Option) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.options = append([]host.Option(nil), opts...)
	h.created = true
	return nil
}

// SetPreview installs the customization preview instance.
func (h *Host) SetPreview(inst *host.Instance) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.preview = inst
}

// AddInstance registers a live instance, replacing any instance with the same ID.
func (h *Host) AddInstance(inst *host.Instance) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, existing := range h.instances {
		if existing.ID == inst.ID {
			h.instances[i] = inst
			return
		}
	}
	h.instances = append(h.instances, inst)
}

// Connect marks the local participant as connected with the given actor number.
func (h *Host) Connect(actor int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.actor = actor
	h.connected = true
}

// Instance returns the live or preview instance with the given ID.
func (h *Host) Instance(id string) *host.Instance {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.preview != nil && h.preview.ID == id {
		return h.preview
	}
	for _, inst := range h.instances {
		if inst.ID == id {
			return inst
		}
	}
	return nil
}

func (h *Host) Preview() *host.Instance {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.preview
}

func (h *Host) ByActor(actor int) *host.Instance {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, inst := range h.instances {
		if inst.Actor == actor {
			return inst
		}
	}
	return nil
}

func (h *Host) Local() *host.Instance {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, inst := range h.instances {
		if inst.Local {
			return inst
		}
	}
	return nil
}

func (h *Host) LocalActor() (int, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.actor, h.connected
}

// Instantiate creates an attachment node under parent. The model handle must be non-empty.
func (h *Host) Instantiate(name, model string, parent *host.Node) (*host.Attachment, error) {
	if model == "" {
		return nil, fmt.Errorf("instantiate %s: empty model handle", name)
	}

	node := host.NewNode(name)
	if parent != nil {
		parent.AddChild(node)
	}

	h.mu.Lock()
	if h.models == nil {
		h.models = make(map[string]struct{})
	}
	h.models[model] = struct{}{}
	h.mu.Unlock()

	return &host.Attachment{
		Name:      name,
		Node:      node,
		Materials: []*host.Material{{}},
	}, nil
}

// Instantiated reports how many distinct models have been instantiated.
func (h *Host) Instantiated() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.models)
}
