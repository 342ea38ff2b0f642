package hats

import (
	"context"
	"errors"
	"fmt"

	"custom-hats/core/catalog"
	"custom-hats/core/host"
	"custom-hats/core/merge"
	"custom-hats/core/retry"
	"custom-hats/feature/compat"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	// ErrInstanceNotFound is returned when an announcement names an unknown instance.
	ErrInstanceNotFound = errors.New("instance not found")
	// ErrInvalidInstance is returned for instance registrations without an id.
	ErrInvalidInstance = errors.New("invalid instance")
	// ErrBridgeDisabled is returned by bridge views when no bridge registry is configured.
	ErrBridgeDisabled = errors.New("bridge registry is not configured")
)

// InstanceRegistry records instances announced by the host.
type InstanceRegistry interface {
	SetPreview(inst *host.Instance)
	AddInstance(inst *host.Instance)
	Instance(id string) *host.Instance
}

// StatsProvider reports the progress of the retry loop.
type StatsProvider interface {
	Stats() retry.Stats
}

// BridgeStatus describes the compatibility bridge.
type BridgeStatus struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
	Loaded bool   `json:"loaded"`
}

// Status is the state reported by GET /hats.
type Status struct {
	Items      []string     `json:"items"`
	Inserted   bool         `json:"inserted"`
	Anchor     int          `json:"anchor"`
	Bridge     BridgeStatus `json:"bridge"`
	Extensions []string     `json:"extensions"`
	Scheduler  retry.Stats  `json:"scheduler"`
}

// OptionsView is the host option collection with its tail past the anchor.
type OptionsView struct {
	Exists  bool          `json:"exists"`
	Options []host.Option `json:"options"`
	Tail    []string      `json:"tail"`
}

// BridgeEntryView is a bridge registry entry with printable rotations.
type BridgeEntryView struct {
	Name              string `json:"name"`
	Icon              string `json:"icon"`
	Model             string `json:"model"`
	Rotation          string `json:"rotation"`
	SecondaryRotation string `json:"secondary_rotation"`
}

// BridgeView is the bridge category as the bridge extension sees it.
type BridgeView struct {
	BridgeStatus
	Category string            `json:"category"`
	Exists   bool              `json:"exists"`
	Entries  []BridgeEntryView `json:"entries"`
}

// AttachmentRequest describes a pre-existing attachment of an announced instance.
type AttachmentRequest struct {
	Name   string             `json:"name"`
	Floats map[string]float64 `json:"floats,omitempty"`
}

// InstanceRequest announces a character instance.
type InstanceRequest struct {
	ID          string              `json:"id"`
	Actor       int                 `json:"actor"`
	Local       bool                `json:"local"`
	Preview     bool                `json:"preview"`
	Layer       int                 `json:"layer"`
	Attachments []AttachmentRequest `json:"attachments"`
}

// InstanceView lists an instance's attachments.
type InstanceView struct {
	ID          string   `json:"id"`
	Actor       int      `json:"actor"`
	Attachments []string `json:"attachments"`
	Invoked     int      `json:"invoked"`
}

// Service exposes the plugin to HTTP and CLI callers.
type Service struct {
	plugin    *Plugin
	registry  InstanceRegistry
	scheduler StatsProvider
	logger    *zap.Logger
}

// NewService creates a new hats service. scheduler may be nil when no loop runs.
func NewService(plugin *Plugin, registry InstanceRegistry, scheduler StatsProvider, logger *zap.Logger) *Service {
	return &Service{plugin: plugin, registry: registry, scheduler: scheduler, logger: logger}
}

// Status reports the catalog, merge and bridge state.
func (s *Service) Status() Status {
	p := s.plugin
	st := Status{
		Items:      p.deps.Catalog.Current().NameList(),
		Inserted:   p.Inserted(),
		Anchor:     p.cfg.Anchor,
		Extensions: p.deps.Dispatcher.Extensions(),
		Bridge:     s.bridgeStatus(),
	}
	if s.scheduler != nil {
		st.Scheduler = s.scheduler.Stats()
	}
	return st
}

// Options returns the host option collection.
func (s *Service) Options(ctx context.Context) (*OptionsView, error) {
	opts, ok, err := s.plugin.deps.Options.Options(ctx)
	if err != nil {
		return nil, err
	}
	return &OptionsView{
		Exists:  ok,
		Options: opts,
		Tail:    merge.TailNames(opts, s.plugin.cfg.Anchor, host.OptionName),
	}, nil
}

// SeedOptions replaces the host option collection, as the host does when it initializes.
func (s *Service) SeedOptions(ctx context.Context, opts []host.Option) error {
	s.plugin.timeline.Lock()
	defer s.plugin.timeline.Unlock()
	return s.plugin.deps.Options.ReplaceOptions(ctx, opts)
}

// Bridge returns the bridge category and the bridge state.
func (s *Service) Bridge(ctx context.Context) (*BridgeView, error) {
	b := s.plugin.deps.Bridge
	if b == nil {
		return nil, ErrBridgeDisabled
	}

	s.plugin.timeline.Lock()
	defer s.plugin.timeline.Unlock()

	entries, ok, err := b.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return &BridgeView{
		BridgeStatus: s.bridgeStatus(),
		Category:     b.Category(),
		Exists:       ok,
		Entries: lo.Map(entries, func(e compat.Entry, _ int) BridgeEntryView {
			return BridgeEntryView{
				Name:              e.Name,
				Icon:              e.Icon,
				Model:             e.Model,
				Rotation:          catalog.FormatRotation(e.Rotation),
				SecondaryRotation: catalog.FormatRotation(e.SecondaryRotation),
			}
		}),
	}, nil
}

// SeedBridge replaces the bridge registry content, as the bridge extension does when it starts.
func (s *Service) SeedBridge(ctx context.Context, categories []compat.Category) error {
	b := s.plugin.deps.Bridge
	if b == nil {
		return ErrBridgeDisabled
	}

	s.plugin.timeline.Lock()
	defer s.plugin.timeline.Unlock()
	return b.Seed(ctx, categories)
}

// RegisterInstance builds an instance from req and announces it. Preview instances are only
// recorded; the retry loop merges them.
func (s *Service) RegisterInstance(req InstanceRequest) (*InstanceView, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInstance)
	}

	inst := s.buildInstance(req)
	if req.Preview {
		s.registry.SetPreview(inst)
		return s.view(inst, 0), nil
	}

	s.registry.AddInstance(inst)
	invoked, err := s.plugin.Announce(inst)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Announced instance", zap.String("instance", inst.ID), zap.Int("invoked", invoked))
	return s.view(inst, invoked), nil
}

// Instance returns the attachments of a registered instance.
func (s *Service) Instance(id string) (*InstanceView, error) {
	inst := s.registry.Instance(id)
	if inst == nil {
		return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}
	return s.view(inst, 0), nil
}

// Broadcast sends event to every extension, with the named instance as the only argument
// when instanceID is set.
func (s *Service) Broadcast(event, instanceID string) (int, error) {
	if instanceID == "" {
		return s.plugin.Broadcast(event)
	}

	inst := s.registry.Instance(instanceID)
	if inst == nil {
		return 0, fmt.Errorf("%w: %s", ErrInstanceNotFound, instanceID)
	}
	return s.plugin.Broadcast(event, inst)
}

func (s *Service) bridgeStatus() BridgeStatus {
	p := s.plugin
	return BridgeStatus{
		ID:     p.cfg.BridgeID,
		Active: p.BridgeActive(),
		Loaded: p.deps.Bridge != nil && p.deps.Bridge.Loaded(),
	}
}

func (s *Service) buildInstance(req InstanceRequest) *host.Instance {
	slot := host.NewNode(s.plugin.cfg.Slot)
	root := host.NewNode(req.ID, host.NewNode("Head", slot))

	attachments := lo.Map(req.Attachments, func(a AttachmentRequest, _ int) *host.Attachment {
		node := host.NewNode(a.Name)
		node.Layer = req.Layer
		slot.AddChild(node)
		return &host.Attachment{
			Name:      a.Name,
			Node:      node,
			Materials: []*host.Material{{Floats: a.Floats}},
		}
	})

	return &host.Instance{
		ID:          req.ID,
		Actor:       req.Actor,
		Local:       req.Local,
		Root:        root,
		Attachments: attachments,
	}
}

func (s *Service) view(inst *host.Instance, invoked int) *InstanceView {
	s.plugin.timeline.Lock()
	defer s.plugin.timeline.Unlock()
	return &InstanceView{
		ID:          inst.ID,
		Actor:       inst.Actor,
		Attachments: lo.Map(inst.Attachments, func(a *host.Attachment, _ int) string { return host.AttachmentName(a) }),
		Invoked:     invoked,
	}
}
