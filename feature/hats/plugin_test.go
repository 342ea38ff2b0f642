package hats

import (
	"context"
	"fmt"
	"testing"
	"time"

	"custom-hats/core/catalog"
	"custom-hats/core/dispatch"
	"custom-hats/core/host"
	"custom-hats/core/host/memory"
	"custom-hats/core/merge"
	"custom-hats/feature/compat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testConfig = Config{
	Anchor:         23,
	ExtensionID:    "custom-hats",
	BridgeID:       "MoreCustomizations",
	BridgeCategory: "Hat",
	Shader:         "W/Character",
	Slot:           "Hat",
}

type staticCatalog struct {
	c *catalog.Catalog
}

func (s *staticCatalog) Current() *catalog.Catalog { return s.c }

type fixture struct {
	host       *memory.Host
	dispatcher *dispatch.Dispatcher
	registry   *compat.MemoryRegistry
	catalog    *staticCatalog
	plugin     *Plugin
}

func newFixture(t *testing.T, cfg Config, names ...string) *fixture {
	t.Helper()

	items := make([]catalog.Item, len(names))
	for i, n := range names {
		items[i] = catalog.Item{
			Name:  n,
			Model: catalog.Model{Key: "customhats/" + n + ".glb", Rotation: catalog.Identity},
			Icon:  catalog.Icon{Key: "customhats/" + n + ".png"},
		}
	}

	f := &fixture{
		host:       memory.New(),
		dispatcher: dispatch.New(zap.NewNop()),
		registry: compat.NewMemoryRegistry(compat.Category{
			Name:    "Hat",
			Entries: []compat.Entry{{Name: "cap"}, {Name: "visor"}, {Name: "beanie"}},
		}),
		catalog: &staticCatalog{},
	}
	if len(items) > 0 {
		f.catalog.c = catalog.New(items)
	}

	p, err := NewPlugin(cfg, Deps{
		Catalog:      f.catalog,
		Options:      f.host,
		Instances:    f.host,
		Instantiator: f.host,
		Dispatcher:   f.dispatcher,
		Bridge:       compat.New(f.registry, cfg.BridgeCategory, zap.NewNop()),
	}, zap.NewNop())
	require.NoError(t, err)
	f.plugin = p
	return f
}

func baseOptions(n int) []host.Option {
	opts := make([]host.Option, n)
	for i := range opts {
		opts[i] = host.Option{Name: fmt.Sprintf("hat%02d", i), Type: host.TypeHat, Color: host.White}
	}
	return opts
}

func newInstance(id string, actor, attachments, layer int) *host.Instance {
	slot := host.NewNode("Hat")
	root := host.NewNode(id, host.NewNode("Body", host.NewNode("Head", slot)))

	inst := &host.Instance{ID: id, Actor: actor, Root: root}
	for i := 0; i < attachments; i++ {
		node := host.NewNode(fmt.Sprintf("hat%02d", i))
		node.Layer = layer
		slot.AddChild(node)
		inst.Attachments = append(inst.Attachments, &host.Attachment{
			Name:      node.Name,
			Node:      node,
			Materials: []*host.Material{{Shader: "W/Character", Floats: map[string]float64{"_Smoothness": 0.3}}},
		})
	}
	return inst
}

func optionNames(t *testing.T, h *memory.Host) []string {
	t.Helper()
	opts, _, err := h.Options(context.Background())
	require.NoError(t, err)
	names := make([]string, len(opts))
	for i, o := range opts {
		names[i] = o.Name
	}
	return names
}

func attachmentNames(inst *host.Instance) []string {
	names := make([]string, len(inst.Attachments))
	for i, a := range inst.Attachments {
		names[i] = a.Name
	}
	return names
}

func TestAttempt_NotReady(t *testing.T) {
	ctx := context.Background()

	t.Run("catalog not loaded", func(t *testing.T) {
		f := newFixture(t, testConfig)
		f.host.InitOptions(baseOptions(23))

		require.NoError(t, f.plugin.Attempt(ctx))
		assert.Len(t, optionNames(t, f.host), 23)
		assert.False(t, f.plugin.Inserted())
	})

	t.Run("options not created", func(t *testing.T) {
		f := newFixture(t, testConfig, "top")

		require.NoError(t, f.plugin.Attempt(ctx))
		assert.False(t, f.plugin.Inserted())
	})

	t.Run("options empty", func(t *testing.T) {
		f := newFixture(t, testConfig, "top")
		f.host.InitOptions(nil)

		require.NoError(t, f.plugin.Attempt(ctx))
		assert.False(t, f.plugin.Inserted())
		assert.Empty(t, optionNames(t, f.host))
	})
}

func TestAttempt_MergesOptionsAndPreview(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testConfig, "top", "crown")
	f.host.InitOptions(baseOptions(23))
	preview := newInstance("dummy", 0, 23, host.PreviewLayer)
	f.host.SetPreview(preview)

	require.NoError(t, f.plugin.Attempt(ctx))

	names := optionNames(t, f.host)
	require.Len(t, names, 25)
	assert.Equal(t, []string{"top", "crown"}, names[23:])
	assert.True(t, f.plugin.Inserted())

	opts, _, _ := f.host.Options(ctx)
	assert.Equal(t, host.Option{Name: "top", Texture: "customhats/top.png", Color: host.White, Type: host.TypeHat}, opts[23])

	require.Len(t, preview.Attachments, 25)
	assert.Equal(t, []string{"top", "crown"}, attachmentNames(preview)[23:])

	top := preview.Attachments[23]
	assert.False(t, top.Node.Active)
	assert.Equal(t, host.PreviewLayer, top.Node.Layer)
	assert.Equal(t, "Hat", top.Node.Parent.Name)
	require.Len(t, top.Materials, 1)
	assert.Equal(t, "W/Character", top.Materials[0].Shader)
	assert.True(t, top.Materials[0].Instancing)
	assert.True(t, top.Materials[0].Persistent)
	assert.Equal(t, 0.3, top.Materials[0].Floats["_Smoothness"])

	// running again changes nothing
	require.NoError(t, f.plugin.Attempt(ctx))
	assert.Len(t, optionNames(t, f.host), 25)
	assert.Len(t, preview.Attachments, 25)
	assert.Equal(t, 2, f.host.Instantiated())
}

func TestAttempt_SplicesBeforeExistingTail(t *testing.T) {
	f := newFixture(t, Config{Anchor: 2, ExtensionID: "custom-hats", BridgeID: "MoreCustomizations", Slot: "Hat"}, "top", "crown")
	f.host.InitOptions([]host.Option{{Name: "a"}, {Name: "b"}, {Name: "c"}})

	require.NoError(t, f.plugin.Attempt(context.Background()))
	assert.Equal(t, []string{"a", "b", "top", "crown", "c"}, optionNames(t, f.host))
}

func TestAttempt_AdoptsExistingMerge(t *testing.T) {
	f := newFixture(t, testConfig, "top", "crown")
	opts := append(baseOptions(23), host.Option{Name: "crown"}, host.Option{Name: "top"})
	f.host.InitOptions(opts)

	require.NoError(t, f.plugin.Attempt(context.Background()))
	assert.Len(t, optionNames(t, f.host), 25)
	assert.True(t, f.plugin.Inserted())
}

func TestAttempt_RemergesReinitializedOptions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testConfig, "top", "crown")
	f.host.InitOptions(baseOptions(23))

	require.NoError(t, f.plugin.Attempt(ctx))
	require.Len(t, optionNames(t, f.host), 25)
	require.True(t, f.plugin.Inserted())

	require.NoError(t, f.host.ReplaceOptions(ctx, baseOptions(23)))
	require.NoError(t, f.plugin.Attempt(ctx))

	names := optionNames(t, f.host)
	require.Len(t, names, 25)
	assert.Equal(t, []string{"top", "crown"}, names[23:])

	// a third pass finds the tail and writes nothing
	require.NoError(t, f.plugin.Attempt(ctx))
	assert.Len(t, optionNames(t, f.host), 25)
}

func TestAttempt_AnchorOutOfRange(t *testing.T) {
	cfg := testConfig
	cfg.Anchor = 30
	f := newFixture(t, cfg, "top")
	f.host.InitOptions(baseOptions(23))

	err := f.plugin.Attempt(context.Background())
	assert.ErrorIs(t, err, merge.ErrOutOfRange)
	assert.Len(t, optionNames(t, f.host), 23)
	assert.False(t, f.plugin.Inserted())
}

func TestAttempt_BridgeMode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testConfig, "top", "crown")
	require.NoError(t, f.dispatcher.Register("MoreCustomizations"))
	f.host.InitOptions(baseOptions(23))
	preview := newInstance("dummy", 0, 23, host.PreviewLayer)
	f.host.SetPreview(preview)

	require.NoError(t, f.plugin.Attempt(ctx))
	require.NoError(t, f.plugin.Attempt(ctx))

	cats, err := f.registry.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Len(t, cats[0].Entries, 5)
	assert.Equal(t, "crown", cats[0].Entries[4].Name)

	// the host-native path never ran
	assert.Len(t, optionNames(t, f.host), 23)
	assert.Len(t, preview.Attachments, 23)
	assert.False(t, f.plugin.Inserted())
	assert.Zero(t, f.host.Instantiated())

	local := newInstance("p1", 1, 23, 0)
	f.host.AddInstance(local)
	invoked, err := f.plugin.Announce(local)
	require.NoError(t, err)
	assert.Equal(t, 1, invoked)
	assert.Len(t, local.Attachments, 23)
}

func TestAttempt_LocalInstance(t *testing.T) {
	ctx := context.Background()

	t.Run("local marker", func(t *testing.T) {
		f := newFixture(t, testConfig, "top", "crown")
		f.host.InitOptions(baseOptions(23))
		f.host.SetPreview(newInstance("dummy", 0, 23, host.PreviewLayer))
		local := newInstance("p1", 1, 23, 0)
		local.Local = true
		f.host.AddInstance(local)

		require.NoError(t, f.plugin.Attempt(ctx))
		assert.Equal(t, []string{"top", "crown"}, attachmentNames(local)[23:])
	})

	t.Run("local actor number", func(t *testing.T) {
		f := newFixture(t, testConfig, "top", "crown")
		f.host.InitOptions(baseOptions(23))
		f.host.SetPreview(newInstance("dummy", 0, 23, host.PreviewLayer))
		f.host.AddInstance(newInstance("p1", 1, 23, 0))
		mine := newInstance("p2", 2, 23, 0)
		f.host.AddInstance(mine)
		f.host.Connect(2)

		require.NoError(t, f.plugin.Attempt(ctx))
		assert.Len(t, mine.Attachments, 25)
		assert.Len(t, f.host.ByActor(1).Attachments, 23)
	})

	t.Run("missing preview stops the attempt", func(t *testing.T) {
		f := newFixture(t, testConfig, "top")
		f.host.InitOptions(baseOptions(23))
		local := newInstance("p1", 1, 23, 0)
		local.Local = true
		f.host.AddInstance(local)

		require.NoError(t, f.plugin.Attempt(ctx))
		assert.True(t, f.plugin.Inserted())
		assert.Len(t, local.Attachments, 23)
	})
}

func TestApplyToInstance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testConfig, "top", "crown")

	inst := newInstance("p1", 1, 23, 0)
	assert.ErrorIs(t, f.plugin.ApplyToInstance(ctx, inst), ErrNotReady)

	f.host.InitOptions(baseOptions(23))
	require.NoError(t, f.plugin.Attempt(ctx))

	assert.ErrorIs(t, f.plugin.ApplyToInstance(ctx, nil), ErrNotReady)
	assert.ErrorIs(t, f.plugin.ApplyToInstance(ctx, &host.Instance{ID: "bare", Root: host.NewNode("bare")}), ErrNotReady)

	noSlot := newInstance("p3", 3, 23, 0)
	noSlot.Root = host.NewNode("p3")
	assert.ErrorIs(t, f.plugin.ApplyToInstance(ctx, noSlot), ErrNotReady)
	assert.Len(t, noSlot.Attachments, 23)

	require.NoError(t, f.plugin.ApplyToInstance(ctx, inst))
	require.NoError(t, f.plugin.ApplyToInstance(ctx, inst))
	assert.Len(t, inst.Attachments, 25)
	assert.Equal(t, "Hat", inst.Attachments[24].Node.Parent.Name)

	short := newInstance("p4", 4, 5, 0)
	assert.ErrorIs(t, f.plugin.ApplyToInstance(ctx, short), merge.ErrOutOfRange)
}

func TestApplyToInstance_OutOfRangeLeavesSlotUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testConfig, "top", "crown")
	f.host.InitOptions(baseOptions(23))
	require.NoError(t, f.plugin.Attempt(ctx))

	short := newInstance("p4", 4, 5, 0)
	slot := short.Root.FindChild("Hat")
	require.NotNil(t, slot)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, f.plugin.ApplyToInstance(ctx, short), merge.ErrOutOfRange)
		assert.Len(t, slot.Children, 5)
		assert.Len(t, short.Attachments, 5)
	}
	assert.Zero(t, f.host.Instantiated())
}

func TestAttempt_ShortPreviewLeavesSlotUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testConfig, "top")
	f.host.InitOptions(baseOptions(23))
	preview := newInstance("dummy", 0, 5, host.PreviewLayer)
	f.host.SetPreview(preview)
	slot := preview.Root.FindChild("Hat")

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, f.plugin.Attempt(ctx), merge.ErrOutOfRange)
		assert.Len(t, slot.Children, 5)
	}
	// the options merge itself still went through
	assert.Len(t, optionNames(t, f.host), 24)
	assert.Zero(t, f.host.Instantiated())
}

func TestApplyToInstance_WaitsForTimeline(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testConfig, "top")
	f.host.InitOptions(baseOptions(23))
	require.NoError(t, f.plugin.Attempt(ctx))
	inst := newInstance("p1", 1, 23, 0)

	f.plugin.timeline.Lock()
	done := make(chan error, 1)
	go func() { done <- f.plugin.ApplyToInstance(ctx, inst) }()

	select {
	case <-done:
		t.Fatal("ApplyToInstance ran while an attempt held the timeline")
	case <-time.After(50 * time.Millisecond):
	}
	f.plugin.timeline.Unlock()

	require.NoError(t, <-done)
	assert.Len(t, inst.Attachments, 24)
}

func TestApplyToInstance_SkipsBrokenModels(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testConfig, "top")
	f.catalog.c = catalog.New([]catalog.Item{
		{Name: "top", Model: catalog.Model{Key: "top.glb"}},
		{Name: "broken"},
	})
	f.host.InitOptions(baseOptions(23))
	require.NoError(t, f.plugin.Attempt(ctx))

	inst := newInstance("p1", 1, 23, 0)
	require.NoError(t, f.plugin.ApplyToInstance(ctx, inst))
	assert.Equal(t, []string{"top"}, attachmentNames(inst)[23:])
}

func TestAnnounce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testConfig, "top", "crown")

	early := newInstance("early", 7, 23, 0)
	invoked, err := f.plugin.Announce(early)
	require.NoError(t, err)
	assert.Equal(t, 1, invoked)
	assert.Len(t, early.Attachments, 23)

	f.host.InitOptions(baseOptions(23))
	require.NoError(t, f.plugin.Attempt(ctx))

	inst := newInstance("p1", 1, 23, 0)
	for i := 0; i < 2; i++ {
		invoked, err = f.plugin.Announce(inst)
		require.NoError(t, err)
		assert.Equal(t, 1, invoked)
	}
	assert.Len(t, inst.Attachments, 25)

	invoked, err = f.plugin.Announce(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, invoked)

	f.plugin.Close()
	invoked, err = f.plugin.Announce(inst)
	require.NoError(t, err)
	assert.Zero(t, invoked)
}

func TestNewPlugin_DuplicateExtension(t *testing.T) {
	f := newFixture(t, testConfig, "top")

	_, err := NewPlugin(testConfig, f.plugin.deps, zap.NewNop())
	assert.ErrorIs(t, err, dispatch.ErrDuplicateExtension)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, testConfig.Validate())

	bad := testConfig
	bad.Anchor = -1
	assert.Error(t, bad.Validate())

	bad = testConfig
	bad.ExtensionID = ""
	assert.Error(t, bad.Validate())

	bad = testConfig
	bad.Slot = ""
	assert.Error(t, bad.Validate())
}
