package memory

import (
	"context"
	"testing"

	"custom-hats/core/host"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHost_Options(t *testing.T) {
	h := New()
	ctx := context.Background()

	opts, ok, err := h.Options(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, opts)

	h.InitOptions([]host.Option{{Name: "a"}})
	opts, ok, err = h.Options(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, opts, 1)

	opts[0].Name = "mutated"
	require.NoError(t, h.ReplaceOptions(ctx, append(opts, host.Option{Name: "b"})))

	opts, _, _ = h.Options(ctx)
	assert.Equal(t, "mutated", opts[0].Name)
	assert.Len(t, opts, 2)
}

func TestHost_Instances(t *testing.T) {
	h := New()
	preview := &host.Instance{ID: "dummy"}
	remote := &host.Instance{ID: "p2", Actor: 2}
	local := &host.Instance{ID: "p1", Actor: 1, Local: true}

	h.SetPreview(preview)
	h.AddInstance(remote)
	h.AddInstance(local)

	assert.Same(t, preview, h.Preview())
	assert.Same(t, remote, h.ByActor(2))
	assert.Nil(t, h.ByActor(9))
	assert.Same(t, local, h.Local())
	assert.Same(t, preview, h.Instance("dummy"))
	assert.Same(t, local, h.Instance("p1"))
	assert.Nil(t, h.Instance("nope"))

	_, connected := h.LocalActor()
	assert.False(t, connected)
	h.Connect(1)
	actor, connected := h.LocalActor()
	assert.True(t, connected)
	assert.Equal(t, 1, actor)

	replacement := &host.Instance{ID: "p2", Actor: 3}
	h.AddInstance(replacement)
	assert.Same(t, replacement, h.ByActor(3))
	assert.Nil(t, h.ByActor(2))
}

func TestHost_Instantiate(t *testing.T) {
	h := New()
	slot := host.NewNode("Hat")

	a, err := h.Instantiate("top", "customhats/top.glb", slot)
	require.NoError(t, err)

	assert.Equal(t, "top", a.Name)
	assert.Same(t, slot, a.Node.Parent)
	assert.Len(t, a.Materials, 1)
	assert.Equal(t, 1, h.Instantiated())

	_, err = h.Instantiate("bad", "", slot)
	assert.Error(t, err)
}
