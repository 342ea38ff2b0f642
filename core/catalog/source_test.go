package catalog

import (
	"context"
	"errors"
	"testing"

	"custom-hats/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testClassifier = NewClassifier([]string{".glb"}, []string{".png"})

func bundleFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bundle/top.glb", []byte("model"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "bundle/top.png", []byte("ic"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "bundle/top.glb.rotation", []byte("0,1,0,0\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "bundle/crown.glb", []byte("model"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "bundle/crown.png", []byte("ic"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "bundle/stray.png", []byte("ic"), 0o644))
	return fs
}

func TestDirSource_List(t *testing.T) {
	src := NewDirSource(bundleFs(t), "bundle", testClassifier)

	c, orphans, err := Resolve(context.Background(), src)
	require.NoError(t, err)

	// afero.Walk visits entries in lexical order
	assert.Equal(t, []string{"crown", "top"}, c.NameList())
	assert.Equal(t, []string{"stray"}, orphans)

	top := c.Items()[1]
	assert.Equal(t, 1.0, top.Model.Rotation.Imag)
	assert.Equal(t, Identity, c.Items()[0].Model.Rotation)
}

func TestDirSource_Missing(t *testing.T) {
	src := NewDirSource(afero.NewMemMapFs(), "nowhere", testClassifier)

	_, err := src.List(context.Background())
	assert.ErrorIs(t, err, ErrBundleNotFound)
}

func TestDirSource_BadRotation(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "b/top.glb", []byte("m"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "b/top.glb.rotation", []byte("nope"), 0o644))

	_, err := NewDirSource(fs, "b", testClassifier).List(context.Background())
	assert.Error(t, err)
}

func TestStorageSource_List(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "bundles").Return(true, nil)
	client.On("ListObjects", mock.Anything, "bundles", minio.ListObjectsOptions{
		Prefix: "customhats/", Recursive: true, WithMetadata: true,
	}).Return(mocks.Objects(
		minio.ObjectInfo{Key: "customhats/"},
		minio.ObjectInfo{Key: "customhats/top.glb", Size: 100, UserMetadata: minio.StringMap{"X-Amz-Meta-Rotation": "0,0,1,0"}},
		minio.ObjectInfo{Key: "customhats/top.png", Size: 5},
	))

	src := NewStorageSource(client, "bundles", "/customhats/", testClassifier)
	assert.Equal(t, "s3://bundles/customhats", src.Describe())

	c, orphans, err := Resolve(context.Background(), src)
	require.NoError(t, err)
	assert.Empty(t, orphans)
	require.Equal(t, 1, c.Len())

	top := c.Items()[0]
	assert.Equal(t, "customhats/top.glb", top.Model.Key)
	assert.Equal(t, int64(100), top.Model.Size)
	assert.Equal(t, 1.0, top.Model.Rotation.Jmag)
	client.AssertExpectations(t)
}

func TestStorageSource_Errors(t *testing.T) {
	t.Run("missing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bundles").Return(false, nil)

		_, err := NewStorageSource(client, "bundles", "x", testClassifier).List(context.Background())
		assert.ErrorIs(t, err, ErrBundleNotFound)
	})

	t.Run("listing error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bundles").Return(true, nil)
		client.On("ListObjects", mock.Anything, "bundles", mock.Anything).
			Return(mocks.Objects(minio.ObjectInfo{Err: errors.New("denied")}))

		_, err := NewStorageSource(client, "bundles", "x", testClassifier).List(context.Background())
		assert.ErrorContains(t, err, "denied")
	})
}

func TestNewSource(t *testing.T) {
	cfg := Config{Source: SourceDir, BundlePath: "bundle", ModelExts: []string{".glb"}, IconExts: []string{".png"}}

	src, err := NewSource(cfg, nil, "", afero.NewMemMapFs())
	require.NoError(t, err)
	assert.IsType(t, &DirSource{}, src)

	cfg.Source = SourceStorage
	_, err = NewSource(cfg, nil, "bundles", nil)
	assert.ErrorIs(t, err, ErrNoSource)

	src, err = NewSource(cfg, new(mocks.Client), "bundles", nil)
	require.NoError(t, err)
	assert.IsType(t, &StorageSource{}, src)

	cfg.Source = "ftp"
	_, err = NewSource(cfg, nil, "", nil)
	assert.ErrorIs(t, err, ErrNoSource)
}

type countingSource struct {
	Source
	calls int
}

func (s *countingSource) List(ctx context.Context) ([]Asset, error) {
	s.calls++
	return s.Source.List(ctx)
}

func TestLoader_CachesFirstSuccess(t *testing.T) {
	src := &countingSource{Source: NewDirSource(bundleFs(t), "bundle", testClassifier)}
	l := NewLoader(src, zap.NewNop())

	assert.Nil(t, l.Current())

	c1, err := l.Load(context.Background())
	require.NoError(t, err)
	c2, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, c1, c2)
	assert.Same(t, c1, l.Current())
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, []string{"stray"}, l.Orphans())
}

func TestLoader_RetriesAfterFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	l := NewLoader(NewDirSource(fs, "bundle", testClassifier), zap.NewNop())

	_, err := l.Load(context.Background())
	assert.ErrorIs(t, err, ErrBundleNotFound)
	assert.Nil(t, l.Current())

	require.NoError(t, afero.WriteFile(fs, "bundle/top.glb", []byte("m"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "bundle/top.png", []byte("i"), 0o644))

	c, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestPublish(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "bundles").Return(true, nil)
	client.On("PutObject", mock.Anything, "bundles", "customhats/top.glb", mock.Anything, int64(5),
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.UserMetadata["Rotation"] == "0,1,0,0" })).
		Return(minio.UploadInfo{}, nil)
	client.On("PutObject", mock.Anything, "bundles", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	res, err := Publish(context.Background(), bundleFs(t), "bundle", client, "bundles", "customhats", testClassifier)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"customhats/crown.glb", "customhats/crown.png", "customhats/stray.png",
		"customhats/top.glb", "customhats/top.png",
	}, res.Uploaded)
	assert.Equal(t, []string{"bundle/top.glb.rotation"}, res.Skipped)
	client.AssertNumberOfCalls(t, "PutObject", 5)
}
