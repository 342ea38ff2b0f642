package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"custom-hats/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"gonum.org/v1/gonum/num/quat"
)

var (
	// ErrNoSource is returned when the configured source kind is unknown or lacks its backend.
	ErrNoSource = errors.New("no catalog source")
	// ErrBundleNotFound is returned when the bundle bucket or directory does not exist.
	ErrBundleNotFound = errors.New("asset bundle not found")
)

// rotationKeys are the object metadata keys holding a model's base orientation.
var rotationKeys = []string{"X-Amz-Meta-Rotation", "Rotation"}

// RotationSuffix names the sidecar file holding a model's orientation in directory bundles.
const RotationSuffix = ".rotation"

// Source lists the assets of a bundle.
type Source interface {
	List(ctx context.Context) ([]Asset, error)
	// Describe names the bundle location for logs.
	Describe() string
}

// NewSource builds the source selected by cfg. client and fs may be nil when the other kind is used.
func NewSource(cfg Config, client storage.Client, bucket string, fs afero.Fs) (Source, error) {
	classifier := NewClassifier(cfg.ModelExts, cfg.IconExts)

	switch cfg.Source {
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("%w: storage client not configured", ErrNoSource)
		}
		return NewStorageSource(client, bucket, cfg.BundlePath, classifier), nil
	case SourceDir:
		if fs == nil {
			fs = afero.NewOsFs()
		}
		return NewDirSource(fs, cfg.BundlePath, classifier), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrNoSource, cfg.Source)
	}
}

// StorageSource lists a bundle stored under a bucket prefix.
type StorageSource struct {
	client     storage.Client
	bucket     string
	prefix     string
	classifier Classifier
}

// NewStorageSource creates a source reading bucket/prefix.
func NewStorageSource(client storage.Client, bucket, prefix string, classifier Classifier) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/"), classifier: classifier}
}

func (s *StorageSource) Describe() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.prefix)
}

func (s *StorageSource) List(ctx context.Context) ([]Asset, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %s", ErrBundleNotFound, s.bucket)
	}

	opts := minio.ListObjectsOptions{Recursive: true, WithMetadata: true}
	if s.prefix != "" {
		opts.Prefix = s.prefix + "/"
	}

	var assets []Asset
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", s.Describe(), obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}

		name, kind := s.classifier.Classify(obj.Key)
		asset := Asset{Name: name, Key: obj.Key, Kind: kind, Size: obj.Size, Rotation: Identity}
		if kind == KindModel {
			rot, err := rotationFrom(obj.UserMetadata)
			if err != nil {
				return nil, fmt.Errorf("model %s: %w", obj.Key, err)
			}
			asset.Rotation = rot
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func rotationFrom(meta minio.StringMap) (quat.Number, error) {
	for _, key := range rotationKeys {
		if v, ok := meta[key]; ok && v != "" {
			return ParseRotation(v)
		}
	}
	return Identity, nil
}

// DirSource lists a bundle stored in a directory.
type DirSource struct {
	fs         afero.Fs
	root       string
	classifier Classifier
}

// NewDirSource creates a source reading root on fs.
func NewDirSource(fs afero.Fs, root string, classifier Classifier) *DirSource {
	return &DirSource{fs: fs, root: root, classifier: classifier}
}

func (s *DirSource) Describe() string {
	return s.root
}

func (s *DirSource) List(ctx context.Context) ([]Asset, error) {
	info, err := s.fs.Stat(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBundleNotFound, s.root)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", s.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrBundleNotFound, s.root)
	}

	var assets []Asset
	err = afero.Walk(s.fs, s.root, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if fi.IsDir() {
			return nil
		}

		name, kind := s.classifier.Classify(p)
		asset := Asset{Name: name, Key: path.Clean(strings.ReplaceAll(p, "\\", "/")), Kind: kind, Size: fi.Size(), Rotation: Identity}
		if kind == KindModel {
			rot, err := s.sidecarRotation(p)
			if err != nil {
				return fmt.Errorf("model %s: %w", p, err)
			}
			asset.Rotation = rot
		}
		assets = append(assets, asset)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", s.root, err)
	}
	return assets, nil
}

// sidecarRotation reads "<model>.rotation" next to a model file when present.
func (s *DirSource) sidecarRotation(modelPath string) (quat.Number, error) {
	data, err := afero.ReadFile(s.fs, modelPath+RotationSuffix)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Identity, nil
		}
		return Identity, err
	}
	return ParseRotation(strings.TrimSpace(string(data)))
}
