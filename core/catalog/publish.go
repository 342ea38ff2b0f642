package catalog

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"custom-hats/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
)

// PublishResult reports the outcome of a Publish call.
type PublishResult struct {
	Uploaded []string `json:"uploaded"`
	Skipped  []string `json:"skipped"`
}

// Publish uploads every model and icon found under root on fs to bucket/prefix. Model
// orientation sidecars are attached as object metadata so StorageSource can read them back.
func Publish(ctx context.Context, fs afero.Fs, root string, client storage.Client, bucket, prefix string, classifier Classifier) (*PublishResult, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %s", ErrBundleNotFound, bucket)
	}

	src := NewDirSource(fs, root, classifier)
	assets, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &PublishResult{}
	for _, a := range assets {
		if a.Kind == KindOther {
			result.Skipped = append(result.Skipped, a.Key)
			continue
		}

		rel, err := filepath.Rel(root, a.Key)
		if err != nil {
			rel = path.Base(a.Key)
		}
		key := path.Join(strings.Trim(prefix, "/"), filepath.ToSlash(rel))

		opts := minio.PutObjectOptions{ContentType: contentType(a.Key)}
		if a.Kind == KindModel && a.Rotation != Identity {
			opts.UserMetadata = map[string]string{"Rotation": FormatRotation(a.Rotation)}
		}

		if err := upload(ctx, fs, client, bucket, key, a, opts); err != nil {
			return result, err
		}
		result.Uploaded = append(result.Uploaded, key)
	}
	return result, nil
}

func upload(ctx context.Context, fs afero.Fs, client storage.Client, bucket, key string, a Asset, opts minio.PutObjectOptions) error {
	f, err := fs.OpenFile(a.Key, os.O_RDONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", a.Key, err)
	}
	defer f.Close()

	if _, err := client.PutObject(ctx, bucket, key, f, a.Size, opts); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
