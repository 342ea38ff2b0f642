package checks

import (
	"context"
	"errors"
	"testing"

	"custom-hats/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCheckStructure(t *testing.T) {
	folders := []string{"customhats", "/archive/"}

	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "bundles").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "bundles", folders)
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "bundles").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "bundles", mock.Anything).Return(mocks.Objects())

		missing, err := CheckStructure(context.Background(), mockClient, "bundles", folders)
		assert.NoError(t, err)
		assert.Equal(t, folders, missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "bundles").Return(true, nil)
		for _, prefix := range []string{"customhats/", "archive/"} {
			mockClient.On("ListObjects", mock.Anything, "bundles", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == prefix
			})).Return(mocks.Objects(minio.ObjectInfo{Key: prefix + "top.glb"}))
		}

		missing, err := CheckStructure(context.Background(), mockClient, "bundles", folders)
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Listing Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "bundles").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "bundles", mock.Anything).
			Return(mocks.Objects(minio.ObjectInfo{Err: errors.New("access denied")}))

		_, err := CheckStructure(context.Background(), mockClient, "bundles", folders)
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestFixStructure(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "bundles", "customhats/", mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err := FixStructure(context.Background(), mockClient, "bundles", zap.NewNop(), []string{"customhats"})
	assert.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestFixStructure_Error(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "bundles", mock.Anything, mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, errors.New("quota exceeded"))

	err := FixStructure(context.Background(), mockClient, "bundles", zap.NewNop(), []string{"a", "b"})
	assert.ErrorContains(t, err, "quota exceeded")
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}
