package integrity

import (
	"context"
	"testing"

	"custom-hats/core/catalog"
	"custom-hats/core/host"
	"custom-hats/core/host/memory"
	"custom-hats/core/storage/mocks"
	"custom-hats/feature/integrity/checks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func testSource(t *testing.T) catalog.Source {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"top.glb", "top.png", "crown.png"} {
		require.NoError(t, afero.WriteFile(fs, "customhats/"+name, []byte("x"), 0o644))
	}
	return catalog.NewDirSource(fs, "customhats", catalog.NewClassifier([]string{".glb"}, []string{".png"}))
}

func testOptions(n int) *memory.Host {
	h := memory.New()
	h.InitOptions(make([]host.Option, n))
	return h
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil, testSource(t), testOptions(0), Config{BundlePath: "customhats"})

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"customhats"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "customhats/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"customhats"})
		assert.NoError(t, err)
	})
}

func TestService_Disabled(t *testing.T) {
	svc := NewService(nil, "", zap.NewNop(), nil, testSource(t), testOptions(0), Config{})

	_, err := svc.CheckStructure(context.Background())
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, svc.FixStructure(context.Background(), []string{"x"}), ErrStorageDisabled)

	_, err = svc.CheckSchema()
	assert.ErrorIs(t, err, ErrDatabaseDisabled)
}

func TestService_Schema(t *testing.T) {
	// no expectations: every lookup fails, so the table is reported as missing
	db, _ := setupMockDB(t)
	svc := NewService(nil, "", zap.NewNop(), db, testSource(t), testOptions(0), Config{})

	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.NotEmpty(t, report.Errors)
}

func TestService_RunAll(t *testing.T) {
	svc := NewService(nil, "", zap.NewNop(), nil, testSource(t), testOptions(25), Config{Anchor: 23})

	report := svc.RunAll(context.Background())

	assert.Equal(t, "skipped", report["structure"].(map[string]any)["status"])
	assert.Equal(t, "skipped", report["schema"].(map[string]any)["status"])

	bundle := report["bundle"].(*checks.BundleReport)
	assert.Equal(t, []string{"top"}, bundle.Items)
	assert.Equal(t, []string{"crown"}, bundle.Orphans)

	anchor := report["anchor"].(*checks.AnchorReport)
	assert.True(t, anchor.Valid)
}
