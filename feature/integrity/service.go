package integrity

import (
	"context"
	"errors"

	"custom-hats/core/catalog"
	"custom-hats/core/host"
	"custom-hats/core/storage"
	"custom-hats/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrStorageDisabled is returned by storage checks when no storage client is configured.
	ErrStorageDisabled = errors.New("object storage is not configured")
	// ErrDatabaseDisabled is returned by the schema check when no database is connected.
	ErrDatabaseDisabled = errors.New("host database is not connected")
)

// Config selects what the checks look at.
type Config struct {
	// BundlePath is the bundle folder checked by the structure check.
	BundlePath string
	// Anchor is the splice position validated against the options.
	Anchor int
}

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	logger  *zap.Logger
	db      *gorm.DB
	source  catalog.Source
	options host.OptionStore
	cfg     Config
}

// NewService creates a new integrity service. client and db may be nil; the checks that need
// them then report ErrStorageDisabled or ErrDatabaseDisabled.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, source catalog.Source, options host.OptionStore, cfg Config) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		logger:  logger,
		db:      db,
		source:  source,
		options: options,
		cfg:     cfg,
	}
}

// CheckStructure returns the bundle folders missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, []string{s.cfg.BundlePath})
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckBundle resolves the bundle and reports unpaired assets.
func (s *Service) CheckBundle(ctx context.Context) (*checks.BundleReport, error) {
	return checks.CheckBundle(ctx, s.source)
}

// CheckSchema validates the host options table.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrDatabaseDisabled
	}
	return checks.CheckSchema(s.db)
}

// CheckAnchor validates the anchor against the live options.
func (s *Service) CheckAnchor(ctx context.Context) (*checks.AnchorReport, error) {
	return checks.CheckAnchor(ctx, s.options, s.cfg.Anchor)
}

// RunAll runs every check and collects the reports, recording failures in place.
func (s *Service) RunAll(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if missing, err := s.CheckStructure(ctx); err != nil {
		report["structure"] = failed(err)
	} else {
		report["structure"] = map[string]any{"status": "ok", "missing": missing}
	}

	if r, err := s.CheckBundle(ctx); err != nil {
		report["bundle"] = failed(err)
	} else {
		report["bundle"] = r
	}

	if r, err := s.CheckSchema(); err != nil {
		report["schema"] = failed(err)
	} else {
		report["schema"] = r
	}

	if r, err := s.CheckAnchor(ctx); err != nil {
		report["anchor"] = failed(err)
	} else {
		report["anchor"] = r
	}

	return report
}

func failed(err error) map[string]any {
	status := "error"
	if errors.Is(err, ErrStorageDisabled) || errors.Is(err, ErrDatabaseDisabled) {
		status = "skipped"
	}
	return map[string]any{"status": status, "error": err.Error()}
}
