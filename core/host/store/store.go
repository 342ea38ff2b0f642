package store

import (
	"context"
	"fmt"

	"custom-hats/core/host"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Store is a host.OptionStore backed by the customization_options table. The collection is
// considered missing until the table exists.
type Store struct {
	db *gorm.DB
}

var _ host.OptionStore = (*Store)(nil)

// New creates a store over db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the options table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&OptionRecord{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return nil
}

func (s *Store) Options(ctx context.Context) ([]host.Option, bool, error) {
	db := s.db.WithContext(ctx)
	if !db.Migrator().HasTable(&OptionRecord{}) {
		return nil, false, nil
	}

	var records []OptionRecord
	if err := db.Order("position ASC").Order("id ASC").Find(&records).Error; err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", TableName, err)
	}

	return lo.Map(records, func(r OptionRecord, _ int) host.Option {
		return r.toOption()
	}), true, nil
}

// ReplaceOptions rewrites the whole table in one transaction, numbering positions from zero.
func (s *Store) ReplaceOptions(ctx context.Context, opts []host.Option) error {
	records := lo.Map(opts, func(o host.Option, i int) OptionRecord {
		return toRecord(i, o)
	})

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&OptionRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, 100).Error
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", TableName, err)
	}
	return nil
}
