package checks

import (
	"errors"
	"fmt"

	"custom-hats/core/database"
	"custom-hats/core/host/store"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a host schema check.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	Errors         []string `json:"errors"`
}

// CheckSchema verifies that the options table has every column the store uses.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}

	report := &SchemaReport{
		Table:          store.TableName,
		Matched:        true,
		MissingColumns: []string{},
		Errors:         []string{},
	}

	columns, err := database.GetTableColumns(db, store.TableName)
	if err != nil {
		report.Matched = false
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", store.TableName, err))
		return report, nil
	}

	if missing := database.MissingColumns(columns, store.RequiredColumns); len(missing) > 0 {
		report.Matched = false
		report.MissingColumns = missing
	}
	return report, nil
}
