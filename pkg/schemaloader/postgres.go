// Package schemaloader builds adapter vocabularies from live data
// sources instead of hand-written identifier lists.
package schemaloader

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenPostgres opens a gorm connection for schema introspection.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// TableColumns returns the ordered column names of a table in the public
// schema, preserving the catalog's original casing.
func TableColumns(db *gorm.DB, table string) ([]string, error) {
	var columns []string
	query := `
        SELECT column_name
        FROM information_schema.columns
        WHERE table_schema = 'public'
        AND table_name = $1
        ORDER BY ordinal_position;
    `
	if err := db.Raw(query, table).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch columns for table %s: %w", table, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s has no columns or does not exist", table)
	}
	return columns, nil
}
