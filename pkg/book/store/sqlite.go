package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gmarchetti/rolodex/pkg/book"
)

// itemRow is the GORM model: one row per item, fields JSON-encoded.
type itemRow struct {
	ID     string `gorm:"primaryKey"`
	Fields string
}

// TableName sets the SQLite table name.
func (itemRow) TableName() string {
	return "items"
}

// SQLiteStore persists items in a SQLite database file through GORM.
// Item IDs are stable across reloads.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLiteStore opens (or creates) the database at path and migrates
// the schema.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := db.AutoMigrate(&itemRow{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads every item row.
func (s *SQLiteStore) Load(ctx context.Context) ([]*book.Item, error) {
	var rows []itemRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	items := make([]*book.Item, 0, len(rows))
	for _, row := range rows {
		item := &book.Item{ID: row.ID}
		if err := json.Unmarshal([]byte(row.Fields), &item.Fields); err != nil {
			return nil, fmt.Errorf("decode item %s: %w", row.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Save replaces the persisted book in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, items []*book.Item) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&itemRow{}).Error; err != nil {
			return fmt.Errorf("clear items: %w", err)
		}
		for _, item := range items {
			fields, err := json.Marshal(item.Fields)
			if err != nil {
				return fmt.Errorf("encode item %s: %w", item.ID, err)
			}
			row := itemRow{ID: item.ID, Fields: string(fields)}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("write item %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

// Close closes the underlying connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
