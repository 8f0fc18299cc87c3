package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/foomo/workspace-sidebar/sidebar"
)

type record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (record) TableName() string {
	return "kv_state"
}

// SQLiteStore keeps the expansion state in a single-row key-value table.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the database at path and migrates the
// key-value table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state database: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load returns the persisted expansion set, or the empty set when the key has
// never been written.
func (s *SQLiteStore) Load(ctx context.Context) (sidebar.Expansion, error) {
	var rec record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", ExpansionKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sidebar.Expansion{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load expansion state: %w", err)
	}

	var expansion sidebar.Expansion
	if err := json.Unmarshal([]byte(rec.Value), &expansion); err != nil {
		return nil, fmt.Errorf("failed to decode expansion state: %w", err)
	}
	return expansion, nil
}

// Save writes the expansion set, replacing whatever was stored before.
func (s *SQLiteStore) Save(ctx context.Context, expansion sidebar.Expansion) error {
	if expansion == nil {
		expansion = sidebar.Expansion{}
	}
	value, err := json.Marshal(expansion)
	if err != nil {
		return fmt.Errorf("failed to encode expansion state: %w", err)
	}

	rec := record{Key: ExpansionKey, Value: string(value)}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save expansion state: %w", err)
	}
	return nil
}
