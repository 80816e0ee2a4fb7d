// Package store persists address-book items. A Store loads and saves
// the whole book at once: address books are small, and whole-book
// snapshots keep every backend trivially consistent.
//
// Four backends are provided: the classic flat-text datafile (default),
// BadgerDB, SQLite via GORM, and an in-memory store for tests.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gmarchetti/rolodex/pkg/book"
)

// Store is the persistence contract for an address book.
type Store interface {
	// Load returns every item in the book.
	Load(ctx context.Context) ([]*book.Item, error)

	// Save replaces the persisted book with items.
	Save(ctx context.Context, items []*book.Item) error

	// Close releases backend resources.
	Close() error
}

// Type selects a persistence backend.
type Type string

const (
	// TypeFile is the flat-text datafile backend (default).
	TypeFile Type = "file"

	// TypeBadger is the BadgerDB key-value backend.
	TypeBadger Type = "badger"

	// TypeSQLite is the SQLite backend via GORM.
	TypeSQLite Type = "sqlite"

	// TypeMemory keeps items in process memory only.
	TypeMemory Type = "memory"
)

// Config selects and locates a backend.
type Config struct {
	Type Type   `mapstructure:"type" validate:"omitempty,oneof=file badger sqlite memory" yaml:"type"`
	Path string `mapstructure:"path" yaml:"path"`
}

// ApplyDefaults fills in missing configuration with default values.
func (c *Config) ApplyDefaults() {
	if c.Type == "" {
		c.Type = TypeFile
	}
	if c.Path == "" && c.Type != TypeMemory {
		c.Path = defaultPath(c.Type)
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Type {
	case TypeFile, TypeBadger, TypeSQLite:
		if c.Path == "" {
			return fmt.Errorf("%s store requires a path", c.Type)
		}
	case TypeMemory:
	default:
		return fmt.Errorf("unsupported store type: %s", c.Type)
	}
	return nil
}

// Open constructs the configured backend, creating parent directories
// as needed.
func Open(cfg Config) (Store, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	switch cfg.Type {
	case TypeFile:
		return NewFileStore(cfg.Path), nil
	case TypeBadger:
		return OpenBadgerStore(cfg.Path)
	case TypeSQLite:
		return OpenSQLiteStore(cfg.Path)
	case TypeMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
}

func defaultPath(t Type) string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	base := filepath.Join(configDir, "rolodex")

	switch t {
	case TypeBadger:
		return filepath.Join(base, "addressbook.badger")
	case TypeSQLite:
		return filepath.Join(base, "addressbook.db")
	default:
		return filepath.Join(base, "addressbook")
	}
}
