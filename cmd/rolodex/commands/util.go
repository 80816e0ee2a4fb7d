package commands

import (
	"context"
	"fmt"

	"github.com/gmarchetti/rolodex/internal/logger"
	"github.com/gmarchetti/rolodex/pkg/book"
	"github.com/gmarchetti/rolodex/pkg/book/store"
	"github.com/gmarchetti/rolodex/pkg/config"
)

// loadConfig loads the configuration, applies the --datafile override
// and initializes the structured logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, err
	}

	if datafile != "" {
		cfg.Database.Path = datafile
	}

	loggerCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if err := logger.Init(loggerCfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

// openBook opens the configured store and loads the whole book.
// The caller must Close the returned store.
func openBook(ctx context.Context, cfg *config.Config) (*book.Database, store.Store, error) {
	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open addressbook: %w", err)
	}

	items, err := st.Load(ctx)
	if err != nil {
		_ = st.Close()
		return nil, nil, fmt.Errorf("load addressbook: %w", err)
	}

	db := book.NewDatabase()
	db.Load(items)
	return db, st, nil
}

// saveBook persists the whole book back to the store.
func saveBook(ctx context.Context, st store.Store, db *book.Database) error {
	if err := st.Save(ctx, db.Items()); err != nil {
		return fmt.Errorf("save addressbook: %w", err)
	}
	return nil
}
