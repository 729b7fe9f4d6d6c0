package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"wordlens/config"
	"wordlens/internal/adapter/store"
)

// openStore opens the report history under the root directory, creating
// it on first use and bringing its schema up to date.
func openStore() (*store.BoltStore, error) {
	cfg := GetConfig()
	root := GetRootDir()

	if err := config.EnsureDir(root); err != nil {
		return nil, fmt.Errorf("failed to create .wordlens directory: %w", err)
	}

	st, err := store.NewBoltStore(config.ReportDBPath(root), cfg.Store.Compress)
	if err != nil {
		return nil, fmt.Errorf("failed to open report store: %w", err)
	}

	migration, err := st.CheckMigration(cfg)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to check migration: %w", err)
	}

	if migration.NeedsRebuild {
		log.Warn().Str("reason", migration.Reason).Msg("stored reports are stale, clearing history")
		if err := st.Clear(); err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to clear history: %w", err)
		}
	} else if migration.NeedsMigration {
		log.Info().Str("reason", migration.Reason).Msg("running schema migration")
	}

	if migration.NeedsRebuild || migration.NeedsMigration {
		if err := st.Migrate(cfg); err != nil {
			st.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return st, nil
}

// openExistingStore opens the history only if it has been created.
func openExistingStore() (*store.BoltStore, error) {
	if _, err := os.Stat(config.ReportDBPath(GetRootDir())); os.IsNotExist(err) {
		return nil, fmt.Errorf("no report history found. Run 'wordlens batch' or 'wordlens analyze --save' first")
	}
	return openStore()
}
