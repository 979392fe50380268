// Package cli holds the cobra commands of the backoffice binary.
package cli

import (
	"fmt"

	"github.com/lumenworks/backoffice/internal/infrastructure/config"
	"github.com/lumenworks/backoffice/internal/infrastructure/database"
	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// Bootstrap loads configuration, initializes logging and the business
// timezone, and opens the database when withDB is set.
func Bootstrap(env, configPath string, withDB bool) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if withDB {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}
	return cfg, log, nil
}
