package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

//go:embed scripts/*.sql
var embeddedScripts embed.FS

const (
	scriptsDir = "scripts"
	// SourceScriptsPath is where `migrate create` writes new files, relative to the repo root.
	SourceScriptsPath = "internal/infrastructure/migration/scripts"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

// GormAutoMigrateStrategy syncs the schema from the gorm models. Used in development and tests.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.WithComponent("migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("starting gorm auto migration", "models_count", len(all))
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// GooseStrategy runs the versioned SQL scripts embedded in the binary.
type GooseStrategy struct {
	dialect string
	logger  logger.Interface
}

func NewGooseStrategy() *GooseStrategy {
	return &GooseStrategy{
		dialect: "mysql",
		logger:  logger.WithComponent("migration.goose"),
	}
}

func (s *GooseStrategy) prepare() error {
	goose.SetBaseFS(embeddedScripts)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}
	s.logger.Infow("current migration status", "version", currentVersion)

	if err := goose.Up(sqlDB, scriptsDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, scriptsDir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return 0, err
	}
	return goose.GetDBVersion(sqlDB)
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}
	if err := goose.Status(sqlDB, scriptsDir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes a new timestamped SQL script into dir on the local filesystem.
func (s *GooseStrategy) Create(dir, name string) error {
	goose.SetBaseFS(nil)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	s.logger.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}
