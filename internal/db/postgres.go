package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
	"github.com/brandcopilot/brand-copilot/internal/utils"
)

type Service struct {
	db     *gorm.DB
	log    *logger.Logger
	driver string
}

// New connects to the configured store. Postgres is the hosted default;
// DB_DRIVER=sqlite keeps hackathon demos runnable without a server.
func New(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	driver := strings.ToLower(utils.GetEnv("DB_DRIVER", "postgres", log))

	var (
		gdb *gorm.DB
		err error
	)
	switch driver {
	case "sqlite":
		path := utils.GetEnv("SQLITE_PATH", "brandcopilot.db", log)
		serviceLog.Info("Connecting to SQLite...", "path", path)
		gdb, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		driver = "postgres"
		host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
		port := utils.GetEnv("POSTGRES_PORT", "5432", log)
		user := utils.GetEnv("POSTGRES_USER", "postgres", log)
		password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		name := utils.GetEnv("POSTGRES_NAME", "brandcopilot", log)

		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		serviceLog.Info("Connecting to Postgres...", "host", host, "db", name)
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
		})
	}
	if err != nil {
		serviceLog.Error("Failed to connect to database", "driver", driver, "error", err)
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	return &Service{db: gdb, log: serviceLog, driver: driver}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.Project{},
		&types.Brief{},
		&types.StrategicAnalysis{},
		&types.GeneratedAsset{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}

	if s.driver != "postgres" {
		return nil
	}

	// Asset and analysis rows must reference real parents. The hosted
	// original never validated these links; enforce them at the store.
	s.log.Info("Configuring foreign key relationships...")
	constraints := []struct {
		name string
		ddl  string
	}{
		{"fk_brief_project_id", `
			ALTER TABLE "brief"
			ADD CONSTRAINT "fk_brief_project_id"
			FOREIGN KEY ("project_id") REFERENCES "project"("id")
			ON DELETE SET NULL`},
		{"fk_strategic_analysis_brief_id", `
			ALTER TABLE "strategic_analysis"
			ADD CONSTRAINT "fk_strategic_analysis_brief_id"
			FOREIGN KEY ("brief_id") REFERENCES "brief"("id")
			ON DELETE CASCADE`},
		{"fk_generated_asset_project_id", `
			ALTER TABLE "generated_asset"
			ADD CONSTRAINT "fk_generated_asset_project_id"
			FOREIGN KEY ("project_id") REFERENCES "project"("id")
			ON DELETE SET NULL`},
		{"fk_generated_asset_brief_id", `
			ALTER TABLE "generated_asset"
			ADD CONSTRAINT "fk_generated_asset_brief_id"
			FOREIGN KEY ("brief_id") REFERENCES "brief"("id")
			ON DELETE SET NULL`},
	}
	for _, c := range constraints {
		var exists bool
		if err := s.db.Raw(
			`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`, c.name,
		).Scan(&exists).Error; err != nil {
			return fmt.Errorf("check constraint %s: %w", c.name, err)
		}
		if exists {
			continue
		}
		if err := s.db.Exec(c.ddl).Error; err != nil {
			return fmt.Errorf("add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}

func (s *Service) Driver() string {
	return s.driver
}

// Ping reports whether the underlying connection is usable, for /health.
func (s *Service) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
