package testutil

import (
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

var (
	dbOnce sync.Once
	db     *gorm.DB
	dbErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.Nop()
}

// DB returns a shared gorm handle against TEST_POSTGRES_DSN, skipping the
// test when the DSN is not configured.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		tb.Skip("TEST_POSTGRES_DSN not set; skipping repo test")
	}
	dbOnce.Do(func() {
		db, dbErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if dbErr != nil {
			return
		}
		dbErr = db.AutoMigrate(
			&types.Project{},
			&types.Brief{},
			&types.StrategicAnalysis{},
			&types.GeneratedAsset{},
		)
		if dbErr != nil {
			return
		}
		// Same referential-integrity constraints the production
		// migration installs.
		for name, ddl := range map[string]string{
			"fk_generated_asset_project_id": `
				ALTER TABLE "generated_asset"
				ADD CONSTRAINT "fk_generated_asset_project_id"
				FOREIGN KEY ("project_id") REFERENCES "project"("id")
				ON DELETE SET NULL`,
			"fk_generated_asset_brief_id": `
				ALTER TABLE "generated_asset"
				ADD CONSTRAINT "fk_generated_asset_brief_id"
				FOREIGN KEY ("brief_id") REFERENCES "brief"("id")
				ON DELETE SET NULL`,
		} {
			var exists bool
			if err := db.Raw(
				`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`, name,
			).Scan(&exists).Error; err != nil {
				dbErr = err
				return
			}
			if exists {
				continue
			}
			if err := db.Exec(ddl).Error; err != nil {
				dbErr = err
				return
			}
		}
	})
	if dbErr != nil {
		tb.Fatalf("init test db: %v", dbErr)
	}
	return db
}

// Tx begins a transaction that is rolled back when the test finishes, so
// tests never leak rows into the shared database.
func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback()
	})
	return tx
}
