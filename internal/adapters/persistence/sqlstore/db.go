package sqlstore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Open connects to the SQLite database at dsn, enables WAL and a busy
// timeout, and migrates the schema. File databases get their parent
// directory created. SQLite allows one writer, so the pool holds a single
// connection.
func Open(dsn string, logger *slog.Logger) (*gorm.DB, error) {
	if isFilePath(dsn) {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	gdb, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dsn,
	}, &gorm.Config{Logger: NewGormLogger(logger)})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", dsn, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA busy_timeout=5000;`,
		`PRAGMA foreign_keys=ON;`,
	} {
		if err := gdb.Exec(pragma).Error; err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	if err := Migrate(gdb); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates the tasks table and fills title_fold for rows
// written before the column existed.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&taskRecord{}); err != nil {
		return fmt.Errorf("migrating tasks table: %w", err)
	}

	var stale []taskRecord
	if err := gdb.Select("id", "title").Where("title_fold = '' AND title <> ''").Find(&stale).Error; err != nil {
		return fmt.Errorf("finding unfolded titles: %w", err)
	}
	for _, rec := range stale {
		err := gdb.Model(&taskRecord{}).Where("id = ?", rec.ID).Update("title_fold", foldTitle(rec.Title)).Error
		if err != nil {
			return fmt.Errorf("folding title of task %d: %w", rec.ID, err)
		}
	}
	return nil
}

func isFilePath(dsn string) bool {
	return dsn != MemoryDSN && !strings.HasPrefix(dsn, "file:")
}
