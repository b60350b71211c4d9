package db

import (
	"context"
	"embed"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/funkybooboo/alle-sub000/internal/config"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// ConnectDB opens the configured SQL database and applies the schema.
func ConnectDB(ctx context.Context, conf *config.Config) (*sqlx.DB, error) {
	dsn := conf.DatabaseDSN
	if conf.StorageDriver == config.StorageMySQL && !strings.Contains(dsn, "parseTime") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "parseTime=true"
	}

	db, err := sqlx.ConnectContext(ctx, conf.StorageDriver, dsn)
	if err != nil {
		return nil, err
	}

	if conf.StorageDriver == config.StorageSQLite {
		// sqlite serialises writers; one connection also keeps ":memory:" databases shared.
		db.SetMaxOpenConns(1)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs the embedded schema for the connection's driver. Statements
// are idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	content, err := schemaFS.ReadFile("schema/" + db.DriverName() + ".sql")
	if err != nil {
		return fmt.Errorf("no schema for driver %q: %w", db.DriverName(), err)
	}

	for _, stmt := range strings.Split(string(content), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
