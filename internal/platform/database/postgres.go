package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/RJohnPaul/dms/internal/domain/model"
	"github.com/RJohnPaul/dms/internal/platform/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

//go:embed schema.sql
var schemaSQL string

var DB *sql.DB

// Connect opens the pool. The open-connection bound is the only admission
// limit the API has.
func Connect() {
	var err error
	DB, err = sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		slog.Error("Error opening database", "error", err)
		os.Exit(1)
	}

	DB.SetMaxOpenConns(config.AppConfig.DBMaxOpenConns)
	DB.SetMaxIdleConns(config.AppConfig.DBMaxOpenConns)
	DB.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err = DB.Ping(); err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}

	slog.Info("Connected to PostgreSQL", "host", config.AppConfig.DBHost, "db", config.AppConfig.DBName, "max_open_conns", config.AppConfig.DBMaxOpenConns)
}

// InitSchema creates missing tables and seeds the resource catalog. It never
// alters existing tables.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("database.InitSchema: %w", err)
	}
	for _, name := range model.DefaultResources {
		_, err := db.ExecContext(ctx,
			`INSERT INTO resources (name) SELECT $1::text WHERE NOT EXISTS (SELECT 1 FROM resources WHERE name = $1::text)`, name)
		if err != nil {
			return fmt.Errorf("database.InitSchema seed %q: %w", name, err)
		}
	}
	return nil
}

func Close() {
	if DB != nil {
		DB.Close()
		slog.Info("Database connection closed")
	}
}
