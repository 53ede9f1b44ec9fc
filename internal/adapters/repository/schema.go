package repository

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

// EnsureSchema creates the tables used by the Postgres repositories. Every
// statement is idempotent.
func EnsureSchema(ctx context.Context, db *sqlx.DB, log *zap.Logger) error {
	log.Info("Applying database schema...")

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Error("Database schema failed", zap.Error(err))
		return fmt.Errorf("repository: apply schema: %w", err)
	}

	log.Info("Database schema applied")
	return nil
}
