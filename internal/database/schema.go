package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptySchema is returned when the schema script has no statements.
var ErrEmptySchema = errors.New("schema script is empty")

// ApplySchemaFile reads the script at path and applies it with ApplySchema.
func ApplySchemaFile(ctx context.Context, db *sql.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return ApplySchema(ctx, db, string(content))
}

// ApplySchema executes the whole script as one batch. A failure part-way
// through leaves whatever the earlier statements created.
func ApplySchema(ctx context.Context, db *sql.DB, script string) error {
	if strings.TrimSpace(script) == "" {
		return ErrEmptySchema
	}
	if _, err := db.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}
