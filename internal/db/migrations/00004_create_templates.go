package migrations

// Templates store their section/field declarations as a JSON document column.
// Records are opaque to the database; the application owns the shape.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateTemplates, downCreateTemplates)
}

func upCreateTemplates(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS templates (
    id            %s PRIMARY KEY,
    owner_id      %s NOT NULL,
    title         %s NOT NULL,
    description   %s NOT NULL DEFAULT '',
    sections      %s NOT NULL,
    html_template %s NOT NULL,
    source        %s NOT NULL DEFAULT 'manual',
    created_at    %s NOT NULL,
    updated_at    %s NOT NULL
)`, idColumn(), idColumn(), varchar(255), varchar(1024), textColumn(), textColumn(),
		varchar(16), timestampColumn(), timestampColumn())

	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create templates table: %w", err)
	}
	_, err := tx.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS templates_owner_idx ON templates (owner_id)`)
	return err
}

func downCreateTemplates(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS templates`)
	return err
}
