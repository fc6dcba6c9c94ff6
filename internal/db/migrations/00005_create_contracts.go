package migrations

// Contracts persist AI-drafted documents: prose sections plus the variable
// mapping. Section content keeps its [variable] placeholders so that edits to
// the mapping propagate on every render.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateContracts, downCreateContracts)
}

func upCreateContracts(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS contracts (
    id         %s PRIMARY KEY,
    owner_id   %s NOT NULL,
    title      %s NOT NULL,
    sections   %s NOT NULL,
    variables  %s NOT NULL,
    created_at %s NOT NULL,
    updated_at %s NOT NULL
)`, idColumn(), idColumn(), varchar(255), textColumn(), textColumn(),
		timestampColumn(), timestampColumn())

	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create contracts table: %w", err)
	}
	_, err := tx.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS contracts_owner_idx ON contracts (owner_id)`)
	return err
}

func downCreateContracts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS contracts`)
	return err
}
