package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUsers, downCreateUsers)
}

func upCreateUsers(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
    id           %s PRIMARY KEY,
    provider     %s NOT NULL,
    subject      %s NOT NULL,
    email        %s NOT NULL,
    display_name %s NOT NULL DEFAULT '',
    role         %s NOT NULL DEFAULT 'user',
    created_at   %s NOT NULL,
    updated_at   %s NOT NULL
)`, idColumn(), varchar(255), varchar(255), varchar(255), varchar(255), varchar(16),
		timestampColumn(), timestampColumn())

	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	_, err := tx.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_provider_subject_idx ON users (provider, subject)`)
	return err
}

func downCreateUsers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS users`)
	return err
}

// varchar returns a sized string column for MySQL and plain TEXT elsewhere.
func varchar(n int) string {
	if dialect == "mysql" {
		return fmt.Sprintf("VARCHAR(%d)", n)
	}
	return "TEXT"
}
