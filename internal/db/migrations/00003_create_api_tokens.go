package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateAPITokens, downCreateAPITokens)
}

func upCreateAPITokens(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS api_tokens (
    id           %s PRIMARY KEY,
    user_id      %s NOT NULL,
    name         %s NOT NULL,
    token_hash   %s NOT NULL,
    last_used_at %s NULL,
    expires_at   %s NULL,
    created_at   %s NOT NULL,
    revoked_at   %s NULL
)`, idColumn(), idColumn(), varchar(255), varchar(64),
		timestampColumn(), timestampColumn(), timestampColumn(), timestampColumn())

	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create api_tokens table: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS api_tokens_hash_idx ON api_tokens (token_hash)`); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS api_tokens_user_idx ON api_tokens (user_id)`)
	return err
}

func downCreateAPITokens(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS api_tokens`)
	return err
}
