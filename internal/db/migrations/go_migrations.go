// Package migrations contains dialect-aware Go database migrations that cannot
// be expressed as a single cross-database SQL statement.
package migrations

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect configures the SQL dialect for Go migrations.
// Must be called before goose.Up. Valid values: "sqlite3", "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}

// idColumn returns the column definition for UUID primary keys. MySQL cannot
// index an unbounded TEXT column, so it gets a sized VARCHAR.
func idColumn() string {
	if dialect == "mysql" {
		return "VARCHAR(36)"
	}
	return "TEXT"
}

// timestampColumn returns the column type for UTC timestamps.
func timestampColumn() string {
	switch dialect {
	case "postgres":
		return "TIMESTAMPTZ"
	case "mysql":
		return "TIMESTAMP(6)"
	default: // sqlite3
		return "TIMESTAMP"
	}
}

// textColumn returns the column type for unbounded text. MySQL TEXT caps at
// 64KB which is too small for AI-generated HTML templates.
func textColumn() string {
	if dialect == "mysql" {
		return "MEDIUMTEXT"
	}
	return "TEXT"
}
