package database

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
)

// DatabaseAdapter hides the dialect differences the seeder cares about:
// connection setup, placeholder style, identifier quoting, the
// "insert unless it already exists" form and the schema DDL.
type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	DB() *sql.DB
	Provider() string

	// Builder returns a statement builder using the dialect's placeholders.
	Builder() squirrel.StatementBuilderType
	// InsertIgnore turns b into an insert that skips rows violating a
	// unique constraint instead of failing.
	InsertIgnore(b squirrel.InsertBuilder) squirrel.InsertBuilder
	QuoteIdentifier(name string) string

	// SchemaSQL returns the CREATE TABLE script for the university schema.
	SchemaSQL() string
}
