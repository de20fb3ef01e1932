package database

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/campusseed/internal/database/common"
	"github.com/Lumos-Labs-HQ/campusseed/internal/database/mysql"
	"github.com/Lumos-Labs-HQ/campusseed/internal/database/postgres"
	"github.com/Lumos-Labs-HQ/campusseed/internal/database/sqlite"
)

func NewAdapter(provider string) (DatabaseAdapter, error) {
	switch provider {
	case "mysql":
		return mysql.New(), nil
	case "postgresql", "postgres":
		return postgres.New(), nil
	case "sqlite", "sqlite3":
		return sqlite.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}

// ApplySchema creates every table of the university schema that does not
// exist yet. Statements run one by one outside a transaction since MySQL
// commits DDL implicitly anyway.
func ApplySchema(ctx context.Context, adapter DatabaseAdapter) error {
	statements := common.SplitStatements(adapter.SchemaSQL())
	for i, stmt := range statements {
		if _, err := adapter.DB().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}
	return nil
}
