package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Lumos-Labs-HQ/campusseed/internal/database"
	"github.com/Masterminds/squirrel"
)

// SQL is a Store over a relational backend. All statements of one unit of
// work share a single transaction that is opened on first use.
type SQL struct {
	adapter   database.DatabaseAdapter
	tx        *sql.Tx
	batchSize int
	closed    bool
}

// Open connects to the backend and pings it; nothing is returned on failure.
func Open(ctx context.Context, provider, url string, batchSize int) (*SQL, error) {
	adapter, err := database.NewAdapter(provider)
	if err != nil {
		return nil, err
	}

	if err := adapter.Connect(ctx, url); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewSQL(adapter, batchSize), nil
}

// NewSQL wraps an already connected adapter.
func NewSQL(adapter database.DatabaseAdapter, batchSize int) *SQL {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &SQL{adapter: adapter, batchSize: batchSize}
}

func (s *SQL) Provider() string {
	return s.adapter.Provider()
}

// Migrate creates missing tables. It must run before the first unit of work
// since the pool holds a single connection.
func (s *SQL) Migrate(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	if s.tx != nil {
		return errors.New("cannot migrate inside an open transaction")
	}
	return database.ApplySchema(ctx, s.adapter)
}

func (s *SQL) begin(ctx context.Context) (*sql.Tx, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.tx != nil {
		return s.tx, nil
	}
	tx, err := s.adapter.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	s.tx = tx
	return tx, nil
}

func (s *SQL) Insert(ctx context.Context, table string, columns []string, rows [][]any, mode InsertMode) (int64, error) {
	def, err := Table(table)
	if err != nil {
		return 0, err
	}
	if err := checkColumns(def, columns...); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}

	var inserted int64
	for start := 0; start < len(rows); start += s.batchSize {
		end := min(start+s.batchSize, len(rows))

		b := s.adapter.Builder().Insert(s.adapter.QuoteIdentifier(table)).Columns(columns...)
		for i, row := range rows[start:end] {
			if len(row) != len(columns) {
				return inserted, fmt.Errorf("%s row %d: expected %d values, got %d", table, start+i, len(columns), len(row))
			}
			b = b.Values(row...)
		}
		if mode == ModeIgnore {
			b = s.adapter.InsertIgnore(b)
		}

		query, args, err := b.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("failed to build insert for %s: %w", table, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return inserted, fmt.Errorf("batch insert into %s failed: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			n = int64(end - start)
		}
		inserted += n
	}

	return inserted, nil
}

func (s *SQL) selectFrom(def TableDef, columns ...string) squirrel.SelectBuilder {
	return s.adapter.Builder().Select(columns...).From(s.adapter.QuoteIdentifier(def.Name)).OrderBy(def.IDColumn)
}

func (s *SQL) query(ctx context.Context, b squirrel.SelectBuilder, scan func(*sql.Rows) error) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *SQL) Lookup(ctx context.Context, table, nameColumn string) (map[string]int64, error) {
	def, err := Table(table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(def, nameColumn); err != nil {
		return nil, err
	}

	result := make(map[string]int64)
	err = s.query(ctx, s.selectFrom(def, nameColumn, def.IDColumn), func(rows *sql.Rows) error {
		var name string
		var id int64
		if err := rows.Scan(&name, &id); err != nil {
			return err
		}
		result[name] = id
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lookup %s.%s: %w", table, nameColumn, err)
	}
	return result, nil
}

func (s *SQL) IDs(ctx context.Context, table string) ([]int64, error) {
	def, err := Table(table)
	if err != nil {
		return nil, err
	}
	return s.ids(ctx, def, s.selectFrom(def, def.IDColumn))
}

func (s *SQL) IDsWhere(ctx context.Context, table, column string, value any) ([]int64, error) {
	def, err := Table(table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(def, column); err != nil {
		return nil, err
	}
	return s.ids(ctx, def, s.selectFrom(def, def.IDColumn).Where(squirrel.Eq{column: value}))
}

func (s *SQL) ids(ctx context.Context, def TableDef, b squirrel.SelectBuilder) ([]int64, error) {
	var ids []int64
	err := s.query(ctx, b, func(rows *sql.Rows) error {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s ids: %w", def.Name, err)
	}
	return ids, nil
}

func (s *SQL) Pairs(ctx context.Context, table, refColumn string) ([]Pair, error) {
	def, err := Table(table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(def, refColumn); err != nil {
		return nil, err
	}

	var pairs []Pair
	err = s.query(ctx, s.selectFrom(def, def.IDColumn, refColumn), func(rows *sql.Rows) error {
		var p Pair
		if err := rows.Scan(&p.ID, &p.Ref); err != nil {
			return err
		}
		pairs = append(pairs, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s.%s pairs: %w", table, refColumn, err)
	}
	return pairs, nil
}

func (s *SQL) Values(ctx context.Context, table, column string) ([]string, error) {
	def, err := Table(table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(def, column); err != nil {
		return nil, err
	}

	var values []string
	b := s.selectFrom(def, column).Where(squirrel.NotEq{column: nil})
	err = s.query(ctx, b, func(rows *sql.Rows) error {
		var v string
		if err := rows.Scan(&v); err != nil {
			return err
		}
		values = append(values, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s.%s: %w", table, column, err)
	}
	return values, nil
}

func (s *SQL) Count(ctx context.Context, table string) (int64, error) {
	def, err := Table(table)
	if err != nil {
		return 0, err
	}

	var count int64
	b := s.adapter.Builder().Select("COUNT(*)").From(s.adapter.QuoteIdentifier(def.Name))
	err = s.query(ctx, b, func(rows *sql.Rows) error {
		return rows.Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

func (s *SQL) Commit(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQL) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var rbErr error
	if s.tx != nil {
		if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			rbErr = fmt.Errorf("failed to roll back: %w", err)
		}
		s.tx = nil
	}
	return errors.Join(rbErr, s.adapter.Close())
}

var _ Store = (*SQL)(nil)
