// Package store is the seeder's only path to the database. Stages talk to a
// Store; the SQL implementation drives a real backend through a dialect
// adapter, the Memory implementation backs tests.
package store

import (
	"context"
	"errors"
)

type InsertMode int

const (
	// ModeStrict propagates any constraint violation.
	ModeStrict InsertMode = iota
	// ModeIgnore skips rows that collide with a unique column.
	ModeIgnore
)

var (
	ErrUnknownTable  = errors.New("unknown table")
	ErrUnknownColumn = errors.New("unknown column")
	ErrConstraint    = errors.New("constraint violation")
	ErrClosed        = errors.New("store is closed")
)

// Pair is a row id together with one of its foreign-key columns.
type Pair struct {
	ID  int64
	Ref int64
}

type Store interface {
	// Insert writes rows in batches and reports how many were actually
	// added; rows skipped under ModeIgnore are not counted.
	Insert(ctx context.Context, table string, columns []string, rows [][]any, mode InsertMode) (int64, error)

	// Lookup maps every value of nameColumn to its row id.
	Lookup(ctx context.Context, table, nameColumn string) (map[string]int64, error)
	IDs(ctx context.Context, table string) ([]int64, error)
	IDsWhere(ctx context.Context, table, column string, value any) ([]int64, error)
	Pairs(ctx context.Context, table, refColumn string) ([]Pair, error)
	Values(ctx context.Context, table, column string) ([]string, error)
	Count(ctx context.Context, table string) (int64, error)

	// Commit makes everything written so far durable.
	Commit(ctx context.Context) error
	// Close releases the backend, rolling back uncommitted work.
	Close() error
}
