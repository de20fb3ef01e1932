package store

import (
	"context"
	"fmt"
)

type memTable struct {
	def    TableDef
	rows   []map[string]any
	nextID int64
}

// Memory is an in-process Store. It assigns identities, enforces unique
// columns and foreign keys, and keeps a committed watermark per table so
// Close can discard uncommitted rows the way a rolled back transaction does.
// Rows stay readable after Close.
type Memory struct {
	tables    map[string]*memTable
	committed map[string]int
	nextIDs   map[string]int64
	commits   int
	closed    bool

	// FailInsert, when set, is consulted before every insert; a non-nil
	// result is returned as the insert error.
	FailInsert func(table string) error
}

func NewMemory() *Memory {
	m := &Memory{
		tables:    make(map[string]*memTable),
		committed: make(map[string]int),
		nextIDs:   make(map[string]int64),
	}
	for _, def := range Tables {
		m.tables[def.Name] = &memTable{def: def, nextID: 1}
		m.nextIDs[def.Name] = 1
	}
	return m
}

func (m *Memory) table(name string) (*memTable, error) {
	t, ok := m.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return t, nil
}

func (m *Memory) Insert(ctx context.Context, table string, columns []string, rows [][]any, mode InsertMode) (int64, error) {
	if m.closed {
		return 0, ErrClosed
	}
	t, err := m.table(table)
	if err != nil {
		return 0, err
	}
	if err := checkColumns(t.def, columns...); err != nil {
		return 0, err
	}
	if m.FailInsert != nil {
		if err := m.FailInsert(table); err != nil {
			return 0, err
		}
	}

	var inserted int64
	for i, values := range rows {
		if len(values) != len(columns) {
			return inserted, fmt.Errorf("%s row %d: expected %d values, got %d", table, i, len(columns), len(values))
		}

		row := make(map[string]any, len(columns)+1)
		for j, c := range columns {
			row[c] = values[j]
		}

		if col, dup := m.duplicate(t, row); dup {
			if mode == ModeIgnore {
				continue
			}
			return inserted, fmt.Errorf("%w: duplicate %s.%s = %v", ErrConstraint, table, col, row[col])
		}
		if err := m.checkReferences(t, row); err != nil {
			return inserted, err
		}

		row[t.def.IDColumn] = t.nextID
		t.nextID++
		t.rows = append(t.rows, row)
		inserted++
	}
	return inserted, nil
}

func (m *Memory) duplicate(t *memTable, row map[string]any) (string, bool) {
	for _, col := range t.def.Unique {
		v, ok := row[col]
		if !ok || v == nil {
			continue
		}
		for _, existing := range t.rows {
			if equal(existing[col], v) {
				return col, true
			}
		}
	}
	return "", false
}

func (m *Memory) checkReferences(t *memTable, row map[string]any) error {
	for _, fk := range t.def.ForeignKeys {
		v, ok := row[fk.Column]
		if !ok || v == nil {
			continue
		}
		ref := m.tables[fk.Table]
		found := false
		for _, r := range ref.rows {
			if equal(r[ref.def.IDColumn], v) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s.%s = %v has no row in %s", ErrConstraint, t.def.Name, fk.Column, v, fk.Table)
		}
	}
	return nil
}

func (m *Memory) Lookup(ctx context.Context, table, nameColumn string) (map[string]int64, error) {
	t, err := m.table(table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(t.def, nameColumn); err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(t.rows))
	for _, row := range t.rows {
		if v := row[nameColumn]; v != nil {
			result[fmt.Sprint(v)] = row[t.def.IDColumn].(int64)
		}
	}
	return result, nil
}

func (m *Memory) IDs(ctx context.Context, table string) ([]int64, error) {
	t, err := m.table(table)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(t.rows))
	for _, row := range t.rows {
		ids = append(ids, row[t.def.IDColumn].(int64))
	}
	return ids, nil
}

func (m *Memory) IDsWhere(ctx context.Context, table, column string, value any) ([]int64, error) {
	t, err := m.table(table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(t.def, column); err != nil {
		return nil, err
	}
	var ids []int64
	for _, row := range t.rows {
		if equal(row[column], value) {
			ids = append(ids, row[t.def.IDColumn].(int64))
		}
	}
	return ids, nil
}

func (m *Memory) Pairs(ctx context.Context, table, refColumn string) ([]Pair, error) {
	t, err := m.table(table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(t.def, refColumn); err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, len(t.rows))
	for _, row := range t.rows {
		ref, _ := toInt64(row[refColumn])
		pairs = append(pairs, Pair{ID: row[t.def.IDColumn].(int64), Ref: ref})
	}
	return pairs, nil
}

func (m *Memory) Values(ctx context.Context, table, column string) ([]string, error) {
	t, err := m.table(table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(t.def, column); err != nil {
		return nil, err
	}
	var values []string
	for _, row := range t.rows {
		if v := row[column]; v != nil {
			values = append(values, fmt.Sprint(v))
		}
	}
	return values, nil
}

func (m *Memory) Count(ctx context.Context, table string) (int64, error) {
	t, err := m.table(table)
	if err != nil {
		return 0, err
	}
	return int64(len(t.rows)), nil
}

// Rows returns copies of the rows of table in insertion order.
func (m *Memory) Rows(table string) []map[string]any {
	t, ok := m.tables[table]
	if !ok {
		return nil
	}
	out := make([]map[string]any, len(t.rows))
	for i, row := range t.rows {
		cp := make(map[string]any, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}

// Commits reports how many times Commit succeeded.
func (m *Memory) Commits() int {
	return m.commits
}

func (m *Memory) Commit(ctx context.Context) error {
	if m.closed {
		return ErrClosed
	}
	for name, t := range m.tables {
		m.committed[name] = len(t.rows)
		m.nextIDs[name] = t.nextID
	}
	m.commits++
	return nil
}

func (m *Memory) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	for name, t := range m.tables {
		t.rows = t.rows[:m.committed[name]]
		t.nextID = m.nextIDs[name]
	}
	return nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func equal(a, b any) bool {
	if x, ok := toInt64(a); ok {
		y, ok := toInt64(b)
		return ok && x == y
	}
	return a == b
}

var _ Store = (*Memory)(nil)
