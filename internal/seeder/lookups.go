package seeder

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/campusseed/internal/catalog"
	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
)

// Lookups maps reference names to their ids as currently stored.
type Lookups struct {
	Departments    map[string]int64
	Roles          map[string]int64
	Qualifications map[string]int64
	Levels         map[string]int64
}

type lookupTable struct {
	table  string
	column string
	names  func(*catalog.Catalog) []string
	target func(*Lookups) *map[string]int64
}

var lookupTables = []lookupTable{
	{"departments", "department_name", func(c *catalog.Catalog) []string { return c.Departments }, func(l *Lookups) *map[string]int64 { return &l.Departments }},
	{"staff_roles", "role_name", func(c *catalog.Catalog) []string { return c.Roles }, func(l *Lookups) *map[string]int64 { return &l.Roles }},
	{"qualifications", "qualification_name", func(c *catalog.Catalog) []string { return c.Qualifications }, func(l *Lookups) *map[string]int64 { return &l.Qualifications }},
	{"levels", "level_name", func(c *catalog.Catalog) []string { return c.Levels }, func(l *Lookups) *map[string]int64 { return &l.Levels }},
}

// SeedLookups inserts the catalog's reference rows, skipping names that
// already exist, and returns the mapping read back from the store.
func SeedLookups(ctx context.Context, st store.Store, cat *catalog.Catalog) (Lookups, int64, error) {
	var inserted int64
	for _, lt := range lookupTables {
		names := lt.names(cat)
		rows := make([][]any, len(names))
		for i, name := range names {
			rows[i] = []any{name}
		}
		n, err := st.Insert(ctx, lt.table, []string{lt.column}, rows, store.ModeIgnore)
		if err != nil {
			return Lookups{}, inserted, fmt.Errorf("failed to seed %s: %w", lt.table, err)
		}
		inserted += n
	}

	l, err := LoadLookups(ctx, st)
	return l, inserted, err
}

// LoadLookups reads the name to id mappings of all lookup tables.
func LoadLookups(ctx context.Context, st store.Store) (Lookups, error) {
	var l Lookups
	for _, lt := range lookupTables {
		m, err := st.Lookup(ctx, lt.table, lt.column)
		if err != nil {
			return Lookups{}, fmt.Errorf("failed to read %s: %w", lt.table, err)
		}
		*lt.target(&l) = m
	}
	return l, nil
}

func resolve(m map[string]int64, table, name string) (int64, error) {
	id, ok := m[name]
	if !ok {
		return 0, &MissingReferenceError{Table: table, Key: name}
	}
	return id, nil
}

func (l Lookups) Department(name string) (int64, error) {
	return resolve(l.Departments, "departments", name)
}

func (l Lookups) Role(name string) (int64, error) {
	return resolve(l.Roles, "staff_roles", name)
}
