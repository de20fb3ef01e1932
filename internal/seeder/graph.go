package seeder

import (
	"fmt"
	"sort"

	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
)

// DependencyGraph holds the foreign-key dependencies between tables.
type DependencyGraph struct {
	deps map[string][]string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[string][]string),
	}
}

// SchemaGraph builds the graph of the university schema.
func SchemaGraph() *DependencyGraph {
	g := NewDependencyGraph()
	for _, t := range store.Tables {
		g.AddTable(t)
	}
	return g
}

func (g *DependencyGraph) AddTable(table store.TableDef) {
	var deps []string
	for _, fk := range table.ForeignKeys {
		deps = append(deps, fk.Table)
	}
	g.deps[table.Name] = deps
}

// Dependencies returns the tables table references, excluding itself.
func (g *DependencyGraph) Dependencies(table string) []string {
	var out []string
	for _, d := range g.deps[table] {
		if d != table {
			out = append(out, d)
		}
	}
	return out
}

// BuildInsertionOrder returns a topological order of the tables. Ties are
// broken by name so the order is stable between runs.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		temp[tableName] = true
		deps := g.Dependencies(tableName)
		sort.Strings(deps)
		for _, dep := range deps {
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	names := make([]string, 0, len(g.deps))
	for name := range g.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, tableName := range names {
		if !visited[tableName] {
			if err := visit(tableName); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}

// CheckStageOrder verifies that every table a stage reads, and every table
// referenced by a table it writes, is produced by that stage or an earlier
// one. Tables no stage writes are treated as pre-existing.
func (g *DependencyGraph) CheckStageOrder(stages []Stage) error {
	if _, err := g.BuildInsertionOrder(); err != nil {
		return fmt.Errorf("%w: %v", ErrStageOrder, err)
	}

	writer := make(map[string]int)
	for i, st := range stages {
		for _, t := range st.Writes {
			if _, ok := writer[t]; !ok {
				writer[t] = i
			}
		}
	}

	check := func(i int, st Stage, table, why string) error {
		w, ok := writer[table]
		if ok && w > i {
			return fmt.Errorf("%w: stage %s %s %s, which stage %s only writes later",
				ErrStageOrder, st.Name, why, table, stages[w].Name)
		}
		return nil
	}

	for i, st := range stages {
		for _, t := range st.Reads {
			if err := check(i, st, t, "reads"); err != nil {
				return err
			}
		}
		for _, t := range st.Writes {
			for _, dep := range g.Dependencies(t) {
				if err := check(i, st, dep, "writes "+t+" referencing"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
