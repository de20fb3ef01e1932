package seeder

import (
	"errors"
	"slices"
	"testing"

	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
)

func TestSchemaInsertionOrder(t *testing.T) {
	order, err := SchemaGraph().BuildInsertionOrder()
	if err != nil {
		t.Fatalf("BuildInsertionOrder failed: %v", err)
	}
	if len(order) != len(store.Tables) {
		t.Fatalf("Expected %d tables, got %d", len(store.Tables), len(order))
	}

	pos := make(map[string]int)
	for i, name := range order {
		pos[name] = i
	}
	for _, def := range store.Tables {
		for _, fk := range def.ForeignKeys {
			if pos[fk.Table] > pos[def.Name] {
				t.Errorf("%s is ordered before %s which it references", def.Name, fk.Table)
			}
		}
	}

	again, _ := SchemaGraph().BuildInsertionOrder()
	if !slices.Equal(order, again) {
		t.Errorf("Insertion order is not stable:\n%v\n%v", order, again)
	}
}

func TestCircularDependency(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable(store.TableDef{Name: "a", ForeignKeys: []store.ForeignKey{{Column: "b_id", Table: "b"}}})
	g.AddTable(store.TableDef{Name: "b", ForeignKeys: []store.ForeignKey{{Column: "a_id", Table: "a"}}})

	if _, err := g.BuildInsertionOrder(); err == nil {
		t.Error("Expected circular dependency error")
	}
}

func TestCheckStageOrder(t *testing.T) {
	s := New(store.NewMemory(), smallCatalog(), testConfig())
	stages := s.Stages()

	if err := SchemaGraph().CheckStageOrder(stages); err != nil {
		t.Fatalf("Default stage order rejected: %v", err)
	}

	// marks before students
	swapped := slices.Clone(stages)
	i := slices.IndexFunc(swapped, func(st Stage) bool { return st.Name == "students" })
	j := slices.IndexFunc(swapped, func(st Stage) bool { return st.Name == "marks" })
	swapped[i], swapped[j] = swapped[j], swapped[i]

	if err := SchemaGraph().CheckStageOrder(swapped); !errors.Is(err, ErrStageOrder) {
		t.Errorf("Expected ErrStageOrder, got %v", err)
	}
}

func TestRunRejectsBadOrderBeforeWriting(t *testing.T) {
	s, m := newTestSeeder(t, smallCatalog(), testConfig())
	stages := s.Stages()
	stages[0], stages[1] = stages[1], stages[0]

	if err := s.RunStages(t.Context(), stages); !errors.Is(err, ErrStageOrder) {
		t.Fatalf("Expected ErrStageOrder, got %v", err)
	}
	if n := count(t, m, "departments"); n != 0 {
		t.Errorf("Expected no rows written, got %d departments", n)
	}
}
