package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
)

type openFunc func(t *testing.T) store.Store

func openMemory(t *testing.T) store.Store {
	return store.NewMemory()
}

func openSQLite(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(ctx, "sqlite", "sqlite://:memory:", 2)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	return s
}

var backends = map[string]openFunc{
	"memory": openMemory,
	"sqlite": openSQLite,
}

func TestInsertIgnoreSkipsDuplicates(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			rows := [][]any{{"First Year"}, {"Second Year"}, {"Third Year"}}
			n, err := s.Insert(ctx, "levels", []string{"level_name"}, rows, store.ModeIgnore)
			if err != nil {
				t.Fatalf("Insert failed: %v", err)
			}
			if n != 3 {
				t.Errorf("Expected 3 inserted, got %d", n)
			}

			n, err = s.Insert(ctx, "levels", []string{"level_name"}, rows, store.ModeIgnore)
			if err != nil {
				t.Fatalf("Second insert failed: %v", err)
			}
			if n != 0 {
				t.Errorf("Expected 0 inserted on re-run, got %d", n)
			}

			count, _ := s.Count(ctx, "levels")
			if count != 3 {
				t.Errorf("Expected 3 levels, got %d", count)
			}
		})
	}
}

func TestInsertStrictRejectsDuplicates(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			cols := []string{"bus_number", "capacity"}
			if _, err := s.Insert(ctx, "buses", cols, [][]any{{"CPUT-B001", 40}}, store.ModeStrict); err != nil {
				t.Fatalf("Insert failed: %v", err)
			}
			if _, err := s.Insert(ctx, "buses", cols, [][]any{{"CPUT-B001", 40}}, store.ModeStrict); err == nil {
				t.Error("Expected duplicate bus number to fail in strict mode")
			}
		})
	}
}

func TestInsertRejectsDanglingReference(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			_, err := s.Insert(ctx, "courses", []string{"course_name", "department_id"},
				[][]any{{"Diploma in ICT", int64(99)}}, store.ModeStrict)
			if err == nil {
				t.Error("Expected foreign key violation")
			}
		})
	}
}

func TestReads(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			if _, err := s.Insert(ctx, "departments", []string{"department_name"},
				[][]any{{"Information Technology"}, {"AI & Robotics"}}, store.ModeIgnore); err != nil {
				t.Fatalf("Insert departments failed: %v", err)
			}
			depts, err := s.Lookup(ctx, "departments", "department_name")
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			if len(depts) != 2 {
				t.Fatalf("Expected 2 departments, got %v", depts)
			}

			it := depts["Information Technology"]
			ai := depts["AI & Robotics"]
			courses := [][]any{
				{"Diploma in ICT", it},
				{"BSc Robotics", ai},
				{"Advanced Diploma in ICT", it},
			}
			if _, err := s.Insert(ctx, "courses", []string{"course_name", "department_id"}, courses, store.ModeStrict); err != nil {
				t.Fatalf("Insert courses failed: %v", err)
			}

			ids, err := s.IDs(ctx, "courses")
			if err != nil || len(ids) != 3 {
				t.Fatalf("IDs = %v, %v; want 3 ids", ids, err)
			}

			where, err := s.IDsWhere(ctx, "courses", "department_id", it)
			if err != nil {
				t.Fatalf("IDsWhere failed: %v", err)
			}
			if len(where) != 2 {
				t.Errorf("Expected 2 IT courses, got %v", where)
			}

			pairs, err := s.Pairs(ctx, "courses", "department_id")
			if err != nil {
				t.Fatalf("Pairs failed: %v", err)
			}
			if len(pairs) != 3 || pairs[1].Ref != ai {
				t.Errorf("Unexpected pairs: %v", pairs)
			}

			names, err := s.Values(ctx, "courses", "course_name")
			if err != nil {
				t.Fatalf("Values failed: %v", err)
			}
			if len(names) != 3 || names[0] != "Diploma in ICT" {
				t.Errorf("Unexpected values: %v", names)
			}
		})
	}
}

func TestUnknownTableAndColumn(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			if _, err := s.IDs(ctx, "users"); !errors.Is(err, store.ErrUnknownTable) {
				t.Errorf("Expected ErrUnknownTable, got %v", err)
			}
			_, err := s.Insert(ctx, "levels", []string{"level_name; DROP TABLE levels"}, [][]any{{"x"}}, store.ModeStrict)
			if !errors.Is(err, store.ErrUnknownColumn) {
				t.Errorf("Expected ErrUnknownColumn, got %v", err)
			}
		})
	}
}

func TestCloseRollsBackUncommitted(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	cols := []string{"point_name", "location"}
	if _, err := m.Insert(ctx, "shuttle_points", cols, [][]any{{"CPUT Bellville", "Symphony Way"}}, store.ModeIgnore); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := m.Commit(ctx); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if _, err := m.Insert(ctx, "shuttle_points", cols, [][]any{{"CPUT District Six", "Campus Entrance"}}, store.ModeIgnore); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	m.Close()

	count, _ := m.Count(ctx, "shuttle_points")
	if count != 1 {
		t.Errorf("Expected only the committed row to survive, got %d rows", count)
	}
	if m.Commits() != 1 {
		t.Errorf("Expected 1 commit, got %d", m.Commits())
	}
	if _, err := m.Insert(ctx, "shuttle_points", cols, [][]any{{"x", "y"}}, store.ModeIgnore); !errors.Is(err, store.ErrClosed) {
		t.Errorf("Expected ErrClosed after Close, got %v", err)
	}
}

func TestSQLCommitAndReopenTransaction(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, "sqlite", "sqlite://:memory:", 500)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	rows := make([][]any, 0, 7)
	for _, q := range []string{"Diploma in IT", "Diploma in ICT", "BTech", "BEng", "Advanced Diploma", "Postgraduate Diploma", "Masters"} {
		rows = append(rows, []any{q})
	}
	n, err := s.Insert(ctx, "qualifications", []string{"qualification_name"}, rows, store.ModeStrict)
	if err != nil || n != 7 {
		t.Fatalf("Insert = %d, %v; want 7 rows", n, err)
	}
	if err := s.Commit(ctx); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if err := s.Migrate(ctx); err != nil {
		t.Errorf("Migrate between units of work failed: %v", err)
	}

	count, err := s.Count(ctx, "qualifications")
	if err != nil || count != 7 {
		t.Errorf("Count = %d, %v; want 7", count, err)
	}
}

func TestOpenUnknownProvider(t *testing.T) {
	if _, err := store.Open(context.Background(), "oracle", "oracle://x", 10); err == nil {
		t.Error("Expected error for unsupported provider")
	}
}
