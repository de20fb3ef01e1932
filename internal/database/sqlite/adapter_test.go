package sqlite

import (
	"context"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"sqlite://campus.db", "campus.db?_foreign_keys=on&_busy_timeout=5000"},
		{":memory:", ":memory:?_foreign_keys=on&_busy_timeout=5000"},
		{"sqlite://campus.db?_journal_mode=WAL", "campus.db?_journal_mode=WAL"},
	}

	for _, tt := range tests {
		if got := ParsePath(tt.url); got != tt.want {
			t.Errorf("ParsePath(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestInsertIgnore(t *testing.T) {
	a := New()
	b := a.Builder().Insert(a.QuoteIdentifier("shuttle_points")).
		Columns("point_name", "location").
		Values("CPUT Bellville", "Symphony Way")

	query, _, err := a.InsertIgnore(b).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}
	want := `INSERT OR IGNORE INTO "shuttle_points" (point_name,location) VALUES (?,?)`
	if query != want {
		t.Errorf("Unexpected query:\n got: %s\nwant: %s", query, want)
	}
}

func TestConnectInMemory(t *testing.T) {
	a := New()
	ctx := context.Background()
	if err := a.Connect(ctx, "sqlite://:memory:"); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })

	if err := a.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	var fk int
	if err := a.DB().QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("PRAGMA failed: %v", err)
	}
	if fk != 1 {
		t.Errorf("Expected foreign keys to be enforced, got %d", fk)
	}
}
