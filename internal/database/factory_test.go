package database

import (
	"context"
	"testing"
)

func TestNewAdapter(t *testing.T) {
	tests := []struct {
		provider string
		want     string
		wantErr  bool
	}{
		{"mysql", "mysql", false},
		{"postgresql", "postgresql", false},
		{"postgres", "postgresql", false},
		{"sqlite", "sqlite", false},
		{"sqlite3", "sqlite", false},
		{"mongodb", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			adapter, err := NewAdapter(tt.provider)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for provider %q", tt.provider)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAdapter(%q) failed: %v", tt.provider, err)
			}
			if adapter.Provider() != tt.want {
				t.Errorf("Provider() = %q, want %q", adapter.Provider(), tt.want)
			}
		})
	}
}

func TestApplySchemaSQLite(t *testing.T) {
	ctx := context.Background()
	adapter, _ := NewAdapter("sqlite")
	if err := adapter.Connect(ctx, "sqlite://:memory:"); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	t.Cleanup(func() { adapter.Close() })

	if err := ApplySchema(ctx, adapter); err != nil {
		t.Fatalf("ApplySchema failed: %v", err)
	}
	// CREATE TABLE IF NOT EXISTS makes a second run a no-op.
	if err := ApplySchema(ctx, adapter); err != nil {
		t.Fatalf("Second ApplySchema failed: %v", err)
	}

	var tables int
	err := adapter.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'").Scan(&tables)
	if err != nil {
		t.Fatalf("Count tables failed: %v", err)
	}
	if tables != 15 {
		t.Errorf("Expected 15 tables, got %d", tables)
	}
}
