package store

import (
	"errors"
	"testing"

	"github.com/Lumos-Labs-HQ/campusseed/internal/database/common"
)

func TestTablesAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Tables {
		for _, name := range append([]string{def.Name, def.IDColumn}, def.Columns...) {
			if !common.IsValidIdentifier(name) {
				t.Errorf("%s: invalid identifier %q", def.Name, name)
			}
		}
		for _, u := range def.Unique {
			if !def.HasColumn(u) {
				t.Errorf("%s: unique column %s is not a column", def.Name, u)
			}
		}
		for _, fk := range def.ForeignKeys {
			if !def.HasColumn(fk.Column) {
				t.Errorf("%s: foreign key column %s is not a column", def.Name, fk.Column)
			}
			if !seen[fk.Table] {
				t.Errorf("%s references %s which is not defined before it", def.Name, fk.Table)
			}
		}
		seen[def.Name] = true
	}
}

func TestTable(t *testing.T) {
	def, err := Table("students")
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if def.IDColumn != "student_id" {
		t.Errorf("IDColumn = %s, want student_id", def.IDColumn)
	}
	if _, err := Table("nope"); err == nil {
		t.Error("Expected error for unknown table")
	}
	if _, err := Table("students; DROP TABLE students"); !errors.Is(err, ErrUnknownTable) {
		t.Errorf("Expected ErrUnknownTable for invalid name, got %v", err)
	}
	if err := checkColumns(def, "student_number", "first name"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("Expected ErrUnknownColumn for invalid column, got %v", err)
	}
}
