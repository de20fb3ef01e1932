package common

import "testing"

func TestSplitStatements(t *testing.T) {
	script := `
-- lookups
CREATE TABLE a (id INT);
INSERT INTO a VALUES ('x;y');
CREATE TABLE b (id INT)
`
	got := SplitStatements(script)
	want := []string{
		"CREATE TABLE a (id INT)",
		"INSERT INTO a VALUES ('x;y')",
		"CREATE TABLE b (id INT)",
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d statements, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("statement %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"students", "student_number", "_x1"}
	invalid := []string{"", "1abc", "drop table;", "a-b", "a b"}

	for _, name := range valid {
		if !IsValidIdentifier(name) {
			t.Errorf("Expected %q to be valid", name)
		}
	}
	for _, name := range invalid {
		if IsValidIdentifier(name) {
			t.Errorf("Expected %q to be invalid", name)
		}
	}
}
