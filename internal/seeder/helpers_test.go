package seeder

import (
	"testing"

	"github.com/Lumos-Labs-HQ/campusseed/internal/catalog"
	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("Failed to load default catalog: %v", err)
	}
	return cat
}

// smallCatalog has three courses over four levels and one lecturer.
func smallCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		LecturerRole:   "Lecturer",
		Departments:    []string{"Information Technology"},
		Roles:          []string{"Lecturer", "Driver"},
		Qualifications: []string{"Diploma in IT"},
		Levels:         []string{"First Year", "Second Year", "Third Year", "Final Year"},
		Courses: []catalog.Course{
			{Name: "Introduction to Programming", Department: "Information Technology"},
			{Name: "Database Systems", Department: "Information Technology"},
			{Name: "Operating Systems", Department: "Information Technology"},
		},
		Staff: []catalog.StaffMember{
			{FirstName: "Jason", LastName: "Van Wyk", Email: "jason@cput.ac.za", Department: "Information Technology", Role: "Lecturer"},
		},
		ShuttlePoints: []catalog.ShuttlePoint{
			{Name: "CPUT Bellville", Location: "Symphony Way"},
			{Name: "CPUT District Six", Location: "Campus Entrance"},
		},
	}
}

func testConfig() SeedConfig {
	return SeedConfig{
		Students:    50,
		Buses:       3,
		BusCapacity: 40,
		BusPrefix:   "CPUT",
		Applicants:  10,
		RandomSeed:  42,
	}
}

func newTestSeeder(t *testing.T, cat *catalog.Catalog, cfg SeedConfig) (*Seeder, *store.Memory) {
	t.Helper()
	m := store.NewMemory()
	return New(m, cat, cfg), m
}

func count(t *testing.T, m *store.Memory, table string) int {
	t.Helper()
	return len(m.Rows(table))
}
