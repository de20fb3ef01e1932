// Package catalog holds the fixed reference data the seeder writes before
// generating anything: lookup names, courses, the staff roster and shuttle
// points. The default catalog is embedded; a replacement can be read from disk.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	LecturerRole   string         `yaml:"lecturer_role"`
	Departments    []string       `yaml:"departments"`
	Roles          []string       `yaml:"roles"`
	Qualifications []string       `yaml:"qualifications"`
	Levels         []string       `yaml:"levels"`
	Courses        []Course       `yaml:"courses"`
	Staff          []StaffMember  `yaml:"staff"`
	ShuttlePoints  []ShuttlePoint `yaml:"shuttle_points"`
}

// Course is bound to its department by name; the id is resolved at seed time.
type Course struct {
	Name       string `yaml:"name"`
	Department string `yaml:"department"`
}

type StaffMember struct {
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone"`
	Department string `yaml:"department"`
	Role       string `yaml:"role"`
}

type ShuttlePoint struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

// Default returns a fresh copy of the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if c.LecturerRole == "" {
		c.LecturerRole = "Lecturer"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the catalog on its own terms: names present and unique per
// list. Whether a course or staff member points at a department that exists
// is checked by the seeder against the store, not here.
func (c *Catalog) Validate() error {
	lists := []struct {
		name   string
		values []string
	}{
		{"departments", c.Departments},
		{"roles", c.Roles},
		{"qualifications", c.Qualifications},
		{"levels", c.Levels},
		{"courses", courseNames(c.Courses)},
		{"shuttle_points", pointNames(c.ShuttlePoints)},
	}

	for _, list := range lists {
		seen := make(map[string]bool, len(list.values))
		for i, v := range list.values {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("catalog %s[%d]: name cannot be empty", list.name, i)
			}
			if seen[v] {
				return fmt.Errorf("catalog %s: duplicate name %q", list.name, v)
			}
			seen[v] = true
		}
	}

	emails := make(map[string]bool, len(c.Staff))
	for i, s := range c.Staff {
		if s.Email == "" || s.Department == "" || s.Role == "" {
			return fmt.Errorf("catalog staff[%d]: email, department and role are required", i)
		}
		if emails[s.Email] {
			return fmt.Errorf("catalog staff: duplicate email %q", s.Email)
		}
		emails[s.Email] = true
	}

	return nil
}

func courseNames(courses []Course) []string {
	names := make([]string, len(courses))
	for i, c := range courses {
		names[i] = c.Name
	}
	return names
}

func pointNames(points []ShuttlePoint) []string {
	names := make([]string, len(points))
	for i, p := range points {
		names[i] = p.Name
	}
	return names
}
