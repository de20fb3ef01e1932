package seeder

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
)

// seedCourses binds every catalog course to its department. All names are
// resolved before the first row is written.
func (s *Seeder) seedCourses(ctx context.Context) (int64, error) {
	rows := make([][]any, 0, len(s.catalog.Courses))
	for _, c := range s.catalog.Courses {
		deptID, err := s.lookups.Department(c.Department)
		if err != nil {
			return 0, fmt.Errorf("course %q: %w", c.Name, err)
		}
		rows = append(rows, []any{c.Name, deptID})
	}

	return s.store.Insert(ctx, "courses", []string{"course_name", "department_id"}, rows, store.ModeIgnore)
}

// seedModules creates one module for every (course, level) pair.
func (s *Seeder) seedModules(ctx context.Context) (int64, error) {
	courseIDs, err := s.store.IDs(ctx, "courses")
	if err != nil {
		return 0, err
	}
	levelIDs, err := s.store.IDs(ctx, "levels")
	if err != nil {
		return 0, err
	}

	rows := make([][]any, 0, len(courseIDs)*len(levelIDs))
	for _, courseID := range courseIDs {
		for _, levelID := range levelIDs {
			name := fmt.Sprintf("Module %d for Course %d", s.generator.Intn(100, 999), courseID)
			rows = append(rows, []any{name, courseID, levelID})
		}
	}

	return s.store.Insert(ctx, "modules", []string{"module_name", "course_id", "level_id"}, rows, store.ModeStrict)
}
