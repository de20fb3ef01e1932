package seeder

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
)

func (s *Seeder) seedStaff(ctx context.Context) (int64, error) {
	rows := make([][]any, 0, len(s.catalog.Staff))
	for _, m := range s.catalog.Staff {
		deptID, err := s.lookups.Department(m.Department)
		if err != nil {
			return 0, fmt.Errorf("staff %s: %w", m.Email, err)
		}
		roleID, err := s.lookups.Role(m.Role)
		if err != nil {
			return 0, fmt.Errorf("staff %s: %w", m.Email, err)
		}
		rows = append(rows, []any{m.FirstName, m.LastName, m.Email, m.Phone, deptID, roleID})
	}

	return s.store.Insert(ctx, "staff", staffColumns, rows, store.ModeIgnore)
}

// assignLecturers gives every lecturer one module, cycling through the
// modules when there are more lecturers than modules.
func (s *Seeder) assignLecturers(ctx context.Context) (int64, error) {
	roleID, ok := s.lookups.Roles[s.catalog.LecturerRole]
	if !ok {
		s.warn("lecturer_assignments", fmt.Sprintf("role %q not found, skipping", s.catalog.LecturerRole))
		return 0, nil
	}

	lecturers, err := s.store.IDsWhere(ctx, "staff", "role_id", roleID)
	if err != nil {
		return 0, err
	}
	modules, err := s.store.IDs(ctx, "modules")
	if err != nil {
		return 0, err
	}
	if len(lecturers) == 0 || len(modules) == 0 {
		s.warn("lecturer_assignments", fmt.Sprintf("%d lecturers and %d modules, skipping", len(lecturers), len(modules)))
		return 0, nil
	}

	rows := make([][]any, len(lecturers))
	for i, staffID := range lecturers {
		rows[i] = []any{staffID, modules[i%len(modules)]}
	}

	return s.store.Insert(ctx, "lecturer_module_assignment", []string{"staff_id", "module_id"}, rows, store.ModeStrict)
}
