package seeder

import (
	"context"

	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
)

// seedStudents generates the configured number of students. Level, course
// and department are drawn independently of each other.
func (s *Seeder) seedStudents(ctx context.Context) (int64, error) {
	if s.config.Students == 0 {
		return 0, nil
	}

	refs := make(map[string][]int64, 3)
	for _, table := range []string{"levels", "courses", "departments"} {
		ids, err := s.store.IDs(ctx, table)
		if err != nil {
			return 0, err
		}
		if len(ids) == 0 {
			return 0, &MissingReferenceError{Table: table}
		}
		refs[table] = ids
	}

	existing, err := s.store.Values(ctx, "students", "student_number")
	if err != nil {
		return 0, err
	}
	numbers, err := NewUniqueCodeIssuer(s.generator, studentPrefix, studentDigits, existing).Issue(s.config.Students)
	if err != nil {
		return 0, err
	}

	rows := make([][]any, len(numbers))
	for i, number := range numbers {
		rows[i] = []any{
			number,
			s.generator.FirstName(),
			s.generator.LastName(),
			s.generator.Pick(genders),
			s.generator.BirthDate(minStudentAge, maxStudentAge).Format(dateLayout),
			s.generator.PickID(refs["levels"]),
			s.generator.PickID(refs["courses"]),
			s.generator.PickID(refs["departments"]),
			s.generator.Email(),
			s.generator.Phone(),
		}
	}

	return s.store.Insert(ctx, "students", studentColumns, rows, store.ModeStrict)
}
