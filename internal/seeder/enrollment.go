package seeder

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
)

func (s *Seeder) seedEnrollments(ctx context.Context) (int64, error) {
	students, err := s.store.IDs(ctx, "students")
	if err != nil {
		return 0, err
	}
	courses, err := s.store.IDs(ctx, "courses")
	if err != nil {
		return 0, err
	}
	modules, err := s.store.Pairs(ctx, "modules", "course_id")
	if err != nil {
		return 0, err
	}
	levels, err := s.store.IDs(ctx, "levels")
	if err != nil {
		return 0, err
	}
	qualifications, err := s.store.IDs(ctx, "qualifications")
	if err != nil {
		return 0, err
	}

	if len(students) == 0 || len(courses) == 0 || len(modules) == 0 || len(levels) == 0 || len(qualifications) == 0 {
		s.warn("enrollments", fmt.Sprintf("missing inputs (students=%d courses=%d modules=%d levels=%d qualifications=%d), skipping",
			len(students), len(courses), len(modules), len(levels), len(qualifications)))
		return 0, nil
	}

	allModules := make([]int64, len(modules))
	byCourse := make(map[int64][]int64)
	for i, m := range modules {
		allModules[i] = m.ID
		byCourse[m.Ref] = append(byCourse[m.Ref], m.ID)
	}

	rows := make([][]any, len(students))
	for i, studentID := range students {
		courseID := s.generator.PickID(courses)
		candidates := byCourse[courseID]
		if len(candidates) == 0 {
			candidates = allModules
		}
		year := s.generator.Intn(firstAcademicYear, lastAcademicYear)

		rows[i] = []any{
			studentID,
			courseID,
			s.generator.PickID(candidates),
			year,
			s.generator.PickID(levels),
			s.generator.PickID(qualifications),
			s.generator.Pick(enrollmentStates),
			s.generator.DateInYear(year).Format(dateLayout),
			s.generator.PickInt(moduleCredits),
		}
	}

	return s.store.Insert(ctx, "student_enrollment", enrollmentColumns, rows, store.ModeStrict)
}

// seedMarks records marks for four distinct modules per student.
func (s *Seeder) seedMarks(ctx context.Context) (int64, error) {
	students, err := s.store.IDs(ctx, "students")
	if err != nil {
		return 0, err
	}
	if len(students) == 0 {
		return 0, nil
	}

	modules, err := s.store.IDs(ctx, "modules")
	if err != nil {
		return 0, err
	}
	if len(modules) < marksPerStudent {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrInsufficientModules, marksPerStudent, len(modules))
	}

	rows := make([][]any, 0, len(students)*marksPerStudent)
	for _, studentID := range students {
		for _, moduleID := range s.generator.SampleIDs(modules, marksPerStudent) {
			test := s.generator.Score(minScore, maxScore)
			exam := s.generator.Score(minScore, maxScore)
			rows = append(rows, []any{studentID, moduleID, test, exam, finalScore(test, exam)})
		}
	}

	return s.store.Insert(ctx, "student_marks", markColumns, rows, store.ModeStrict)
}

func finalScore(test, exam float64) float64 {
	return round2((test + exam) / 2)
}
