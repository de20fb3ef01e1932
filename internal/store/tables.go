package store

import (
	"fmt"
	"slices"

	"github.com/Lumos-Labs-HQ/campusseed/internal/database/common"
)

type ForeignKey struct {
	Column string
	Table  string
}

// TableDef describes one table of the university schema as far as the
// store needs it: the identity column, unique columns and references.
type TableDef struct {
	Name        string
	IDColumn    string
	Columns     []string
	Unique      []string
	ForeignKeys []ForeignKey
}

func (t TableDef) HasColumn(name string) bool {
	return name == t.IDColumn || slices.Contains(t.Columns, name)
}

// Tables lists the schema in creation order; a table only references
// tables listed before it.
var Tables = []TableDef{
	{Name: "departments", IDColumn: "department_id", Columns: []string{"department_name"}, Unique: []string{"department_name"}},
	{Name: "staff_roles", IDColumn: "role_id", Columns: []string{"role_name"}, Unique: []string{"role_name"}},
	{Name: "qualifications", IDColumn: "qualification_id", Columns: []string{"qualification_name"}, Unique: []string{"qualification_name"}},
	{Name: "levels", IDColumn: "level_id", Columns: []string{"level_name"}, Unique: []string{"level_name"}},
	{
		Name: "courses", IDColumn: "course_id",
		Columns:     []string{"course_name", "department_id"},
		Unique:      []string{"course_name"},
		ForeignKeys: []ForeignKey{{"department_id", "departments"}},
	},
	{
		Name: "modules", IDColumn: "module_id",
		Columns:     []string{"module_name", "course_id", "level_id"},
		ForeignKeys: []ForeignKey{{"course_id", "courses"}, {"level_id", "levels"}},
	},
	{
		Name: "staff", IDColumn: "staff_id",
		Columns:     []string{"first_name", "last_name", "email", "phone", "department_id", "role_id"},
		Unique:      []string{"email"},
		ForeignKeys: []ForeignKey{{"department_id", "departments"}, {"role_id", "staff_roles"}},
	},
	{
		Name: "students", IDColumn: "student_id",
		Columns: []string{"student_number", "first_name", "last_name", "gender", "birthdate",
			"level_id", "course_id", "department_id", "email", "phone"},
		Unique:      []string{"student_number"},
		ForeignKeys: []ForeignKey{{"level_id", "levels"}, {"course_id", "courses"}, {"department_id", "departments"}},
	},
	{
		Name: "student_enrollment", IDColumn: "enrollment_id",
		Columns: []string{"student_id", "course_id", "module_id", "academic_year", "level_id",
			"qualification_id", "status", "enrollment_date", "credits"},
		ForeignKeys: []ForeignKey{
			{"student_id", "students"}, {"course_id", "courses"}, {"module_id", "modules"},
			{"level_id", "levels"}, {"qualification_id", "qualifications"},
		},
	},
	{
		Name: "student_marks", IDColumn: "mark_id",
		Columns:     []string{"student_id", "module_id", "test_score", "exam_score", "final_score"},
		ForeignKeys: []ForeignKey{{"student_id", "students"}, {"module_id", "modules"}},
	},
	{
		Name: "lecturer_module_assignment", IDColumn: "assignment_id",
		Columns:     []string{"staff_id", "module_id"},
		ForeignKeys: []ForeignKey{{"staff_id", "staff"}, {"module_id", "modules"}},
	},
	{Name: "shuttle_points", IDColumn: "point_id", Columns: []string{"point_name", "location"}, Unique: []string{"point_name"}},
	{Name: "buses", IDColumn: "bus_id", Columns: []string{"bus_number", "capacity"}, Unique: []string{"bus_number"}},
	{
		Name: "bus_allocations", IDColumn: "allocation_id",
		Columns:     []string{"bus_id", "point_id", "allocation_time"},
		ForeignKeys: []ForeignKey{{"bus_id", "buses"}, {"point_id", "shuttle_points"}},
	},
	{
		Name: "applicant_status", IDColumn: "applicant_id",
		Columns: []string{"application_code", "student_id", "first_name", "last_name", "email", "age",
			"matric_score", "field_of_interest", "application_status", "application_date"},
		Unique:      []string{"application_code"},
		ForeignKeys: []ForeignKey{{"student_id", "students"}},
	},
}

func Table(name string) (TableDef, error) {
	if !common.IsValidIdentifier(name) {
		return TableDef{}, fmt.Errorf("%w: invalid name %q", ErrUnknownTable, name)
	}
	for _, t := range Tables {
		if t.Name == name {
			return t, nil
		}
	}
	return TableDef{}, fmt.Errorf("%w: %s", ErrUnknownTable, name)
}

func checkColumns(def TableDef, columns ...string) error {
	for _, c := range columns {
		if !common.IsValidIdentifier(c) || !def.HasColumn(c) {
			return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, def.Name, c)
		}
	}
	return nil
}
