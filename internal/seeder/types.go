package seeder

import (
	"github.com/Lumos-Labs-HQ/campusseed/internal/config"
)

type SeedConfig struct {
	Students    int    // Students to generate
	Buses       int    // Buses to create
	BusCapacity int    // Seats per bus
	BusPrefix   string // Bus number prefix, e.g. CPUT-B001
	Applicants  int    // Applicant records to generate
	RandomSeed  int64  // 0 picks a random seed
}

func SeedConfigFrom(cfg config.Seed) SeedConfig {
	return SeedConfig{
		Students:    cfg.Students,
		Buses:       cfg.Buses,
		BusCapacity: cfg.BusCapacity,
		BusPrefix:   cfg.BusPrefix,
		Applicants:  cfg.Applicants,
		RandomSeed:  cfg.RandomSeed,
	}
}

var (
	genders          = []string{"Male", "Female", "Other"}
	enrollmentStates = []string{"Active", "Completed", "Dropped"}
	moduleCredits    = []int{10, 12, 15, 20}
	fieldsOfInterest = []string{"IT", "Engineering", "AI", "Mechanical"}
	applicantStates  = []string{"Pending", "Accepted", "Rejected", "Waitlisted"}
)

const (
	dateLayout = "2006-01-02"

	firstAcademicYear = 2021
	lastAcademicYear  = 2025

	marksPerStudent = 4
	minScore        = 30.0
	maxScore        = 100.0

	minStudentAge = 18
	maxStudentAge = 30

	minApplicantAge = 17
	maxApplicantAge = 30
	minMatricScore  = 45.0
	maxMatricScore  = 95.0

	studentPrefix   = "STU"
	studentDigits   = 6
	applicantPrefix = "APP"
	applicantDigits = 4

	shuttleStartHour = 8
)

var (
	studentColumns = []string{"student_number", "first_name", "last_name", "gender", "birthdate",
		"level_id", "course_id", "department_id", "email", "phone"}
	enrollmentColumns = []string{"student_id", "course_id", "module_id", "academic_year", "level_id",
		"qualification_id", "status", "enrollment_date", "credits"}
	markColumns      = []string{"student_id", "module_id", "test_score", "exam_score", "final_score"}
	staffColumns     = []string{"first_name", "last_name", "email", "phone", "department_id", "role_id"}
	applicantColumns = []string{"application_code", "student_id", "first_name", "last_name", "email", "age",
		"matric_score", "field_of_interest", "application_status", "application_date"}
)
