package seeder

import (
	"context"

	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
)

// seedApplicants records prospective students. None of them is linked to a
// student row yet.
func (s *Seeder) seedApplicants(ctx context.Context) (int64, error) {
	if s.config.Applicants == 0 {
		return 0, nil
	}

	existing, err := s.store.Values(ctx, "applicant_status", "application_code")
	if err != nil {
		return 0, err
	}
	codes, err := NewUniqueCodeIssuer(s.generator, applicantPrefix, applicantDigits, existing).Issue(s.config.Applicants)
	if err != nil {
		return 0, err
	}

	today := s.generator.Today().Format(dateLayout)
	rows := make([][]any, len(codes))
	for i, code := range codes {
		rows[i] = []any{
			code,
			nil,
			s.generator.FirstName(),
			s.generator.LastName(),
			s.generator.Email(),
			s.generator.Intn(minApplicantAge, maxApplicantAge),
			s.generator.Score(minMatricScore, maxMatricScore),
			s.generator.Pick(fieldsOfInterest),
			s.generator.Pick(applicantStates),
			today,
		}
	}

	return s.store.Insert(ctx, "applicant_status", applicantColumns, rows, store.ModeIgnore)
}
