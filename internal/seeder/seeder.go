package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/campusseed/internal/catalog"
	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

const (
	PhaseAcademic   = "academic"
	PhaseOperations = "operations"
)

// Stage is one step of the pipeline. Reads and Writes name the tables the
// stage depends on and produces; they are checked against the schema
// before anything runs.
type Stage struct {
	Name   string
	Phase  string
	Reads  []string
	Writes []string
	Run    func(ctx context.Context) (int64, error)
}

type Seeder struct {
	store     store.Store
	catalog   *catalog.Catalog
	config    SeedConfig
	generator *DataGenerator
	graph     *DependencyGraph
	log       zerolog.Logger
	lookups   Lookups
	inserted  map[string]int64
}

type Option func(*Seeder)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Seeder) { s.log = log }
}

func New(st store.Store, cat *catalog.Catalog, cfg SeedConfig, opts ...Option) *Seeder {
	s := &Seeder{
		store:     st,
		catalog:   cat,
		config:    cfg,
		generator: NewDataGenerator(cfg.RandomSeed),
		graph:     SchemaGraph(),
		log:       zerolog.Nop(),
		inserted:  make(map[string]int64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Seeder) Stages() []Stage {
	return []Stage{
		{
			Name: "lookups", Phase: PhaseAcademic,
			Writes: []string{"departments", "staff_roles", "qualifications", "levels"},
			Run:    s.seedLookups,
		},
		{Name: "courses", Phase: PhaseAcademic, Reads: []string{"departments"}, Writes: []string{"courses"}, Run: s.seedCourses},
		{Name: "modules", Phase: PhaseAcademic, Reads: []string{"courses", "levels"}, Writes: []string{"modules"}, Run: s.seedModules},
		{Name: "staff", Phase: PhaseAcademic, Reads: []string{"departments", "staff_roles"}, Writes: []string{"staff"}, Run: s.seedStaff},
		{
			Name: "students", Phase: PhaseAcademic,
			Reads:  []string{"levels", "courses", "departments", "students"},
			Writes: []string{"students"},
			Run:    s.seedStudents,
		},
		{
			Name: "enrollments", Phase: PhaseAcademic,
			Reads:  []string{"students", "courses", "modules", "levels", "qualifications"},
			Writes: []string{"student_enrollment"},
			Run:    s.seedEnrollments,
		},
		{Name: "marks", Phase: PhaseAcademic, Reads: []string{"students", "modules"}, Writes: []string{"student_marks"}, Run: s.seedMarks},
		{Name: "shuttle_points", Phase: PhaseOperations, Writes: []string{"shuttle_points"}, Run: s.seedShuttlePoints},
		{Name: "buses", Phase: PhaseOperations, Writes: []string{"buses"}, Run: s.seedBuses},
		{
			Name: "bus_allocations", Phase: PhaseOperations,
			Reads:  []string{"buses", "shuttle_points"},
			Writes: []string{"bus_allocations"},
			Run:    s.allocateBuses,
		},
		{
			Name: "applicants", Phase: PhaseOperations,
			Reads:  []string{"applicant_status"},
			Writes: []string{"applicant_status"},
			Run:    s.seedApplicants,
		},
		{
			Name: "lecturer_assignments", Phase: PhaseOperations,
			Reads:  []string{"staff", "staff_roles", "modules"},
			Writes: []string{"lecturer_module_assignment"},
			Run:    s.assignLecturers,
		},
	}
}

func (s *Seeder) seedLookups(ctx context.Context) (int64, error) {
	l, n, err := SeedLookups(ctx, s.store, s.catalog)
	if err != nil {
		return n, err
	}
	s.lookups = l
	return n, nil
}

// Run executes every stage. Each phase is committed on its own, so a
// failure during operations leaves the academic data in place.
func (s *Seeder) Run(ctx context.Context) error {
	return s.RunStages(ctx, s.Stages())
}

func (s *Seeder) RunStages(ctx context.Context, stages []Stage) error {
	if err := s.graph.CheckStageOrder(stages); err != nil {
		return err
	}

	color.Cyan("🌱 Starting university data seeding...")
	color.Cyan("📋 Stage order: %s", strings.Join(stageNames(stages), " → "))
	fmt.Println()

	start := time.Now()
	phase := ""
	for _, st := range stages {
		if phase != "" && st.Phase != phase {
			if err := s.commit(ctx, phase); err != nil {
				return err
			}
		}
		phase = st.Phase

		if err := ctx.Err(); err != nil {
			return err
		}

		stageStart := time.Now()
		n, err := st.Run(ctx)
		if err != nil {
			s.log.Error().Err(err).Str("stage", st.Name).Str("phase", st.Phase).Msg("stage failed")
			return fmt.Errorf("stage %s failed: %w", st.Name, err)
		}
		s.inserted[st.Name] += n

		color.Green("  ✅ %-22s %d rows", st.Name, n)
		s.log.Debug().
			Str("stage", st.Name).
			Str("phase", st.Phase).
			Int64("rows", n).
			Dur("took", time.Since(stageStart)).
			Msg("stage completed")
	}

	if phase != "" {
		if err := s.commit(ctx, phase); err != nil {
			return err
		}
	}

	color.Green("\n✅ Seeding completed in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

func (s *Seeder) commit(ctx context.Context, phase string) error {
	if err := s.store.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s phase: %w", phase, err)
	}
	color.Cyan("🔓 %s phase committed", phase)
	s.log.Info().Str("phase", phase).Msg("phase committed")
	return nil
}

func (s *Seeder) warn(stage, msg string) {
	color.Yellow("  ⚠️  %s: %s", stage, msg)
	s.log.Warn().Str("stage", stage).Msg(msg)
}

// Inserted returns the number of rows each stage added.
func (s *Seeder) Inserted() map[string]int64 {
	out := make(map[string]int64, len(s.inserted))
	for k, v := range s.inserted {
		out[k] = v
	}
	return out
}

func stageNames(stages []Stage) []string {
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name
	}
	return names
}
