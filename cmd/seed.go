package cmd

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/campusseed/internal/catalog"
	"github.com/Lumos-Labs-HQ/campusseed/internal/config"
	"github.com/Lumos-Labs-HQ/campusseed/internal/logger"
	"github.com/Lumos-Labs-HQ/campusseed/internal/seeder"
	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the university schema",
	Long: `Insert the reference catalog and generate students, enrollments, marks,
shuttle logistics and applicants. Reference rows that already exist are
skipped, so the command can be run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("invalid config: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	return cfg, log, nil
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store.SQL, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, cfg.Database.Provider, dbURL, cfg.Seed.BatchSize)
	if err != nil {
		return nil, err
	}
	log.Info().Str("provider", st.Provider()).Msg("connected to database")
	return st, nil
}

func runSeed(ctx context.Context) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.Seed.CatalogPath)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	if cfg.Seed.AutoMigrate {
		if err := st.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		log.Debug().Msg("schema applied")
	}

	s := seeder.New(st, cat, seeder.SeedConfigFrom(cfg.Seed), seeder.WithLogger(log))
	if err := s.Run(ctx); err != nil {
		color.Red("❌ Seeding failed: %v", err)
		return err
	}

	log.Info().Interface("rows", s.Inserted()).Msg("seeding finished")
	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)

	flags := []struct {
		name, key, usage string
	}{
		{"students", "seed.students", "number of students to generate"},
		{"buses", "seed.buses", "number of buses to create"},
		{"applicants", "seed.applicants", "number of applicants to generate"},
	}
	for _, f := range flags {
		seedCmd.Flags().Int(f.name, 0, f.usage)
		viper.BindPFlag(f.key, seedCmd.Flags().Lookup(f.name))
	}
	seedCmd.Flags().Int64("random-seed", 0, "seed for the random generator (0 picks one)")
	viper.BindPFlag("seed.random_seed", seedCmd.Flags().Lookup("random-seed"))
	seedCmd.Flags().String("catalog", "", "YAML file replacing the built-in reference catalog")
	viper.BindPFlag("seed.catalog_path", seedCmd.Flags().Lookup("catalog"))
}
