package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentflow/internal/config"
	"github.com/jonathan/talentflow/internal/seed"
	"github.com/jonathan/talentflow/internal/store"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the store with synthetic data",
	Long:  `Generate deterministic synthetic jobs, candidates, assessments, and notes. By default only an empty store is seeded; --force wipes and regenerates.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Wipe existing data and reseed")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	gen := seed.New(st, cfg.Seed, logger)
	if seedForce {
		return gen.Seed(context.Background())
	}
	return gen.SeedIfEmpty(context.Background())
}
