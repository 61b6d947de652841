package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/talentflow/internal/config"
	"github.com/jonathan/talentflow/internal/seed"
	"github.com/jonathan/talentflow/internal/server"
	"github.com/jonathan/talentflow/internal/store"
)

var (
	serveAddr   string
	serveNoSeed bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the jobs, candidates, assessments, and notes endpoints. Seeds the store with synthetic data when empty.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides TALENTFLOW_ADDR)")
	serveCmd.Flags().BoolVar(&serveNoSeed, "no-seed", false, "Skip auto-seeding an empty store")
	rootCmd.AddCommand(serveCmd)
}

func newLogger(debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	if !serveNoSeed {
		gen := seed.New(st, cfg.Seed, logger)
		if err := gen.SeedIfEmpty(context.Background()); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
	}

	srv := server.New(st, server.Config{Addr: cfg.Addr, Chaos: cfg.Chaos}, logger)
	return srv.Start()
}
