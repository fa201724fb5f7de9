package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/splitting-world/internal/config"
	"github.com/talgya/splitting-world/internal/engine"
	"github.com/talgya/splitting-world/internal/logging"
	"github.com/talgya/splitting-world/internal/names"
	"github.com/talgya/splitting-world/internal/persistence"
	"github.com/talgya/splitting-world/internal/report"
	"github.com/talgya/splitting-world/internal/world"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and print its history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(cmd)
			if err != nil {
				return err
			}
			return runSimulation(cmd.Context(), cmd, cfg)
		},
	}

	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().Int64("seed", 0, "Random seed (0 = time based)")
	cmd.Flags().Int("max-era", 0, "Last era to simulate (1-9)")
	cmd.Flags().Int("max-century", 0, "Centuries allowed per era")
	cmd.Flags().Int("population-increase", 0, "World population requirement added per century")
	cmd.Flags().Int("era-cooldown", 0, "Centuries before an era may end early")
	cmd.Flags().Duration("pace", 0, "Pause between simulation steps")
	cmd.Flags().String("chronicle", "", "Record the run in this SQLite file")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().Bool("quiet", false, "Do not print the history")
	return cmd
}

// loadRunConfig layers command-line flags over the file and environment.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("max-era") {
		cfg.Simulation.MaxEra, _ = flags.GetInt("max-era")
	}
	if flags.Changed("max-century") {
		cfg.Simulation.MaxCentury, _ = flags.GetInt("max-century")
	}
	if flags.Changed("population-increase") {
		cfg.Simulation.PopulationRequirementIncrease, _ = flags.GetInt("population-increase")
	}
	if flags.Changed("era-cooldown") {
		cfg.Simulation.EraCooldown, _ = flags.GetInt("era-cooldown")
	}
	if flags.Changed("pace") {
		cfg.Pace, _ = flags.GetDuration("pace")
	}
	if flags.Changed("chronicle") {
		cfg.Chronicle.Path, _ = flags.GetString("chronicle")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runSimulation(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	slog.SetDefault(logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	inventory := names.Default
	if len(cfg.Names) > 0 {
		inventory = cfg.Names
	}
	pool := names.NewPool(rng, inventory)

	var reporters report.Multi
	var console *report.Console
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		console = report.NewConsole(cmd.OutOrStdout())
		reporters = append(reporters, console)
	}
	counter := &report.Counter{}
	reporters = append(reporters, counter)

	var chronicle *persistence.Chronicle
	if cfg.Chronicle.Path != "" {
		var err error
		chronicle, err = persistence.Open(cfg.Chronicle.Path)
		if err != nil {
			return err
		}
		defer chronicle.Close()

		runID, err := chronicle.BeginRun(seed, cfg.Engine())
		if err != nil {
			return err
		}
		reporters = append(reporters, chronicle)
		slog.Info("chronicle opened", "path", cfg.Chronicle.Path, "run", runID)
	}

	slog.Info("starting simulation",
		"seed", seed,
		"max_era", cfg.Simulation.MaxEra,
		"max_century", cfg.Simulation.MaxCentury,
		"names", len(inventory),
	)

	sim := engine.NewSimulation(cfg.Engine(), rng, pool, reporters)
	eng := engine.NewEngine(sim)
	eng.Interval = cfg.Pace
	eng.OnCentury = func(*engine.Simulation) { flushConsole(console) }
	eng.OnEra = func(s *engine.Simulation) {
		flushConsole(console)
		if chronicle != nil {
			if err := chronicle.Flush(); err != nil {
				slog.Warn("chronicle flush failed", "era", s.Era, "error", err)
			}
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := eng.Run(ctx)
	flushConsole(console)

	if chronicle != nil {
		if err := chronicle.FinishRun(out); err != nil {
			slog.Error("chronicle finish failed", "error", err)
		}
	}

	slog.Info("simulation finished",
		"reason", out.Reason.String(),
		"era", out.Era,
		"turns", humanize.Comma(int64(out.Turns)),
		"lines", humanize.Comma(int64(counter.Lines)),
		"races", out.Races,
		"tiles", sim.Map.TileCount(),
		"inhabited", sim.Map.InhabitedCount(),
		"elapsed", out.Duration.Round(time.Millisecond),
	)

	if out.Failed() {
		return fmt.Errorf("simulation stopped in era %d century %d: %w", out.Era, out.Century, out.Err)
	}
	return nil
}

func flushConsole(c *report.Console) {
	if c == nil {
		return
	}
	if err := c.Flush(); err != nil {
		slog.Warn("console write failed", "error", err)
	}
}

// compile-time check that the chronicle can sit in the reporter fan-out.
var _ world.Reporter = (*persistence.Chronicle)(nil)
