// Package main provides the headless arena simulator binary: it loads a
// roster manifest, runs one battle to completion, and prints the final
// standings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/openbrawl/arenasim/internal/config"
	"github.com/openbrawl/arenasim/internal/game/match"
	"github.com/openbrawl/arenasim/internal/game/rng"
	"github.com/openbrawl/arenasim/internal/game/roster"
	"github.com/openbrawl/arenasim/internal/observability"
	"github.com/openbrawl/arenasim/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	rosterPath := flag.String("roster", "", "roster manifest path; overrides the configured path")
	seedFlag := flag.Int64("seed", 0, "randomness seed; overrides config (0 = config or random)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	seed := cfg.Simulation.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	var src rng.Source
	if seed != 0 {
		src = rng.NewSeededSource(seed)
	} else {
		src, seed = rng.NewRandomSource()
	}
	logger.Info("randomness seeded", zap.Int64("seed", seed))

	path := cfg.Roster.Path
	if *rosterPath != "" {
		path = *rosterPath
	}
	rosterStart := time.Now()
	parts, err := roster.LoadFromFile(path)
	if err != nil {
		logger.Fatal("loading roster", zap.Error(err))
	}
	logger.Info("roster loaded",
		zap.String("path", path),
		zap.Int("participants", len(parts)),
		zap.Duration("elapsed", time.Since(rosterStart)),
	)

	ctrl, err := match.NewController(logger, src, cfg.Simulation.TicksPerSecond)
	if err != nil {
		logger.Fatal("creating match controller", zap.Error(err))
	}
	if err := ctrl.StartBattle(parts); err != nil {
		logger.Fatal("starting battle", zap.Error(err))
	}

	sim := server.NewSimService(logger, ctrl, cfg.Simulation.TicksPerSecond, cfg.Simulation.MaxTicks)
	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("simulation", sim)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}

	printReport(ctrl)
	logger.Info("done", zap.Duration("total_elapsed", time.Since(start)))
}

// printReport writes the end-of-battle standings to stdout.
func printReport(ctrl *match.Controller) {
	stats := ctrl.Stats()
	fmt.Printf("\n=== Battle Report ===\n")
	fmt.Printf("battle ticks: %d  collisions: %d  destroyed: %d\n",
		stats.BattleTicks, stats.TotalCollisions, stats.EntitiesDestroyed)

	if winner, ok := ctrl.Winner(); ok {
		fmt.Printf("winner: %s (%s)\n", winner.Name, winner.ID)
	} else {
		fmt.Printf("winner: none\n")
	}

	fmt.Printf("\n%-4s %-20s %-9s %-7s %s\n", "rank", "name", "survived", "health", "damage dealt")
	for _, s := range ctrl.Standings() {
		fmt.Printf("%-4d %-20s %-9t %-7d %.1f\n", s.Rank, s.Name, s.Survived, s.Health, s.TotalDamage)
	}
}
