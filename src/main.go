package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"elevsim/src/bank"
	"elevsim/src/callgen"
	"elevsim/src/config"
	"elevsim/src/dispatcher"
	"elevsim/src/elev"
	"elevsim/src/report"
	"elevsim/src/simulation"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	defaults := config.Default()
	configPath := flag.String("config", "", "YAML config file")
	envFile := flag.String("env", ".env", "file with ELEVSIM_* overrides")
	numElevators := flag.Int("elevators", defaults.NumElevators, "number of elevators")
	capacity := flag.Int("capacity", defaults.Capacity, "people per elevator")
	startFloor := flag.Int("start-floor", defaults.StartFloor, "floor every elevator starts at")
	numFloors := flag.Int("floors", defaults.NumFloors, "number of floors")
	policy := flag.String("policy", defaults.Policy, fmt.Sprintf("dispatch policy, one of %v", dispatcher.Names()))
	seed := flag.Uint64("seed", defaults.Seed, "seed for the call generator")
	startTime := flag.Int("start", defaults.StartTime, "first tick to generate calls for")
	endTime := flag.Int("end", defaults.EndTime, "tick to stop generating calls at")
	runID := flag.String("run-id", "", "run identifier, random if empty")
	logLevel := flag.String("log-level", defaults.LogLevel, "debug, info, warn or error")
	logFile := flag.String("log-file", "", "also write logs to this file")
	logDir := flag.String("log-dir", "", "also write logs to <run-id>.log in this directory")
	compare := flag.Bool("compare", false, "run every policy on the same calls and print a summary")
	flag.Parse()

	cfg := defaults
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if err := config.ApplyEnv(&cfg, *envFile); err != nil {
		return err
	}

	// Flags given on the command line win over file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "elevators":
			cfg.NumElevators = *numElevators
		case "capacity":
			cfg.Capacity = *capacity
		case "start-floor":
			cfg.StartFloor = *startFloor
		case "floors":
			cfg.NumFloors = *numFloors
		case "policy":
			cfg.Policy = *policy
		case "seed":
			cfg.Seed = *seed
		case "start":
			cfg.StartTime = *startTime
		case "end":
			cfg.EndTime = *endTime
		case "run-id":
			cfg.RunID = *runID
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		case "log-dir":
			cfg.LogDir = *logDir
		case "compare":
			cfg.Compare = *compare
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	generatedRunID := cfg.EnsureRunID()
	level, _ := cfg.SlogLevel()
	logCloser, err := elev.InitLogger(level, cfg.LogPath())
	if err != nil {
		return err
	}
	defer logCloser.Close()
	slog.SetDefault(slog.Default().With("run", cfg.RunID))
	if generatedRunID {
		slog.Warn("No run ID provided, generated random run ID", "runID", cfg.RunID)
	}

	calls := callgen.New(cfg.Seed).Generate(cfg.StartTime, cfg.EndTime, cfg.NumFloors)
	elevators := elev.NewBank(cfg.NumElevators, cfg.Capacity, cfg.StartFloor)

	if cfg.Compare {
		slog.Info("Comparing policies", "policies", dispatcher.Names(), "calls", len(calls))
		results, err := report.Compare(calls, dispatcher.Names(), cfg.NumFloors, elevators)
		if err != nil {
			return err
		}
		return report.PrintComparison(os.Stdout, results)
	}

	p, err := dispatcher.ByName(cfg.Policy)
	if err != nil {
		return err
	}
	slog.Info("Starting simulation", "policy", p.Name(), "elevators", cfg.NumElevators, "floors", cfg.NumFloors, "calls", len(calls))
	engine := simulation.New(bank.New(elevators, p, cfg.NumFloors))
	if err := engine.SubmitCalls(calls); err != nil {
		return err
	}
	report.Print(os.Stdout, engine.Snapshot())
	return nil
}
