package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elevsim/src/config"
	"elevsim/src/logger"
	"elevsim/src/prompt"
	"elevsim/src/render"
	"elevsim/src/system"
	"elevsim/src/timer"
)

func main() {
	envPath := flag.String("env", config.DefaultEnvPath, "Path to a .env file with ELEVSIM_* settings")
	scenarioPath := flag.String("scenario", "", "Path to a YAML scenario with counts and seed requests")
	auto := flag.Bool("auto", false, "Tick automatically every interval in addition to N key presses")
	interval := flag.Duration("interval", 0, "Auto tick interval, overrides config")
	logLevel := flag.String("log-level", "", "Log level (trace, debug, info, warn, error), overrides config")
	verbose := flag.Bool("verbose", false, "Mirror the log file to stderr")
	flag.Parse()

	if err := run(*envPath, *scenarioPath, *auto, *interval, *logLevel, *verbose); err != nil {
		logger.GetLogger().Error().Err(err).Msg("Simulator stopped")
		fmt.Fprintln(os.Stderr, "elevsim:", err)
		os.Exit(1)
	}
}

func run(envPath, scenarioPath string, auto bool, interval time.Duration, logLevel string, verbose bool) error {
	cfg, err := config.Load(envPath, scenarioPath)
	if err != nil {
		return err
	}
	if interval > 0 {
		cfg.TickInterval = interval
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	logFile, err := logger.OpenRunFile(cfg.RunID)
	if err != nil {
		return err
	}
	defer logFile.Close()
	var logOut io.Writer = logFile
	if verbose {
		logOut = io.MultiWriter(logFile, os.Stderr)
	}
	log := logger.Init(level, logOut, cfg.RunID)
	log.Info().
		Int("elevators", cfg.NumElevators).
		Int("floors", cfg.NumFloors).
		Int("seeds", len(cfg.Requests)).
		Msg("Starting elevator simulator")

	sys, err := system.New(cfg.NumElevators, cfg.NumFloors)
	if err != nil {
		return err
	}
	for _, req := range cfg.Requests {
		if err := sys.SummonElevatorToFloor(req.Elevator, req.Floor); err != nil {
			return err
		}
	}

	render.Banner(os.Stdout, sys.NumElevators(), sys.NumFloors())
	render.Queues(os.Stdout, sys.Status())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	keys, closeKeys, err := prompt.KeyboardKeys(ctx)
	if err != nil {
		return err
	}
	defer closeKeys()

	var ticks chan struct{}
	if auto {
		ticks = make(chan struct{})
		actions := make(chan timer.TimerAction, 1)
		go timer.Timer(ctx, cfg.TickInterval, ticks, actions)
		actions <- timer.Start
	}

	err = prompt.Run(ctx, sys, keys, ticks, os.Stdout)
	log.Info().Int("ticks", sys.TickCount()).Msg("Simulator finished")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
