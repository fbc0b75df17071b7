package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"elevsim/src/types"

	"github.com/rs/zerolog"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if cfg.NumElevators != DefaultNumElevators || cfg.NumFloors != DefaultNumFloors {
		t.Errorf("Expected %d elevators and %d floors, got %d and %d",
			DefaultNumElevators, DefaultNumFloors, cfg.NumElevators, cfg.NumFloors)
	}
	if cfg.TickInterval != DefaultTickInterval || cfg.LogLevel != DefaultLogLevel {
		t.Errorf("Unexpected interval %v or log level %q", cfg.TickInterval, cfg.LogLevel)
	}
	expected := []SeedRequest{{1, 8}, {1, 2}, {1, 10}, {2, 7}}
	if !slices.Equal(cfg.Requests, expected) {
		t.Errorf("Expected seed requests %v, got %v", expected, cfg.Requests)
	}
	if len(cfg.RunID) != RunIDLength {
		t.Errorf("Expected a %d character run id, got %q", RunIDLength, cfg.RunID)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := writeFile(t, dir, "sim.env", `
ELEVSIM_NUM_ELEVATORS=3
ELEVSIM_NUM_FLOORS=12
ELEVSIM_TICK_INTERVAL=250ms
ELEVSIM_LOG_LEVEL=debug
ELEVSIM_RUN_ID=testrun
`)

	cfg, err := Load(env, "")
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if cfg.NumElevators != 3 || cfg.NumFloors != 12 {
		t.Errorf("Expected 3 elevators and 12 floors, got %d and %d", cfg.NumElevators, cfg.NumFloors)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("Expected 250ms interval, got %v", cfg.TickInterval)
	}
	if cfg.LogLevel != "debug" || cfg.RunID != "testrun" {
		t.Errorf("Unexpected log level %q or run id %q", cfg.LogLevel, cfg.RunID)
	}
}

func TestLoadScenarioOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	env := writeFile(t, dir, "sim.env", "ELEVSIM_NUM_ELEVATORS=3\nELEVSIM_NUM_FLOORS=12\n")
	scenario := writeFile(t, dir, "scenario.yaml", `
numFloors: 6
tickInterval: 2s
requests:
  - elevator: 3
    floor: 6
  - elevator: 1
    floor: 1
`)

	cfg, err := Load(env, scenario)
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if cfg.NumElevators != 3 || cfg.NumFloors != 6 || cfg.TickInterval != 2*time.Second {
		t.Errorf("Unexpected config %+v", cfg)
	}
	expected := []SeedRequest{{3, 6}, {1, 1}}
	if !slices.Equal(cfg.Requests, expected) {
		t.Errorf("Expected scenario requests %v, got %v", expected, cfg.Requests)
	}
}

func TestLoadScenarioWithoutRequestsKeepsSeeds(t *testing.T) {
	scenario := writeFile(t, t.TempDir(), "scenario.yaml", "numElevators: 4\n")
	cfg, err := Load("", scenario)
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if cfg.NumElevators != 4 || len(cfg.Requests) != len(Default().Requests) {
		t.Errorf("Expected 4 elevators with default seeds, got %+v", cfg)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if _, err := Load(DefaultEnvPath, ""); err != nil {
		t.Errorf("Missing default env file should be ignored, got %v", err)
	}
	if _, err := Load("custom.env", ""); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error for explicit env file, got %v", err)
	}
	if _, err := Load("", "missing.yaml"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error for scenario, got %v", err)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	dir := t.TempDir()
	badEnv := writeFile(t, dir, "bad.env", "ELEVSIM_NUM_FLOORS=ten\n")
	if _, err := Load(badEnv, ""); err == nil {
		t.Errorf("Expected error for non-numeric floor count")
	}
	badYaml := writeFile(t, dir, "bad.yaml", "requests: [oops\n")
	if _, err := Load("", badYaml); err == nil {
		t.Errorf("Expected error for malformed scenario")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no elevators", func(c *Config) { c.NumElevators = 0 }, types.ErrInvalidElevator},
		{"no floors", func(c *Config) { c.NumFloors = 0 }, types.ErrInvalidFloor},
		{"seed elevator out of range", func(c *Config) { c.Requests = []SeedRequest{{3, 1}} }, types.ErrInvalidElevator},
		{"seed floor out of range", func(c *Config) { c.Requests = []SeedRequest{{1, 11}} }, types.ErrInvalidFloor},
	}
	for _, c := range cases {
		cfg := Default()
		c.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}

	cfg := Default()
	cfg.TickInterval = 0
	if err := cfg.Validate(); err == nil {
		t.Errorf("Expected error for zero tick interval")
	}
	cfg = Default()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Errorf("Expected error for unknown log level")
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config is invalid: %v", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("warn")
	if err != nil || level != zerolog.WarnLevel {
		t.Errorf("ParseLogLevel(warn) = %v, %v", level, err)
	}
}
