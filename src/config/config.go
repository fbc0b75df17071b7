package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"elevsim/src/types"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/xyproto/randomstring"
	"gopkg.in/yaml.v3"
)

const (
	DefaultNumElevators = 2
	DefaultNumFloors    = 10
	DefaultTickInterval = 1 * time.Second
	DefaultLogLevel     = "info"
	DefaultEnvPath      = ".env"
	RunIDLength         = 8
)

const (
	EnvNumElevators = "ELEVSIM_NUM_ELEVATORS"
	EnvNumFloors    = "ELEVSIM_NUM_FLOORS"
	EnvTickInterval = "ELEVSIM_TICK_INTERVAL"
	EnvLogLevel     = "ELEVSIM_LOG_LEVEL"
	EnvRunID        = "ELEVSIM_RUN_ID"
)

// SeedRequest is a request submitted before the first tick. Elevator is 1-based.
type SeedRequest struct {
	Elevator int `yaml:"elevator"`
	Floor    int `yaml:"floor"`
}

type Config struct {
	NumElevators int
	NumFloors    int
	TickInterval time.Duration
	LogLevel     string
	RunID        string
	Requests     []SeedRequest
}

// scenario mirrors the YAML scenario file. Zero values mean "not set".
type scenario struct {
	NumElevators int           `yaml:"numElevators"`
	NumFloors    int           `yaml:"numFloors"`
	TickInterval string        `yaml:"tickInterval"`
	LogLevel     string        `yaml:"logLevel"`
	Requests     []SeedRequest `yaml:"requests"`
}

func Default() Config {
	return Config{
		NumElevators: DefaultNumElevators,
		NumFloors:    DefaultNumFloors,
		TickInterval: DefaultTickInterval,
		LogLevel:     DefaultLogLevel,
		Requests: []SeedRequest{
			{Elevator: 1, Floor: 8},
			{Elevator: 1, Floor: 2},
			{Elevator: 1, Floor: 10},
			{Elevator: 2, Floor: 7},
		},
	}
}

// Load layers defaults, then the .env file at envPath, then the YAML scenario at scenarioPath.
// A missing env file is ignored only when envPath is the default one. An empty path skips a layer.
func Load(envPath, scenarioPath string) (Config, error) {
	cfg := Default()

	if envPath != "" {
		if err := cfg.applyEnvFile(envPath); err != nil {
			if !(errors.Is(err, fs.ErrNotExist) && envPath == DefaultEnvPath) {
				return cfg, err
			}
		}
	}
	if scenarioPath != "" {
		if err := cfg.applyScenario(scenarioPath); err != nil {
			return cfg, err
		}
	}
	if cfg.RunID == "" {
		cfg.RunID = randomstring.EnglishFrequencyString(RunIDLength)
	}
	return cfg, cfg.Validate()
}

func (cfg *Config) applyEnvFile(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("read env file %s: %w", path, err)
	}
	for key, value := range env {
		switch key {
		case EnvNumElevators:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			cfg.NumElevators = n
		case EnvNumFloors:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			cfg.NumFloors = n
		case EnvTickInterval:
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			cfg.TickInterval = d
		case EnvLogLevel:
			cfg.LogLevel = value
		case EnvRunID:
			cfg.RunID = value
		}
	}
	return nil
}

func (cfg *Config) applyScenario(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open scenario: %w", err)
	}
	defer file.Close()

	var sc scenario
	if err := yaml.NewDecoder(file).Decode(&sc); err != nil {
		return fmt.Errorf("decode scenario %s: %w", path, err)
	}

	if sc.NumElevators != 0 {
		cfg.NumElevators = sc.NumElevators
	}
	if sc.NumFloors != 0 {
		cfg.NumFloors = sc.NumFloors
	}
	if sc.TickInterval != "" {
		d, err := time.ParseDuration(sc.TickInterval)
		if err != nil {
			return fmt.Errorf("scenario tickInterval: %w", err)
		}
		cfg.TickInterval = d
	}
	if sc.LogLevel != "" {
		cfg.LogLevel = sc.LogLevel
	}
	if sc.Requests != nil {
		cfg.Requests = sc.Requests
	}
	return nil
}

func (cfg Config) Validate() error {
	if cfg.NumElevators < 1 {
		return fmt.Errorf("%w: need at least one elevator, got %d", types.ErrInvalidElevator, cfg.NumElevators)
	}
	if cfg.NumFloors < 1 {
		return fmt.Errorf("%w: need at least one floor, got %d", types.ErrInvalidFloor, cfg.NumFloors)
	}
	if cfg.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", cfg.TickInterval)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	for _, req := range cfg.Requests {
		if req.Elevator < 1 || req.Elevator > cfg.NumElevators {
			return fmt.Errorf("%w: seed request for elevator %d", types.ErrInvalidElevator, req.Elevator)
		}
		if req.Floor < 1 || req.Floor > cfg.NumFloors {
			return fmt.Errorf("%w: seed request for floor %d", types.ErrInvalidFloor, req.Floor)
		}
	}
	return nil
}

func ParseLogLevel(level string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", level, err)
	}
	return lvl, nil
}
