// Package config holds the run configuration of the tilewfc command.
//
// Priority: command-line flags > environment > file > defaults. The file
// is YAML (JSON also parses). Flags are applied by the caller after Load.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid run configuration")

// Judge names accepted by RunConfig.Judge.
const (
	JudgeRandom = "random"
	JudgeGreedy = "greedy"
)

// RunConfig is the complete configuration of one tilewfc invocation.
type RunConfig struct {
	// Patterns is the pattern document path.
	Patterns string `yaml:"patterns" validate:"required"`
	// Strict fails on asymmetric rules instead of warning.
	Strict bool `yaml:"strict"`

	Width  int `yaml:"width" validate:"gte=1"`
	Height int `yaml:"height" validate:"gte=1"`

	Judge string `yaml:"judge" validate:"oneof=random greedy"`
	// Seed feeds the random judge; 0 means the default seed.
	Seed int64 `yaml:"seed"`
	// Attempts restarts a failed run with a derived seed, up to this many runs.
	Attempts      int  `yaml:"attempts" validate:"gte=1"`
	EarlyStopping bool `yaml:"early_stopping"`

	// Output is the dump path of a collapsed grid; empty prints only.
	Output string `yaml:"output"`

	Batch BatchConfig `yaml:"batch"`
	Log   LogConfig   `yaml:"log"`
}

// BatchConfig controls the batch command.
type BatchConfig struct {
	Count       int    `yaml:"count" validate:"gte=1"`
	Concurrency int    `yaml:"concurrency" validate:"gte=1"`
	Dir         string `yaml:"dir" validate:"required"`
	// Metrics is a file receiving the Prometheus text exposition after the batch.
	Metrics string `yaml:"metrics"`
}

// LogConfig controls the root logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when nothing overrides it.
func Default() RunConfig {
	return RunConfig{
		Width:         10,
		Height:        10,
		Judge:         JudgeRandom,
		Attempts:      1,
		EarlyStopping: true,
		Batch: BatchConfig{
			Count:       8,
			Concurrency: 4,
			Dir:         "out",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load returns the defaults overlaid with the file at path (when path is
// not empty) and the environment. The result is not validated yet: flags
// still apply, call Validate afterwards.
func Load(path string) (RunConfig, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv reads the TILEWFC_* overrides.
func applyEnv(cfg *RunConfig) error {
	if v := os.Getenv("TILEWFC_PATTERNS"); v != "" {
		cfg.Patterns = v
	}
	if v := os.Getenv("TILEWFC_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TILEWFC_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("TILEWFC_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

var validate = validator.New()

// Validate checks every field constraint and reports all violations at once.
func (c RunConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
