// Package config loads the settings of a simulated workday.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/sarchlab/thirst/hydration"
	"github.com/sarchlab/thirst/logging"
	"github.com/sarchlab/thirst/workday"
)

// Environment variables that override the configuration file.
const (
	EnvSeed         = "THIRST_SEED"
	EnvWorkDuration = "THIRST_WORK_DURATION"
)

// Config is the complete configuration of a run.
type Config struct {
	Schedule  ScheduleConfig
	Glass     GlassConfig
	User      UserConfig
	Recording RecordingConfig
	Log       LogConfig
}

// ScheduleConfig sets the office hours.
type ScheduleConfig struct {
	StartHour int
	EndHour   int
	LunchHour *int
}

// GlassConfig sets the glass on the desk.
type GlassConfig struct {
	InitialVolume int
}

// UserConfig describes the user. An empty name means a random one and a nil
// seed means a seed taken from the clock.
type UserConfig struct {
	Name         string
	WorkDuration time.Duration
	ThirstLevels []int
	Seed         *int64
}

// RecordingConfig controls the SQLite recording.
type RecordingConfig struct {
	Enabled bool
	Output  string
}

// LogConfig controls the log output.
type LogConfig struct {
	Level string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Schedule: ScheduleConfig{
			StartHour: workday.DefaultSchedule().Start(),
			EndHour:   workday.DefaultSchedule().End(),
		},
		User: UserConfig{
			WorkDuration: time.Second,
			ThirstLevels: append([]int(nil), hydration.DefaultThirstLevels...),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

type fileConfig struct {
	Schedule struct {
		StartHour int `toml:"start_hour"`
		EndHour   int `toml:"end_hour"`
		LunchHour int `toml:"lunch_hour"`
	} `toml:"schedule"`
	Glass struct {
		InitialVolume int `toml:"initial_volume"`
	} `toml:"glass"`
	User struct {
		Name         string `toml:"name"`
		WorkDuration string `toml:"work_duration"`
		ThirstLevels []int  `toml:"thirst_levels"`
		Seed         int64  `toml:"seed"`
	} `toml:"user"`
	Recording struct {
		Enabled bool   `toml:"enabled"`
		Output  string `toml:"output"`
	} `toml:"recording"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %s", undecoded[0])
	}

	if meta.IsDefined("schedule", "start_hour") {
		cfg.Schedule.StartHour = raw.Schedule.StartHour
	}

	if meta.IsDefined("schedule", "end_hour") {
		cfg.Schedule.EndHour = raw.Schedule.EndHour
	}

	if meta.IsDefined("schedule", "lunch_hour") {
		lunch := raw.Schedule.LunchHour
		cfg.Schedule.LunchHour = &lunch
	}

	if meta.IsDefined("glass", "initial_volume") {
		cfg.Glass.InitialVolume = raw.Glass.InitialVolume
	}

	if meta.IsDefined("user", "name") {
		cfg.User.Name = strings.TrimSpace(raw.User.Name)
	}

	if meta.IsDefined("user", "work_duration") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.User.WorkDuration))
		if err != nil {
			return Config{}, fmt.Errorf("parse work_duration: %w", err)
		}
		cfg.User.WorkDuration = d
	}

	if meta.IsDefined("user", "thirst_levels") {
		cfg.User.ThirstLevels = raw.User.ThirstLevels
	}

	if meta.IsDefined("user", "seed") {
		seed := raw.User.Seed
		cfg.User.Seed = &seed
	}

	if meta.IsDefined("recording", "enabled") {
		cfg.Recording.Enabled = raw.Recording.Enabled
	}

	if meta.IsDefined("recording", "output") {
		cfg.Recording.Output = strings.TrimSpace(raw.Recording.Output)
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}

	return cfg, nil
}

// LoadDotEnv loads the given .env files into the environment. Files that do
// not exist are skipped. Variables that are already set are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	return nil
}

// ApplyEnv overrides the configuration with the environment.
func (c *Config) ApplyEnv() error {
	if raw := strings.TrimSpace(os.Getenv(EnvSeed)); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		c.User.Seed = &seed
	}

	if raw := strings.TrimSpace(os.Getenv(EnvWorkDuration)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvWorkDuration, err)
		}
		c.User.WorkDuration = d
	}

	return nil
}

// WorkSchedule returns the office hours as a schedule.
func (c Config) WorkSchedule() workday.Schedule {
	s := workday.NewSchedule(c.Schedule.StartHour, c.Schedule.EndHour)
	if c.Schedule.LunchHour != nil {
		s = s.WithLunch(*c.Schedule.LunchHour)
	}

	return s
}

// Validate checks that the configuration can run a workday.
func (c Config) Validate() error {
	if err := c.WorkSchedule().Validate(); err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}

	if len(c.User.ThirstLevels) == 0 {
		return errors.New("thirst levels cannot be empty")
	}

	for _, level := range c.User.ThirstLevels {
		if level < 0 {
			return fmt.Errorf("thirst level %d is negative", level)
		}
	}

	if c.User.WorkDuration < 0 {
		return fmt.Errorf("work duration %s is negative", c.User.WorkDuration)
	}

	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}
