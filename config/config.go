package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	forecaster "github.com/aouyang1/go-trendpredictor"
	"github.com/aouyang1/go-trendpredictor/timedataset"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath      = "configs/trendpredictor.yaml"
	DefaultChartPath = "stock_forecast_chart.html"
	DateLayout       = "2006-01-02"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all application configuration
type Config struct {
	Series struct {
		Days           int     `yaml:"days"`
		StartPrice     float64 `yaml:"start_price"`
		MaxDailyChange float64 `yaml:"max_daily_change"`
		Seed           *uint64 `yaml:"seed"`
		EndDate        string  `yaml:"end_date"`
	} `yaml:"series"`
	Forecast struct {
		Windows []int `yaml:"windows"`
	} `yaml:"forecast"`
	Output struct {
		ChartPath string `yaml:"chart_path"`
		ModelPath string `yaml:"model_path"`
	} `yaml:"output"`
	Interactive bool   `yaml:"interactive"`
	LogLevel    string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable overrides and defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TRENDPREDICTOR_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TRENDPREDICTOR_DAYS: %w", err)
		}
		c.Series.Days = days
	}
	if v := os.Getenv("TRENDPREDICTOR_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TRENDPREDICTOR_SEED: %w", err)
		}
		c.Series.Seed = &seed
	}
	if v := os.Getenv("TRENDPREDICTOR_WINDOWS"); v != "" {
		windows, err := parseWindows(v)
		if err != nil {
			return fmt.Errorf("TRENDPREDICTOR_WINDOWS: %w", err)
		}
		c.Forecast.Windows = windows
	}
	if v := os.Getenv("TRENDPREDICTOR_CHART_PATH"); v != "" {
		c.Output.ChartPath = v
	}
	if v := os.Getenv("TRENDPREDICTOR_MODEL_PATH"); v != "" {
		c.Output.ModelPath = v
	}
	if v := os.Getenv("TRENDPREDICTOR_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

func parseWindows(v string) ([]int, error) {
	fields := strings.Split(v, ",")
	windows := make([]int, 0, len(fields))
	for _, field := range fields {
		w, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (c *Config) applyDefaults() {
	if c.Series.Days == 0 {
		c.Series.Days = timedataset.DefaultNumDays
	}
	if c.Series.StartPrice == 0 {
		c.Series.StartPrice = timedataset.DefaultStartPrice
	}
	if c.Series.MaxDailyChange == 0 {
		c.Series.MaxDailyChange = timedataset.DefaultMaxDailyChange
	}
	if len(c.Forecast.Windows) == 0 {
		c.Forecast.Windows = []int{forecaster.ShortTermWindow, forecaster.LongTermWindow}
	}
	if c.Output.ChartPath == "" {
		c.Output.ChartPath = DefaultChartPath
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that all fields are usable
func (c *Config) Validate() error {
	if c.Series.Days < 1 {
		return fmt.Errorf("series.days must be positive, %w", ErrInvalidConfig)
	}
	if c.Series.StartPrice <= 0 {
		return fmt.Errorf("series.start_price must be positive, %w", ErrInvalidConfig)
	}
	if c.Series.MaxDailyChange < 0 {
		return fmt.Errorf("series.max_daily_change must not be negative, %w", ErrInvalidConfig)
	}
	if _, err := c.EndDate(); err != nil {
		return fmt.Errorf("series.end_date %q, %w", c.Series.EndDate, ErrInvalidConfig)
	}
	for _, w := range c.Forecast.Windows {
		if w < 1 {
			return fmt.Errorf("forecast.windows must be positive but got %d, %w", w, ErrInvalidConfig)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// EndDate returns the last day of the simulated series. The zero time means today.
func (c *Config) EndDate() (time.Time, error) {
	if c.Series.EndDate == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, c.Series.EndDate)
}

// Level maps the configured log level to a slog level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log_level %q, %w", c.LogLevel, ErrInvalidConfig)
	}
	return level, nil
}
