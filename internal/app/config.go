package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/registrar/internal/scoring"
	"github.com/shrimpsizemoose/registrar/internal/store"
)

type Config struct {
	Store struct {
		Driver       string `toml:"driver"`
		DataDir      string `toml:"data_dir"`
		StudentsFile string `toml:"students_file"`
		CoursesFile  string `toml:"courses_file"`
		PassedFile   string `toml:"passed_file"`
	} `toml:"store"`

	Students struct {
		EmailDomain string `toml:"email_domain"`
	} `toml:"students"`

	Grading scoring.Grader `toml:"grading"`

	Search struct {
		MinQueryLength int `toml:"min_query_length"`
	} `toml:"search"`

	Display struct {
		Color bool `toml:"color"`
	} `toml:"display"`

	Metrics struct {
		Textfile string `toml:"textfile"`
	} `toml:"metrics"`
}

func DefaultConfig() *Config {
	var config Config
	config.Store.Driver = string(store.DriverFlatFile)
	config.Store.DataDir = "."
	config.Store.StudentsFile = "students.txt"
	config.Store.CoursesFile = "courses.txt"
	config.Store.PassedFile = "passed.txt"
	config.Students.EmailDomain = "lut.fi"
	config.Grading.RecencyWindowDays = scoring.DefaultRecencyWindowDays
	config.Search.MinQueryLength = 3
	config.Display.Color = true
	return &config
}

// LoadConfig overlays the TOML file at path on the defaults, then applies
// REGISTRAR_* environment overrides. A missing file leaves the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug.Printf("Config %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("error reading config file: %w", err)
	default:
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf(
				"error reading config file %s\n> Error: %w\n> Content:\n%s",
				path,
				err,
				string(data),
			)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	logger.Debug.Printf("Loaded config: %+v", *config)

	return config, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("REGISTRAR_DATA_DIR"); v != "" {
		c.Store.DataDir = v
	}
	if v := os.Getenv("REGISTRAR_STORE_DRIVER"); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv("REGISTRAR_METRICS_TEXTFILE"); v != "" {
		c.Metrics.Textfile = v
	}
	if v := os.Getenv("REGISTRAR_RECENCY_WINDOW_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REGISTRAR_RECENCY_WINDOW_DAYS must be a number, got %q", v)
		}
		c.Grading.RecencyWindowDays = days
	}
	return nil
}

func (c *Config) validate() error {
	switch store.Driver(c.Store.Driver) {
	case store.DriverFlatFile, store.DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q, use %q or %q", c.Store.Driver, store.DriverFlatFile, store.DriverMemory)
	}
	if c.Students.EmailDomain == "" {
		return fmt.Errorf("students.email_domain is not specified in config, use a value like lut.fi")
	}
	if c.Grading.RecencyWindowDays < 0 {
		return fmt.Errorf("grading.recency_window_days must not be negative")
	}
	if c.Search.MinQueryLength < 0 {
		return fmt.Errorf("search.min_query_length must not be negative")
	}
	return nil
}

func (c *Config) FileConfig() *store.FileConfig {
	return &store.FileConfig{
		Dir:          c.Store.DataDir,
		StudentsFile: c.Store.StudentsFile,
		CoursesFile:  c.Store.CoursesFile,
		PassedFile:   c.Store.PassedFile,
	}
}
