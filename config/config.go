// Package config provides loading and validation of gridwalk run
// configuration files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridwalk/logging"
	"github.com/katalvlaran/gridwalk/search"
)

// Sentinel errors for configuration loading.
var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")
	// ErrInvalidFormat indicates the file is not valid YAML for Config.
	ErrInvalidFormat = errors.New("config: invalid format")
	// ErrValidationFailed indicates a field holds an unusable value.
	ErrValidationFailed = errors.New("config: validation failed")
)

// Config is a complete run configuration.
//
//	input: maps/day06.txt
//	search:
//	  workers: 8
//	  strategy: path
//	log:
//	  level: debug
//	  format: json
//	metrics:
//	  textfile: /var/lib/node_exporter/gridwalk.prom
//	profile:
//	  mode: cpu
//	  dir: ./profiles
type Config struct {
	// Input is the grid file; "-" or empty reads stdin.
	Input   string         `yaml:"input"`
	Search  SearchConfig   `yaml:"search"`
	Log     logging.Config `yaml:"log"`
	Metrics MetricsConfig  `yaml:"metrics"`
	Profile ProfileConfig  `yaml:"profile"`
}

// SearchConfig tunes the obstruction search.
type SearchConfig struct {
	// Workers is the number of concurrent trials; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Strategy is "path" or "exhaustive".
	Strategy string `yaml:"strategy"`
}

// MetricsConfig selects where trial metrics are written.
type MetricsConfig struct {
	// Textfile, if set, receives the metrics in Prometheus text format.
	Textfile string `yaml:"textfile"`
}

// ProfileConfig enables runtime profiling.
type ProfileConfig struct {
	// Mode is one of cpu, mem, block, mutex, trace; empty disables profiling.
	Mode string `yaml:"mode"`
	// Dir is where profile files are written; empty means the working dir.
	Dir string `yaml:"dir"`
}

// ProfileModes lists the accepted ProfileConfig.Mode values.
var ProfileModes = []string{"cpu", "mem", "block", "mutex", "trace"}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input: "-",
		Search: SearchConfig{
			Workers:  0,
			Strategy: search.BaselinePath.String(),
		},
		Log: logging.Config{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadFile loads and validates configuration from a YAML file. Fields
// absent from the file keep their Default values.
func LoadFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to access config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads YAML configuration from r on top of Default and validates it.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadString loads configuration from a string.
func LoadString(content string) (*Config, error) {
	return Load(strings.NewReader(content))
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string
	if c.Search.Workers < 0 {
		problems = append(problems, fmt.Sprintf("search.workers must be >= 0, got %d", c.Search.Workers))
	}
	if _, err := search.ParseStrategy(c.Search.Strategy); err != nil {
		problems = append(problems, fmt.Sprintf("search.strategy %q is not path or exhaustive", c.Search.Strategy))
	}
	if c.Log.Level != "" && !logging.ValidLevel(c.Log.Level) {
		problems = append(problems, fmt.Sprintf("log.level %q is not a known level", c.Log.Level))
	}
	if c.Log.Format != "" && c.Log.Format != "json" && c.Log.Format != "console" {
		problems = append(problems, fmt.Sprintf("log.format %q is not json or console", c.Log.Format))
	}
	if c.Profile.Mode != "" && !validProfileMode(c.Profile.Mode) {
		problems = append(problems, fmt.Sprintf("profile.mode %q is not one of %s", c.Profile.Mode, strings.Join(ProfileModes, ", ")))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(problems, "; "))
	}
	return nil
}

func validProfileMode(m string) bool {
	for _, v := range ProfileModes {
		if m == v {
			return true
		}
	}
	return false
}
