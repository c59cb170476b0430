package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"elevsim/src/dispatcher"

	"github.com/joho/godotenv"
	"github.com/xyproto/randomstring"
	"gopkg.in/yaml.v3"
)

const (
	EnvPrefix   = "ELEVSIM_"
	RunIDLength = 8
)

var ErrInvalidConfig = errors.New("invalid config")

// Config describes one simulation run. Calls are generated for every tick in [StartTime, EndTime).
type Config struct {
	NumElevators int    `yaml:"num_elevators"`
	Capacity     int    `yaml:"capacity"`
	StartFloor   int    `yaml:"start_floor"`
	NumFloors    int    `yaml:"num_floors"`
	Policy       string `yaml:"policy"`
	Seed         uint64 `yaml:"seed"`
	StartTime    int    `yaml:"start_time"`
	EndTime      int    `yaml:"end_time"`
	RunID        string `yaml:"run_id"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	LogDir       string `yaml:"log_dir"`
	Compare      bool   `yaml:"compare"`
}

func Default() Config {
	return Config{
		NumElevators: 3,
		Capacity:     10,
		StartFloor:   0,
		NumFloors:    100,
		Policy:       dispatcher.RoundRobinAppendName,
		Seed:         12345,
		StartTime:    0,
		EndTime:      2000,
		LogLevel:     "info",
	}
}

// Load reads a YAML file on top of the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()
	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return c, nil
}

// ApplyEnv overrides fields from ELEVSIM_* variables, first from envFile and then from the
// process environment. A missing envFile is ignored.
func ApplyEnv(c *Config, envFile string) error {
	values := map[string]string{}
	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", envFile, err)
		}
		for key, value := range fileValues {
			values[key] = value
		}
	}

	// Work on a copy so a bad value leaves c as it was.
	next := *c
	for key, set := range next.envSetters() {
		value, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			value, ok = values[EnvPrefix+key]
		}
		if !ok {
			continue
		}
		if err := set(value); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidConfig, EnvPrefix, key, value, err)
		}
	}
	*c = next
	return nil
}

func (c *Config) envSetters() map[string]func(string) error {
	setInt := func(field *int) func(string) error {
		return func(value string) error {
			n, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			*field = n
			return nil
		}
	}
	setString := func(field *string) func(string) error {
		return func(value string) error {
			*field = value
			return nil
		}
	}
	return map[string]func(string) error{
		"NUM_ELEVATORS": setInt(&c.NumElevators),
		"CAPACITY":      setInt(&c.Capacity),
		"START_FLOOR":   setInt(&c.StartFloor),
		"NUM_FLOORS":    setInt(&c.NumFloors),
		"START_TIME":    setInt(&c.StartTime),
		"END_TIME":      setInt(&c.EndTime),
		"POLICY":        setString(&c.Policy),
		"RUN_ID":        setString(&c.RunID),
		"LOG_LEVEL":     setString(&c.LogLevel),
		"LOG_FILE":      setString(&c.LogFile),
		"LOG_DIR":       setString(&c.LogDir),
		"SEED": func(value string) error {
			n, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return err
			}
			c.Seed = n
			return nil
		},
		"COMPARE": func(value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			c.Compare = b
			return nil
		},
	}
}

func (c Config) Validate() error {
	switch {
	case c.NumElevators <= 0:
		return fmt.Errorf("%w: need at least one elevator, got %d", ErrInvalidConfig, c.NumElevators)
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.NumFloors <= 0:
		return fmt.Errorf("%w: need at least one floor, got %d", ErrInvalidConfig, c.NumFloors)
	case c.StartFloor < 0 || c.StartFloor >= c.NumFloors:
		return fmt.Errorf("%w: start floor %d outside [0, %d)", ErrInvalidConfig, c.StartFloor, c.NumFloors)
	case c.StartTime < 0 || c.EndTime <= c.StartTime:
		return fmt.Errorf("%w: empty time window [%d, %d)", ErrInvalidConfig, c.StartTime, c.EndTime)
	}
	if _, err := dispatcher.ByName(c.Policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}

// EnsureRunID fills in a random run identifier if none was given and reports whether it did.
func (c *Config) EnsureRunID() bool {
	if c.RunID != "" {
		return false
	}
	c.RunID = randomstring.EnglishFrequencyString(RunIDLength)
	return true
}

// LogPath is LogFile if set, otherwise <RunID>.log inside LogDir. Empty means no log file.
func (c Config) LogPath() string {
	if c.LogFile != "" || c.LogDir == "" {
		return c.LogFile
	}
	return filepath.Join(c.LogDir, c.RunID+".log")
}
