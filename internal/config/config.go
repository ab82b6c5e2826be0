// Package config holds the settings shared by the roomba command line tools.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"roomba/internal/geom"
	"roomba/internal/robot"
	"roomba/internal/sim"
)

// EnvPath names the environment variable pointing at the config file.
const EnvPath = "ROOMBA_CONFIG"

// DefaultPath is read when EnvPath is unset.
const DefaultPath = "roomba.yaml"

// Config is the full set of run settings. Every field can be set from the
// YAML file and overridden by a flag of the same name.
type Config struct {
	Agent string  `yaml:"agent"`
	Body  string  `yaml:"body"`
	Param float64 `yaml:"param"`

	Robots   int     `yaml:"robots"`
	Speed    float64 `yaml:"speed"`
	Coverage float64 `yaml:"coverage"`
	Trials   int     `yaml:"trials"`
	Ceiling  int     `yaml:"ceiling"`
	Seed     int64   `yaml:"seed"`
	Workers  int     `yaml:"workers"`
	// Start is an optional "x,y" start location. Empty means random.
	Start string `yaml:"start"`

	Catalog string   `yaml:"catalog"`
	Rooms   []string `yaml:"rooms,omitempty"`

	Log LogConfig `yaml:"log"`
	UI  UIConfig  `yaml:"ui"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// UIConfig controls the viewer.
type UIConfig struct {
	Scale int     `yaml:"scale"`
	TPS   int     `yaml:"tps"`
	Rate  float64 `yaml:"rate"`
}

// Defaults returns the standard configuration.
func Defaults() *Config {
	return &Config{
		Agent:    "reflex",
		Robots:   1,
		Speed:    1,
		Coverage: 0.95,
		Trials:   10,
		Ceiling:  sim.DefaultStepCeiling,
		Seed:     1,
		Workers:  4,
		Log:      LogConfig{Level: "info"},
		UI:       UIConfig{Scale: 16, TPS: 60, Rate: 20},
	}
}

// Path returns the config file location from the environment.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Bind attaches the configuration to the provided FlagSet. Current values
// become the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Agent, "agent", c.Agent, "agent program to run")
	fs.StringVar(&c.Body, "body", c.Body, "robot body: continuous, realistic or discrete (default: agent's own)")
	fs.Float64Var(&c.Param, "param", c.Param, "agent tunable (0 selects the agent default)")
	fs.IntVar(&c.Robots, "robots", c.Robots, "robots per trial")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "robot speed in tiles per step")
	fs.Float64Var(&c.Coverage, "coverage", c.Coverage, "fraction of reachable tiles to clean")
	fs.IntVar(&c.Trials, "trials", c.Trials, "trials per room")
	fs.IntVar(&c.Ceiling, "ceiling", c.Ceiling, "step ceiling per trial")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "experiment seed")
	fs.IntVar(&c.Workers, "workers", c.Workers, "rooms evaluated concurrently")
	fs.StringVar(&c.Start, "start", c.Start, "fixed start location x,y (default random)")
	fs.StringVar(&c.Catalog, "catalog", c.Catalog, "room catalog file (default built-in)")
	fs.Func("rooms", "comma separated room names (default all)", func(v string) error {
		c.Rooms = splitList(v)
		return nil
	})
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level")
	fs.StringVar(&c.Log.File, "log-file", c.Log.File, "rotating log file (default stderr only)")
	fs.IntVar(&c.UI.Scale, "scale", c.UI.Scale, "viewer pixels per tile")
	fs.IntVar(&c.UI.TPS, "tps", c.UI.TPS, "viewer frames per second")
	fs.Float64Var(&c.UI.Rate, "rate", c.UI.Rate, "viewer simulation steps per second")
}

// Validate checks the run settings.
func (c *Config) Validate() error {
	switch {
	case c.Robots <= 0:
		return fmt.Errorf("%w: robots must be positive, got %d", robot.ErrInvalidParameter, c.Robots)
	case !(c.Speed > 0):
		return fmt.Errorf("%w: speed must be positive, got %v", robot.ErrInvalidParameter, c.Speed)
	case c.Coverage < 0 || c.Coverage > 1:
		return fmt.Errorf("%w: coverage must be within [0, 1], got %v", robot.ErrInvalidParameter, c.Coverage)
	case c.Trials <= 0:
		return fmt.Errorf("%w: trials must be positive, got %d", robot.ErrInvalidParameter, c.Trials)
	case c.Ceiling <= 0:
		return fmt.Errorf("%w: ceiling must be positive, got %d", robot.ErrInvalidParameter, c.Ceiling)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", robot.ErrInvalidParameter, c.Workers)
	}
	_, err := c.StartPoint()
	return err
}

// StartPoint parses Start. A nil point means random placement.
func (c *Config) StartPoint() (*geom.Point, error) {
	if strings.TrimSpace(c.Start) == "" {
		return nil, nil
	}
	parts := strings.Split(c.Start, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: start %q is not x,y", robot.ErrInvalidParameter, c.Start)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return nil, fmt.Errorf("%w: start %q is not x,y", robot.ErrInvalidParameter, c.Start)
	}
	p := geom.Pt(x, y)
	return &p, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
