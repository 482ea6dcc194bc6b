// Package config layers the tool's settings: built-in defaults, an optional
// YAML file, NEXTBUS_* environment variables and finally command line flags.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/travigo/nextbus/pkg/nextrip"
	"github.com/travigo/nextbus/pkg/util"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfig    = "NEXTBUS_CONFIG"
	EnvHost      = "NEXTBUS_HOST"
	EnvTimeout   = "NEXTBUS_TIMEOUT"
	EnvUserAgent = "NEXTBUS_USER_AGENT"
)

type Config struct {
	Host      string            `yaml:"host" validate:"required,url"`
	Timeout   time.Duration     `yaml:"timeout" validate:"gt=0"`
	UserAgent string            `yaml:"useragent"`
	Endpoints nextrip.Endpoints `yaml:"endpoints"`
}

func Default() Config {
	return Config{
		Host:      nextrip.DefaultHost,
		Timeout:   30 * time.Second,
		UserAgent: nextrip.DefaultUserAgent,
		Endpoints: nextrip.DefaultEndpoints,
	}
}

// Load merges the config file at path (or the one named by NEXTBUS_CONFIG) and
// the environment over the defaults. A missing path means no file.
func Load(path string, env map[string]string) (Config, error) {
	cfg := Default()

	path = strings.TrimSpace(path)
	if path == "" {
		path = util.GetEnvironmentValue(env, "", EnvConfig)
	}

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}

	if err := cfg.applyEnvironment(env); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnvironment(env map[string]string) error {
	c.Host = util.GetEnvironmentValue(env, c.Host, EnvHost)
	c.UserAgent = util.GetEnvironmentValue(env, c.UserAgent, EnvUserAgent)

	if timeout := util.GetEnvironmentValue(env, "", EnvTimeout); timeout != "" {
		duration, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = duration
	}

	return nil
}

func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.Struct(c); err != nil {
		return err
	}

	return nil
}
