// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/strassen/logger"
	"gopkg.in/yaml.v3"
)

// Config is the complete configuration of one strassen process.
type Config struct {
	Ring     RingConfig     `yaml:"ring"`
	Matrix   MatrixConfig   `yaml:"matrix"`
	Cluster  ClusterConfig  `yaml:"cluster"`
	Protocol ProtocolConfig `yaml:"protocol"`
	Log      LogConfig      `yaml:"log"`
}

// RingConfig selects Z/pZ.
type RingConfig struct {
	Modulus uint64 `yaml:"modulus" env:"STRASSEN_RING_MODULUS"`
}

// MatrixConfig describes the generated operands.
type MatrixConfig struct {
	Order int   `yaml:"order" env:"STRASSEN_MATRIX_ORDER"`
	Seed  int64 `yaml:"seed" env:"STRASSEN_MATRIX_SEED"`
}

// ClusterConfig describes the process group.
type ClusterConfig struct {
	Size        int           `yaml:"size" env:"STRASSEN_CLUSTER_SIZE"`
	Address     string        `yaml:"address" env:"STRASSEN_CLUSTER_ADDRESS"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"STRASSEN_CLUSTER_DIAL_TIMEOUT"`
}

// ProtocolConfig tunes the coordinator.
type ProtocolConfig struct {
	// CollectTimeout bounds the wait for worker results; 0 waits forever.
	CollectTimeout time.Duration `yaml:"collect_timeout" env:"STRASSEN_PROTOCOL_COLLECT_TIMEOUT"`
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level      string `yaml:"level" env:"STRASSEN_LOG_LEVEL"`
	Format     string `yaml:"format" env:"STRASSEN_LOG_FORMAT"`
	Output     string `yaml:"output" env:"STRASSEN_LOG_OUTPUT"`
	FilePath   string `yaml:"file_path" env:"STRASSEN_LOG_FILE_PATH"`
	MaxSize    int    `yaml:"max_size" env:"STRASSEN_LOG_MAX_SIZE"`
	MaxBackups int    `yaml:"max_backups" env:"STRASSEN_LOG_MAX_BACKUPS"`
	MaxAge     int    `yaml:"max_age" env:"STRASSEN_LOG_MAX_AGE"`
}

// Logger converts the section into the logger package's configuration.
func (c LogConfig) Logger() *logger.Config {
	return &logger.Config{
		Level:      c.Level,
		Format:     c.Format,
		Output:     c.Output,
		FilePath:   c.FilePath,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
	}
}

// Default returns a Config with default values: Z/13Z, order 4, a group of seven.
func Default() *Config {
	return &Config{
		Ring:   RingConfig{Modulus: 13},
		Matrix: MatrixConfig{Order: 4, Seed: 1},
		Cluster: ClusterConfig{
			Size:        7,
			Address:     "127.0.0.1:7070",
			DialTimeout: 10 * time.Second,
		},
		Protocol: ProtocolConfig{CollectTimeout: 0},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			Output:     "stderr",
			MaxSize:    100, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		},
	}
}

// Loader handles configuration loading from multiple sources.
type Loader struct {
	configPath string
	overrides  map[string]string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{overrides: make(map[string]string)}
}

// WithConfigPath sets the path to the YAML configuration file.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithOverride sets a dot-notation override, e.g. "ring.modulus" = "17".
func (l *Loader) WithOverride(path, value string) *Loader {
	l.overrides[path] = value
	return l
}

// Load applies every source in precedence order and validates the result.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	if l.configPath != "" {
		if err := loadFromFile(l.configPath, cfg); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", l.configPath, err)
		}
	}
	if err := applyEnv(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	for path, value := range l.overrides {
		if err := cfg.Set(path, value); err != nil {
			return nil, fmt.Errorf("config: override %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is NewLoader().WithConfigPath(path).Load().
func Load(path string) (*Config, error) {
	return NewLoader().WithConfigPath(path).Load()
}

// Parse decodes YAML on top of the defaults without consulting the environment.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Serialize renders the configuration as YAML.
func (c *Config) Serialize() ([]byte, error) {
	return yaml.Marshal(c)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// applyEnv walks v recursively and sets every field whose env tag names a
// non-empty variable.
func applyEnv(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() == reflect.Struct {
			if err := applyEnv(field); err != nil {
				return err
			}
			continue
		}
		key := t.Field(i).Tag.Get("env")
		if key == "" {
			continue
		}
		value, ok := os.LookupEnv(key)
		if !ok || value == "" {
			continue
		}
		if err := setField(field, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	return nil
}

// Set assigns value to the field at a dot-notation path of yaml keys.
func (c *Config) Set(path, value string) error {
	v := reflect.ValueOf(c).Elem()
	for i, part := range strings.Split(path, ".") {
		field, ok := fieldByYAML(v, part)
		if !ok {
			return fmt.Errorf("unknown key %q", path)
		}
		if i == strings.Count(path, ".") {
			return setField(field, value)
		}
		if field.Kind() != reflect.Struct {
			return fmt.Errorf("%q is not a section", part)
		}
		v = field
	}

	return nil
}

func fieldByYAML(v reflect.Value, key string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("yaml") == key {
			return v.Field(i), true
		}
	}

	return reflect.Value{}, false
}

func setField(field reflect.Value, value string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.SetInt(int64(d))
			return nil
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(n)

	case reflect.Uint64:
		u, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer: %w", err)
		}
		field.SetUint(u)

	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}

	return nil
}
