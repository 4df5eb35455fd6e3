package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// configPathEnv names an explicit config file. A missing or broken file is
// then an error instead of being skipped.
const configPathEnv = "CONFIG_PATH"

var durationType = reflect.TypeFor[time.Duration]()

// Load reads the config from the first file found in the standard locations,
// .env and the process environment.
func Load() (*Config, error) {
	return NewLoader().Load("")
}

// LoadFromPath is Load with an explicit file path.
func LoadFromPath(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// Loader layers configuration sources over DefaultConfig:
// yaml file, then dotenv files, then environment variables (`env` tags).
type Loader struct {
	configPaths []string
	envFiles    []string
	lookupEnv   func(string) (string, bool)
}

// NewLoader creates a loader with the standard search paths and ".env".
func NewLoader() *Loader {
	return &Loader{
		configPaths: []string{
			"configs/config.yaml",
			"config.yaml",
			"/etc/talentnet/config.yaml",
		},
		envFiles:  []string{".env"},
		lookupEnv: os.LookupEnv,
	}
}

// WithConfigPaths replaces the list of files searched when no path is given.
func (l *Loader) WithConfigPaths(paths []string) *Loader {
	l.configPaths = paths
	return l
}

// WithEnvFiles sets the dotenv files read before the environment overlay.
// Variables already present in the process environment win.
func (l *Loader) WithEnvFiles(files ...string) *Loader {
	l.envFiles = files
	return l
}

// Load builds and validates the configuration. An empty path searches the
// standard locations; files found that way are optional.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	file, explicit := l.resolve(path)
	if file != "" {
		if err := decodeFile(cfg, file); err != nil && explicit {
			return nil, fmt.Errorf("load config from %s: %w", file, err)
		}
	}

	for _, envFile := range l.envFiles {
		// godotenv.Load не перезаписывает уже заданные переменные
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load dotenv %s: %w", envFile, err)
		}
	}

	if err := overlayEnv(reflect.ValueOf(cfg).Elem(), l.lookupEnv); err != nil {
		return nil, fmt.Errorf("load config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve picks the config file and reports whether it was asked for explicitly.
func (l *Loader) resolve(path string) (string, bool) {
	if path != "" {
		return path, true
	}
	if env, ok := l.lookupEnv(configPathEnv); ok && env != "" {
		return env, true
	}
	for _, candidate := range l.configPaths {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, false
		}
	}
	return "", false
}

func decodeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	// пустой файл оставляет значения по умолчанию
	if err = yaml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// overlayEnv walks nested structs and sets every field whose `env` variable
// is present and non-empty.
func overlayEnv(v reflect.Value, lookup func(string) (string, bool)) error {
	t := v.Type()
	for i := range t.NumField() {
		field, meta := v.Field(i), t.Field(i)

		if field.Kind() == reflect.Struct && field.Type() != durationType {
			if err := overlayEnv(field, lookup); err != nil {
				return err
			}
			continue
		}

		key := meta.Tag.Get("env")
		if key == "" {
			continue
		}
		raw, ok := lookup(key)
		if !ok || raw == "" {
			continue
		}
		if err := setField(field, raw); err != nil {
			return fmt.Errorf("%s (%s): %w", key, meta.Name, err)
		}
	}
	return nil
}

//nolint:exhaustive // config uses strings, numbers, bools and durations only
func setField(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", raw)
		}
		field.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", raw)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
