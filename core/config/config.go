package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"moodbank/core/build"
	"moodbank/core/database"
	"moodbank/core/logger"
	"moodbank/core/server"
	"moodbank/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the base name of the optional config file (moodbank.yaml,
// moodbank.yml or moodbank.json).
const FileName = "moodbank"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Root is the project root sources are served and built from.
	Root string `mapstructure:"root" default:"."`
	// Server holds configuration for the development server.
	Server server.Config `mapstructure:"server"`
	// Build holds configuration for the build step.
	Build build.Config `mapstructure:"build"`
	// Backend holds configuration for the backend API.
	Backend BackendConfig `mapstructure:"backend"`
	// Storage holds configuration for the object storage build artifacts are published to.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the mood entry store.
	Database database.Config `mapstructure:"database"`
}

// BackendConfig holds configuration for the backend API server.
type BackendConfig struct {
	// Port is the port the backend listens on.
	Port int `mapstructure:"port" default:"5000"`
	// SessionCookie is the name of the visitor session cookie.
	SessionCookie string `mapstructure:"session_cookie" default:"moodbank_session"`
	// SessionHours is how long an idle visitor session is kept.
	SessionHours int `mapstructure:"session_hours" default:"720"`
	// Swagger exposes the API docs under /swagger.
	Swagger bool `mapstructure:"swagger" default:"true"`
}

// LoadConfig loads configuration from the .env file, an optional moodbank
// config file in path, and environment variables, in increasing precedence.
func LoadConfig(path string) (*Config, error) {
	envPath := filepath.Join(path, ".env")
	if path == "." || path == "" {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	if path == "" {
		path = "."
	}
	v.SetConfigName(FileName)
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.Server.Proxy = server.DefaultProxyRules()
	if used := v.ConfigFileUsed(); used != "" {
		rules, ok, err := readProxyRules(used)
		if err != nil {
			return nil, err
		}
		if ok {
			config.Server.Proxy = rules
		}
		// A relative root in a config file is relative to that file.
		if !filepath.IsAbs(config.Root) {
			config.Root = filepath.Join(filepath.Dir(used), config.Root)
		}
	}

	// The sqlite file usually sits in the project root; keep it out of builds.
	config.Build.Exclude = append(config.Build.Exclude, config.Database.Files()...)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Descriptor returns the project descriptor view of the configuration.
func (c *Config) Descriptor() server.Descriptor {
	return server.Descriptor{
		Root:           c.Root,
		Port:           c.Server.Port,
		ProxyRules:     c.Server.Proxy,
		BuildOutputDir: c.Build.OutDir,
	}.Clone()
}

// Validate checks the descriptor and the backend settings.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Descriptor().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Backend.Port < 1 || c.Backend.Port > 65535 {
		errs = append(errs, fmt.Errorf("backend port %d out of range [1, 65535]", c.Backend.Port))
	}
	if c.Backend.Port == c.Server.Port {
		errs = append(errs, fmt.Errorf("backend and dev server cannot share port %d", c.Server.Port))
	}
	return errors.Join(errs...)
}

// readProxyRules reads server.proxy straight from the config file. Viper
// lowercases map keys and splits them on dots, both of which would change
// path prefixes, so the proxy table bypasses it.
func readProxyRules(file string) (map[string]string, bool, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, false, fmt.Errorf("read config file: %w", err)
	}

	// JSON documents are valid YAML.
	var doc struct {
		Server struct {
			Proxy map[string]string `yaml:"proxy"`
		} `yaml:"server"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("parse server.proxy in %s: %w", file, err)
	}
	if doc.Server.Proxy == nil {
		return nil, false, nil
	}
	return doc.Server.Proxy, true, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" || tag == "-" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
