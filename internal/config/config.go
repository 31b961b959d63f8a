// Package config loads contentschema settings from a config file, the
// environment and command-line flags through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/reoring/contentschema/internal/logging"
)

const (
	// EnvPrefix is prepended to every environment variable, e.g.
	// CONTENTSCHEMA_OUT_DIR or CONTENTSCHEMA_LOG_LEVEL.
	EnvPrefix = "CONTENTSCHEMA"
	// FileName is the config file searched for in the working directory.
	FileName = "contentschema"

	DefaultOutDir = ".astro/collections"
	DefaultIndent = 2
)

// Keys bound to flags and environment variables.
const (
	KeySources     = "sources"
	KeyOutDir      = "out_dir"
	KeyCollections = "collections"
	KeyConcurrency = "concurrency"
	KeyIndent      = "indent"
	KeyLanguage    = "language"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyLogFile     = "log.file"
	KeyLogMaxSize  = "log.max_size_mb"
	KeyLogBackups  = "log.max_backups"
)

// Config is the merged configuration.
type Config struct {
	Sources     []string `mapstructure:"sources"`
	OutDir      string   `mapstructure:"out_dir"`
	Collections []string `mapstructure:"collections"`
	Concurrency int      `mapstructure:"concurrency"`
	Indent      int      `mapstructure:"indent"`
	Language    string   `mapstructure:"language"`
	Log         Log      `mapstructure:"log"`
}

// Log configures the CLI logger.
type Log struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Options converts the log section into logging options.
func (l Log) Options(noColor bool) logging.Options {
	return logging.Options{
		Level:      l.Level,
		Format:     l.Format,
		File:       l.File,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		NoColor:    noColor,
	}
}

// IndentString returns the indentation unit for encoded documents.
func (c *Config) IndentString() string { return strings.Repeat(" ", c.Indent) }

// Wants reports whether the collection should be generated.
func (c *Config) Wants(name string) bool {
	if len(c.Collections) == 0 {
		return true
	}
	for _, n := range c.Collections {
		if n == name {
			return true
		}
	}
	return false
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySources, []string{})
	v.SetDefault(KeyOutDir, DefaultOutDir)
	v.SetDefault(KeyCollections, []string{})
	v.SetDefault(KeyConcurrency, 0)
	v.SetDefault(KeyIndent, DefaultIndent)
	v.SetDefault(KeyLanguage, "en")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogMaxSize, 10)
	v.SetDefault(KeyLogBackups, 3)
}

// Read prepares v and reads the config file. An explicit file must exist;
// otherwise contentschema.{yaml,json,toml} is looked up in the working
// directory and silently skipped when absent. It returns the file used, if
// any.
func Read(v *viper.Viper, fs afero.Fs, file string) (string, error) {
	if fs != nil {
		v.SetFs(fs)
	}
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &nf) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects values the CLI cannot act on.
func (c *Config) Validate() error {
	var errs []error
	if c.OutDir == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyOutDir))
	}
	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("%s must be >= 0, got %d", KeyConcurrency, c.Concurrency))
	}
	if c.Indent < 0 || c.Indent > 8 {
		errs = append(errs, fmt.Errorf("%s must be between 0 and 8, got %d", KeyIndent, c.Indent))
	}
	switch c.Language {
	case "en", "ja":
	default:
		errs = append(errs, fmt.Errorf("%s must be en or ja, got %q", KeyLanguage, c.Language))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("%s must be console or json, got %q", KeyLogFormat, c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
