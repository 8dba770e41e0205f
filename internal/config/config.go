// Package config provides configuration types and defaults for the housing
// registry.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/RyanHill92/housing/internal/housing"
)

// Record sources.
const (
	SourceFile   = "file"
	SourceMySQL  = "mysql"
	SourceSQLite = "sqlite"
)

// Config holds all configuration options.
type Config struct {
	Grid   GridConfig   `mapstructure:"grid"`
	Load   LoadConfig   `mapstructure:"load"`
	Source string       `mapstructure:"source"`
	SQLite SQLiteConfig `mapstructure:"sqlite"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
}

// GridConfig sets the registry dimensions.
type GridConfig struct {
	Rows int `mapstructure:"rows"`
	Cols int `mapstructure:"cols"`
}

// LoadConfig controls how bad records are handled.
type LoadConfig struct {
	OnError string `mapstructure:"on_error"` // "continue" or "abort"
}

// SQLiteConfig points at a SQLite database file.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// MySQLConfig holds MySQL connection settings. They are normally supplied
// through DB_USER, DB_PASSWORD, DB_HOST and DB_NAME.
type MySQLConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Name     string `mapstructure:"name"`
}

// Keys shared between flags, files and the environment.
const (
	KeyRows        = "grid.rows"
	KeyCols        = "grid.cols"
	KeyOnLoadError = "load.on_error"
	KeySource      = "source"
	KeySQLitePath  = "sqlite.path"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Grid:   GridConfig{Rows: housing.DefaultRows, Cols: housing.DefaultCols},
		Load:   LoadConfig{OnError: string(housing.LoadContinue)},
		Source: SourceFile,
		MySQL:  MySQLConfig{Name: "housing"},
	}
}

// New returns a viper instance with defaults and environment bindings set.
// Environment variables use the HOUSING_ prefix (HOUSING_GRID_ROWS), except
// for the MySQL credentials which keep their DB_* names.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyRows, d.Grid.Rows)
	v.SetDefault(KeyCols, d.Grid.Cols)
	v.SetDefault(KeyOnLoadError, d.Load.OnError)
	v.SetDefault(KeySource, d.Source)
	v.SetDefault(KeySQLitePath, d.SQLite.Path)
	v.SetDefault("mysql.user", "")
	v.SetDefault("mysql.password", "")
	v.SetDefault("mysql.host", "")
	v.SetDefault("mysql.name", d.MySQL.Name)

	v.SetEnvPrefix("housing")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range dbEnv {
		if err := v.BindEnv(key, env); err != nil {
			panic(fmt.Sprintf("binding %s to %s: %v", key, env, err))
		}
	}
	return v
}

// dbEnv maps database keys to the variables the neighborhood scripts export.
var dbEnv = map[string]string{
	"mysql.user":     "DB_USER",
	"mysql.password": "DB_PASSWORD",
	"mysql.host":     "DB_HOST",
	"mysql.name":     "DB_NAME",
}

// Load reads the optional config file into v and decodes the result.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks configuration for errors.
func (c Config) Validate() error {
	if c.Grid.Rows <= 0 {
		return fmt.Errorf("grid.rows must be positive, got %d", c.Grid.Rows)
	}
	if c.Grid.Cols <= 0 || c.Grid.Cols > housing.MaxCols {
		return fmt.Errorf("grid.cols must be between 1 and %d, got %d", housing.MaxCols, c.Grid.Cols)
	}
	if _, err := housing.ParseLoadPolicy(c.Load.OnError); err != nil {
		return fmt.Errorf("load.on_error: %w", err)
	}

	switch c.Source {
	case SourceFile:
	case SourceSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required for the sqlite source")
		}
	case SourceMySQL:
		if c.MySQL.User == "" || c.MySQL.Password == "" || c.MySQL.Host == "" {
			return fmt.Errorf("must set DB_USER, DB_PASSWORD and DB_HOST for the mysql source")
		}
	default:
		return fmt.Errorf("unknown source %q", c.Source)
	}
	return nil
}

// LoadPolicy returns the parsed load policy. Call after Validate.
func (c Config) LoadPolicy() housing.LoadPolicy {
	p, _ := housing.ParseLoadPolicy(c.Load.OnError)
	return p
}
