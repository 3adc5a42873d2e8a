// Package config carga la configuración TOML con valores por defecto y
// overrides por variables de entorno.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the whole application configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Loan   LoanConfig   `mapstructure:"loan"`
	Search SearchConfig `mapstructure:"search"`
}

// LoggerConfig controls the structured logger.
type LoggerConfig struct {
	// Nivel: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Formato: text o json
	Format string `mapstructure:"format"`
	// Ruta del archivo de log; vacío escribe a stderr
	File string `mapstructure:"file"`
	// Tamaño máximo del archivo (MB)
	MaxSize int `mapstructure:"max_size"`
	// Máximo de archivos de respaldo
	MaxBackups int `mapstructure:"max_backups"`
	// Días máximos de retención
	MaxAge int `mapstructure:"max_age"`
	// Comprimir respaldos
	Compress bool `mapstructure:"compress"`
}

// CacheConfig selects the result cache backend.
type CacheConfig struct {
	// Backend: memory o redis
	Backend string `mapstructure:"backend"`
	// Dirección de redis cuando backend es redis
	RedisAddr string `mapstructure:"redis_addr"`
}

// LoanConfig bounds the accepted loan terms.
type LoanConfig struct {
	MaxPrincipal   float64 `mapstructure:"max_principal"`
	MaxRatePercent float64 `mapstructure:"max_rate_percent"`
}

// SearchConfig bounds the rate search bracket.
type SearchConfig struct {
	// Cota superior del bracket de bisección, en porcentaje anual
	MaxRatePercent float64 `mapstructure:"max_rate_percent"`
}

// Load reads the TOML file at path, applying defaults and APP_-prefixed
// environment overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("toml")

	// El archivo es opcional
	_ = v.ReadInConfig()

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate verifica la coherencia de la configuración.
func (c *Config) Validate() error {
	switch c.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logger level: %q", c.Logger.Level)
	}

	switch c.Logger.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logger format: %q", c.Logger.Format)
	}

	switch c.Cache.Backend {
	case "memory":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("redis_addr is required for the redis cache backend")
		}
	default:
		return fmt.Errorf("invalid cache backend: %q", c.Cache.Backend)
	}

	if c.Loan.MaxPrincipal <= 0 {
		return fmt.Errorf("loan.max_principal must be positive")
	}
	if c.Loan.MaxRatePercent <= 0 {
		return fmt.Errorf("loan.max_rate_percent must be positive")
	}
	if c.Search.MaxRatePercent <= 0 {
		return fmt.Errorf("search.max_rate_percent must be positive")
	}
	if c.Search.MaxRatePercent > c.Loan.MaxRatePercent {
		return fmt.Errorf("search.max_rate_percent (%.2f) exceeds loan.max_rate_percent (%.2f)",
			c.Search.MaxRatePercent, c.Loan.MaxRatePercent)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", false)

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redis_addr", "localhost:6379")

	v.SetDefault("loan.max_principal", 1_000_000_000.0)
	v.SetDefault("loan.max_rate_percent", 100.0)

	v.SetDefault("search.max_rate_percent", 50.0)
}
