// Package config loads and validates application configuration.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Wellness WellnessConfig `mapstructure:"wellness" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
}

// WellnessConfig contains the tunable parameters of the derivation pipeline.
// Thresholds are ordinal-scale values; they are configuration, not constants,
// so operations can adjust them without a code change.
type WellnessConfig struct {
	StressThreshold   float64 `mapstructure:"stress_threshold"   validate:"required,gte=1,lte=5"`
	WorkloadThreshold float64 `mapstructure:"workload_threshold" validate:"required,gte=1,lte=5"`
	LowMoodThreshold  float64 `mapstructure:"low_mood_threshold" validate:"required,gte=1,lte=5"`
	LookbackDays      int     `mapstructure:"lookback_days"      validate:"required,gt=0"`
}
