package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Training TrainingConfig `mapstructure:"training" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel    string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// TrainingConfig contains the training engine settings.
type TrainingConfig struct {
	// DefaultUserID identifies requests that carry no explicit user.
	DefaultUserID string `mapstructure:"default_user_id" validate:"required"`

	// MaxSynthesisAttempts caps the hand synthesis retry loop.
	MaxSynthesisAttempts int `mapstructure:"max_synthesis_attempts" validate:"required,gt=0"`

	// FallbackPolicy selects what happens when synthesis exhausts its
	// attempts: "draw" falls back to a random five-card draw, "error" fails
	// the generation.
	FallbackPolicy string `mapstructure:"fallback_policy" validate:"required,oneof=draw error"`
}
