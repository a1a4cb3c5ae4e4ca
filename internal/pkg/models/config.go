package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	API       APIConfig       `mapstructure:"api"`
	Display   DisplayConfig   `mapstructure:"display"`
	Search    SearchConfig    `mapstructure:"search"`
	Extractor ExtractorConfig `mapstructure:"extractor"`
	Logger    LoggerConfig    `mapstructure:"logger"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"env"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains view server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// APIConfig points at the remote trips API.
// A zero Timeout leaves the request unbounded.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DisplayConfig controls how timestamps are rendered
type DisplayConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// SearchConfig holds the city list offered by the search form
type SearchConfig struct {
	Cities []string `mapstructure:"cities"`
}

// ExtractorConfig configures the trip draft extractor
type ExtractorConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}
