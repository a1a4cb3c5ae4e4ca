package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/spf13/viper"
)

// DefaultCities is the city list offered by the search form
var DefaultCities = []string{
	"Аскарово", "Уфа", "Магнитогорск", "Баймак", "Юлдыбай",
	"Хамит", "Белорецк", "Гай", "Акъяр", "Орск", "Оренбург",
}

// New returns a viper instance with defaults and environment binding.
// Nested keys map to upper-case variables: api.base_url -> API_BASE_URL.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("app.name", "poputchik")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.version", "development")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("api.base_url", "https://fastapi.nl.tuna.am")
	v.SetDefault("api.timeout", time.Duration(0))

	v.SetDefault("display.timezone", "Local")
	v.SetDefault("search.cities", DefaultCities)
	v.SetDefault("extractor.delay", 1500*time.Millisecond)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("logger.level", "LOGGER_LEVEL", "LOG_LEVEL")

	return v
}

// InitConfig reads the optional YAML file at configPath on top of the
// defaults and environment, and decodes the result
func InitConfig(v *viper.Viper, configPath string) (*models.Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return configs, nil
}

// Location resolves the display time zone, falling back to time.Local
func Location(cfg models.DisplayConfig) (*time.Location, error) {
	name := strings.TrimSpace(cfg.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, fmt.Errorf("unknown display timezone %q: %w", name, err)
	}
	return loc, nil
}
