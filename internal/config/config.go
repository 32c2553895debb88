package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Rosreestr RosreestrConfig
	Direct    DirectConfig
	Geo       GeoConfig
	Routing   RoutingConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// RosreestrConfig - настройки удалённого API кадастровых данных
type RosreestrConfig struct {
	BaseURL        string
	APIToken       string
	RequestTimeout time.Duration
}

// DirectConfig - настройки прямого вызова библиотеки rosreestr2coord
type DirectConfig struct {
	PythonBin string
	Timeout   time.Duration
}

// GeoConfig - настройки сервиса геолокации IP
type GeoConfig struct {
	CheckURL string
	Timeout  time.Duration
}

type RoutingConfig struct {
	// DesignatedRegion - двухбуквенный код страны, из которой разрешён прямой вызов библиотеки
	DesignatedRegion string
	ForceRemoteAPI   bool
}

type LogConfig struct {
	Level  string
	Output string
}

const (
	DefaultRosreestrAPIURL  = "https://rosreestr2coord.yoltash.ru"
	DefaultGeoCheckURL      = "https://ipapi.co/json/"
	DefaultDesignatedRegion = "RU"
)

// Load читает конфигурацию из .env (если файл есть) и переменных окружения.
// Переменные окружения имеют приоритет над файлом.
func Load() (*Config, error) {
	return load(".env")
}

func load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Rosreestr: RosreestrConfig{
			BaseURL:        strings.TrimRight(v.GetString("ROSREESTR_API_URL"), "/"),
			APIToken:       strings.TrimSpace(v.GetString("ROSREESTR_API_TOKEN")),
			RequestTimeout: time.Duration(v.GetInt("ROSREESTR_API_TIMEOUT")) * time.Second,
		},
		Direct: DirectConfig{
			PythonBin: v.GetString("ROSREESTR2COORD_PYTHON"),
			Timeout:   time.Duration(v.GetInt("ROSREESTR2COORD_TIMEOUT")) * time.Second,
		},
		Geo: GeoConfig{
			CheckURL: v.GetString("GEO_CHECK_URL"),
			Timeout:  time.Duration(v.GetInt("GEO_TIMEOUT")) * time.Second,
		},
		Routing: RoutingConfig{
			DesignatedRegion: strings.ToUpper(strings.TrimSpace(v.GetString("DESIGNATED_REGION"))),
			ForceRemoteAPI:   v.GetBool("FORCE_REMOTE_API"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Output: v.GetString("LOG_OUTPUT"),
		},
	}

	if cfg.Rosreestr.BaseURL == "" {
		cfg.Rosreestr.BaseURL = DefaultRosreestrAPIURL
	}
	if cfg.Routing.DesignatedRegion == "" {
		cfg.Routing.DesignatedRegion = DefaultDesignatedRegion
	}
	if len(cfg.Routing.DesignatedRegion) != 2 {
		return nil, fmt.Errorf("DESIGNATED_REGION must be a two-letter country code, got %q", cfg.Routing.DesignatedRegion)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("ROSREESTR_API_URL", DefaultRosreestrAPIURL)
	v.SetDefault("ROSREESTR_API_TIMEOUT", 60)
	v.SetDefault("ROSREESTR2COORD_PYTHON", "python3")
	v.SetDefault("ROSREESTR2COORD_TIMEOUT", 30)
	v.SetDefault("GEO_CHECK_URL", DefaultGeoCheckURL)
	v.SetDefault("GEO_TIMEOUT", 5)
	v.SetDefault("DESIGNATED_REGION", DefaultDesignatedRegion)
	v.SetDefault("FORCE_REMOTE_API", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_OUTPUT", "stdout")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// HasAPIToken сообщает, настроен ли токен удалённого API
func (c *Config) HasAPIToken() bool {
	return c.Rosreestr.APIToken != ""
}
