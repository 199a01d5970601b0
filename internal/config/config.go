package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Booking     BookingConfig     `toml:"booking"`
	AuthService AuthServiceConfig `toml:"auth_service"`
	FileStorage FileStorageConfig `toml:"file_storage"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры каталога слотов
// Слоты генерируются от open_hour до close_hour с шагом slot_duration_minutes
type BookingConfig struct {
	OpenHour            int `toml:"open_hour"`
	CloseHour           int `toml:"close_hour"`
	SlotDurationMinutes int `toml:"slot_duration_minutes"`
}

// AuthServiceConfig настройки клиента сервиса аутентификации
type AuthServiceConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

// FileStorageConfig настройки клиента файлового хранилища
type FileStorageConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Bucket  string `toml:"bucket"`
	Timeout int    `toml:"timeout"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "mrs-roombooking"
	}
	// Каталог слотов по умолчанию: 08:00-20:00, слот один час
	if cfg.Booking.OpenHour == 0 {
		cfg.Booking.OpenHour = 8
	}
	if cfg.Booking.CloseHour == 0 {
		cfg.Booking.CloseHour = 21
	}
	if cfg.Booking.SlotDurationMinutes == 0 {
		cfg.Booking.SlotDurationMinutes = 60
	}
	if cfg.AuthService.Timeout == 0 {
		cfg.AuthService.Timeout = 5
	}
	if cfg.FileStorage.Timeout == 0 {
		cfg.FileStorage.Timeout = 30
	}
	if cfg.FileStorage.Bucket == "" {
		cfg.FileStorage.Bucket = "room-images"
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.Booking.OpenHour < 0 || cfg.Booking.OpenHour > 23 {
		return fmt.Errorf("config: booking.open_hour must be within 0..23")
	}
	if cfg.Booking.CloseHour <= cfg.Booking.OpenHour || cfg.Booking.CloseHour > 24 {
		return fmt.Errorf("config: booking.close_hour must be within (open_hour..24]")
	}
	if cfg.Booking.SlotDurationMinutes <= 0 {
		return fmt.Errorf("config: booking.slot_duration_minutes must be positive")
	}
	return nil
}
