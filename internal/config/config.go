package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки Redis для распределенной блокировки бронирований
// Если выключено - используется блокировка внутри процесса
type RedisConfig struct {
	Enabled     bool   `toml:"enabled"`
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	LockTTL     int    `toml:"lock_ttl"`     // секунды
	LockRetries int    `toml:"lock_retries"` // попыток захвата
	LockBackoff int    `toml:"lock_backoff"` // миллисекунды между попытками
}

// BookingConfig политика бронирования
type BookingConfig struct {
	// Timezone часовой пояс зала, в нем интерпретируются дата и время сессий
	Timezone string `toml:"timezone"`
	// MemberCancellationCutoffMinutes за сколько минут до начала член клуба еще может отменить сессию
	MemberCancellationCutoffMinutes int `toml:"member_cancellation_cutoff_minutes"`
	// TrainerLiveStatuses статусы, которые блокируют календарь тренера при бронировании администратором
	TrainerLiveStatuses []string `toml:"trainer_live_statuses"`
	// MemberLiveStatuses статусы, которые блокируют календари при бронировании членом клуба
	MemberLiveStatuses []string `toml:"member_live_statuses"`
}

// Location возвращает часовой пояс зала
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// MemberCancellationCutoff возвращает порог отмены как time.Duration
func (c BookingConfig) MemberCancellationCutoff() time.Duration {
	return time.Duration(c.MemberCancellationCutoffMinutes) * time.Minute
}

// TrainerPolicy политика конфликтов для календаря тренера (бронирование администратором)
func (c BookingConfig) TrainerPolicy() domain.ConflictPolicy {
	return domain.NewConflictPolicy(toStatuses(c.TrainerLiveStatuses)...)
}

// MemberPolicy политика конфликтов для бронирований членом клуба
func (c BookingConfig) MemberPolicy() domain.ConflictPolicy {
	return domain.NewConflictPolicy(toStatuses(c.MemberLiveStatuses)...)
}

// Load загружает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "gym_session_service",
		},
		Redis: RedisConfig{
			Addr:        "localhost:6379",
			LockTTL:     10,
			LockRetries: 50,
			LockBackoff: 100,
		},
		Booking: BookingConfig{
			Timezone:                        "UTC",
			MemberCancellationCutoffMinutes: domain.DefaultMemberCancellationCutoffMinutes,
			TrainerLiveStatuses:             fromStatuses(domain.DefaultTrainerLiveStatuses),
			MemberLiveStatuses:              fromStatuses(domain.DefaultMemberLiveStatuses),
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.LockTTL <= 0 {
		return fmt.Errorf("%w: redis.lock_ttl must be positive", ErrInvalidConfig)
	}

	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.MemberCancellationCutoffMinutes < 0 {
		return fmt.Errorf("%w: booking.member_cancellation_cutoff_minutes must not be negative", ErrInvalidConfig)
	}
	if err := validateStatuses("booking.trainer_live_statuses", c.Booking.TrainerLiveStatuses); err != nil {
		return err
	}
	if err := validateStatuses("booking.member_live_statuses", c.Booking.MemberLiveStatuses); err != nil {
		return err
	}

	return nil
}

func validateStatuses(field string, statuses []string) error {
	if len(statuses) == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, field)
	}
	for _, s := range statuses {
		if !domain.SessionStatus(s).IsValid() {
			return fmt.Errorf("%w: %s: unknown status %q", ErrInvalidConfig, field, s)
		}
	}
	return nil
}

func toStatuses(values []string) []domain.SessionStatus {
	result := make([]domain.SessionStatus, len(values))
	for i, v := range values {
		result[i] = domain.SessionStatus(v)
	}
	return result
}

func fromStatuses(statuses []domain.SessionStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
