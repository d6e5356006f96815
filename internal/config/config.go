package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig   `mapstructure:"server"`
	Database  DatabaseConfig `mapstructure:"database"`
	Redis     RedisConfig    `mapstructure:"redis"`
	Sequence  SequenceConfig `mapstructure:"sequence"`
	Hotel     HotelConfig    `mapstructure:"hotel"`
	Logging   LoggingConfig  `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SequenceConfig controls the bill-number sequence. The counter is the only
// state the service persists; bills themselves live for the session only.
type SequenceConfig struct {
	Backend string `mapstructure:"backend"` // sqlite or redis
	Key     string `mapstructure:"key"`
	Prefix  string `mapstructure:"prefix"`
}

// HotelConfig is the letterhead identity printed on every bill.
type HotelConfig struct {
	Name     string `mapstructure:"name"`
	Location string `mapstructure:"location"`
	Address  string `mapstructure:"address"`
	Phone    string `mapstructure:"phone"`
	WhatsApp string `mapstructure:"whatsapp"`
	Email    string `mapstructure:"email"`
	Website  string `mapstructure:"website"`
	GSTIN    string `mapstructure:"gstin"`
	Timezone string `mapstructure:"timezone"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
}

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

var ErrInvalidSequenceBackend = errors.New("sequence backend must be sqlite or redis")

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/vgbilling")

	v.SetEnvPrefix("VGBILLING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// no config file is fine, defaults + env carry the service
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Sequence.Backend {
	case BackendSQLite, BackendRedis:
	default:
		return ErrInvalidSequenceBackend
	}
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 15)

	v.SetDefault("database.path", "vgbilling.db")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("sequence.backend", BackendSQLite)
	v.SetDefault("sequence.key", "vasavi_bill_counter")
	v.SetDefault("sequence.prefix", "VG")

	v.SetDefault("hotel.name", "Vasavi Grand")
	v.SetDefault("hotel.location", "Tirupati")
	v.SetDefault("hotel.address", "Rajareddy Nagar, Medigo Hospital lane, road, Mangalam, Tirupati, Andhra Pradesh 517507")
	v.SetDefault("hotel.phone", "+91 9392379785")
	v.SetDefault("hotel.whatsapp", "+91 9392379785")
	v.SetDefault("hotel.email", "vasavigrandtirupati@gmail.com")
	v.SetDefault("hotel.website", "www.vasavigrandthirupati.in")
	v.SetDefault("hotel.gstin", "XXXXXXXXXXX")
	v.SetDefault("hotel.timezone", "Asia/Kolkata")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("telemetry.service_name", "vgbilling")
}
