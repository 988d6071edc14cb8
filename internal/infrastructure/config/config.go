package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "officetools/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Admin     sharedConfig.AdminConfig     `mapstructure:"admin"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Payment   sharedConfig.PaymentConfig   `mapstructure:"payment"`
	Plans     []sharedConfig.PlanConfig    `mapstructure:"plans"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
	Scheduler sharedConfig.SchedulerConfig `mapstructure:"scheduler"`
	Tools     sharedConfig.ToolsConfig     `mapstructure:"tools"`
}

// IsDebug reports whether the server runs in a development mode.
func (c *Config) IsDebug() bool {
	m := strings.ToLower(c.Server.Mode)
	return m == "debug" || m == "development"
}

// IsProduction reports whether the server runs in release mode.
func (c *Config) IsProduction() bool {
	m := strings.ToLower(c.Server.Mode)
	return m == "release" || m == "production" || m == "prod"
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (or configPath), then environment variables
// prefixed OFFICETOOLS_. A .env file in the working directory is loaded into
// the environment first when present. env overrides server.mode.
func Load(env, configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("OFFICETOOLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the configuration from the last successful Load.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func (c *Config) validate() error {
	if len(c.Plans) == 0 {
		return fmt.Errorf("config: at least one plan must be configured")
	}
	seen := make(map[string]bool, len(c.Plans))
	for _, p := range c.Plans {
		key := strings.ToLower(p.Name)
		if key == "" {
			return fmt.Errorf("config: plan name is required")
		}
		if seen[key] {
			return fmt.Errorf("config: duplicate plan %q", p.Name)
		}
		seen[key] = true
		if p.DurationDays <= 0 {
			return fmt.Errorf("config: plan %q must have a positive duration_days", p.Name)
		}
	}
	if c.IsProduction() && c.Auth.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("config: auth.jwt.secret must be changed in production")
	}
	return nil
}

const defaultJWTSecret = "change-me-in-production"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.timezone", "UTC")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "officetools.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.database", "officetools")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.migration_strategy", "goose")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.from_address", "noreply@officetools.local")
	v.SetDefault("email.from_name", "Office Tools")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("admin.allow_insecure_fallback", false)

	v.SetDefault("auth.jwt.secret", defaultJWTSecret)
	v.SetDefault("auth.jwt.access_exp_minutes", 60)

	v.SetDefault("payment.gateway_url", "https://pay.example.com/checkout")
	v.SetDefault("payment.currency", "USD")
	v.SetDefault("payment.pending_ttl_hours", 24)

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.reviews_per_hour", 5)
	v.SetDefault("ratelimit.admin_per_minute", 30)
	v.SetDefault("ratelimit.tools_per_minute", 60)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.interval_minutes", 10)

	v.SetDefault("tools.max_image_bytes", 10<<20)
	v.SetDefault("tools.max_image_pixels", 40_000_000)
	v.SetDefault("tools.enforce_plan_gate", false)
}
