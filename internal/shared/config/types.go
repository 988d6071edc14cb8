package config

import (
	"fmt"
	"net/url"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver            string `mapstructure:"driver"`
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	Username          string `mapstructure:"username"`
	Password          string `mapstructure:"password"`
	Database          string `mapstructure:"database"`
	Path              string `mapstructure:"path"`
	MaxIdleConns      int    `mapstructure:"max_idle_conns"`
	MaxOpenConns      int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime"`
	MigrationStrategy string `mapstructure:"migration_strategy"`
}

// GetDSN returns the MySQL DSN, or the sqlite file path when driver is sqlite.
func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&multiStatements=true",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	AdminAddress string `mapstructure:"admin_address"`
	Enabled      bool   `mapstructure:"enabled"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AdminConfig holds the shared admin keys. Key is compared in constant time,
// KeyHash is a bcrypt hash. ModeratorKey grants the moderator role.
type AdminConfig struct {
	Key                   string `mapstructure:"key"`
	KeyHash               string `mapstructure:"key_hash"`
	ModeratorKey          string `mapstructure:"moderator_key"`
	AllowInsecureFallback bool   `mapstructure:"allow_insecure_fallback"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type PaymentConfig struct {
	MerchantID     string `mapstructure:"merchant_id"`
	GatewayURL     string `mapstructure:"gateway_url"`
	APIBaseURL     string `mapstructure:"api_base_url"`
	TokenURL       string `mapstructure:"token_url"`
	ClientID       string `mapstructure:"client_id"`
	ClientSecret   string `mapstructure:"client_secret"`
	CallbackSecret string `mapstructure:"callback_secret"`
	ReturnURL      string `mapstructure:"return_url"`
	Currency       string `mapstructure:"currency"`
	PendingTTL     int    `mapstructure:"pending_ttl_hours"`
}

// CallbackURL is where the gateway posts payment results.
func (p *PaymentConfig) CallbackURL(baseURL string) string {
	u, err := url.JoinPath(baseURL, "/api/payment/callback")
	if err != nil {
		return baseURL + "/api/payment/callback"
	}
	return u
}

func (p *PaymentConfig) PendingTTLDuration() time.Duration {
	if p.PendingTTL <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(p.PendingTTL) * time.Hour
}

// PlanConfig describes a purchasable plan. Price is a decimal string.
type PlanConfig struct {
	Name         string `mapstructure:"name"`
	Price        string `mapstructure:"price"`
	Currency     string `mapstructure:"currency"`
	DurationDays int    `mapstructure:"duration_days"`
	Rank         int    `mapstructure:"rank"`
}

type RateLimitConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	ReviewsPerHour int  `mapstructure:"reviews_per_hour"`
	AdminPerMinute int  `mapstructure:"admin_per_minute"`
	ToolsPerMinute int  `mapstructure:"tools_per_minute"`
}

type SchedulerConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	IntervalMinutes int  `mapstructure:"interval_minutes"`
}

type ToolsConfig struct {
	MaxImageBytes   int64 `mapstructure:"max_image_bytes"`
	MaxImagePixels  int   `mapstructure:"max_image_pixels"`
	EnforcePlanGate bool  `mapstructure:"enforce_plan_gate"`
}
