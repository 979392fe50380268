// Package config holds the configuration structs shared across layers.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Addressing modes for externally routable access URLs.
const (
	AddressingPath      = "path"
	AddressingSubdomain = "subdomain"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AddressingMode string   `mapstructure:"addressing_mode"`
	RootDomain     string   `mapstructure:"root_domain"`
	Timezone       string   `mapstructure:"timezone"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AccessURL builds the public URL for an access link.
func (s *ServerConfig) AccessURL(link string) string {
	if s.AddressingMode == AddressingSubdomain && s.RootDomain != "" {
		return fmt.Sprintf("https://%s.%s", link, s.RootDomain)
	}
	return fmt.Sprintf("%s/products/access/%s", strings.TrimRight(s.BaseURL, "/"), link)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC&clientFoundRows=true",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RabbitMQConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	URL               string `mapstructure:"url"`
	Exchange          string `mapstructure:"exchange"`
	MaxRetries        int    `mapstructure:"max_retries"`
	ReconnectInterval int    `mapstructure:"reconnect_interval_seconds"`
}

// EntitlementConfig tunes credential generation and the grant policy.
type EntitlementConfig struct {
	StaleGrantDays        int `mapstructure:"stale_grant_days"`
	TokenBytes            int `mapstructure:"token_bytes"`
	SuffixBytes           int `mapstructure:"suffix_bytes"`
	MaxSlugLength         int `mapstructure:"max_slug_length"`
	LinkRetries           int `mapstructure:"link_retries"`
	OptimisticRetries     int `mapstructure:"optimistic_retries"`
	VerifyCacheTTLSeconds int `mapstructure:"verify_cache_ttl_seconds"`
}

func (e *EntitlementConfig) StaleGrantWindow() time.Duration {
	return time.Duration(e.StaleGrantDays) * 24 * time.Hour
}

func (e *EntitlementConfig) VerifyCacheTTL() time.Duration {
	return time.Duration(e.VerifyCacheTTLSeconds) * time.Second
}

type RateLimitConfig struct {
	AccessLinkPerMinute int `mapstructure:"access_link_per_minute"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
