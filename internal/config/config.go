package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	LLM    LLMConfig
	CORS   CORSConfig
	Chat   ChatConfig
	Email  EmailConfig
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// ChatConfig holds progressive message delivery settings.
type ChatConfig struct {
	MinDelayMS int `mapstructure:"min_delay_ms"`
	MaxDelayMS int `mapstructure:"max_delay_ms"`
}

// MinDelay returns the lower pacing bound as a duration.
func (c *ChatConfig) MinDelay() time.Duration {
	return time.Duration(c.MinDelayMS) * time.Millisecond
}

// MaxDelay returns the upper pacing bound as a duration.
func (c *ChatConfig) MaxDelay() time.Duration {
	return time.Duration(c.MaxDelayMS) * time.Millisecond
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LLMProviderConfig holds settings for a single chat model provider.
type LLMProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// LLMConfig holds chat model settings with multi-provider fallback support.
type LLMConfig struct {
	Primary   LLMProviderConfig `mapstructure:"primary"`
	Secondary LLMProviderConfig `mapstructure:"secondary"`
	Tertiary  LLMProviderConfig `mapstructure:"tertiary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (l *LLMConfig) SecondaryConfig() *LLMProviderConfig {
	if l.Secondary.Provider != "" {
		return &l.Secondary
	}
	return nil
}

// TertiaryConfig returns the tertiary provider config, or nil if not configured.
func (l *LLMConfig) TertiaryConfig() *LLMProviderConfig {
	if l.Tertiary.Provider != "" {
		return &l.Tertiary
	}
	return nil
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for transcript archival.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the VENDASIM_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VENDASIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "vendasim")
	v.SetDefault("db.password", "vendasim_secret")
	v.SetDefault("db.name", "vendasim_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "vendasim")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "vendasim-transcripts")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Chat delivery defaults
	v.SetDefault("chat.min_delay_ms", 1000)
	v.SetDefault("chat.max_delay_ms", 2500)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@vendasim.app")
	v.SetDefault("email.from_name", "VendaSim")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// LLM provider defaults
	v.SetDefault("llm.primary.provider", "claude")
	v.SetDefault("llm.primary.api_key", "")
	v.SetDefault("llm.primary.default_model", "")
	v.SetDefault("llm.primary.timeout_secs", 120)
	v.SetDefault("llm.secondary.provider", "")
	v.SetDefault("llm.secondary.api_key", "")
	v.SetDefault("llm.secondary.default_model", "")
	v.SetDefault("llm.secondary.timeout_secs", 120)
	v.SetDefault("llm.tertiary.provider", "")
	v.SetDefault("llm.tertiary.api_key", "")
	v.SetDefault("llm.tertiary.default_model", "")
	v.SetDefault("llm.tertiary.timeout_secs", 120)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "VENDASIM_SERVER_PORT",
		"server.read_timeout":  "VENDASIM_SERVER_READ_TIMEOUT",
		"server.write_timeout": "VENDASIM_SERVER_WRITE_TIMEOUT",
		"server.environment":   "VENDASIM_SERVER_ENVIRONMENT",
		"db.host":              "VENDASIM_DB_HOST",
		"db.port":              "VENDASIM_DB_PORT",
		"db.user":              "VENDASIM_DB_USER",
		"db.password":          "VENDASIM_DB_PASSWORD",
		"db.name":              "VENDASIM_DB_NAME",
		"db.sslmode":           "VENDASIM_DB_SSLMODE",
		"db.max_open":          "VENDASIM_DB_MAX_OPEN",
		"db.max_idle":          "VENDASIM_DB_MAX_IDLE",
		"jwt.secret":           "VENDASIM_JWT_SECRET",
		"jwt.access_expiry":    "VENDASIM_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "VENDASIM_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "VENDASIM_JWT_ISSUER",
		"s3.region":            "VENDASIM_S3_REGION",
		"s3.bucket":            "VENDASIM_S3_BUCKET",
		"s3.endpoint":          "VENDASIM_S3_ENDPOINT",
		"s3.access_key":        "VENDASIM_S3_ACCESS_KEY",
		"s3.secret_key":        "VENDASIM_S3_SECRET_KEY",
		"s3.presign_expiry":    "VENDASIM_S3_PRESIGN_EXPIRY",
		"log.level":            "VENDASIM_LOG_LEVEL",
		"log.format":           "VENDASIM_LOG_FORMAT",
		"cors.allowed_origins": "VENDASIM_CORS_ALLOWED_ORIGINS",
		"chat.min_delay_ms":    "VENDASIM_CHAT_MIN_DELAY_MS",
		"chat.max_delay_ms":    "VENDASIM_CHAT_MAX_DELAY_MS",
		"llm.primary.provider":        "VENDASIM_LLM_PRIMARY_PROVIDER",
		"llm.primary.api_key":         "VENDASIM_LLM_PRIMARY_API_KEY",
		"llm.primary.default_model":   "VENDASIM_LLM_PRIMARY_DEFAULT_MODEL",
		"llm.primary.timeout_secs":    "VENDASIM_LLM_PRIMARY_TIMEOUT_SECS",
		"llm.secondary.provider":      "VENDASIM_LLM_SECONDARY_PROVIDER",
		"llm.secondary.api_key":       "VENDASIM_LLM_SECONDARY_API_KEY",
		"llm.secondary.default_model": "VENDASIM_LLM_SECONDARY_DEFAULT_MODEL",
		"llm.secondary.timeout_secs":  "VENDASIM_LLM_SECONDARY_TIMEOUT_SECS",
		"llm.tertiary.provider":       "VENDASIM_LLM_TERTIARY_PROVIDER",
		"llm.tertiary.api_key":        "VENDASIM_LLM_TERTIARY_API_KEY",
		"llm.tertiary.default_model":  "VENDASIM_LLM_TERTIARY_DEFAULT_MODEL",
		"llm.tertiary.timeout_secs":   "VENDASIM_LLM_TERTIARY_TIMEOUT_SECS",
		"email.provider":              "VENDASIM_EMAIL_PROVIDER",
		"email.region":                "VENDASIM_EMAIL_REGION",
		"email.from_address":          "VENDASIM_EMAIL_FROM_ADDRESS",
		"email.from_name":             "VENDASIM_EMAIL_FROM_NAME",
		"email.frontend_url":          "VENDASIM_EMAIL_FRONTEND_URL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if VENDASIM_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("VENDASIM_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Chat = ChatConfig{
		MinDelayMS: v.GetInt("chat.min_delay_ms"),
		MaxDelayMS: v.GetInt("chat.max_delay_ms"),
	}

	cfg.LLM = LLMConfig{
		Primary: LLMProviderConfig{
			Provider:     v.GetString("llm.primary.provider"),
			APIKey:       v.GetString("llm.primary.api_key"),
			DefaultModel: v.GetString("llm.primary.default_model"),
			TimeoutSecs:  v.GetInt("llm.primary.timeout_secs"),
		},
		Secondary: LLMProviderConfig{
			Provider:     v.GetString("llm.secondary.provider"),
			APIKey:       v.GetString("llm.secondary.api_key"),
			DefaultModel: v.GetString("llm.secondary.default_model"),
			TimeoutSecs:  v.GetInt("llm.secondary.timeout_secs"),
		},
		Tertiary: LLMProviderConfig{
			Provider:     v.GetString("llm.tertiary.provider"),
			APIKey:       v.GetString("llm.tertiary.api_key"),
			DefaultModel: v.GetString("llm.tertiary.default_model"),
			TimeoutSecs:  v.GetInt("llm.tertiary.timeout_secs"),
		},
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	return cfg, nil
}
