package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	CORS        CORSConfig        `mapstructure:"cors"`
	RateLimit   RateLimitConfig   `mapstructure:"ratelimit"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Analysis    AnalysisConfig    `mapstructure:"analysis"`
	HuggingFace HuggingFaceConfig `mapstructure:"huggingface"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	Schema          string        `mapstructure:"schema"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&search_path=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.Schema,
	)
}

type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

type AuthConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
}

// AnalysisConfig controls the local scoring pipeline.
type AnalysisConfig struct {
	Weights        SeverityWeights `mapstructure:"weights"`
	MaxScore       int             `mapstructure:"max_score"`
	DangerAt       int             `mapstructure:"danger_at"`
	WarningAt      int             `mapstructure:"warning_at"`
	ResultTTL      time.Duration   `mapstructure:"result_ttl"`
	PageTTL        time.Duration   `mapstructure:"page_ttl"`
	HistoryEnabled bool            `mapstructure:"history_enabled"`
}

type SeverityWeights struct {
	High   int `mapstructure:"high"`
	Medium int `mapstructure:"medium"`
	Low    int `mapstructure:"low"`
}

// HuggingFaceConfig holds the inference API settings for remote augmentation.
type HuggingFaceConfig struct {
	BaseURL             string        `mapstructure:"base_url"`
	ClassificationModel string        `mapstructure:"classification_model"`
	SummarizationModel  string        `mapstructure:"summarization_model"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MinWordCount        int           `mapstructure:"min_word_count"`
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/tcshield-lab")
	}

	// Environment variables
	v.SetEnvPrefix("TCSHIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind nested env vars explicitly (viper doesn't auto-bind nested struct fields)
	v.BindEnv("redis.host", "TCSHIELD_REDIS_HOST")
	v.BindEnv("redis.port", "TCSHIELD_REDIS_PORT")
	v.BindEnv("redis.password", "TCSHIELD_REDIS_PASSWORD")
	v.BindEnv("database.host", "TCSHIELD_DATABASE_HOST")
	v.BindEnv("database.port", "TCSHIELD_DATABASE_PORT")
	v.BindEnv("database.user", "TCSHIELD_DATABASE_USER")
	v.BindEnv("database.password", "TCSHIELD_DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "TCSHIELD_DATABASE_DBNAME")
	v.BindEnv("database.sslmode", "TCSHIELD_DATABASE_SSLMODE")
	v.BindEnv("auth.api_key", "TCSHIELD_AUTH_API_KEY")
	v.BindEnv("huggingface.base_url", "TCSHIELD_HUGGINGFACE_BASE_URL")
	v.BindEnv("app.environment", "TCSHIELD_APP_ENVIRONMENT")

	setDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, defaults plus env vars cover it
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadDefault loads configuration with default path
func LoadDefault() (*Config, error) {
	return Load("")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "tcshield-lab")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "tcshield")
	v.SetDefault("database.dbname", "tcshield")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.schema", "public")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.key_prefix", "tcshield:")

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type"})
	v.SetDefault("cors.max_age", 300)

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requests_per_minute", 120)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("analysis.weights.high", 10)
	v.SetDefault("analysis.weights.medium", 5)
	v.SetDefault("analysis.weights.low", 2)
	v.SetDefault("analysis.max_score", 100)
	v.SetDefault("analysis.danger_at", 30)
	v.SetDefault("analysis.warning_at", 15)
	v.SetDefault("analysis.result_ttl", 24*time.Hour)
	v.SetDefault("analysis.page_ttl", time.Hour)
	v.SetDefault("analysis.history_enabled", true)

	v.SetDefault("huggingface.base_url", "https://api-inference.huggingface.co/models")
	v.SetDefault("huggingface.classification_model", "mrm8488/legal-bert-tos")
	v.SetDefault("huggingface.summarization_model", "doonhammer/legal_tldr")
	v.SetDefault("huggingface.timeout", 60*time.Second)
	v.SetDefault("huggingface.min_word_count", 100)
}
