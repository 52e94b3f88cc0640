package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Groq      GroqConfig      `mapstructure:"groq"`
	Nutrition NutritionConfig `mapstructure:"nutrition"`
	Auth      AuthConfig      `mapstructure:"auth"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GroqConfig points at the completion provider's OpenAI-compatible endpoint.
type GroqConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	APIURL     string        `mapstructure:"api_url"`
	Model      string        `mapstructure:"model"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryCount int           `mapstructure:"retry_count"`
}

type NutritionConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	APIURL     string        `mapstructure:"api_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryCount int           `mapstructure:"retry_count"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() (*Config, error) {
	// Missing .env is fine; everything can come from real env vars.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("mongo.database", "mealsmith")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("groq.api_url", "https://api.groq.com/openai/v1")
	v.SetDefault("groq.model", "deepseek-r1-distill-llama-70b")
	v.SetDefault("groq.timeout", 60*time.Second)
	v.SetDefault("groq.retry_count", 0)

	v.SetDefault("nutrition.api_url", "https://api.spoonacular.com")
	v.SetDefault("nutrition.timeout", 15*time.Second)
	v.SetDefault("nutrition.retry_count", 0)
}

func bindEnvs(v *viper.Viper) {
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.log_level", "LOG_LEVEL")

	v.BindEnv("server.host", "SERVER_HOST")
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.allowed_origins", "ALLOWED_ORIGINS")

	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("mongo.database", "MONGO_DB")

	v.BindEnv("redis.url", "REDIS_URL")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")

	v.BindEnv("groq.api_key", "GROQ_API_KEY")
	v.BindEnv("groq.api_url", "GROQ_API_URL")
	v.BindEnv("groq.model", "GROQ_MODEL")
	v.BindEnv("groq.retry_count", "GROQ_RETRY_COUNT")

	v.BindEnv("nutrition.api_key", "NUTRITION_API_KEY")
	v.BindEnv("nutrition.api_url", "NUTRITION_API_URL")
	v.BindEnv("nutrition.retry_count", "NUTRITION_RETRY_COUNT")

	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
}

func validate(cfg *Config) error {
	if cfg.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI must be set")
	}
	if cfg.Groq.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY must be set")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	return nil
}
