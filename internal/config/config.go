package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port     string `mapstructure:"port"`
		Env      string `mapstructure:"env"`
		BaseURL  string `mapstructure:"base_url"`
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"app"`
	Page struct {
		ScrollThreshold float64 `mapstructure:"scroll_threshold"`
		ScrollTieBreak  string  `mapstructure:"scroll_tie_break"`
		DefaultTheme    string  `mapstructure:"default_theme"`
	} `mapstructure:"page"`
	Content struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"content"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Cache struct {
		TTL time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`
	Tracing struct {
		OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
		SampleRatio  float64 `mapstructure:"sample_ratio"`
	} `mapstructure:"tracing"`
}

// LoadConfig reads .env and config.yaml from path (default ".") and lets
// the environment override both.
func LoadConfig(path ...string) (cfg Config, err error) {
	dir := "."
	if len(path) > 0 && path[0] != "" {
		dir = path[0]
	}

	v := viper.New()

	if err := godotenv.Load(dir + "/.env"); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.base_url", "http://localhost:8080")
	v.SetDefault("app.log_level", "")
	v.SetDefault("page.scroll_threshold", 100)
	v.SetDefault("page.scroll_tie_break", "first")
	v.SetDefault("page.default_theme", "dark")
	v.SetDefault("content.path", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("tracing.otlp_endpoint", "")
	v.SetDefault("tracing.sample_ratio", 1.0)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.base_url", "APP_BASE_URL")
	v.BindEnv("app.log_level", "LOG_LEVEL")
	v.BindEnv("page.scroll_threshold", "PAGE_SCROLL_THRESHOLD")
	v.BindEnv("page.scroll_tie_break", "PAGE_SCROLL_TIE_BREAK")
	v.BindEnv("page.default_theme", "PAGE_DEFAULT_THEME")
	v.BindEnv("content.path", "CONTENT_PATH")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("cache.ttl", "CACHE_TTL")
	v.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")
	v.BindEnv("tracing.sample_ratio", "TRACING_SAMPLE_RATIO")

	err = v.Unmarshal(&cfg)
	return
}
