package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Pipedrive     Pipedrive     `mapstructure:",squash"`
	Cache         Cache         `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	MetricsWarmup MetricsWarmup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Pipedrive struct {
	BaseURL        string        `mapstructure:"pipedrive_base_url"`
	APIToken       string        `mapstructure:"pipedrive_api_token"`
	ExcludedUserID int           `mapstructure:"pipedrive_excluded_user_id"`
	PageSize       int           `mapstructure:"pipedrive_page_size"`
	Timeout        time.Duration `mapstructure:"pipedrive_timeout"`
}

type Cache struct {
	Driver   string        `mapstructure:"cache_driver"`
	TTL      time.Duration `mapstructure:"cache_ttl"`
	RedisURL string        `mapstructure:"redis_url"`
}

// Auth protege o dashboard com um único operador quando habilitado
type Auth struct {
	Enabled      bool          `mapstructure:"auth_enabled"`
	Secret       string        `mapstructure:"auth_secret"`
	Email        string        `mapstructure:"auth_email"`
	PasswordHash string        `mapstructure:"auth_password_hash"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
}

type MetricsWarmup struct {
	CronSchedule string   `mapstructure:"metrics_warmup_cron"`
	Periods      []string `mapstructure:"metrics_warmup_periods"`
	Enabled      bool     `mapstructure:"metrics_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("PIPEDRIVE_BASE_URL", "https://api.pipedrive.com")
	viper.SetDefault("PIPEDRIVE_API_TOKEN", "your_api_token") // ONLY LOCAL
	viper.SetDefault("PIPEDRIVE_EXCLUDED_USER_ID", 14466882)
	viper.SetDefault("PIPEDRIVE_PAGE_SIZE", 500)
	viper.SetDefault("PIPEDRIVE_TIMEOUT", "30s")

	viper.SetDefault("CACHE_DRIVER", CacheDriverMemory)
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379")

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_EMAIL", "")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// Pré-aquecimento do cache de métricas
	viper.SetDefault("METRICS_WARMUP_CRON", "*/4 * * * *") // A cada 4 minutos, antes do TTL de 5 minutos expirar
	viper.SetDefault("METRICS_WARMUP_PERIODS", "today,month")
	viper.SetDefault("METRICS_WARMUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.normalize()

	return config, nil
}

func (c *Config) normalize() {
	c.Pipedrive.BaseURL = strings.TrimRight(c.Pipedrive.BaseURL, "/")

	if c.Pipedrive.PageSize <= 0 {
		c.Pipedrive.PageSize = 500
	}

	if c.Cache.TTL <= 0 {
		c.Cache.TTL = 5 * time.Minute
	}

	c.Cache.Driver = strings.ToLower(strings.TrimSpace(c.Cache.Driver))
	if c.Cache.Driver == "" {
		c.Cache.Driver = CacheDriverMemory
	}

	c.Server.AllowedOrigins = trimAll(c.Server.AllowedOrigins)
	c.MetricsWarmup.Periods = trimAll(c.MetricsWarmup.Periods)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
