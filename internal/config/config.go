package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Meta          Meta          `mapstructure:",squash"`
	GoogleAds     GoogleAds     `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Sync          Sync          `mapstructure:",squash"`
	SyncScheduler SyncScheduler `mapstructure:",squash"`
	MediaCache    MediaCache    `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AppID       string `mapstructure:"meta_app_id"`
	AppSecret   string `mapstructure:"meta_app_secret"`
	RedirectURI string `mapstructure:"meta_redirect_uri"`
}

type GoogleAds struct {
	BaseURL        string `mapstructure:"google_ads_base_url"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
	ClientID       string `mapstructure:"google_ads_client_id"`
	ClientSecret   string `mapstructure:"google_ads_client_secret"`
	RedirectURI    string `mapstructure:"google_ads_redirect_uri"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Sync controla o comportamento de uma execução de sincronização.
// RequestDelaySeconds é um throttle deliberado entre chamadas à API da
// plataforma; com hierarquias grandes é o que mantém o motor abaixo do
// rate limit.
type Sync struct {
	RequestDelaySeconds int `mapstructure:"sync_request_delay_seconds"`
	MaxWorkers          int `mapstructure:"sync_max_workers"`
	BatchSize           int `mapstructure:"sync_batch_size"`
	MaxRetryAttempts    int `mapstructure:"sync_max_retry_attempts"`
	ProgressEvery       int `mapstructure:"sync_progress_every"`
}

type SyncScheduler struct {
	CronSchedule    string `mapstructure:"sync_scheduler_cron"`
	Enabled         bool   `mapstructure:"sync_scheduler_enabled"`
	StaleAfterHours int    `mapstructure:"sync_scheduler_stale_after_hours"`
}

type MediaCache struct {
	Enabled       bool   `mapstructure:"media_cache_enabled"`
	Endpoint      string `mapstructure:"media_cache_endpoint"`
	AccessKey     string `mapstructure:"media_cache_access_key"`
	SecretKey     string `mapstructure:"media_cache_secret_key"`
	Bucket        string `mapstructure:"media_cache_bucket"`
	UseSSL        bool   `mapstructure:"media_cache_use_ssl"`
	PublicBaseURL string `mapstructure:"media_cache_public_base_url"`
}

// RequestDelay converte o delay configurado para time.Duration
func (s Sync) RequestDelay() time.Duration {
	return time.Duration(s.RequestDelaySeconds) * time.Second
}

func (s SyncScheduler) StaleAfter() time.Duration {
	return time.Duration(s.StaleAfterHours) * time.Hour
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creative_audit")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_REDIRECT_URI", "http://localhost:8000/v1/integrations/oauth/callback")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com/v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_REDIRECT_URI", "http://localhost:8000/v1/integrations/oauth/callback")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults da sincronização
	viper.SetDefault("SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("SYNC_MAX_WORKERS", 3)           // 3 workers concorrentes por nível
	viper.SetDefault("SYNC_BATCH_SIZE", 50)           // limite de lote da plataforma
	viper.SetDefault("SYNC_MAX_RETRY_ATTEMPTS", 5)    // tentativas com backoff em rate limit
	viper.SetDefault("SYNC_PROGRESS_EVERY", 10)       // evento de progresso a cada N itens

	viper.SetDefault("SYNC_SCHEDULER_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SYNC_SCHEDULER_ENABLED", false)
	viper.SetDefault("SYNC_SCHEDULER_STALE_AFTER_HOURS", 25) // execução presa há mais de 25h é abandonada

	viper.SetDefault("MEDIA_CACHE_ENABLED", false)
	viper.SetDefault("MEDIA_CACHE_ENDPOINT", "localhost:9000")
	viper.SetDefault("MEDIA_CACHE_ACCESS_KEY", "")
	viper.SetDefault("MEDIA_CACHE_SECRET_KEY", "")
	viper.SetDefault("MEDIA_CACHE_BUCKET", "creative-images")
	viper.SetDefault("MEDIA_CACHE_USE_SSL", false)
	viper.SetDefault("MEDIA_CACHE_PUBLIC_BASE_URL", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
