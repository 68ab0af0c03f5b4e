package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
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

// Analytics configura o cliente do backend de analytics.
// TimeoutSeconds é o único controle de resiliência: uma requisição por
// busca lógica, sem retry.
type Analytics struct {
	BaseURL        string `mapstructure:"analytics_base_url"`
	APIKey         string `mapstructure:"analytics_api_key"`
	TimeoutSeconds int    `mapstructure:"analytics_timeout_seconds"`
}

type SnapshotSync struct {
	CronSchedule        string `mapstructure:"snapshot_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"snapshot_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"snapshot_sync_enabled"`
	MonthLookback       int    `mapstructure:"snapshot_sync_month_lookback"`
	RetentionMonths     int    `mapstructure:"snapshot_sync_retention_months"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketing")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ANALYTICS_BASE_URL", "http://localhost:9000")
	viper.SetDefault("ANALYTICS_API_KEY", "your_api_key")
	viper.SetDefault("ANALYTICS_TIMEOUT_SECONDS", 15)

	// Defaults para sincronização de snapshots mensais
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SNAPSHOT_SYNC_MONTH_LOOKBACK", 1)
	viper.SetDefault("SNAPSHOT_SYNC_RETENTION_MONTHS", 24)

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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
