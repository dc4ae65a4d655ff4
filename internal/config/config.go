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
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Dataset           Dataset           `mapstructure:",squash"`
	Analysis          Analysis          `mapstructure:",squash"`
	AnalysisSync      AnalysisSync      `mapstructure:",squash"`
	DatasetImportSync DatasetImportSync `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Dataset define de onde os arquivos CSV de campanhas são lidos
type Dataset struct {
	DataDir string `mapstructure:"dataset_data_dir"`
}

// Analysis define os parâmetros do cálculo de ROI
type Analysis struct {
	// Receita assumida por conversão aprovada
	ConversionValue float64 `mapstructure:"analysis_conversion_value"`
}

// AnalysisSync configura o agendador de recálculo das análises
type AnalysisSync struct {
	CronSchedule      string `mapstructure:"analysis_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"analysis_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"analysis_sync_enabled"`
}

// DatasetImportSync configura o agendador de importação de novos arquivos
type DatasetImportSync struct {
	CronSchedule string `mapstructure:"dataset_import_sync_cron"`
	Enabled      bool   `mapstructure:"dataset_import_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("DATASET_DATA_DIR", "data")

	viper.SetDefault("ANALYSIS_CONVERSION_VALUE", 100.0)

	// Defaults para recálculo das análises
	viper.SetDefault("ANALYSIS_SYNC_CRON", "0 3 * * *")      // Todos os dias às 3h da manhã
	viper.SetDefault("ANALYSIS_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 escopos recalculados em paralelo
	viper.SetDefault("ANALYSIS_SYNC_ENABLED", false)

	// Defaults para importação de novos arquivos do diretório de dados
	viper.SetDefault("DATASET_IMPORT_SYNC_CRON", "30 2 * * *") // Todos os dias às 2h30 da manhã
	viper.SetDefault("DATASET_IMPORT_SYNC_ENABLED", false)

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
