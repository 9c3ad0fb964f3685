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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Payment          Payment          `mapstructure:",squash"`
	Mailer           Mailer           `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	CampaignDispatch CampaignDispatch `mapstructure:",squash"`
	EngagementSync   EngagementSync   `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
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

type Payment struct {
	URL                string `mapstructure:"payment_url"`
	APIKey             string `mapstructure:"payment_api_key"`
	WebhookSecret      string `mapstructure:"payment_webhook_secret"`
	CheckoutSuccessURL string `mapstructure:"payment_checkout_success_url"`
	CheckoutCancelURL  string `mapstructure:"payment_checkout_cancel_url"`
	PortalReturnURL    string `mapstructure:"payment_portal_return_url"`
}

type Mailer struct {
	URL           string `mapstructure:"mailer_url"`
	APIKey        string `mapstructure:"mailer_api_key"`
	WebhookSecret string `mapstructure:"mailer_webhook_secret"`
	FromEmail     string `mapstructure:"mailer_from_email"`
	FromName      string `mapstructure:"mailer_from_name"`
	BatchSize     int    `mapstructure:"mailer_batch_size"`
	BatchDelayMs  int    `mapstructure:"mailer_batch_delay_ms"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type CampaignDispatch struct {
	CronSchedule string `mapstructure:"campaign_dispatch_cron"`
	Enabled      bool   `mapstructure:"campaign_dispatch_enabled"`
}

type EngagementSync struct {
	CronSchedule string `mapstructure:"engagement_sync_cron"`
	Enabled      bool   `mapstructure:"engagement_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creator_platform")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("PAYMENT_URL", "https://api.payment.example.com")
	viper.SetDefault("PAYMENT_API_KEY", "your_api_key")
	viper.SetDefault("PAYMENT_WEBHOOK_SECRET", "your_webhook_secret")
	viper.SetDefault("PAYMENT_CHECKOUT_SUCCESS_URL", "http://localhost:3000/assinatura/sucesso")
	viper.SetDefault("PAYMENT_CHECKOUT_CANCEL_URL", "http://localhost:3000/assinatura/cancelado")
	viper.SetDefault("PAYMENT_PORTAL_RETURN_URL", "http://localhost:3000/conta")

	viper.SetDefault("MAILER_URL", "https://api.mailer.example.com")
	viper.SetDefault("MAILER_API_KEY", "your_api_key")
	viper.SetDefault("MAILER_WEBHOOK_SECRET", "your_webhook_secret")
	viper.SetDefault("MAILER_FROM_EMAIL", "noreply@localhost")
	viper.SetDefault("MAILER_FROM_NAME", "Creator Platform")
	viper.SetDefault("MAILER_BATCH_SIZE", 50)
	viper.SetDefault("MAILER_BATCH_DELAY_MS", 200) // Pausa entre lotes de envio

	// Defaults dos agendadores
	viper.SetDefault("CAMPAIGN_DISPATCH_CRON", "* * * * *") // A cada minuto
	viper.SetDefault("CAMPAIGN_DISPATCH_ENABLED", false)

	viper.SetDefault("ENGAGEMENT_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("ENGAGEMENT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
