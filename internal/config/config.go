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
	Shopify      Shopify      `mapstructure:",squash"`
	AutoDiscount AutoDiscount `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
	CronSecret   string       `mapstructure:"cron_secret"`
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

// Shopify concentra as credenciais estáticas de fallback da Admin API.
// Os tokens por loja vêm da tabela shopify_sessions, gravada pelo app externo.
type Shopify struct {
	APIVersion string `mapstructure:"shopify_api_version"`
	ShopDomain string `mapstructure:"shopify_shop_domain"`
	AdminToken string `mapstructure:"shopify_admin_token"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type AutoDiscount struct {
	CronSchedule        string `mapstructure:"auto_discount_cron"`
	Enabled             bool   `mapstructure:"auto_discount_enabled"`
	Count               int    `mapstructure:"auto_discount_count"`
	PageSize            int    `mapstructure:"auto_discount_page_size"`
	RequestDelayMs      int    `mapstructure:"auto_discount_request_delay_ms"`
	RevertLookbackHours int    `mapstructure:"auto_discount_revert_lookback_hours"`
	TagName             string `mapstructure:"auto_discount_tag"`
	MinPercent          int    `mapstructure:"auto_discount_min_percent"`
	MaxPercent          int    `mapstructure:"auto_discount_max_percent"`
	CacheTTLMinutes     int    `mapstructure:"auto_discount_cache_ttl_minutes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/discounts")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHOPIFY_API_VERSION", "2024-10")
	viper.SetDefault("SHOPIFY_SHOP_DOMAIN", "")
	viper.SetDefault("SHOPIFY_ADMIN_TOKEN", "") // ONLY LOCAL

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("CRON_SECRET", "")

	// Defaults do motor de descontos automáticos
	viper.SetDefault("AUTO_DISCOUNT_CRON", "0 9 * * *")         // Todos os dias às 9h da manhã
	viper.SetDefault("AUTO_DISCOUNT_ENABLED", false)            // Habilitar a cron diária
	viper.SetDefault("AUTO_DISCOUNT_COUNT", 6)                  // Produtos descontados por loja por dia
	viper.SetDefault("AUTO_DISCOUNT_PAGE_SIZE", 250)            // Itens por página na paginação do catálogo
	viper.SetDefault("AUTO_DISCOUNT_REQUEST_DELAY_MS", 500)     // 500ms entre chamadas de mutação
	viper.SetDefault("AUTO_DISCOUNT_REVERT_LOOKBACK_HOURS", 24) // Janela para reverter descontos anteriores
	viper.SetDefault("AUTO_DISCOUNT_TAG", "auto-desconto")      // Tag aplicada aos produtos descontados
	viper.SetDefault("AUTO_DISCOUNT_MIN_PERCENT", 10)           // Piso do sorteio de desconto
	viper.SetDefault("AUTO_DISCOUNT_MAX_PERCENT", 25)           // Teto do sorteio de desconto
	viper.SetDefault("AUTO_DISCOUNT_CACHE_TTL_MINUTES", 5)      // TTL do cache de catálogo por loja

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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
