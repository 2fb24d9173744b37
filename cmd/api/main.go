package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-discount-api/infrastructure/database/postgres"
	"github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/shopify-discount-api/infrastructure/repository"
	"github.com/vfg2006/shopify-discount-api/internal/api"
	"github.com/vfg2006/shopify-discount-api/internal/config"
	"github.com/vfg2006/shopify-discount-api/internal/scheduler"
	"github.com/vfg2006/shopify-discount-api/internal/usecases/authenticating"
	"github.com/vfg2006/shopify-discount-api/internal/usecases/discounting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	sessionRepo := repository.NewShopSessionRepository(pgConn)
	discountLogRepo := repository.NewDiscountLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	shopifyClient := shopifyclient.NewClient(cfg)

	// Inicializa o integrador de catálogo com cache por loja
	catalogCache := shopify.NewCatalogCache(time.Duration(cfg.AutoDiscount.CacheTTLMinutes) * time.Minute)
	shopifyIntegrator := shopify.New(cfg, shopifyClient).WithCache(catalogCache)

	generator := discounting.NewGenerator(cfg)
	mutator := discounting.NewMutator(cfg, shopifyClient, discountLogRepo)

	discounter := discounting.NewService(
		cfg,
		sessionRepo,
		discountLogRepo,
		shopifyIntegrator,
		mutator,
		generator,
	)

	// Inicializa o agendador do ciclo diário de descontos
	autoDiscountSyncService := scheduler.NewAutoDiscountSyncService(discounter, cfg)

	if err := autoDiscountSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de descontos automáticos")
	} else {
		logrus.Info("Agendador de descontos automáticos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		discounter,
		authenticator,
		autoDiscountSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
