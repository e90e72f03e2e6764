package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/api"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/scheduler"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/cataloging"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/goaltracking"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
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

	clientRepo := repository.NewClientRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	executiveRepo := repository.NewExecutiveRepository(pgConn)
	channelRepo := repository.NewChannelRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	goalProgressRepo := repository.NewGoalProgressRepository(pgConn)

	catalogService := cataloging.NewService(clientRepo, productRepo, executiveRepo, channelRepo)
	goalService := goaltracking.NewService(goalRepo, goalProgressRepo)
	saleService := selling.NewService(saleRepo, productRepo, goalService, cfg)

	goalProgressSyncService := scheduler.NewGoalProgressSyncService(
		goalRepo,
		saleRepo,
		goalProgressRepo,
		cfg,
	)

	if err := goalProgressSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de apuração de avanço de metas")
	} else {
		logrus.Info("Agendador de apuração de avanço de metas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		catalogService,
		goalService,
		saleService,
		goalProgressSyncService,
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
