package main

import (
	"context"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cine-dw-api/infrastructure/database/postgres"
	"github.com/vfg2006/cine-dw-api/infrastructure/repository"
	"github.com/vfg2006/cine-dw-api/internal/api"
	"github.com/vfg2006/cine-dw-api/internal/config"
	"github.com/vfg2006/cine-dw-api/internal/scheduler"
	"github.com/vfg2006/cine-dw-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// O filtro de campos do pkg/log lê APP_ENV do ambiente, que pode ter vindo do .env
	if os.Getenv("APP_ENV") == "" && cfg.App.Env != "" {
		os.Setenv("APP_ENV", cfg.App.Env)
	}

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

	prometheus.MustRegister(collectors.NewDBStatsCollector(pgConn.DB, cfg.Database.Name))

	filmRepo := repository.NewFilmRepository(pgConn)
	salesRepo := repository.NewSalesRepository(pgConn)

	reportingService := reporting.NewService(filmRepo, salesRepo)

	poolMonitorService := scheduler.NewPoolMonitorService(pgConn, cfg)
	if err := poolMonitorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor do pool de conexões")
	} else {
		logrus.Info("Monitor do pool de conexões iniciado com sucesso")
	}

	server, err := api.New(cfg, reportingService, poolMonitorService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria o pool de conexões com o warehouse.
// Falha de conectividade na partida só gera aviso; cada requisição reporta o próprio erro.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o pool do PostgreSQL")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := conn.Ping(pingCtx); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"host":     dbConfig.Host,
			"port":     dbConfig.Port,
			"database": dbConfig.Name,
		}).Warn("Warehouse inacessível na partida; as requisições reportarão o erro")
		return conn
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
