package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cine-dw-api/internal/api/handler"
	"github.com/vfg2006/cine-dw-api/internal/api/handler/router"
	"github.com/vfg2006/cine-dw-api/internal/config"
	"github.com/vfg2006/cine-dw-api/internal/usecases/reporting"
	"github.com/vfg2006/cine-dw-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	monitor handler.PoolStatusReporter,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              config.Server.Addr(),
			Handler:           NewHandler(config, reporter, monitor),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, reporter reporting.Reporter, monitor handler.PoolStatusReporter) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(monitor)...),
		router.WithRoutes(handler.Films(reporter)...),
		router.WithRoutes(handler.Sales(reporter)...),
		router.WithRoutes(handler.Metrics()...),
	)

	return alice.New(globalMiddlewares(config)...).Then(rt)
}

// globalMiddlewares aplica do primeiro para o último. A recuperação de panic fica
// dentro do log para que a falha carregue o correlation_id e gere a linha de conclusão.
func globalMiddlewares(config *config.Config) []alice.Constructor {
	return []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown espera as requisições em andamento; o pool é fechado por quem o criou
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
