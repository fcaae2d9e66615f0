package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cine-dw-api/internal/config"
	"github.com/vfg2006/cine-dw-api/internal/domain"
	"github.com/vfg2006/cine-dw-api/pkg/utils"
)

// Tempo máximo de um ping; não afeta as queries das requisições
const probeTimeout = 5 * time.Second

// PoolProber é o que o monitor precisa do pool de conexões
type PoolProber interface {
	Ping(ctx context.Context) error
	Stats() sql.DBStats
}

// PoolMonitorConfig representa a configuração do monitor do pool
type PoolMonitorConfig struct {
	CronSchedule string
	Enabled      bool
}

// PoolMonitorService verifica periodicamente o warehouse e guarda o último resultado
type PoolMonitorService struct {
	scheduler *gocron.Scheduler
	config    PoolMonitorConfig
	pool      PoolProber

	mu       sync.RWMutex
	last     domain.PoolStatus
	checking bool
}

// NewPoolMonitorService cria o monitor a partir da configuração global
func NewPoolMonitorService(pool PoolProber, appConfig *config.Config) *PoolMonitorService {
	monitorConfig := PoolMonitorConfig{
		CronSchedule: appConfig.PoolMonitor.CronSchedule,
		Enabled:      appConfig.PoolMonitor.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": monitorConfig.CronSchedule,
		"enabled":       monitorConfig.Enabled,
	}).Info("Configuração do monitor do pool carregada")

	return &PoolMonitorService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    monitorConfig,
		pool:      pool,
		last:      domain.PoolStatus{Status: domain.PoolStatusUnknown},
	}
}

// Start executa uma verificação inicial e agenda as seguintes
func (s *PoolMonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor do pool desabilitado por configuração")
		return nil
	}

	s.Check(ctx)

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Check(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor do pool: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor do pool")
		s.scheduler.Stop()
	}()

	return nil
}

// Check faz um ping no warehouse e registra as estatísticas do pool.
// Verificações concorrentes são descartadas.
func (s *PoolMonitorService) Check(ctx context.Context) domain.PoolStatus {
	s.mu.Lock()
	if s.checking {
		last := s.last
		s.mu.Unlock()
		return last
	}
	s.checking = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.checking = false
		s.mu.Unlock()
	}()

	runID, err := utils.GenerateRunID()
	if err != nil {
		runID = "unknown"
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	startTime := time.Now()
	pingErr := s.pool.Ping(probeCtx)
	latency := time.Since(startTime)

	stats := s.pool.Stats()
	status := domain.PoolStatus{
		Status:          domain.PoolStatusOK,
		CheckedAt:       startTime,
		LatencyMs:       latency.Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDurationMs:  stats.WaitDuration.Milliseconds(),
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id":           runID,
		"latency_ms":       status.LatencyMs,
		"open_connections": status.OpenConnections,
		"in_use":           status.InUse,
		"idle":             status.Idle,
		"wait_count":       status.WaitCount,
	})

	if pingErr != nil {
		status.Status = domain.PoolStatusDegraded
		status.Error = pingErr.Error()
		logger.WithError(pingErr).Warn("Warehouse inacessível na verificação do pool")
	} else {
		logger.Debug("Verificação do pool concluída")
	}

	s.mu.Lock()
	s.last = status
	s.mu.Unlock()

	return status
}

// Snapshot retorna o resultado da última verificação
func (s *PoolMonitorService) Snapshot() domain.PoolStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.last
}
