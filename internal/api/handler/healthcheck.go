package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/cine-dw-api/internal/domain"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// PoolStatusReporter fornece o estado do pool de conexões
type PoolStatusReporter interface {
	Snapshot() domain.PoolStatus
	Check(ctx context.Context) domain.PoolStatus
}

// HealthcheckHandler responde à sonda de liveness sem tocar no warehouse
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "OK",
			Timestamp: time.Now(),
		})
	})
}

// StatusHandler expõe o resultado da última verificação do pool feita pelo monitor.
// Sem nenhuma verificação anterior (monitor desabilitado), verifica na hora.
func StatusHandler(monitor PoolStatusReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := monitor.Snapshot()
		if snapshot.Status == domain.PoolStatusUnknown {
			snapshot = monitor.Check(r.Context())
		}

		status := http.StatusOK
		if snapshot.Status != domain.PoolStatusOK {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, struct {
			Status    string            `json:"status"`
			Timestamp time.Time         `json:"timestamp"`
			Database  domain.PoolStatus `json:"database"`
		}{
			Status:    snapshot.Status,
			Timestamp: time.Now(),
			Database:  snapshot,
		})
	})
}
