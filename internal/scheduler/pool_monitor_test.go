package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cine-dw-api/internal/config"
	"github.com/vfg2006/cine-dw-api/internal/domain"
)

type fakePool struct {
	err   error
	stats sql.DBStats
	pings atomic.Int32
}

func (p *fakePool) Ping(context.Context) error {
	p.pings.Add(1)
	return p.err
}

func (p *fakePool) Stats() sql.DBStats {
	return p.stats
}

func newTestMonitor(pool PoolProber, enabled bool) *PoolMonitorService {
	return NewPoolMonitorService(pool, &config.Config{
		PoolMonitor: config.PoolMonitor{CronSchedule: "*/1 * * * *", Enabled: enabled},
	})
}

func TestPoolMonitor_SnapshotBeforeFirstCheck(t *testing.T) {
	monitor := newTestMonitor(&fakePool{}, true)

	assert.Equal(t, domain.PoolStatusUnknown, monitor.Snapshot().Status)
}

func TestPoolMonitor_Check(t *testing.T) {
	pool := &fakePool{
		stats: sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3, WaitCount: 2, WaitDuration: 30 * time.Millisecond},
	}
	monitor := newTestMonitor(pool, true)

	status := monitor.Check(context.Background())
	assert.Equal(t, domain.PoolStatusOK, status.Status)
	assert.Equal(t, 4, status.OpenConnections)
	assert.Equal(t, 1, status.InUse)
	assert.Equal(t, 3, status.Idle)
	assert.Equal(t, int64(2), status.WaitCount)
	assert.Equal(t, int64(30), status.WaitDurationMs)
	assert.Empty(t, status.Error)
	assert.False(t, status.CheckedAt.IsZero())

	pool.err = errors.New("dial tcp 127.0.0.1:5434: connect: connection refused")
	status = monitor.Check(context.Background())
	assert.Equal(t, domain.PoolStatusDegraded, status.Status)
	assert.Equal(t, "dial tcp 127.0.0.1:5434: connect: connection refused", status.Error)
	assert.Equal(t, status, monitor.Snapshot())

	pool.err = nil
	assert.Equal(t, domain.PoolStatusOK, monitor.Check(context.Background()).Status)
	assert.Equal(t, int32(3), pool.pings.Load())
}

func TestPoolMonitor_StartDisabledDoesNotPing(t *testing.T) {
	pool := &fakePool{}
	monitor := newTestMonitor(pool, false)

	require.NoError(t, monitor.Start(context.Background()))
	assert.Equal(t, int32(0), pool.pings.Load())
	assert.Equal(t, domain.PoolStatusUnknown, monitor.Snapshot().Status)
}

func TestPoolMonitor_StartRunsInitialCheck(t *testing.T) {
	pool := &fakePool{}
	monitor := newTestMonitor(pool, true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, monitor.Start(ctx))
	assert.GreaterOrEqual(t, pool.pings.Load(), int32(1))
	assert.Equal(t, domain.PoolStatusOK, monitor.Snapshot().Status)
}

func TestPoolMonitor_StartInvalidCron(t *testing.T) {
	monitor := NewPoolMonitorService(&fakePool{}, &config.Config{
		PoolMonitor: config.PoolMonitor{CronSchedule: "não é cron", Enabled: true},
	})

	assert.Error(t, monitor.Start(context.Background()))
}
