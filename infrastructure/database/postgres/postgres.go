package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/vfg2006/cine-dw-api/internal/config"
)

// Conn é o handle do pool de conexões com o data warehouse.
// Criado uma única vez na inicialização e compartilhado por todas as requisições.
type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	Stats() sql.DBStats
}

type Connection struct {
	*sql.DB
}

// NewConnection configura o pool sem exigir que o warehouse esteja acessível;
// falhas de conectividade aparecem nas requisições.
func NewConnection(cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
