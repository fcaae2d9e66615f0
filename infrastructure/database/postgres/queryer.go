package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto somente leitura do *sql.DB usado pelos repositórios.
// Cada chamada pega uma conexão do pool e a devolve ao fechar as linhas.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
