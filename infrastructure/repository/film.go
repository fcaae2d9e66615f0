// Package repository contém as consultas somente leitura sobre o data warehouse
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/cine-dw-api/infrastructure/database/postgres"
	"github.com/vfg2006/cine-dw-api/internal/domain"
)

const (
	filmTable  = "dim_pelicula"
	salesTable = "fact_ventas fv"
)

//go:generate mockgen -source=film.go -destination=mocks/film.go -package=mocks

type FilmRepository interface {
	ListFilms(ctx context.Context) ([]domain.Film, error)
	TopFilmsByRevenue(ctx context.Context, limit int) ([]domain.FilmRevenue, error)
}

type filmRepository struct {
	conn postgres.Queryer
}

func NewFilmRepository(conn postgres.Queryer) FilmRepository {
	return &filmRepository{
		conn: conn,
	}
}

func listFilmsQuery() (string, []any, error) {
	return squirrel.
		Select(
			"pelicula_id",
			"titulo",
			"genero",
			"clasificacion",
			"duracion_minutos",
		).
		From(filmTable).
		OrderBy("titulo ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// topFilmsQuery mantém o limite como parâmetro ($1), nunca interpolado no texto
func topFilmsQuery(limit int) (string, []any, error) {
	return squirrel.
		Select(
			"p.pelicula_id",
			"p.titulo",
			"p.genero",
			"SUM(fv.cantidad_boletos) AS total_boletos",
			"SUM(fv.ingreso_total) AS total_ingresos",
		).
		From(salesTable).
		Join("dim_pelicula p ON fv.pelicula_id = p.pelicula_id").
		GroupBy("p.pelicula_id", "p.titulo", "p.genero").
		OrderBy("total_ingresos DESC").
		Suffix("LIMIT ?", limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *filmRepository) ListFilms(ctx context.Context) ([]domain.Film, error) {
	query, args, err := listFilmsQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de películas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de películas")
	}
	defer rows.Close()

	films := make([]domain.Film, 0)
	for rows.Next() {
		var (
			film           domain.Film
			title, genre   sql.NullString
			classification sql.NullString
			duration       sql.NullInt64
		)

		if err := rows.Scan(&film.ID, &title, &genre, &classification, &duration); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear película")
		}

		film.Title = nullableString(title)
		film.Genre = nullableString(genre)
		film.Classification = nullableString(classification)
		if duration.Valid {
			film.DurationMin = &duration.Int64
		}

		films = append(films, film)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de películas")
	}

	return films, nil
}

func (r *filmRepository) TopFilmsByRevenue(ctx context.Context, limit int) ([]domain.FilmRevenue, error) {
	query, args, err := topFilmsQuery(limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de top películas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de top películas")
	}
	defer rows.Close()

	films := make([]domain.FilmRevenue, 0)
	for rows.Next() {
		var (
			item         domain.FilmRevenue
			title, genre sql.NullString
		)

		err := rows.Scan(
			&item.FilmID,
			&title,
			&genre,
			&item.TotalTickets,
			&item.TotalRevenue,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear top película")
		}

		item.Title = nullableString(title)
		item.Genre = nullableString(genre)

		films = append(films, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de top películas")
	}

	return films, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
