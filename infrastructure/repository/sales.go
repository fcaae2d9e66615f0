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
	// MonthlySalesRowCap limita o relatório mensal; não há paginação
	MonthlySalesRowCap = 24
	// DailySalesRowCap cobre um ano de histórico diário
	DailySalesRowCap = 365
)

//go:generate mockgen -source=sales.go -destination=mocks/sales.go -package=mocks

type SalesRepository interface {
	SalesByCountry(ctx context.Context) ([]domain.CountrySales, error)
	SalesByMonth(ctx context.Context) ([]domain.MonthlySales, error)
	SalesByDay(ctx context.Context) ([]domain.DailySales, error)
	Summary(ctx context.Context) (*domain.SalesSummary, error)
}

type salesRepository struct {
	conn postgres.Queryer
}

func NewSalesRepository(conn postgres.Queryer) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func salesByCountryQuery() (string, []any, error) {
	return squirrel.
		Select(
			"p.nombre AS pais",
			"COUNT(DISTINCT fv.pelicula_id) AS peliculas_distintas",
			"SUM(fv.cantidad_boletos) AS total_boletos",
			"SUM(fv.ingreso_total) AS total_ingresos",
			"ROUND(AVG(fv.precio_promedio), 2) AS precio_promedio",
		).
		From(salesTable).
		Join("dim_pais p ON fv.pais_id = p.pais_id").
		GroupBy("p.nombre").
		OrderBy("total_ingresos DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func salesByMonthQuery() (string, []any, error) {
	return squirrel.
		Select(
			"t.anio",
			"t.mes",
			"p.nombre AS pais",
			"SUM(fv.cantidad_boletos) AS total_boletos",
			"SUM(fv.ingreso_total) AS total_ingresos",
		).
		From(salesTable).
		Join("dim_tiempo t ON fv.tiempo_id = t.tiempo_id").
		Join("dim_pais p ON fv.pais_id = p.pais_id").
		GroupBy("t.anio", "t.mes", "p.nombre").
		OrderBy("t.anio DESC", "t.mes DESC", "p.nombre ASC").
		Suffix("LIMIT ?", MonthlySalesRowCap).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func salesByDayQuery() (string, []any, error) {
	return squirrel.
		Select(
			"t.fecha",
			"SUM(fv.cantidad_boletos) AS total_boletos",
			"SUM(fv.ingreso_total) AS total_ingresos",
			"COUNT(DISTINCT fv.pelicula_id) AS peliculas_distintas",
		).
		From(salesTable).
		Join("dim_tiempo t ON fv.tiempo_id = t.tiempo_id").
		GroupBy("t.fecha").
		OrderBy("t.fecha DESC").
		Suffix("LIMIT ?", DailySalesRowCap).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func salesSummaryQuery() (string, []any, error) {
	return squirrel.
		Select(
			"COUNT(*) AS registros",
			"COALESCE(SUM(fv.cantidad_boletos), 0) AS total_boletos",
			"COALESCE(SUM(fv.ingreso_total), 0) AS total_ingresos",
		).
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *salesRepository) SalesByCountry(ctx context.Context) ([]domain.CountrySales, error) {
	query, args, err := salesByCountryQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de vendas por país")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de vendas por país")
	}
	defer rows.Close()

	result := make([]domain.CountrySales, 0)
	for rows.Next() {
		var (
			item         domain.CountrySales
			averagePrice sql.NullFloat64
		)

		err := rows.Scan(
			&item.Country,
			&item.DistinctFilms,
			&item.TotalTickets,
			&item.TotalRevenue,
			&averagePrice,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear vendas por país")
		}

		if averagePrice.Valid {
			item.AveragePrice = &averagePrice.Float64
		}

		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de vendas por país")
	}

	return result, nil
}

func (r *salesRepository) SalesByMonth(ctx context.Context) ([]domain.MonthlySales, error) {
	query, args, err := salesByMonthQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de vendas por mês")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de vendas por mês")
	}
	defer rows.Close()

	result := make([]domain.MonthlySales, 0, MonthlySalesRowCap)
	for rows.Next() {
		var item domain.MonthlySales

		err := rows.Scan(
			&item.Year,
			&item.Month,
			&item.Country,
			&item.TotalTickets,
			&item.TotalRevenue,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear vendas por mês")
		}

		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de vendas por mês")
	}

	return result, nil
}

func (r *salesRepository) SalesByDay(ctx context.Context) ([]domain.DailySales, error) {
	query, args, err := salesByDayQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de vendas por dia")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de vendas por dia")
	}
	defer rows.Close()

	result := make([]domain.DailySales, 0)
	for rows.Next() {
		var item domain.DailySales

		err := rows.Scan(
			&item.Date,
			&item.TotalTickets,
			&item.TotalRevenue,
			&item.DistinctFilms,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear vendas por dia")
		}

		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de vendas por dia")
	}

	return result, nil
}

func (r *salesRepository) Summary(ctx context.Context) (*domain.SalesSummary, error) {
	query, args, err := salesSummaryQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de resumo de vendas")
	}

	summary := &domain.SalesSummary{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.Records,
		&summary.TotalTickets,
		&summary.TotalRevenue,
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de resumo de vendas")
	}

	return summary, nil
}
