package domain

import "time"

type CountrySales struct {
	Country       string   `json:"pais"`
	DistinctFilms int64    `json:"peliculas_distintas"`
	TotalTickets  int64    `json:"total_boletos"`
	TotalRevenue  float64  `json:"total_ingresos"`
	AveragePrice  *float64 `json:"precio_promedio"` // ROUND(AVG(precio_promedio), 2), nulo se não houver preços
}

type MonthlySales struct {
	Year         int     `json:"anio"`
	Month        int     `json:"mes"`
	Country      string  `json:"pais"`
	TotalTickets int64   `json:"total_boletos"`
	TotalRevenue float64 `json:"total_ingresos"`
}

type DailySales struct {
	Date          time.Time `json:"fecha"`
	TotalTickets  int64     `json:"total_boletos"`
	TotalRevenue  float64   `json:"total_ingresos"`
	DistinctFilms int64     `json:"peliculas_distintas"`
}

// SalesSummary totaliza toda a tabela fact_ventas
type SalesSummary struct {
	Records            int64   `json:"registros"`
	TotalTickets       int64   `json:"total_boletos"`
	TotalRevenue       float64 `json:"total_ingresos"`
	AverageTicketPrice float64 `json:"precio_promedio_boleto"`
}
