// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Film é uma linha de dim_pelicula. Colunas nulas no warehouse viram null no JSON.
type Film struct {
	ID             int64   `json:"pelicula_id"`
	Title          *string `json:"titulo"`
	Genre          *string `json:"genero"`
	Classification *string `json:"clasificacion"`
	DurationMin    *int64  `json:"duracion_minutos"`
}

// FilmRevenue agrega fact_ventas por película
type FilmRevenue struct {
	FilmID       int64   `json:"pelicula_id"`
	Title        *string `json:"titulo"`
	Genre        *string `json:"genero"`
	TotalTickets int64   `json:"total_boletos"`
	TotalRevenue float64 `json:"total_ingresos"`
}
