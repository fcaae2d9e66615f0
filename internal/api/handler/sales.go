package handler

import (
	"net/http"

	"github.com/vfg2006/cine-dw-api/internal/domain"
	"github.com/vfg2006/cine-dw-api/internal/usecases/reporting"
)

// SalesByCountry retorna o resumo de vendas por país, da maior para a menor receita
func SalesByCountry(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.SalesByCountry(r.Context())
		writeResult(w, r, "ventas-por-pais", sales, err, false)
	}
}

// SalesByMonth retorna no máximo 24 linhas (ano, mês, país), das mais recentes para as mais antigas
func SalesByMonth(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.SalesByMonth(r.Context())
		writeResult(w, r, "ventas-por-mes", sales, err, false)
	}
}

func SalesByDay(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.SalesByDay(r.Context())
		writeResult(w, r, "ventas-por-dia", sales, err, false)
	}
}

// SalesSummary devolve os totais do warehouse como um único registro em data
func SalesSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.SalesSummary(r.Context())

		var rows []domain.SalesSummary
		if err == nil && summary != nil {
			rows = []domain.SalesSummary{*summary}
		}

		writeResult(w, r, "ventas-resumen", rows, err, false)
	}
}
