package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cine-dw-api/internal/usecases/reporting"
	"github.com/vfg2006/cine-dw-api/pkg/apiErrors"
	"github.com/vfg2006/cine-dw-api/pkg/log"
	"github.com/vfg2006/cine-dw-api/pkg/utils"
)

// DefaultTopFilmsLimit é usado quando o limite está ausente, não é numérico ou é zero.
// Um limite que não cabe em int responde com o envelope de falha.
const DefaultTopFilmsLimit = 10

// ListFilms retorna todas as películas de dim_pelicula ordenadas por título
func ListFilms(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		films, err := service.ListFilms(r.Context())
		writeResult(w, r, "peliculas", films, err, true)
	}
}

// TopFilms retorna as películas com maior receita. O limite não tem teto e vai
// para a query como parâmetro.
func TopFilms(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawLimit := httprouter.ParamsFromContext(r.Context()).ByName("limit")
		limit, err := utils.IntOrDefault(rawLimit, DefaultTopFilmsLimit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("top-peliculas: limite inválido")
			apiErrors.FromError(w, http.StatusInternalServerError, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"limit":     limit,
			"raw_limit": rawLimit,
		}).Debug("top-peliculas: limite resolvido")

		films, err := service.TopFilms(r.Context(), limit)
		writeResult(w, r, "peliculas-top", films, err, false)
	}
}
