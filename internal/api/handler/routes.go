package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/cine-dw-api/internal/api/handler/router"
	"github.com/vfg2006/cine-dw-api/internal/usecases/reporting"
	"github.com/vfg2006/cine-dw-api/pkg/middleware"
)

// instrumented monta uma rota GET com métricas rotuladas pelo padrão do caminho
func instrumented(path string, h http.Handler) router.Route {
	return router.Route{
		Path:        path,
		Method:      http.MethodGet,
		Handler:     h,
		Middlewares: []func(http.Handler) http.Handler{middleware.Instrument(path)},
	}
}

func Healthcheck(monitor PoolStatusReporter) []router.Route {
	return []router.Route{
		instrumented("/health", HealthcheckHandler()),
		instrumented("/status", StatusHandler(monitor)),
	}
}

func Films(service reporting.Reporter) []router.Route {
	return []router.Route{
		instrumented("/api/peliculas", ListFilms(service)),
		instrumented("/api/peliculas/top", TopFilms(service)),
		instrumented("/api/peliculas/top/:limit", TopFilms(service)),
	}
}

func Sales(service reporting.Reporter) []router.Route {
	return []router.Route{
		instrumented("/api/ventas/por-pais", SalesByCountry(service)),
		instrumented("/api/ventas/por-mes", SalesByMonth(service)),
		instrumented("/api/ventas/por-dia", SalesByDay(service)),
		instrumented("/api/ventas/resumen", SalesSummary(service)),
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
