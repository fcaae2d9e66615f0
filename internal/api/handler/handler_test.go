package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cine-dw-api/internal/api/handler/router"
	"github.com/vfg2006/cine-dw-api/internal/domain"
	"github.com/vfg2006/cine-dw-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/cine-dw-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

type fakeMonitor struct {
	snapshot domain.PoolStatus
	checked  domain.PoolStatus
	checks   int
}

func (m *fakeMonitor) Snapshot() domain.PoolStatus { return m.snapshot }

func (m *fakeMonitor) Check(context.Context) domain.PoolStatus {
	m.checks++
	m.snapshot = m.checked
	return m.checked
}

func newTestRouter(service *mocks.MockReporter, monitor PoolStatusReporter) router.Router {
	if monitor == nil {
		monitor = &fakeMonitor{snapshot: domain.PoolStatus{Status: domain.PoolStatusOK}}
	}

	return router.New(
		router.WithRoutes(Healthcheck(monitor)...),
		router.WithRoutes(Films(service)...),
		router.WithRoutes(Sales(service)...),
	)
}

func doGet(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return rec, body
}

func TestHealthcheck_DoesNotTouchWarehouse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa no mock: qualquer chamada ao serviço falha o teste
	service := mocks.NewMockReporter(ctrl)
	before := time.Now().Add(-time.Second)

	rec, body := doGet(t, newTestRouter(service, nil), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", body["status"])

	timestamp, err := time.Parse(time.RFC3339Nano, body["timestamp"].(string))
	require.NoError(t, err)
	assert.True(t, timestamp.After(before))
}

func TestListFilms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	classification := "PG-13"
	service.EXPECT().ListFilms(gomock.Any()).Return([]domain.Film{
		{ID: 3, Title: stringPtr("Alien"), Genre: stringPtr("Terror"), Classification: &classification},
		{ID: 1, Title: stringPtr("Barbie"), Genre: stringPtr("Comedia")},
		{ID: 2, Title: stringPtr("Coco")},
	}, nil)

	rec, body := doGet(t, newTestRouter(service, nil), "/api/peliculas")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	data := body["data"].([]any)
	assert.Equal(t, float64(len(data)), body["total"])

	titles := make([]string, 0, len(data))
	for _, item := range data {
		titles = append(titles, item.(map[string]any)["titulo"].(string))
	}
	assert.True(t, sort.StringsAreSorted(titles))

	first := data[0].(map[string]any)
	assert.Equal(t, float64(3), first["pelicula_id"])
	assert.Equal(t, "PG-13", first["clasificacion"])
	assert.Nil(t, data[1].(map[string]any)["clasificacion"])

	last := data[2].(map[string]any)
	assert.Contains(t, last, "genero")
	assert.Nil(t, last["genero"])
}

func TestListFilms_EmptyResultRendersEmptyArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().ListFilms(gomock.Any()).Return(nil, nil)

	rec, _ := doGet(t, newTestRouter(service, nil), "/api/peliculas")

	assert.JSONEq(t, `{"success":true,"data":[],"total":0}`, rec.Body.String())
}

func TestTopFilms_LimitParsing(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantLimit int
	}{
		{name: "limite numérico", path: "/api/peliculas/top/3", wantLimit: 3},
		{name: "limite não numérico", path: "/api/peliculas/top/abc", wantLimit: 10},
		{name: "limite ausente", path: "/api/peliculas/top", wantLimit: 10},
		{name: "limite zero", path: "/api/peliculas/top/0", wantLimit: 10},
		{name: "dígitos seguidos de texto", path: "/api/peliculas/top/5abc", wantLimit: 5},
		{name: "sem teto", path: "/api/peliculas/top/5000", wantLimit: 5000},
		{name: "negativo repassado", path: "/api/peliculas/top/-2", wantLimit: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockReporter(ctrl)
			service.EXPECT().
				TopFilms(gomock.Any(), tt.wantLimit).
				Return([]domain.FilmRevenue{}, nil)

			rec, body := doGet(t, newTestRouter(service, nil), tt.path)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, true, body["success"])
			assert.NotContains(t, body, "total")
		})
	}
}

func TestTopFilms_LimitOutOfRangeReturnsFailureEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem expectativa: a consulta não pode ser executada com um limite trocado
	service := mocks.NewMockReporter(ctrl)

	rec, body := doGet(t, newTestRouter(service, nil), "/api/peliculas/top/99999999999999999999999")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "99999999999999999999999")
	assert.NotContains(t, body, "data")
}

func TestTopFilms_RendersRecordsInServiceOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().TopFilms(gomock.Any(), 3).Return([]domain.FilmRevenue{
		{FilmID: 9, Title: stringPtr("Dune"), Genre: stringPtr("Ciencia Ficción"), TotalTickets: 1200, TotalRevenue: 54000.5},
		{FilmID: 4, Title: stringPtr("Coco"), Genre: stringPtr("Animación"), TotalTickets: 1000, TotalRevenue: 45000},
		{FilmID: 2, Title: stringPtr("Barbie"), Genre: stringPtr("Comedia"), TotalTickets: 800, TotalRevenue: 36000},
	}, nil)

	_, body := doGet(t, newTestRouter(service, nil), "/api/peliculas/top/3")

	data := body["data"].([]any)
	require.LessOrEqual(t, len(data), 3)

	previous := data[0].(map[string]any)["total_ingresos"].(float64)
	for _, item := range data[1:] {
		current := item.(map[string]any)["total_ingresos"].(float64)
		assert.LessOrEqual(t, current, previous)
		previous = current
	}
	assert.Equal(t, "Dune", data[0].(map[string]any)["titulo"])
	assert.Equal(t, float64(1200), data[0].(map[string]any)["total_boletos"])
}

func TestSalesByMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().SalesByMonth(gomock.Any()).Return([]domain.MonthlySales{
		{Year: 2025, Month: 2, Country: "El Salvador", TotalTickets: 10, TotalRevenue: 55},
		{Year: 2025, Month: 2, Country: "Guatemala", TotalTickets: 20, TotalRevenue: 800},
		{Year: 2025, Month: 1, Country: "El Salvador", TotalTickets: 12, TotalRevenue: 60},
	}, nil)

	rec, body := doGet(t, newTestRouter(service, nil), "/api/ventas/por-mes")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].([]any)
	assert.LessOrEqual(t, len(data), 24)

	first := data[0].(map[string]any)
	assert.Equal(t, float64(2025), first["anio"])
	assert.Equal(t, float64(2), first["mes"])
	assert.Equal(t, "El Salvador", first["pais"])
}

func TestSalesByCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	price := 42.5
	service.EXPECT().SalesByCountry(gomock.Any()).Return([]domain.CountrySales{
		{Country: "Guatemala", DistinctFilms: 80, TotalTickets: 700, TotalRevenue: 29750, AveragePrice: &price},
		{Country: "El Salvador", DistinctFilms: 75, TotalTickets: 300, TotalRevenue: 1575},
	}, nil)
	service.EXPECT().SalesSummary(gomock.Any()).Return(&domain.SalesSummary{
		Records: 2, TotalTickets: 1000, TotalRevenue: 31325, AverageTicketPrice: 31.33,
	}, nil)

	h := newTestRouter(service, nil)

	_, byCountry := doGet(t, h, "/api/ventas/por-pais")
	_, summary := doGet(t, h, "/api/ventas/resumen")

	var tickets float64
	for _, item := range byCountry["data"].([]any) {
		tickets += item.(map[string]any)["total_boletos"].(float64)
	}

	summaryData := summary["data"].([]any)
	require.Len(t, summaryData, 1)
	assert.Equal(t, summaryData[0].(map[string]any)["total_boletos"], tickets)

	first := byCountry["data"].([]any)[0].(map[string]any)
	assert.Equal(t, 42.5, first["precio_promedio"])
	assert.Equal(t, float64(80), first["peliculas_distintas"])
}

func TestSalesByDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().SalesByDay(gomock.Any()).Return([]domain.DailySales{
		{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), TotalTickets: 50, TotalRevenue: 2000, DistinctFilms: 12},
	}, nil)

	_, body := doGet(t, newTestRouter(service, nil), "/api/ventas/por-dia")

	first := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "2025-03-01T00:00:00Z", first["fecha"])
	assert.Equal(t, float64(12), first["peliculas_distintas"])
}

func TestDataEndpoints_WarehouseFailure(t *testing.T) {
	cause := errors.New("pq: terminating connection due to administrator command")
	wrapped := errors.Wrap(cause, "erro ao executar a query")

	tests := []struct {
		path  string
		setup func(service *mocks.MockReporter)
	}{
		{
			path: "/api/peliculas",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().ListFilms(gomock.Any()).Return(nil, wrapped)
			},
		},
		{
			path: "/api/peliculas/top/5",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().TopFilms(gomock.Any(), 5).Return(nil, wrapped)
			},
		},
		{
			path: "/api/ventas/por-pais",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().SalesByCountry(gomock.Any()).Return(nil, wrapped)
			},
		},
		{
			path: "/api/ventas/por-mes",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().SalesByMonth(gomock.Any()).Return(nil, wrapped)
			},
		},
		{
			path: "/api/ventas/por-dia",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().SalesByDay(gomock.Any()).Return(nil, wrapped)
			},
		},
		{
			path: "/api/ventas/resumen",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().SalesSummary(gomock.Any()).Return(nil, wrapped)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockReporter(ctrl)
			tt.setup(service)

			rec, body := doGet(t, newTestRouter(service, nil), tt.path)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, cause.Error(), body["error"])
			assert.NotContains(t, body, "data")
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name       string
		monitor    *fakeMonitor
		wantCode   int
		wantStatus string
		wantChecks int
	}{
		{
			name:       "pool saudável",
			monitor:    &fakeMonitor{snapshot: domain.PoolStatus{Status: domain.PoolStatusOK, OpenConnections: 2}},
			wantCode:   http.StatusOK,
			wantStatus: domain.PoolStatusOK,
		},
		{
			name:       "warehouse inacessível",
			monitor:    &fakeMonitor{snapshot: domain.PoolStatus{Status: domain.PoolStatusDegraded, Error: "connection refused"}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: domain.PoolStatusDegraded,
		},
		{
			name: "sem verificação anterior verifica na hora",
			monitor: &fakeMonitor{
				snapshot: domain.PoolStatus{Status: domain.PoolStatusUnknown},
				checked:  domain.PoolStatus{Status: domain.PoolStatusOK},
			},
			wantCode:   http.StatusOK,
			wantStatus: domain.PoolStatusOK,
			wantChecks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rec, body := doGet(t, newTestRouter(mocks.NewMockReporter(ctrl), tt.monitor), "/status")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantStatus, body["status"])
			assert.Equal(t, tt.wantStatus, body["database"].(map[string]any)["status"])
			assert.Equal(t, tt.wantChecks, tt.monitor.checks)
		})
	}
}

func TestRouter_UnknownRouteReturnsFailureEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec, body := doGet(t, newTestRouter(mocks.NewMockReporter(ctrl), nil), "/api/salas")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestRouter_WrongMethodReturnsFailureEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := httptest.NewRecorder()
	newTestRouter(mocks.NewMockReporter(ctrl), nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/peliculas", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func stringPtr(s string) *string {
	return &s
}
