package reporting

import (
	"context"

	"github.com/vfg2006/cine-dw-api/infrastructure/repository"
	"github.com/vfg2006/cine-dw-api/internal/domain"
	"github.com/vfg2006/cine-dw-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Reporter expõe as consultas agregadas do data warehouse
type Reporter interface {
	ListFilms(ctx context.Context) ([]domain.Film, error)
	TopFilms(ctx context.Context, limit int) ([]domain.FilmRevenue, error)
	SalesByCountry(ctx context.Context) ([]domain.CountrySales, error)
	SalesByMonth(ctx context.Context) ([]domain.MonthlySales, error)
	SalesByDay(ctx context.Context) ([]domain.DailySales, error)
	SalesSummary(ctx context.Context) (*domain.SalesSummary, error)
}

type Service struct {
	FilmRepository  repository.FilmRepository
	SalesRepository repository.SalesRepository
}

func NewService(filmRepository repository.FilmRepository, salesRepository repository.SalesRepository) Reporter {
	return &Service{
		FilmRepository:  filmRepository,
		SalesRepository: salesRepository,
	}
}

func (s *Service) ListFilms(ctx context.Context) ([]domain.Film, error) {
	return s.FilmRepository.ListFilms(ctx)
}

func (s *Service) TopFilms(ctx context.Context, limit int) ([]domain.FilmRevenue, error) {
	return s.FilmRepository.TopFilmsByRevenue(ctx, limit)
}

func (s *Service) SalesByCountry(ctx context.Context) ([]domain.CountrySales, error) {
	return s.SalesRepository.SalesByCountry(ctx)
}

func (s *Service) SalesByMonth(ctx context.Context) ([]domain.MonthlySales, error) {
	return s.SalesRepository.SalesByMonth(ctx)
}

func (s *Service) SalesByDay(ctx context.Context) ([]domain.DailySales, error) {
	return s.SalesRepository.SalesByDay(ctx)
}

// SalesSummary completa o total do warehouse com o preço médio por boleto
func (s *Service) SalesSummary(ctx context.Context) (*domain.SalesSummary, error) {
	summary, err := s.SalesRepository.Summary(ctx)
	if err != nil {
		return nil, err
	}

	if summary.TotalTickets > 0 {
		summary.AverageTicketPrice = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue / float64(summary.TotalTickets))
	}

	return summary, nil
}
