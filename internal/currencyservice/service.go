// Package currencyservice manages business logic layer of currencies.
package currencyservice

import (
	"context"

	"github.com/piwegro/piwegro-api/internal/domain"
)

// Repo provides data access layer interface needed by currency service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package currencyservice
type Repo interface {
	List(ctx context.Context) ([]domain.Currency, error)
	GetBySymbol(ctx context.Context, symbol string) (domain.Currency, error)
}

// Service facilitates currency service layer logic.
type Service struct {
	repo Repo
}

// New returns currency service struct to manage currency business logic.
func New(cr Repo) *Service {
	return &Service{repo: cr}
}

// List returns every known currency.
func (s *Service) List(ctx context.Context) ([]domain.Currency, error) {
	return s.repo.List(ctx)
}

// GetBySymbol returns the currency with the given symbol.
func (s *Service) GetBySymbol(ctx context.Context, symbol string) (domain.Currency, error) {
	return s.repo.GetBySymbol(ctx, symbol)
}
