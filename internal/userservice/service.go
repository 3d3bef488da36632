// Package userservice manages business logic layer of users.
package userservice

import (
	"context"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/internal/identity"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Get(ctx context.Context, uid string) (domain.User, error)
	Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error)
	AddAcceptedCurrency(ctx context.Context, uid, symbol string) error
	ClearAcceptedCurrencies(ctx context.Context, uid string) error
	AddFavorite(ctx context.Context, uid string, offerID int64) error
	RemoveFavorite(ctx context.Context, uid string, offerID int64) error
	ListFavoriteOfferIDs(ctx context.Context, uid string) ([]int64, error)
}

// CurrencyGetter resolves currency symbols before any currency set mutation.
type CurrencyGetter interface {
	GetBySymbol(ctx context.Context, symbol string) (domain.Currency, error)
}

// OfferGetter hydrates favorite offer references.
type OfferGetter interface {
	Get(ctx context.Context, id int64) (domain.Offer, error)
}

// IdentityGetter looks up identity records kept by the identity provider.
type IdentityGetter interface {
	Record(ctx context.Context, uid string) (identity.Record, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo       Repo
	currencies CurrencyGetter
	offers     OfferGetter
	identities IdentityGetter

	defaultCurrencySymbol string
}

// New returns user service struct to manage user business logic. Every new
// user is enrolled in the currency with defaultCurrencySymbol.
func New(ur Repo, cg CurrencyGetter, og OfferGetter, ig IdentityGetter, defaultCurrencySymbol string) *Service {
	return &Service{
		repo:                  ur,
		currencies:            cg,
		offers:                og,
		identities:            ig,
		defaultCurrencySymbol: defaultCurrencySymbol,
	}
}

// Get returns the user with the given uid.
func (s *Service) Get(ctx context.Context, uid string) (domain.User, error) {
	return s.repo.Get(ctx, uid)
}

// CreateFromIdentity fetches the identity record kept by the provider for
// the uid, creates the user from it and enrolls it in the default currency.
// The enrollment is a creation policy, not a per-call option.
func (s *Service) CreateFromIdentity(ctx context.Context, uid string) (domain.User, error) {
	record, err := s.identities.Record(ctx, uid)
	if err != nil {
		return domain.User{}, err
	}

	arg := domain.CreateUserParams{
		UID:   record.UID,
		Email: record.Email,
		Name:  record.DisplayName,
	}

	if _, err := s.repo.Create(ctx, arg); err != nil {
		return domain.User{}, err
	}

	if _, err := s.AddAcceptedCurrency(ctx, uid, s.defaultCurrencySymbol); err != nil {
		return domain.User{}, err
	}

	return s.repo.Get(ctx, uid)
}

// AddAcceptedCurrency adds the currency with the given symbol to the
// accepted set of the user and returns the refreshed user. The currency is
// resolved first so an unknown symbol fails before any write.
func (s *Service) AddAcceptedCurrency(ctx context.Context, uid, symbol string) (domain.User, error) {
	currency, err := s.currencies.GetBySymbol(ctx, symbol)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.repo.AddAcceptedCurrency(ctx, uid, currency.Symbol); err != nil {
		return domain.User{}, err
	}

	return s.repo.Get(ctx, uid)
}

// ReplaceAcceptedCurrencies replaces the whole accepted currency set of the
// user. Every symbol is resolved before anything is mutated; the clear and
// the re-adds then commit statement by statement.
func (s *Service) ReplaceAcceptedCurrencies(ctx context.Context, uid string, symbols []string) (domain.User, error) {
	currencies := make([]domain.Currency, 0, len(symbols))

	for _, symbol := range symbols {
		c, err := s.currencies.GetBySymbol(ctx, symbol)
		if err != nil {
			return domain.User{}, err
		}

		currencies = append(currencies, c)
	}

	if err := s.repo.ClearAcceptedCurrencies(ctx, uid); err != nil {
		return domain.User{}, err
	}

	for _, c := range currencies {
		if err := s.repo.AddAcceptedCurrency(ctx, uid, c.Symbol); err != nil {
			return domain.User{}, err
		}
	}

	return s.repo.Get(ctx, uid)
}

// AddFavorite marks the offer as a favorite of the user.
func (s *Service) AddFavorite(ctx context.Context, uid string, offerID int64) error {
	return s.repo.AddFavorite(ctx, uid, offerID)
}

// RemoveFavorite removes the offer from the favorites of the user.
func (s *Service) RemoveFavorite(ctx context.Context, uid string, offerID int64) error {
	return s.repo.RemoveFavorite(ctx, uid, offerID)
}

// Favorites returns the favorited offers of the user, fully hydrated.
func (s *Service) Favorites(ctx context.Context, uid string) ([]domain.Offer, error) {
	ids, err := s.repo.ListFavoriteOfferIDs(ctx, uid)
	if err != nil {
		return nil, err
	}

	offers := []domain.Offer{}

	for _, id := range ids {
		offer, err := s.offers.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		offers = append(offers, offer)
	}

	return offers, nil
}
