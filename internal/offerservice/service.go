// Package offerservice manages business logic layer of offers.
package offerservice

import (
	"context"
	"sort"
	"strings"

	"github.com/piwegro/piwegro-api/internal/domain"

	"github.com/agnivade/levenshtein"
)

// ResultsPerPage is the fixed search page size.
const ResultsPerPage = 15

// Repo provides data access layer interface needed by offer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package offerservice
type Repo interface {
	Get(ctx context.Context, id int64) (domain.Offer, error)
	ListBySeller(ctx context.Context, uid string) ([]domain.Offer, error)
	ListAll(ctx context.Context) ([]domain.Offer, error)
	Add(ctx context.Context, offer *domain.Offer) error
}

// UserGetter resolves the seller eagerly during offer creation.
type UserGetter interface {
	Get(ctx context.Context, uid string) (domain.User, error)
}

// CurrencyGetter resolves the pricing currency eagerly during offer creation.
type CurrencyGetter interface {
	GetBySymbol(ctx context.Context, symbol string) (domain.Currency, error)
}

// ImageGetter resolves already uploaded images during offer creation.
type ImageGetter interface {
	Get(ctx context.Context, id int64) (domain.Image, error)
}

// Service facilitates offer service layer logic.
type Service struct {
	repo       Repo
	users      UserGetter
	currencies CurrencyGetter
	images     ImageGetter
}

// New returns offer service struct to manage offer business logic.
func New(or Repo, ug UserGetter, cg CurrencyGetter, ig ImageGetter) *Service {
	return &Service{
		repo:       or,
		users:      ug,
		currencies: cg,
		images:     ig,
	}
}

// CreateWithSellerID builds a not yet persisted offer, resolving the
// seller, the currency and every referenced image before anything is
// written. Each image must already be uploaded and saved.
func (s *Service) CreateWithSellerID(ctx context.Context, title, description, currencySymbol string,
	amount int64, sellerUID string, imageIDs []int64, location string) (domain.Offer, error) {
	seller, err := s.users.Get(ctx, sellerUID)
	if err != nil {
		return domain.Offer{}, err
	}

	currency, err := s.currencies.GetBySymbol(ctx, currencySymbol)
	if err != nil {
		return domain.Offer{}, err
	}

	images := make([]domain.Image, 0, len(imageIDs))

	for _, id := range imageIDs {
		img, err := s.images.Get(ctx, id)
		if err != nil {
			return domain.Offer{}, err
		}

		if !img.IsSaved() {
			return domain.Offer{}, domain.ErrImageNotSaved
		}

		images = append(images, img)
	}

	price := domain.Price{Amount: amount, Currency: currency}

	return domain.NewOffer(title, description, price, seller, images, location), nil
}

// Add persists the offer and associates its images.
func (s *Service) Add(ctx context.Context, offer *domain.Offer) error {
	return s.repo.Add(ctx, offer)
}

// Get returns the offer with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Offer, error) {
	return s.repo.Get(ctx, id)
}

// ListAll returns every offer.
func (s *Service) ListAll(ctx context.Context) ([]domain.Offer, error) {
	return s.repo.ListAll(ctx)
}

// ListBySeller returns all offers of the seller.
func (s *Service) ListBySeller(ctx context.Context, uid string) ([]domain.Offer, error) {
	return s.repo.ListBySeller(ctx, uid)
}

// Search ranks offers by edit distance between the query and the title,
// case-insensitively, closest first. Titles whose distance reaches half the
// query length are excluded, so an empty query matches nothing. Pages are
// zero-indexed and hold ResultsPerPage offers.
//
// This is a per-offer scan over the whole catalog, not an index lookup; it
// degrades linearly with catalog size.
func (s *Service) Search(ctx context.Context, query string, page int) ([]domain.Offer, error) {
	offers, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	threshold := float64(len(query)) / 2
	loweredQuery := strings.ToLower(query)

	type ranked struct {
		offer    domain.Offer
		distance int
	}

	matches := []ranked{}

	for _, offer := range offers {
		distance := levenshtein.ComputeDistance(strings.ToLower(offer.Title), loweredQuery)
		if float64(distance) < threshold {
			matches = append(matches, ranked{offer: offer, distance: distance})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	if page < 0 {
		page = 0
	}

	start := page * ResultsPerPage
	if start > len(matches) {
		start = len(matches)
	}

	end := start + ResultsPerPage
	if end > len(matches) {
		end = len(matches)
	}

	result := []domain.Offer{}
	for _, m := range matches[start:end] {
		result = append(result, m.offer)
	}

	return result, nil
}
