// Package offerrepo manages repository layer of offers.
//
// An offer row references its seller and currency by key and its images by
// the offer id. Assembly resolves every reference through the referenced
// entity's own repository so that callers always receive fully hydrated
// offers, never partial ones.
package offerrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/pkg/dbpkg"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// UserGetter resolves a seller reference to a full user.
type UserGetter interface {
	Get(ctx context.Context, uid string) (domain.User, error)
}

// CurrencyGetter resolves a currency symbol reference.
type CurrencyGetter interface {
	GetBySymbol(ctx context.Context, symbol string) (domain.Currency, error)
}

// ImageRepo resolves and associates offer images.
type ImageRepo interface {
	ListByOffer(ctx context.Context, offerID int64) ([]domain.Image, error)
	Associate(ctx context.Context, imageID, offerID int64) error
}

// RepoPGS facilitates offer repository layer logic.
type RepoPGS struct {
	db         dbpkg.SQLInterface
	users      UserGetter
	currencies CurrencyGetter
	images     ImageRepo
}

// NewRepoPGS returns offer RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface, users UserGetter, currencies CurrencyGetter, images ImageRepo) *RepoPGS {
	return &RepoPGS{
		db:         db,
		users:      users,
		currencies: currencies,
		images:     images,
	}
}

type offerRow struct {
	id          int64
	sellerID    string
	title       string
	description string
	amount      int64
	currency    string
	createdAt   time.Time
	location    string
}

// assemble resolves every reference of the row. A reference that fails to
// resolve aborts the whole assembly with that entity's own error.
func (r *RepoPGS) assemble(ctx context.Context, row offerRow) (domain.Offer, error) {
	currency, err := r.currencies.GetBySymbol(ctx, row.currency)
	if err != nil {
		return domain.Offer{}, err
	}

	seller, err := r.users.Get(ctx, row.sellerID)
	if err != nil {
		return domain.Offer{}, err
	}

	images, err := r.images.ListByOffer(ctx, row.id)
	if err != nil {
		return domain.Offer{}, err
	}

	return domain.Offer{
		ID:          row.id,
		Title:       row.title,
		Description: row.description,
		Price:       domain.Price{Amount: row.amount, Currency: currency},
		Seller:      seller,
		Images:      images,
		Location:    row.location,
		CreatedAt:   row.createdAt,
	}, nil
}

func (r *RepoPGS) assembleAll(ctx context.Context, rows *sql.Rows) ([]domain.Offer, error) {
	l := zerolog.Ctx(ctx)

	defer rows.Close()

	scanned := []offerRow{}

	for rows.Next() {
		var row offerRow
		err := rows.Scan(
			&row.id,
			&row.sellerID,
			&row.title,
			&row.description,
			&row.amount,
			&row.currency,
			&row.createdAt,
			&row.location,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		scanned = append(scanned, row)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	offers := []domain.Offer{}

	for _, row := range scanned {
		offer, err := r.assemble(ctx, row)
		if err != nil {
			return nil, err
		}

		offers = append(offers, offer)
	}

	return offers, nil
}

const getQuery = `
SELECT id, seller_id, title, description, price, currency, created_at, location
FROM offers
WHERE id = $1
`

// Get returns the offer with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Offer, error) {
	l := zerolog.Ctx(ctx)

	var row offerRow

	err := r.db.QueryRowContext(ctx, getQuery, id).Scan(
		&row.id,
		&row.sellerID,
		&row.title,
		&row.description,
		&row.amount,
		&row.currency,
		&row.createdAt,
		&row.location,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Offer{}, domain.ErrOfferNotFound
		}

		l.Error().Err(err).Send()

		return domain.Offer{}, errorspkg.ErrInternal
	}

	return r.assemble(ctx, row)
}

const listBySellerQuery = `
SELECT id, seller_id, title, description, price, currency, created_at, location
FROM offers
WHERE seller_id = $1
ORDER BY id
`

// ListBySeller returns all offers of the seller. No offers at all surface
// as ErrOfferNotFound, matching the by-id lookup.
func (r *RepoPGS) ListBySeller(ctx context.Context, uid string) ([]domain.Offer, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listBySellerQuery, uid)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	offers, err := r.assembleAll(ctx, rows)
	if err != nil {
		return nil, err
	}

	if len(offers) == 0 {
		return nil, domain.ErrOfferNotFound
	}

	return offers, nil
}

const listAllQuery = `
SELECT id, seller_id, title, description, price, currency, created_at, location
FROM offers
ORDER BY id
`

// ListAll returns every offer. An empty catalog is a legitimate empty
// result, not an error.
func (r *RepoPGS) ListAll(ctx context.Context) ([]domain.Offer, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listAllQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return r.assembleAll(ctx, rows)
}

const addQuery = `
INSERT INTO offers (seller_id, title, description, price, currency, created_at, location)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

// Add persists the offer, assigns the generated id and associates every
// image with it. The statements are not wrapped in a transaction: a failure
// mid-association leaves the earlier associations committed.
func (r *RepoPGS) Add(ctx context.Context, offer *domain.Offer) error {
	l := zerolog.Ctx(ctx)

	if offer.IsAdded() {
		return domain.ErrOfferAlreadyAdded
	}

	var id int64

	err := r.db.QueryRowContext(ctx, addQuery,
		offer.Seller.UID,
		offer.Title,
		offer.Description,
		offer.Price.Amount,
		offer.Price.Currency.Symbol,
		offer.CreatedAt,
		offer.Location,
	).Scan(&id)

	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	offer.ID = id

	for _, img := range offer.Images {
		if !img.IsSaved() {
			return domain.ErrImageNotSaved
		}

		if err := r.images.Associate(ctx, img.ID, id); err != nil {
			return err
		}
	}

	return nil
}
