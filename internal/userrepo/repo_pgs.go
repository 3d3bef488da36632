// Package userrepo manages repository layer of users.
package userrepo

import (
	"context"
	"database/sql"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/pkg/dbpkg"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates user repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns user RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getQuery = `
SELECT id, email, name
FROM users
WHERE id = $1
`

const getAcceptedCurrenciesQuery = `
SELECT name, symbol, exchange_rate
FROM currencies
WHERE symbol IN (SELECT currency_symbol FROM accepted_currencies WHERE user_id = $1)
ORDER BY symbol
`

// Get returns the user with the given uid together with the accepted
// currency set. An empty set is tolerated right after creation and is only
// logged.
func (r *RepoPGS) Get(ctx context.Context, uid string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	var u domain.User

	row := r.db.QueryRowContext(ctx, getQuery, uid)

	err := row.Scan(
		&u.UID,
		&u.Email,
		&u.Name,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return u, domain.ErrUserNotFound
		}

		l.Error().Err(err).Send()

		return u, errorspkg.ErrInternal
	}

	rows, err := r.db.QueryContext(ctx, getAcceptedCurrenciesQuery, uid)
	if err != nil {
		l.Error().Err(err).Send()
		return u, errorspkg.ErrInternal
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.Name, &c.Symbol, &c.ExchangeRate); err != nil {
			l.Error().Err(err).Send()
			return u, errorspkg.ErrInternal
		}

		u.AcceptedCurrencies = append(u.AcceptedCurrencies, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return u, errorspkg.ErrInternal
	}

	if len(u.AcceptedCurrencies) == 0 {
		l.Warn().Str("uid", uid).Msg("user has no accepted currencies")
	}

	return u, nil
}

const createQuery = `
INSERT INTO users (id, email, name)
VALUES ($1, $2, $3)
RETURNING id, email, name
`

// Create creates the user and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.UID, arg.Email, arg.Name)

	var u domain.User

	err := row.Scan(
		&u.UID,
		&u.Email,
		&u.Name,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code.Name() == "unique_violation" {
				return u, domain.ErrUserAlreadyExists
			}
		}

		return u, errorspkg.ErrInternal
	}

	return u, nil
}

const addAcceptedCurrencyQuery = `
INSERT INTO accepted_currencies (user_id, currency_symbol)
VALUES ($1, $2)
`

// AddAcceptedCurrency inserts a single accepted currency join row.
func (r *RepoPGS) AddAcceptedCurrency(ctx context.Context, uid, symbol string) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, addAcceptedCurrencyQuery, uid, symbol)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code.Name() == "foreign_key_violation" {
				switch pqErr.Constraint {
				case "accepted_currencies_currency_symbol_fkey":
					return domain.ErrCurrencyNotFound
				case "accepted_currencies_user_id_fkey":
					return domain.ErrUserNotFound
				}
			}
		}

		return errorspkg.ErrInternal
	}

	return nil
}

const clearAcceptedCurrenciesQuery = `
DELETE FROM accepted_currencies
WHERE user_id = $1
`

// ClearAcceptedCurrencies removes every accepted currency of the user.
func (r *RepoPGS) ClearAcceptedCurrencies(ctx context.Context, uid string) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, clearAcceptedCurrenciesQuery, uid); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

const addFavoriteQuery = `
INSERT INTO favorites (user_id, offer_id)
VALUES ($1, $2)
`

// AddFavorite marks the offer as a favorite of the user.
func (r *RepoPGS) AddFavorite(ctx context.Context, uid string, offerID int64) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, addFavoriteQuery, uid, offerID)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code.Name() == "foreign_key_violation" {
				switch pqErr.Constraint {
				case "favorites_offer_id_fkey":
					return domain.ErrOfferNotFound
				case "favorites_user_id_fkey":
					return domain.ErrUserNotFound
				}
			}
		}

		return errorspkg.ErrInternal
	}

	return nil
}

const removeFavoriteQuery = `
DELETE FROM favorites
WHERE user_id = $1 AND offer_id = $2
`

// RemoveFavorite removes the offer from the favorites of the user.
func (r *RepoPGS) RemoveFavorite(ctx context.Context, uid string, offerID int64) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, removeFavoriteQuery, uid, offerID); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

const listFavoriteOfferIDsQuery = `
SELECT offer_id
FROM favorites
WHERE user_id = $1
ORDER BY offer_id
`

// ListFavoriteOfferIDs returns the ids of the offers the user favorited.
func (r *RepoPGS) ListFavoriteOfferIDs(ctx context.Context, uid string) ([]int64, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listFavoriteOfferIDsQuery, uid)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	ids := []int64{}

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return ids, nil
}
