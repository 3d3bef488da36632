// Package currencyrepo manages repository layer of currencies.
package currencyrepo

import (
	"context"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/pkg/dbpkg"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates currency repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns currency RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const listQuery = `
SELECT name, symbol, exchange_rate
FROM currencies
ORDER BY symbol
`

// List returns every currency. An empty currencies table is a data
// integrity error, not an empty result: at least one currency must be
// seeded before the app can price anything.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Currency, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	var items []domain.Currency

	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.Name, &c.Symbol, &c.ExchangeRate); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		if c.ExchangeRate <= 0 {
			l.Error().Str("symbol", c.Symbol).Float64("exchange_rate", c.ExchangeRate).Msg("invalid exchange rate")
			return nil, domain.ErrCurrencyNotFound
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if len(items) == 0 {
		return nil, domain.ErrCurrencyNotFound
	}

	return items, nil
}

const getBySymbolQuery = `
SELECT name, symbol, exchange_rate
FROM currencies
WHERE symbol = $1
`

// GetBySymbol returns the currency with the given symbol. Both a missing
// row and duplicate rows surface as ErrCurrencyNotFound: the symbol is the
// identity and duplicates indicate corruption that must never be silently
// resolved by picking one.
func (r *RepoPGS) GetBySymbol(ctx context.Context, symbol string) (domain.Currency, error) {
	l := zerolog.Ctx(ctx)

	var c domain.Currency

	rows, err := r.db.QueryContext(ctx, getBySymbolQuery, symbol)
	if err != nil {
		l.Error().Err(err).Send()
		return c, errorspkg.ErrInternal
	}
	defer rows.Close()

	count := 0

	for rows.Next() {
		if err := rows.Scan(&c.Name, &c.Symbol, &c.ExchangeRate); err != nil {
			l.Error().Err(err).Send()
			return domain.Currency{}, errorspkg.ErrInternal
		}

		count++
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return domain.Currency{}, errorspkg.ErrInternal
	}

	if count != 1 {
		l.Warn().Str("symbol", symbol).Int("rows", count).Msg("currency lookup did not match exactly one row")
		return domain.Currency{}, domain.ErrCurrencyNotFound
	}

	if c.ExchangeRate <= 0 {
		l.Error().Str("symbol", c.Symbol).Float64("exchange_rate", c.ExchangeRate).Msg("invalid exchange rate")
		return domain.Currency{}, domain.ErrCurrencyNotFound
	}

	return c, nil
}
