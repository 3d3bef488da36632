// Package imagerepo manages repository layer of images.
package imagerepo

import (
	"context"
	"database/sql"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/pkg/dbpkg"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates image repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns image RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getQuery = `
SELECT id, original, preview, thumbnail
FROM images
WHERE id = $1
`

// Get returns the saved image with the given id. A fetched image never
// carries a raw bitmap.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Image, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var img domain.Image

	err := row.Scan(
		&img.ID,
		&img.Original,
		&img.Preview,
		&img.Thumbnail,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return img, domain.ErrImageNotFound
		}

		l.Error().Err(err).Send()

		return img, errorspkg.ErrInternal
	}

	return img, nil
}

const listByOfferQuery = `
SELECT id, original, preview, thumbnail
FROM images
WHERE offer_id = $1
ORDER BY id
`

// ListByOffer returns all images associated with the offer.
func (r *RepoPGS) ListByOffer(ctx context.Context, offerID int64) ([]domain.Image, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByOfferQuery, offerID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Image{}

	for rows.Next() {
		var img domain.Image
		if err := rows.Scan(&img.ID, &img.Original, &img.Preview, &img.Thumbnail); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, img)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const createQuery = `
INSERT INTO images (original, preview, thumbnail)
VALUES ($1, $2, $3)
RETURNING id
`

// Create inserts the rendition paths and returns the generated id.
func (r *RepoPGS) Create(ctx context.Context, original, preview, thumbnail string) (int64, error) {
	l := zerolog.Ctx(ctx)

	var id int64

	err := r.db.QueryRowContext(ctx, createQuery, original, preview, thumbnail).Scan(&id)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return id, nil
}

const associateQuery = `
UPDATE images
SET offer_id = $1
WHERE id = $2
`

// Associate links the image with the offer.
func (r *RepoPGS) Associate(ctx context.Context, imageID, offerID int64) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, associateQuery, offerID, imageID)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code.Name() == "foreign_key_violation" {
				return domain.ErrOfferNotFound
			}
		}

		return errorspkg.ErrInternal
	}

	return nil
}
