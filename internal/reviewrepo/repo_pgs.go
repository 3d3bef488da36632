// Package reviewrepo manages repository layer of reviews.
package reviewrepo

import (
	"context"
	"database/sql"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/pkg/dbpkg"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// UserGetter resolves a participant reference to a full user.
type UserGetter interface {
	Get(ctx context.Context, uid string) (domain.User, error)
}

// RepoPGS facilitates review repository layer logic.
type RepoPGS struct {
	db    dbpkg.SQLInterface
	users UserGetter
}

// NewRepoPGS returns review RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface, users UserGetter) *RepoPGS {
	return &RepoPGS{
		db:    db,
		users: users,
	}
}

const deleteQuery = `
DELETE FROM reviews
WHERE reviewer_id = $1 AND reviewee_id = $2
`

const insertQuery = `
INSERT INTO reviews (reviewer_id, reviewee_id, review)
VALUES ($1, $2, $3)
`

// Put stores the review for the (reviewer, reviewee) pair, replacing any
// prior one. The delete and the insert commit independently.
func (r *RepoPGS) Put(ctx context.Context, reviewerUID, revieweeUID, text string) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, deleteQuery, reviewerUID, revieweeUID); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if _, err := r.db.ExecContext(ctx, insertQuery, reviewerUID, revieweeUID, text); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

const listByRevieweeQuery = `
SELECT reviewer_id, reviewee_id, review
FROM reviews
WHERE reviewee_id = $1
ORDER BY reviewer_id
`

// ListByReviewee returns every review written about the user.
func (r *RepoPGS) ListByReviewee(ctx context.Context, uid string) ([]domain.Review, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByRevieweeQuery, uid)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return r.assembleAll(ctx, rows)
}

type reviewRow struct {
	reviewerID string
	revieweeID string
	text       string
}

func (r *RepoPGS) assembleAll(ctx context.Context, rows *sql.Rows) ([]domain.Review, error) {
	l := zerolog.Ctx(ctx)

	defer rows.Close()

	scanned := []reviewRow{}

	for rows.Next() {
		var row reviewRow
		if err := rows.Scan(&row.reviewerID, &row.revieweeID, &row.text); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		scanned = append(scanned, row)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	reviews := []domain.Review{}

	for _, row := range scanned {
		reviewer, err := r.users.Get(ctx, row.reviewerID)
		if err != nil {
			return nil, err
		}

		reviewee, err := r.users.Get(ctx, row.revieweeID)
		if err != nil {
			return nil, err
		}

		reviews = append(reviews, domain.Review{Reviewer: reviewer, Reviewee: reviewee, Text: row.text})
	}

	return reviews, nil
}
