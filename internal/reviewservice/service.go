// Package reviewservice manages business logic layer of reviews.
package reviewservice

import (
	"context"

	"github.com/piwegro/piwegro-api/internal/domain"
)

// Repo provides data access layer interface needed by review service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reviewservice
type Repo interface {
	Put(ctx context.Context, reviewerUID, revieweeUID, text string) error
	ListByReviewee(ctx context.Context, uid string) ([]domain.Review, error)
}

// UserGetter resolves participant references before any review operation.
type UserGetter interface {
	Get(ctx context.Context, uid string) (domain.User, error)
}

// Service facilitates review service layer logic.
type Service struct {
	repo  Repo
	users UserGetter
}

// New returns review service struct to manage review business logic.
func New(rr Repo, ug UserGetter) *Service {
	return &Service{
		repo:  rr,
		users: ug,
	}
}

// Put stores the review of the reviewee written by the reviewer, replacing
// any prior review by the same pair.
func (s *Service) Put(ctx context.Context, reviewerUID, revieweeUID, text string) (domain.Review, error) {
	reviewer, err := s.users.Get(ctx, reviewerUID)
	if err != nil {
		return domain.Review{}, err
	}

	reviewee, err := s.users.Get(ctx, revieweeUID)
	if err != nil {
		return domain.Review{}, err
	}

	if err := s.repo.Put(ctx, reviewerUID, revieweeUID, text); err != nil {
		return domain.Review{}, err
	}

	return domain.Review{Reviewer: reviewer, Reviewee: reviewee, Text: text}, nil
}

// ListByReviewee returns every review written about the user.
func (s *Service) ListByReviewee(ctx context.Context, uid string) ([]domain.Review, error) {
	if _, err := s.users.Get(ctx, uid); err != nil {
		return nil, err
	}

	return s.repo.ListByReviewee(ctx, uid)
}
