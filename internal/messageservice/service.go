// Package messageservice manages business logic layer of messages.
package messageservice

import (
	"context"

	"github.com/piwegro/piwegro-api/internal/domain"
)

// Repo provides data access layer interface needed by message service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package messageservice
type Repo interface {
	Send(ctx context.Context, m *domain.Message) error
	ListByUser(ctx context.Context, uid string) ([]domain.Message, error)
	ListBetween(ctx context.Context, uid1, uid2 string) ([]domain.Message, error)
	Recipients(ctx context.Context, uid string) ([]domain.User, error)
}

// UserGetter resolves participant references before any message operation.
type UserGetter interface {
	Get(ctx context.Context, uid string) (domain.User, error)
}

// Service facilitates message service layer logic.
type Service struct {
	repo  Repo
	users UserGetter
}

// New returns message service struct to manage message business logic.
func New(mr Repo, ug UserGetter) *Service {
	return &Service{
		repo:  mr,
		users: ug,
	}
}

// Send creates a message between the two users and persists it. Both
// participants are resolved first so an unknown uid fails before the write.
func (s *Service) Send(ctx context.Context, senderUID, receiverUID, content string) (domain.Message, error) {
	sender, err := s.users.Get(ctx, senderUID)
	if err != nil {
		return domain.Message{}, err
	}

	receiver, err := s.users.Get(ctx, receiverUID)
	if err != nil {
		return domain.Message{}, err
	}

	m := domain.NewMessage(sender, receiver, content)

	if err := s.repo.Send(ctx, &m); err != nil {
		return domain.Message{}, err
	}

	return m, nil
}

// ListByUser returns all messages sent to or from the user.
func (s *Service) ListByUser(ctx context.Context, uid string) ([]domain.Message, error) {
	if _, err := s.users.Get(ctx, uid); err != nil {
		return nil, err
	}

	return s.repo.ListByUser(ctx, uid)
}

// ListBetween returns all messages exchanged between the two users.
func (s *Service) ListBetween(ctx context.Context, uid1, uid2 string) ([]domain.Message, error) {
	if _, err := s.users.Get(ctx, uid1); err != nil {
		return nil, err
	}

	if _, err := s.users.Get(ctx, uid2); err != nil {
		return nil, err
	}

	return s.repo.ListBetween(ctx, uid1, uid2)
}

// Recipients returns every user the given user has exchanged messages with.
func (s *Service) Recipients(ctx context.Context, uid string) ([]domain.User, error) {
	if _, err := s.users.Get(ctx, uid); err != nil {
		return nil, err
	}

	return s.repo.Recipients(ctx, uid)
}
