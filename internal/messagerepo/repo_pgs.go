// Package messagerepo manages repository layer of messages.
package messagerepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/pkg/dbpkg"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// UserGetter resolves a participant reference to a full user.
type UserGetter interface {
	Get(ctx context.Context, uid string) (domain.User, error)
}

// RepoPGS facilitates message repository layer logic.
type RepoPGS struct {
	db    dbpkg.SQLInterface
	users UserGetter
}

// NewRepoPGS returns message RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface, users UserGetter) *RepoPGS {
	return &RepoPGS{
		db:    db,
		users: users,
	}
}

type messageRow struct {
	id         int64
	senderID   string
	receiverID string
	content    string
	sentAt     time.Time
}

func (r *RepoPGS) assemble(ctx context.Context, row messageRow) (domain.Message, error) {
	sender, err := r.users.Get(ctx, row.senderID)
	if err != nil {
		return domain.Message{}, err
	}

	receiver, err := r.users.Get(ctx, row.receiverID)
	if err != nil {
		return domain.Message{}, err
	}

	return domain.Message{
		ID:       row.id,
		Sender:   sender,
		Receiver: receiver,
		Content:  row.content,
		SentAt:   row.sentAt,
	}, nil
}

func (r *RepoPGS) assembleAll(ctx context.Context, rows *sql.Rows) ([]domain.Message, error) {
	l := zerolog.Ctx(ctx)

	defer rows.Close()

	scanned := []messageRow{}

	for rows.Next() {
		var row messageRow
		if err := rows.Scan(&row.id, &row.senderID, &row.receiverID, &row.content, &row.sentAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		scanned = append(scanned, row)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	messages := []domain.Message{}

	for _, row := range scanned {
		m, err := r.assemble(ctx, row)
		if err != nil {
			return nil, err
		}

		messages = append(messages, m)
	}

	return messages, nil
}

const sendQuery = `
INSERT INTO messages (sender_id, receiver_id, content, sent_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`

// Send persists the message and assigns the generated id. Sending an
// already sent message is rejected.
func (r *RepoPGS) Send(ctx context.Context, m *domain.Message) error {
	l := zerolog.Ctx(ctx)

	if m.IsSent() {
		return domain.ErrMessageAlreadySent
	}

	var id int64

	err := r.db.QueryRowContext(ctx, sendQuery,
		m.Sender.UID,
		m.Receiver.UID,
		m.Content,
		m.SentAt,
	).Scan(&id)

	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	m.ID = id

	return nil
}

const listByUserQuery = `
SELECT id, sender_id, receiver_id, content, sent_at
FROM messages
WHERE sender_id = $1 OR receiver_id = $1
ORDER BY sent_at, id
`

// ListByUser returns all messages sent to or from the user.
func (r *RepoPGS) ListByUser(ctx context.Context, uid string) ([]domain.Message, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByUserQuery, uid)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return r.assembleAll(ctx, rows)
}

const listBetweenQuery = `
SELECT id, sender_id, receiver_id, content, sent_at
FROM messages
WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
ORDER BY sent_at, id
`

// ListBetween returns all messages exchanged between the two users.
func (r *RepoPGS) ListBetween(ctx context.Context, uid1, uid2 string) ([]domain.Message, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listBetweenQuery, uid1, uid2)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return r.assembleAll(ctx, rows)
}

const recipientsQuery = `
SELECT DISTINCT sender_id FROM messages WHERE receiver_id = $1
UNION
SELECT DISTINCT receiver_id FROM messages WHERE sender_id = $1
`

// Recipients returns every user the given user has exchanged messages with.
func (r *RepoPGS) Recipients(ctx context.Context, uid string) ([]domain.User, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, recipientsQuery, uid)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	ids := []string{}

	for rows.Next() {
		var id string
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

	users := []domain.User{}

	for _, id := range ids {
		u, err := r.users.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, nil
}
