package domain

import (
	"errors"
	"time"
)

var (
	// ErrMessageAlreadySent indicates a second send of an already persisted message.
	ErrMessageAlreadySent = errors.New("message already sent")
)

// Message holds a single message between two users. A message with a zero ID
// has not been sent yet; sending is a one-time transition.
type Message struct {
	ID       int64     `json:"id"`
	Sender   User      `json:"sender"`
	Receiver User      `json:"receiver"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
}

// IsSent reports whether the message has been persisted.
func (m Message) IsSent() bool {
	return m.ID != 0
}

// NewMessage builds a not yet sent message.
func NewMessage(sender, receiver User, content string) Message {
	return Message{
		Sender:   sender,
		Receiver: receiver,
		Content:  content,
		SentAt:   time.Now(),
	}
}
