// Package messagedelivery manages delivery layer of messages.
package messagedelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/internal/identity"
	"github.com/piwegro/piwegro-api/internal/middleware"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"
	"github.com/piwegro/piwegro-api/pkg/web"
)

// Service provides service layer interface needed by message delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package messagedelivery
type Service interface {
	Send(ctx context.Context, senderUID, receiverUID, content string) (domain.Message, error)
	ListByUser(ctx context.Context, uid string) ([]domain.Message, error)
	ListBetween(ctx context.Context, uid1, uid2 string) ([]domain.Message, error)
	Recipients(ctx context.Context, uid string) ([]domain.User, error)
}

// Handler facilitates message delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns message handler.
func NewHandler(ms Service) Handler {
	return Handler{service: ms}
}

// messageResponse carries participant uids, not nested users.
type messageResponse struct {
	ID          int64     `json:"id"`
	SenderUID   string    `json:"sender_uid"`
	ReceiverUID string    `json:"receiver_uid"`
	Content     string    `json:"content"`
	SentAt      time.Time `json:"sent_at"`
}

func newMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:          m.ID,
		SenderUID:   m.Sender.UID,
		ReceiverUID: m.Receiver.UID,
		Content:     m.Content,
		SentAt:      m.SentAt,
	}
}

func newMessageListResponse(messages []domain.Message) []messageResponse {
	list := []messageResponse{}
	for _, m := range messages {
		list = append(list, newMessageResponse(m))
	}

	return list
}

type data struct {
	Message messageResponse `json:"message"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type dataMessages struct {
	Messages []messageResponse `json:"messages"`
}
type responseMessages struct {
	Data dataMessages `json:"data,omitempty"`
}

type sendRequest struct {
	ReceiverUID string `json:"receiver_uid" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// Send handles http request to send a message from the authenticated user.
func (h *Handler) Send(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req sendRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	record := gctx.MustGet(middleware.IdentityRecordKey).(identity.Record)

	m, err := h.service.Send(ctx, record.UID, req.ReceiverUID, req.Content)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{newMessageResponse(m)}})
}

// ListByUser handles http request to list the authenticated user's messages.
func (h *Handler) ListByUser(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	record := gctx.MustGet(middleware.IdentityRecordKey).(identity.Record)

	messages, err := h.service.ListByUser(ctx, record.UID)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseMessages{Data: dataMessages{newMessageListResponse(messages)}})
}

type listBetweenRequest struct {
	UID string `uri:"uid" binding:"required"`
}

// ListBetween handles http request to list the conversation between the
// authenticated user and another user.
func (h *Handler) ListBetween(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listBetweenRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	record := gctx.MustGet(middleware.IdentityRecordKey).(identity.Record)

	messages, err := h.service.ListBetween(ctx, record.UID, req.UID)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseMessages{Data: dataMessages{newMessageListResponse(messages)}})
}

type dataRecipients struct {
	UIDs []string `json:"uids"`
}
type responseRecipients struct {
	Data dataRecipients `json:"data,omitempty"`
}

// Recipients handles http request to list everyone the authenticated user
// has exchanged messages with.
func (h *Handler) Recipients(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	record := gctx.MustGet(middleware.IdentityRecordKey).(identity.Record)

	users, err := h.service.Recipients(ctx, record.UID)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	uids := []string{}
	for _, u := range users {
		uids = append(uids, u.UID)
	}

	gctx.JSON(http.StatusOK, responseRecipients{Data: dataRecipients{uids}})
}

func (h *Handler) writeError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrUserNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrMessageAlreadySent:
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
