// Package reviewdelivery manages delivery layer of reviews.
package reviewdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/internal/identity"
	"github.com/piwegro/piwegro-api/internal/middleware"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"
	"github.com/piwegro/piwegro-api/pkg/web"
)

// Service provides service layer interface needed by review delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package reviewdelivery
type Service interface {
	Put(ctx context.Context, reviewerUID, revieweeUID, text string) (domain.Review, error)
	ListByReviewee(ctx context.Context, uid string) ([]domain.Review, error)
}

// Handler facilitates review delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns review handler.
func NewHandler(rs Service) Handler {
	return Handler{service: rs}
}

// reviewResponse carries participant uids, not nested users.
type reviewResponse struct {
	ReviewerUID string `json:"reviewer_uid"`
	RevieweeUID string `json:"reviewee_uid"`
	Text        string `json:"text"`
}

func newReviewResponse(r domain.Review) reviewResponse {
	return reviewResponse{
		ReviewerUID: r.Reviewer.UID,
		RevieweeUID: r.Reviewee.UID,
		Text:        r.Text,
	}
}

type data struct {
	Review reviewResponse `json:"review"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type dataReviews struct {
	Reviews []reviewResponse `json:"reviews"`
}
type responseReviews struct {
	Data dataReviews `json:"data,omitempty"`
}

type putUriRequest struct {
	UID string `uri:"uid" binding:"required"`
}

type putBodyRequest struct {
	Text string `json:"text" binding:"required"`
}

// Put handles http request to review a user, replacing any earlier review
// by the authenticated reviewer.
func (h *Handler) Put(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uriReq putUriRequest
	if err := gctx.ShouldBindUri(&uriReq); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var bodyReq putBodyRequest
	if err := gctx.ShouldBindJSON(&bodyReq); err != nil {
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

	review, err := h.service.Put(ctx, record.UID, uriReq.UID, bodyReq.Text)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{newReviewResponse(review)}})
}

type listRequest struct {
	UID string `uri:"uid" binding:"required"`
}

// ListByReviewee handles http request to list the reviews about a user.
func (h *Handler) ListByReviewee(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	reviews, err := h.service.ListByReviewee(ctx, req.UID)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	list := []reviewResponse{}
	for _, r := range reviews {
		list = append(list, newReviewResponse(r))
	}

	gctx.JSON(http.StatusOK, responseReviews{Data: dataReviews{list}})
}

func (h *Handler) writeError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrUserNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
