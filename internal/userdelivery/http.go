// Package userdelivery manages delivery layer of users.
package userdelivery

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
	"github.com/piwegro/piwegro-api/internal/offerdelivery"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"
	"github.com/piwegro/piwegro-api/pkg/web"
)

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Get(ctx context.Context, uid string) (domain.User, error)
	CreateFromIdentity(ctx context.Context, uid string) (domain.User, error)
	AddAcceptedCurrency(ctx context.Context, uid, symbol string) (domain.User, error)
	ReplaceAcceptedCurrencies(ctx context.Context, uid string, symbols []string) (domain.User, error)
	AddFavorite(ctx context.Context, uid string, offerID int64) error
	RemoveFavorite(ctx context.Context, uid string, offerID int64) error
	Favorites(ctx context.Context, uid string) ([]domain.Offer, error)
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns user handler.
func NewHandler(us Service) Handler {
	return Handler{service: us}
}

type userResponse struct {
	UID                string            `json:"uid"`
	Name               string            `json:"name"`
	AcceptedCurrencies []domain.Currency `json:"accepted_currencies"`
}

func newUserResponse(u domain.User) userResponse {
	currencies := u.AcceptedCurrencies
	if currencies == nil {
		currencies = []domain.Currency{}
	}

	return userResponse{
		UID:                u.UID,
		Name:               u.Name,
		AcceptedCurrencies: currencies,
	}
}

type data struct {
	User userResponse `json:"user"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// Create handles http request to sync the authenticated identity into a
// local user on first sign-up.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	record := gctx.MustGet(middleware.IdentityRecordKey).(identity.Record)

	user, err := h.service.CreateFromIdentity(ctx, record.UID)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{newUserResponse(user)}})
}

type getRequest struct {
	UID string `uri:"uid" binding:"required"`
}

// Get handles http request to get a user.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	user, err := h.service.Get(ctx, req.UID)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{newUserResponse(user)}})
}

type addCurrencyRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}

// AddAcceptedCurrency handles http request to add a currency to the
// authenticated user's accepted set.
func (h *Handler) AddAcceptedCurrency(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req addCurrencyRequest
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

	user, err := h.service.AddAcceptedCurrency(ctx, record.UID, req.Symbol)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{newUserResponse(user)}})
}

type replaceCurrenciesRequest struct {
	Symbols []string `json:"symbols" binding:"required"`
}

// ReplaceAcceptedCurrencies handles http request to replace the whole
// accepted currency set of the authenticated user.
func (h *Handler) ReplaceAcceptedCurrencies(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req replaceCurrenciesRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	record := gctx.MustGet(middleware.IdentityRecordKey).(identity.Record)

	user, err := h.service.ReplaceAcceptedCurrencies(ctx, record.UID, req.Symbols)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{newUserResponse(user)}})
}

type favoriteRequest struct {
	OfferID int64 `uri:"id" binding:"required,min=1"`
}

// AddFavorite handles http request to favorite an offer.
func (h *Handler) AddFavorite(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req favoriteRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	record := gctx.MustGet(middleware.IdentityRecordKey).(identity.Record)

	if err := h.service.AddFavorite(ctx, record.UID, req.OfferID); err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}

// RemoveFavorite handles http request to unfavorite an offer.
func (h *Handler) RemoveFavorite(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req favoriteRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	record := gctx.MustGet(middleware.IdentityRecordKey).(identity.Record)

	if err := h.service.RemoveFavorite(ctx, record.UID, req.OfferID); err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}

type dataFavorites struct {
	Offers []offerdelivery.OfferResponse `json:"offers"`
}
type responseFavorites struct {
	Data dataFavorites `json:"data,omitempty"`
}

// Favorites handles http request to list the authenticated user's
// favorited offers. Favorites serialize like any other offer listing,
// with the price converted into every currency the seller accepts.
func (h *Handler) Favorites(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	record := gctx.MustGet(middleware.IdentityRecordKey).(identity.Record)

	offers, err := h.service.Favorites(ctx, record.UID)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	list, err := offerdelivery.NewOfferListResponse(offers)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseFavorites{Data: dataFavorites{list}})
}

func (h *Handler) writeError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrUserNotFound, domain.ErrCurrencyNotFound, domain.ErrOfferNotFound, identity.ErrIdentityNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrUserAlreadyExists:
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
