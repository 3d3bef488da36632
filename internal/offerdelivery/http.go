// Package offerdelivery manages delivery layer of offers.
package offerdelivery

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

// Service provides service layer interface needed by offer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package offerdelivery
type Service interface {
	CreateWithSellerID(ctx context.Context, title, description, currencySymbol string,
		amount int64, sellerUID string, imageIDs []int64, location string) (domain.Offer, error)
	Add(ctx context.Context, offer *domain.Offer) error
	Get(ctx context.Context, id int64) (domain.Offer, error)
	ListAll(ctx context.Context) ([]domain.Offer, error)
	ListBySeller(ctx context.Context, uid string) ([]domain.Offer, error)
	Search(ctx context.Context, query string, page int) ([]domain.Offer, error)
}

// Handler facilitates offer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns offer handler.
func NewHandler(os Service) Handler {
	return Handler{service: os}
}

// ImageResponse carries the rendition paths of a stored image.
type ImageResponse struct {
	ID        int64  `json:"id"`
	Original  string `json:"original"`
	Preview   string `json:"preview"`
	Thumbnail string `json:"thumbnail"`
}

// OfferResponse is the offer shape shared by every endpoint that returns
// offers, favorites included.
type OfferResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Prices      []domain.Price  `json:"prices"`
	SellerUID   string          `json:"seller_uid"`
	Images      []ImageResponse `json:"images"`
	Location    string          `json:"location"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewOfferResponse converts the offer price into every currency the seller
// accepts, so clients can show the price in any of them.
func NewOfferResponse(o domain.Offer) (OfferResponse, error) {
	prices := []domain.Price{}

	for _, currency := range o.Seller.AcceptedCurrencies {
		converted, err := o.Price.ConvertTo(currency)
		if err != nil {
			return OfferResponse{}, err
		}

		prices = append(prices, converted)
	}

	images := []ImageResponse{}
	for _, img := range o.Images {
		images = append(images, ImageResponse{
			ID:        img.ID,
			Original:  img.Original,
			Preview:   img.Preview,
			Thumbnail: img.Thumbnail,
		})
	}

	return OfferResponse{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Prices:      prices,
		SellerUID:   o.Seller.UID,
		Images:      images,
		Location:    o.Location,
		CreatedAt:   o.CreatedAt,
	}, nil
}

// NewOfferListResponse builds the response for a list of offers.
func NewOfferListResponse(offers []domain.Offer) ([]OfferResponse, error) {
	list := []OfferResponse{}

	for _, o := range offers {
		res, err := NewOfferResponse(o)
		if err != nil {
			return nil, err
		}

		list = append(list, res)
	}

	return list, nil
}

type data struct {
	Offer OfferResponse `json:"offer"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type dataOffers struct {
	Offers []OfferResponse `json:"offers"`
}
type responseOffers struct {
	Data dataOffers `json:"data,omitempty"`
}

type createRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Currency    string  `json:"currency" binding:"required"`
	Amount      int64   `json:"amount" binding:"min=0"`
	ImageIDs    []int64 `json:"image_ids"`
	Location    string  `json:"location" binding:"required"`
}

// Create handles http request to create and persist an offer.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
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

	offer, err := h.service.CreateWithSellerID(ctx,
		req.Title, req.Description, req.Currency, req.Amount, record.UID, req.ImageIDs, req.Location)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	if err := h.service.Add(ctx, &offer); err != nil {
		h.writeError(gctx, err)
		return
	}

	res, err := NewOfferResponse(offer)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{res}})
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a single offer.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	offer, err := h.service.Get(ctx, req.ID)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	res, err := NewOfferResponse(offer)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{res}})
}

// ListAll handles http request to list the whole catalog.
func (h *Handler) ListAll(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	offers, err := h.service.ListAll(ctx)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	list, err := NewOfferListResponse(offers)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseOffers{Data: dataOffers{list}})
}

type listBySellerRequest struct {
	UID string `uri:"uid" binding:"required"`
}

// ListBySeller handles http request to list the offers of a seller.
func (h *Handler) ListBySeller(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listBySellerRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	offers, err := h.service.ListBySeller(ctx, req.UID)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	list, err := NewOfferListResponse(offers)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseOffers{Data: dataOffers{list}})
}

type searchRequest struct {
	Query string `form:"query"`
	Page  int    `form:"page" binding:"min=0"`
}

// Search handles http request to fuzzy search offers by title.
func (h *Handler) Search(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req searchRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	offers, err := h.service.Search(ctx, req.Query, req.Page)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	list, err := NewOfferListResponse(offers)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseOffers{Data: dataOffers{list}})
}

func (h *Handler) writeError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrOfferNotFound, domain.ErrUserNotFound, domain.ErrCurrencyNotFound, domain.ErrImageNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrImageNotSaved, domain.ErrOfferAlreadyAdded:
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
