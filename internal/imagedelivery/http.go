// Package imagedelivery manages delivery layer of images.
package imagedelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"
	"github.com/piwegro/piwegro-api/pkg/web"
)

// Service provides service layer interface needed by image delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package imagedelivery
type Service interface {
	Get(ctx context.Context, id int64) (domain.Image, error)
	Upload(ctx context.Context, b64 string) (domain.Image, error)
}

// Handler facilitates image delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns image handler.
func NewHandler(is Service) Handler {
	return Handler{service: is}
}

type imageResponse struct {
	ID        int64  `json:"id"`
	Original  string `json:"original"`
	Preview   string `json:"preview"`
	Thumbnail string `json:"thumbnail"`
}

type data struct {
	Image imageResponse `json:"image"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

func newImageResponse(img domain.Image) imageResponse {
	return imageResponse{
		ID:        img.ID,
		Original:  img.Original,
		Preview:   img.Preview,
		Thumbnail: img.Thumbnail,
	}
}

type uploadRequest struct {
	Image string `json:"image" binding:"required"`
}

// Upload handles http request to upload a base64 encoded image.
func (h *Handler) Upload(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req uploadRequest
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

	img, err := h.service.Upload(ctx, req.Image)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{newImageResponse(img)}})
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a saved image.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	img, err := h.service.Get(ctx, req.ID)
	if err != nil {
		h.writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{newImageResponse(img)}})
}

func (h *Handler) writeError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrImageNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrImageDecoding:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
