// Package currencydelivery manages delivery layer of currencies.
package currencydelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"
	"github.com/piwegro/piwegro-api/pkg/web"
)

// Service provides service layer interface needed by currency delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package currencydelivery
type Service interface {
	List(ctx context.Context) ([]domain.Currency, error)
}

// Handler facilitates currency delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns currency handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

type dataCurrencies struct {
	Currencies []domain.Currency `json:"currencies"`
}
type responseCurrencies struct {
	Data dataCurrencies `json:"data,omitempty"`
}

// List handles http request to list all currencies.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	currencies, err := h.service.List(ctx)
	if err != nil {
		if err == domain.ErrCurrencyNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseCurrencies{Data: dataCurrencies{currencies}})
}
