package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/piwegro/piwegro-api/internal/identity"
	"github.com/piwegro/piwegro-api/pkg/web"
)

// Keys used by the auth middleware.
const (
	AuthorizationHeaderKey  = "authorization"
	AuthorizationTypeBearer = "bearer"
	IdentityRecordKey       = "identity_record"
)

// AuthMiddleware verifies the bearer token against the identity provider
// and stores the resolved identity record in the gin context. Requests with
// missing or unverifiable tokens are rejected as anonymous.
func AuthMiddleware(provider identity.Provider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(AuthorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) < 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		authorizationType := strings.ToLower(fields[0])
		if authorizationType != AuthorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authorizationType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		record, err := provider.Verify(ctx.Request.Context(), fields[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(identity.ErrInvalidToken))
			return
		}

		ctx.Set(IdentityRecordKey, record)
		ctx.Next()
	}
}
