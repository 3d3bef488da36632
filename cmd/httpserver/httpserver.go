// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/piwegro/piwegro-api/internal/currencydelivery"
	"github.com/piwegro/piwegro-api/internal/currencyrepo"
	"github.com/piwegro/piwegro-api/internal/currencyservice"
	"github.com/piwegro/piwegro-api/internal/identity"
	"github.com/piwegro/piwegro-api/internal/imagedelivery"
	"github.com/piwegro/piwegro-api/internal/imagerepo"
	"github.com/piwegro/piwegro-api/internal/imageservice"
	"github.com/piwegro/piwegro-api/internal/messagedelivery"
	"github.com/piwegro/piwegro-api/internal/messagerepo"
	"github.com/piwegro/piwegro-api/internal/messageservice"
	"github.com/piwegro/piwegro-api/internal/middleware"
	"github.com/piwegro/piwegro-api/internal/offerdelivery"
	"github.com/piwegro/piwegro-api/internal/offerrepo"
	"github.com/piwegro/piwegro-api/internal/offerservice"
	"github.com/piwegro/piwegro-api/internal/reviewdelivery"
	"github.com/piwegro/piwegro-api/internal/reviewrepo"
	"github.com/piwegro/piwegro-api/internal/reviewservice"
	"github.com/piwegro/piwegro-api/internal/userdelivery"
	"github.com/piwegro/piwegro-api/internal/userrepo"
	"github.com/piwegro/piwegro-api/internal/userservice"
	"github.com/piwegro/piwegro-api/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	currencyRepo := currencyrepo.NewRepoPGS(conn)
	userRepo := userrepo.NewRepoPGS(conn)
	imageRepo := imagerepo.NewRepoPGS(conn)
	offerRepo := offerrepo.NewRepoPGS(conn, userRepo, currencyRepo, imageRepo)
	messageRepo := messagerepo.NewRepoPGS(conn, userRepo)
	reviewRepo := reviewrepo.NewRepoPGS(conn, userRepo)

	provider, err := identity.NewJWTProvider(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create identity provider")
	}

	currencyService := currencyservice.New(currencyRepo)
	imageService := imageservice.New(imageRepo, config.ImageOutput)
	offerService := offerservice.New(offerRepo, userRepo, currencyRepo, imageRepo)
	userService := userservice.New(userRepo, currencyRepo, offerRepo, provider, config.DefaultCurrencySymbol)
	messageService := messageservice.New(messageRepo, userRepo)
	reviewService := reviewservice.New(reviewRepo, userRepo)

	currencyHandler := currencydelivery.NewHandler(currencyService)
	imageHandler := imagedelivery.NewHandler(imageService)
	offerHandler := offerdelivery.NewHandler(offerService)
	userHandler := userdelivery.NewHandler(userService)
	messageHandler := messagedelivery.NewHandler(messageService)
	reviewHandler := reviewdelivery.NewHandler(reviewService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/health", func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.GET("/currencies", currencyHandler.List)

	engine.GET("/offers", offerHandler.ListAll)
	engine.GET("/offers/search", offerHandler.Search)
	engine.GET("/offers/:id", offerHandler.Get)

	engine.GET("/users/:uid", userHandler.Get)
	engine.GET("/users/:uid/offers", offerHandler.ListBySeller)
	engine.GET("/users/:uid/reviews", reviewHandler.ListByReviewee)

	engine.GET("/images/:id", imageHandler.Get)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(provider))

	authRoutes.POST("/users", userHandler.Create)
	authRoutes.POST("/me/currencies", userHandler.AddAcceptedCurrency)
	authRoutes.PUT("/me/currencies", userHandler.ReplaceAcceptedCurrencies)
	authRoutes.GET("/me/favorites", userHandler.Favorites)
	authRoutes.POST("/me/favorites/:id", userHandler.AddFavorite)
	authRoutes.DELETE("/me/favorites/:id", userHandler.RemoveFavorite)

	authRoutes.POST("/offers", offerHandler.Create)

	authRoutes.POST("/images", imageHandler.Upload)

	authRoutes.POST("/messages", messageHandler.Send)
	authRoutes.GET("/messages", messageHandler.ListByUser)
	authRoutes.GET("/messages/recipients", messageHandler.Recipients)
	authRoutes.GET("/messages/with/:uid", messageHandler.ListBetween)

	authRoutes.PUT("/reviews/:uid", reviewHandler.Put)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
