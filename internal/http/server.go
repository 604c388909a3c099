// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"charterquote/internal/http/handlers"
	"charterquote/internal/http/middleware"
	"charterquote/internal/infra"
	"charterquote/internal/modules/quote"
)

type ServerDeps struct {
	Quote   *quote.Service
	Metrics *infra.Metrics
	Logger  zerolog.Logger
}

type Server struct {
	quote   *quote.Service
	metrics *infra.Metrics
	logger  zerolog.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		quote:   deps.Quote,
		metrics: deps.Metrics,
		logger:  deps.Logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(s.logger))
	if s.metrics != nil {
		r.Use(middleware.Metrics(s.metrics))
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
	r.Use(middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	catalogHandler := handlers.NewCatalogHandler(s.quote.Catalog())
	api.GET("/ports", catalogHandler.ListPorts)
	api.GET("/ports/:id/vessels", catalogHandler.PortVessels)
	api.GET("/vessels", catalogHandler.ListVessels)
	api.GET("/styles", catalogHandler.ListStyles)

	quoteHandler := handlers.NewQuoteHandler(s.quote)
	api.POST("/quotes", quoteHandler.Create)
	api.POST("/selection/reconcile", quoteHandler.Reconcile)

	return r
}
