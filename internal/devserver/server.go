package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/five82/cumplesito/internal/logging"
)

// Options configure a Server.
type Options struct {
	Secret      string
	TokenTTL    time.Duration
	FrontendURL string
	Logger      logrus.FieldLogger
	// BcryptCost of zero uses bcrypt.DefaultCost.
	BcryptCost int
	HTTPClient *http.Client
	Now        func() time.Time
}

// Server is the development record store.
type Server struct {
	engine   *gin.Engine
	store    *Store
	tokens   Tokens
	scraper  *Scraper
	log      logrus.FieldLogger
	metrics  *metrics
	registry *prometheus.Registry
}

const userKey = "user_id"

// New builds a Server with its routes registered.
func New(opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	secret := opts.Secret
	if strings.TrimSpace(secret) == "" {
		secret = "cumplesito-dev-secret"
	}
	frontend := opts.FrontendURL
	if frontend == "" {
		frontend = "http://localhost:5173"
	}

	registry := prometheus.NewRegistry()
	s := &Server{
		engine:   gin.New(),
		store:    NewStore(frontend, opts.BcryptCost, opts.Now),
		tokens:   NewTokens(secret, opts.TokenTTL, opts.Now),
		scraper:  NewScraper(opts.HTTPClient),
		log:      log,
		metrics:  newMetrics(registry),
		registry: registry,
	}
	s.routes()
	return s
}

// Handler returns the http.Handler to serve.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Store exposes the backing store for seeding.
func (s *Server) Store() *Store {
	return s.store
}

// Tokens exposes the token issuer.
func (s *Server) Tokens() Tokens {
	return s.tokens
}

func (s *Server) routes() {
	s.engine.Use(gin.Recovery(), requestLogger(s.log), s.metrics.middleware())

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	base := s.engine.Group("/api")

	auth := base.Group("/auth")
	auth.POST("/register", s.handleRegister)
	auth.POST("/login", s.handleLogin)
	auth.GET("/me", s.requireUser(), s.handleMe)

	lists := base.Group("/wishlists")
	lists.GET("", s.requireUser(), s.handleListWishlists)
	lists.POST("", s.requireUser(), s.handleCreateWishlist)
	lists.GET("/:id", s.handleGetWishlist)
	lists.DELETE("/:id", s.requireUser(), s.handleDeleteWishlist)

	lists.POST("/:id/items", s.requireUser(), s.handleAddItem)
	lists.PUT("/:id/items/:item_id", s.requireUser(), s.handleUpdateItem)
	lists.DELETE("/:id/items/:item_id", s.requireUser(), s.handleDeleteItem)

	lists.POST("/:id/items/:item_id/purchase", s.handlePurchase)
	lists.DELETE("/:id/items/:item_id/purchase", s.handleUnpurchase)
	lists.POST("/:id/items/:item_id/reserve", s.handleReserve)
	lists.DELETE("/:id/items/:item_id/reserve", s.handleUnreserve)
	lists.POST("/:id/items/:item_id/contributions", s.handleContribute)

	base.POST("/metadata/extract", s.handleExtractMetadata)
}

func (s *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abortDetail(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		userID, err := s.tokens.Subject(strings.TrimSpace(token))
		if err != nil {
			abortDetail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		if _, err := s.store.User(userID); err != nil {
			abortDetail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		c.Set(userKey, userID)
		c.Next()
	}
}

// requestLogger writes one logrus line per request.
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"request_id": c.GetHeader("X-Request-ID"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency":    time.Since(started).Round(time.Microsecond),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("error", c.Errors.String())
		}
		switch {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}
