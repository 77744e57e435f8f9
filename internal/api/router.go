package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/shareit-backend/internal/booking/http"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	itemHttp "github.com/nekogravitycat/shareit-backend/internal/item/http"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	requestHttp "github.com/nekogravitycat/shareit-backend/internal/itemrequest/http"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/logging"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/metrics"
	"github.com/nekogravitycat/shareit-backend/internal/user"
	userHttp "github.com/nekogravitycat/shareit-backend/internal/user/http"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds the services and settings the router is assembled from.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       zerolog.Logger
	DB           Pinger

	UserService    user.Service
	ItemService    item.Service
	RequestService itemrequest.Service
	BookingService booking.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, logging, metrics) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	// - logging: Attaches a request-scoped logger and logs one line per request.
	// - metrics: Counts requests and latency per route.
	r.Use(gin.Recovery(), logging.Middleware(cfg.Logger), metrics.Middleware())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", auth.UserIDHeader}
	r.Use(cors.New(corsConfig))

	r.GET("/metrics", metrics.Handler())
	r.GET("/healthz", healthHandler(cfg.DB))

	// actorMiddleware: Requires the X-Sharer-User-Id header on every domain route but /users.
	actorMiddleware := auth.ActorRequired()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler, actorMiddleware)
		requestHttp.RegisterRoutes(root, requestHandler, actorMiddleware)
		bookingHttp.RegisterRoutes(root, bookingHandler, actorMiddleware)
	}

	return r
}

func healthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("health check failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
