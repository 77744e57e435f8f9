package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/api"
	"github.com/nekogravitycat/shareit-backend/internal/booking"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Logger       zerolog.Logger

	// Redis enables the item cache when non-nil.
	Redis        *redis.Client
	ItemCacheTTL time.Duration
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Repositories the item module looks things up in
	requestRepo := itemrequest.NewPgxRepository(cfg.DBPool)
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)

	// Item Module
	var itemRepo item.Repository = item.NewPgxRepository(cfg.DBPool)
	if cfg.Redis != nil {
		itemRepo = item.NewCachedRepository(itemRepo, cfg.Redis, cfg.ItemCacheTTL)
	}
	itemService := item.NewService(itemRepo, userService, bookingRepo, requestRepo)

	// Item Request Module
	requestService := itemrequest.NewService(requestRepo, userService, itemService)

	// Booking Module
	bookingService := booking.NewService(bookingRepo, userService, itemService)

	// API Router Config
	routerParams := api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         cfg.Logger,
		UserService:    userService,
		ItemService:    itemService,
		RequestService: requestService,
		BookingService: bookingService,
	}
	if cfg.DBPool != nil {
		routerParams.DB = cfg.DBPool
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router: router,
	}
}
