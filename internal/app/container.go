package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/peershare/lending-backend/internal/api"
	"github.com/peershare/lending-backend/internal/booking"
	"github.com/peershare/lending-backend/internal/config"
	"github.com/peershare/lending-backend/internal/item"
	"github.com/peershare/lending-backend/internal/itemrequest"
	"github.com/peershare/lending-backend/internal/pkg/metrics"
	"github.com/peershare/lending-backend/internal/user"
)

// Container wires repositories, services and the HTTP router together.
type Container struct {
	Router *gin.Engine

	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService itemrequest.Service
}

// NewContainer builds the full dependency graph from shared resources.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, log *zap.Logger) *Container {
	m := metrics.New(prometheus.DefaultRegisterer)

	userRepo := user.NewPgxRepository(pool)
	itemRepo := item.NewPgxRepository(pool)
	bookingRepo := booking.NewPgxRepository(pool)
	requestRepo := itemrequest.NewPgxRepository(pool)

	userService := user.NewService(userRepo)
	requestService := itemrequest.NewService(requestRepo, userService)

	projector := booking.NewProjector(bookingRepo)
	itemService := item.NewService(itemRepo, userService, requestService, projector, log, m)
	bookingService := booking.NewService(bookingRepo, userService, itemService, log, m)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         log,
		UserService:    userService,
		ItemService:    itemService,
		BookingService: bookingService,
		RequestService: requestService,
	})

	return &Container{
		Router:         router,
		UserService:    userService,
		ItemService:    itemService,
		BookingService: bookingService,
		RequestService: requestService,
	}
}
