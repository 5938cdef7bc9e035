package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/peershare/lending-backend/internal/booking"
	bookingHttp "github.com/peershare/lending-backend/internal/booking/http"
	"github.com/peershare/lending-backend/internal/identity"
	"github.com/peershare/lending-backend/internal/item"
	itemHttp "github.com/peershare/lending-backend/internal/item/http"
	"github.com/peershare/lending-backend/internal/itemrequest"
	itemrequestHttp "github.com/peershare/lending-backend/internal/itemrequest/http"
	"github.com/peershare/lending-backend/internal/user"
	userHttp "github.com/peershare/lending-backend/internal/user/http"
)

// Config carries the services the router exposes.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	Logger         *zap.Logger
	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService itemrequest.Service
}

// NewRouter assembles middleware and registers routes for all modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	r.Use(cors.New(corsConfig))

	// identityMiddleware decodes the gateway-supplied caller id once.
	identityMiddleware := identity.Required()

	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	requestHandler := itemrequestHttp.NewHandler(cfg.RequestService)

	userHttp.RegisterRoutes(&r.RouterGroup, userHandler)
	itemHttp.RegisterRoutes(&r.RouterGroup, itemHandler, identityMiddleware)
	bookingHttp.RegisterRoutes(&r.RouterGroup, bookingHandler, identityMiddleware)
	itemrequestHttp.RegisterRoutes(&r.RouterGroup, requestHandler, identityMiddleware)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
