// api/router/router.go

package router

import (
	"time"

	"github.com/aqari-dev/aqari/api/controller"
	"github.com/aqari-dev/aqari/api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(middleware.GroupAuthMiddleware([]string{"aqari-admin"}))

	api := router.Group("/api/v1")

	controllers.Role.RegisterRoutes(api)
	controllers.Plan.RegisterRoutes(api)
	controllers.Subscription.RegisterRoutes(api)

	return router
}
