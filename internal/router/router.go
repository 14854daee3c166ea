package router

import (
	"github.com/dkwon/shoplab-backend/config"
	"github.com/dkwon/shoplab-backend/internal/app/controller"
	"github.com/dkwon/shoplab-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	seedController     *controller.SeedController
	querylabController *controller.QuerylabController
	config             *config.Config
}

func NewRouter(
	seedController *controller.SeedController,
	querylabController *controller.QuerylabController,
	cfg *config.Config,
) *Router {
	return &Router{
		seedController:     seedController,
		querylabController: querylabController,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "SHOPLAB API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/seed", r.seedController.Run)

		querylab := v1.Group("/querylab")
		{
			querylab.GET("/orders/lazy", r.querylabController.OrdersLazy)
			querylab.GET("/orders/eager", r.querylabController.OrdersEager)
			querylab.GET("/customers/full", r.querylabController.CustomersFull)
			querylab.GET("/customers/summaries", r.querylabController.CustomersSummaries)
			querylab.GET("/customers/:id/dashboard/monolithic", r.querylabController.DashboardMonolithic)
			querylab.GET("/customers/:id/dashboard/split", r.querylabController.DashboardSplit)
			querylab.GET("/products/scan", r.querylabController.ProductsScan)
			querylab.GET("/products/indexed", r.querylabController.ProductsIndexed)
			querylab.GET("/products/full", r.querylabController.ProductsFull)
			querylab.GET("/products/projected", r.querylabController.ProductsProjected)
		}
	}

	return router
}
