package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dkwon/shoplab-backend/internal/app/service"
	"github.com/dkwon/shoplab-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// QuerylabController exposes paired slow/fast query shapes over the seeded
// dataset. Each pair answers the same question two ways so the cost
// difference is observable on real data volumes.
type QuerylabController struct {
	querylabService service.QuerylabService
}

func NewQuerylabController(querylabService service.QuerylabService) *QuerylabController {
	return &QuerylabController{
		querylabService: querylabService,
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func floatQuery(c *gin.Context, name string, fallback float64) float64 {
	value, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func (ctrl *QuerylabController) respond(c *gin.Context, result interface{}, err error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Not found",
			})
			return
		}
		log := middleware.GetLoggerFromContext(c)
		log.Error("Query shape failed", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Query failed",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// OrdersLazy runs the N+1 shape: one query per order for its items.
// GET /api/v1/querylab/orders/lazy?limit=50
func (ctrl *QuerylabController) OrdersLazy(c *gin.Context) {
	result, err := ctrl.querylabService.OrdersWithItemsLazy(intQuery(c, "limit", 50))
	ctrl.respond(c, result, err)
}

// OrdersEager runs the eager-load counterpart.
// GET /api/v1/querylab/orders/eager?limit=50
func (ctrl *QuerylabController) OrdersEager(c *gin.Context) {
	result, err := ctrl.querylabService.OrdersWithItemsEager(intQuery(c, "limit", 50))
	ctrl.respond(c, result, err)
}

// CustomersFull materializes complete customer rows.
// GET /api/v1/querylab/customers/full
func (ctrl *QuerylabController) CustomersFull(c *gin.Context) {
	result, err := ctrl.querylabService.CustomersFull()
	ctrl.respond(c, result, err)
}

// CustomersSummaries reads the projected summary with aggregated order counts.
// GET /api/v1/querylab/customers/summaries?limit=100
func (ctrl *QuerylabController) CustomersSummaries(c *gin.Context) {
	result, err := ctrl.querylabService.CustomerSummaries(intQuery(c, "limit", 100))
	ctrl.respond(c, result, err)
}

// ProductsScan filters with a non-sargable predicate.
// GET /api/v1/querylab/products/scan?q=ultra
func (ctrl *QuerylabController) ProductsScan(c *gin.Context) {
	fragment := c.DefaultQuery("q", "ultra")
	result, err := ctrl.querylabService.ProductsByNameScan(fragment)
	ctrl.respond(c, result, err)
}

// ProductsIndexed filters with the sargable counterpart.
// GET /api/v1/querylab/products/indexed?prefix=Ultra&min=10&max=500
func (ctrl *QuerylabController) ProductsIndexed(c *gin.Context) {
	prefix := c.DefaultQuery("prefix", "Ultra")
	result, err := ctrl.querylabService.ProductsByNameIndexed(
		prefix,
		floatQuery(c, "min", 10),
		floatQuery(c, "max", 500),
	)
	ctrl.respond(c, result, err)
}

// DashboardMonolithic loads a customer and all collections in one query tree.
// GET /api/v1/querylab/customers/:id/dashboard/monolithic
func (ctrl *QuerylabController) DashboardMonolithic(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}
	result, err := ctrl.querylabService.DashboardMonolithic(uint(id))
	ctrl.respond(c, result, err)
}

// DashboardSplit loads the same dashboard as separate per-collection queries.
// GET /api/v1/querylab/customers/:id/dashboard/split
func (ctrl *QuerylabController) DashboardSplit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}
	result, err := ctrl.querylabService.DashboardSplit(uint(id))
	ctrl.respond(c, result, err)
}

// ProductsFull reads whole product entities for a listing.
// GET /api/v1/querylab/products/full?limit=100
func (ctrl *QuerylabController) ProductsFull(c *gin.Context) {
	result, err := ctrl.querylabService.ProductsFull(intQuery(c, "limit", 100))
	ctrl.respond(c, result, err)
}

// ProductsProjected reads only the listing columns.
// GET /api/v1/querylab/products/projected?limit=100
func (ctrl *QuerylabController) ProductsProjected(c *gin.Context) {
	result, err := ctrl.querylabService.ProductsProjected(intQuery(c, "limit", 100))
	ctrl.respond(c, result, err)
}
