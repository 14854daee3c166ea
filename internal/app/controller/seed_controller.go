package controller

import (
	"errors"
	"net/http"

	"github.com/dkwon/shoplab-backend/internal/app/service"
	"github.com/dkwon/shoplab-backend/internal/middleware"
	"github.com/dkwon/shoplab-backend/internal/seed"
	"github.com/gin-gonic/gin"
)

type SeedController struct {
	seedService service.SeedService
}

func NewSeedController(seedService service.SeedService) *SeedController {
	return &SeedController{
		seedService: seedService,
	}
}

type SeedRequest struct {
	CustomerCount int `json:"customer_count" binding:"gte=0"`
	ProductScale  int `json:"product_scale" binding:"gte=0"`
}

// Run seeds the dataset; a no-op when customers already exist.
// POST /api/v1/seed
func (ctrl *SeedController) Run(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid seed request", map[string]interface{}{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid seed request",
		})
		return
	}

	summary, err := ctrl.seedService.Run(req.CustomerCount, req.ProductScale)
	if err != nil {
		if errors.Is(err, seed.ErrInvalidCount) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		log.Error("Seed run failed", err, map[string]interface{}{
			"customer_count": req.CustomerCount,
			"product_scale":  req.ProductScale,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	status := http.StatusCreated
	if summary.Skipped {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"summary": summary,
	})
}
