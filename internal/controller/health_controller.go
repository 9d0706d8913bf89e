package controller

import (
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	store kvstore.Store
}

func NewHealthController(store kvstore.Store) *HealthController {
	return &HealthController{store: store}
}

// HealthCheck godoc
// @Summary Liveness probe
// @Description Verifies the document store answers reads
// @Tags health
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if _, _, err := c.store.Get(ctx.Request.Context(), repository.KeyUsers); err != nil {
		util.Error(ctx, 503, "storage unavailable")
		return
	}
	util.Success(ctx, gin.H{"status": "ok"})
}
