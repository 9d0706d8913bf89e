package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

// List godoc
// @Summary All categories
// @Tags categories
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /api/categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	util.Success(ctx, c.CategoryService.GetAll(ctx.Request.Context()))
}

// Sync godoc
// @Summary Derive categories from course data
// @Tags categories
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response "admin only"
// @Router /api/categories/sync [post]
func (c *CategoryController) Sync(ctx *gin.Context) {
	created, err := c.CategoryService.SyncFromCourses(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"created": created})
}
