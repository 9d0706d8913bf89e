package controller

import (
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	FeedbackService *service.FeedbackService
}

func NewFeedbackController(feedbackService *service.FeedbackService) *FeedbackController {
	return &FeedbackController{FeedbackService: feedbackService}
}

type FeedbackRequest struct {
	CourseID int64  `json:"courseId" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

// Create godoc
// @Summary Leave feedback on a course
// @Description One feedback entry per user and course; rating must be 1-5
// @Tags feedback
// @Accept  json
// @Produce  json
// @Param   body body FeedbackRequest true "feedback"
// @Success 201 {object} util.Response{data=model.Feedback}
// @Failure 400 {object} util.Response "validation failure"
// @Failure 409 {object} util.Response "feedback already submitted"
// @Router /api/feedback [post]
func (c *FeedbackController) Create(ctx *gin.Context) {
	var req FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := middleware.CurrentUser(ctx)
	feedback, err := c.FeedbackService.Add(ctx.Request.Context(), &model.Feedback{
		UserID:   user.ID,
		CourseID: req.CourseID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, feedback)
}

// Mine godoc
// @Summary Feedback left by the current user
// @Tags feedback
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Feedback}
// @Router /api/users/me/feedback [get]
func (c *FeedbackController) Mine(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	util.Success(ctx, c.FeedbackService.GetByUser(ctx.Request.Context(), user.ID))
}
