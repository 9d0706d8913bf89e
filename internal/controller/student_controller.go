package controller

import (
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService *service.StudentService
}

func NewStudentController(studentService *service.StudentService) *StudentController {
	return &StudentController{StudentService: studentService}
}

type EnrollRequest struct {
	CourseID int64 `json:"courseId" binding:"required"`
}

// Enroll godoc
// @Summary Enroll the current user in a course
// @Tags student
// @Accept  json
// @Produce  json
// @Param   body body EnrollRequest true "course to enroll in"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response "user not found"
// @Failure 409 {object} util.Response "already enrolled"
// @Router /api/enroll [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := middleware.CurrentUser(ctx)
	enrollment, err := c.StudentService.Enroll(ctx.Request.Context(), user.ID, req.CourseID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, enrollment)
}

// CompleteLesson godoc
// @Summary Mark a lesson of an enrolled course completed
// @Description Lessons are addressed by position within the course; progress is recomputed as a percentage
// @Tags student
// @Produce  json
// @Param   id path int true "course ID"
// @Param   idx path int true "lesson index (0-based)"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/lessons/{idx}/complete [post]
func (c *StudentController) CompleteLesson(ctx *gin.Context) {
	courseID := util.MustParseID(ctx.Param("id"))
	lessonIdx := int(util.MustParseID(ctx.Param("idx")))

	user := middleware.CurrentUser(ctx)
	enrollment, err := c.StudentService.CompleteLesson(ctx.Request.Context(), user.ID, courseID, lessonIdx)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, enrollment)
}

// ToggleWishlist godoc
// @Summary Add or remove a course from the current user's wishlist
// @Tags student
// @Produce  json
// @Param   courseId path int true "course ID"
// @Success 200 {object} util.Response{data=object}
// @Router /api/wishlist/{courseId} [post]
func (c *StudentController) ToggleWishlist(ctx *gin.Context) {
	courseID := util.MustParseID(ctx.Param("courseId"))

	user := middleware.CurrentUser(ctx)
	wishlisted, err := c.StudentService.ToggleWishlist(ctx.Request.Context(), user.ID, courseID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"courseId": courseID, "wishlisted": wishlisted})
}
