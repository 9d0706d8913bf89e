package controller

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService   *service.CourseService
	FeedbackService *service.FeedbackService
}

func NewCourseController(courseService *service.CourseService, feedbackService *service.FeedbackService) *CourseController {
	return &CourseController{
		CourseService:   courseService,
		FeedbackService: feedbackService,
	}
}

type LessonRequest struct {
	Title    string `json:"title" binding:"required"`
	VideoURL string `json:"videoUrl" binding:"required"`
}

// CourseRequest carries an optional ID; a known ID updates that course.
type CourseRequest struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title" binding:"required"`
	Price    float64         `json:"price"`
	Status   string          `json:"status" binding:"required"`
	Category string          `json:"category"`
	Lessons  []LessonRequest `json:"lessons"`
}

// Upsert godoc
// @Summary Create or update a course
// @Tags courses
// @Accept  json
// @Produce  json
// @Param   body body CourseRequest true "course data"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response "validation failure"
// @Failure 403 {object} util.Response "admin only"
// @Router /api/courses [post]
func (c *CourseController) Upsert(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lessons := make([]model.Lesson, 0, len(req.Lessons))
	for _, l := range req.Lessons {
		lessons = append(lessons, model.Lesson{Title: l.Title, VideoURL: l.VideoURL})
	}

	course, err := c.CourseService.Add(ctx.Request.Context(), &model.Course{
		ID:       req.ID,
		Title:    req.Title,
		Price:    req.Price,
		Status:   model.CourseStatus(req.Status),
		Category: req.Category,
		Lessons:  lessons,
	})
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// List godoc
// @Summary All courses
// @Tags courses
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	util.Success(ctx, c.CourseService.GetAll(ctx.Request.Context()))
}

// Get godoc
// @Summary One course by ID
// @Tags courses
// @Produce  json
// @Param   id path int true "course ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	id := util.MustParseID(ctx.Param("id"))
	course, ok := c.CourseService.GetByID(ctx.Request.Context(), id)
	if !ok {
		util.NotFound(ctx, util.ErrCourseNotFound.Error())
		return
	}
	util.Success(ctx, course)
}

// Rating godoc
// @Summary Average rating of a course
// @Description One-decimal mean of the course's feedback ratings; rating is null when there is none
// @Tags courses
// @Produce  json
// @Param   id path int true "course ID"
// @Success 200 {object} util.Response{data=object}
// @Router /api/courses/{id}/rating [get]
func (c *CourseController) Rating(ctx *gin.Context) {
	id := util.MustParseID(ctx.Param("id"))
	rating, ok := c.FeedbackService.GetCourseRating(ctx.Request.Context(), id)
	if !ok {
		util.Success(ctx, gin.H{"courseId": id, "rating": nil})
		return
	}
	util.Success(ctx, gin.H{"courseId": id, "rating": rating})
}

// Feedback godoc
// @Summary Feedback left on a course
// @Tags courses
// @Produce  json
// @Param   id path int true "course ID"
// @Success 200 {object} util.Response{data=[]model.Feedback}
// @Router /api/courses/{id}/feedback [get]
func (c *CourseController) Feedback(ctx *gin.Context) {
	id := util.MustParseID(ctx.Param("id"))
	util.Success(ctx, c.FeedbackService.GetByCourse(ctx.Request.Context(), id))
}
