package controller

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	UserService *service.UserService
}

func NewAuthController(userService *service.UserService) *AuthController {
	return &AuthController{UserService: userService}
}

// RegisterRequest defines the registration payload
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Validates the submitted data (including the disposable email domain blocklist) and creates the account
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "registration data"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "validation failure"
// @Failure 409 {object} util.Response "email already registered"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Register(ctx.Request.Context(), &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.UserRole(req.Role),
	})
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log a user in
// @Description Matches email and password against the users table and stores the session pointer
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "credentials"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response "unknown account or wrong password"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// Session godoc
// @Summary Current logged-in user
// @Description Returns the live user record the session pointer resolves to
// @Tags auth
// @Produce  json
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	user, ok := c.UserService.GetLoggedIn(ctx.Request.Context())
	if !ok {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}

// Logout godoc
// @Summary Log out
// @Description Clears the session pointer; the response carries the login entry point for the caller to navigate to
// @Tags auth
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	redirect, err := c.UserService.Logout(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"redirect": redirect})
}
