package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flock/internal/models/request_models"
	"flock/internal/services"
	"flock/pkg/middleware"
	"flock/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Sign in a staff user
// @Description Authenticate with email/password and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// CreateUser godoc
// @Summary Create a staff user
// @Description Admin-only creation of Leader/Shepherd/Admin logins
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "User payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/users [post]
func (a *AuthController) CreateUser(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	var req request_models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.authService.CreateUser(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User created")
}

// Me godoc
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	profile, err := a.authService.Me(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile retrieved")
}
