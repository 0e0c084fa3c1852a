package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/megane-nerdo/skillhubnext/internal/middleware"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/services"
)

type UserHandler struct {
	BaseHandler
	users services.UserService
}

func NewUserHandler(base BaseHandler, users services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, users: users}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile", middleware.AuthMiddleware())
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}

	employers := rg.Group("/employer", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		employers.GET("", h.ListEmployers)
		employers.GET("/:id", h.GetEmployer)
		employers.PUT("/:id", h.UpdateEmployer)
		employers.DELETE("", h.DeleteEmployer)
	}

	seekers := rg.Group("/job-seeker", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		seekers.GET("", h.ListJobSeekers)
		seekers.DELETE("", h.DeleteJobSeeker)
	}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.ProfileResponse
// @Router /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.users.UpdateProfile(c.Request.Context(), caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}

func (h *UserHandler) ListEmployers(c *gin.Context) {
	employers, err := h.users.ListEmployers(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, employers)
}

func (h *UserHandler) GetEmployer(c *gin.Context) {
	employer, err := h.users.GetEmployer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, employer)
}

func (h *UserHandler) UpdateEmployer(c *gin.Context) {
	var req models.UpdateEmployerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	employer, err := h.users.UpdateEmployerByAdmin(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, employer)
}

// DeleteEmployer takes the target id in the body, as the original admin
// panel sends it.
func (h *UserHandler) DeleteEmployer(c *gin.Context) {
	var req models.DeleteByIDRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.users.DeleteEmployer(c.Request.Context(), req.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Employer deleted"})
}

func (h *UserHandler) ListJobSeekers(c *gin.Context) {
	seekers, err := h.users.ListJobSeekers(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, seekers)
}

func (h *UserHandler) DeleteJobSeeker(c *gin.Context) {
	var req models.DeleteByIDRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.users.DeleteJobSeeker(c.Request.Context(), req.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Job seeker deleted"})
}
