package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/megane-nerdo/skillhubnext/internal/middleware"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/services"
)

type ApplicationHandler struct {
	BaseHandler
	apps services.ApplicationService
}

func NewApplicationHandler(base BaseHandler, apps services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, apps: apps}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/apply/:id",
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRoleJobSeeker),
		h.Apply,
	)
	rg.GET("/my-applications",
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRoleJobSeeker),
		h.ListMyApplications,
	)

	apps := rg.Group("/application", middleware.AuthMiddleware())
	{
		apps.GET("/:id", h.GetApplication)
		apps.PATCH("/:id/shortlist",
			middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin),
			h.SetShortlist,
		)
	}

	rg.GET("/jobs/:id/applications",
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin),
		h.ListApplicationsForJob,
	)
}

// Apply godoc
// @Summary Apply to a job
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body models.ApplyRequest true "Application data"
// @Success 201 {object} models.Application
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /apply/{id} [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req models.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.apps.Apply(c.Request.Context(), caller, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, app)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	app, err := h.apps.GetApplication(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, app)
}

func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	apps, err := h.apps.ListMyApplications(c.Request.Context(), caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, apps)
}

func (h *ApplicationHandler) ListApplicationsForJob(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	apps, err := h.apps.ListApplicationsForJob(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, apps)
}

// SetShortlist godoc
// @Summary Shortlist or unshortlist an applicant
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body models.ShortlistRequest true "Shortlist flag"
// @Success 200 {object} models.Application
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /application/{id}/shortlist [patch]
func (h *ApplicationHandler) SetShortlist(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req models.ShortlistRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.apps.SetShortlist(c.Request.Context(), caller, c.Param("id"), *req.IsShortlisted)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, app)
}
