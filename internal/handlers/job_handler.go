package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/megane-nerdo/skillhubnext/internal/middleware"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/services"
)

type JobHandler struct {
	BaseHandler
	jobs services.JobService
}

func NewJobHandler(base BaseHandler, jobs services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobs: jobs}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)

		employer := jobs.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin))
		{
			employer.POST("", h.CreateJob)
			employer.PUT("/:id", h.UpdateJob)
			employer.DELETE("/:id", h.DeleteJob)
		}
	}

	rg.GET("/my-jobs", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer), h.ListMyJobs)
}

// ListJobs godoc
// @Summary List all jobs, newest first
// @Tags jobs
// @Produce json
// @Success 200 {array} models.Job
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.ListJobs(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobs.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

// CreateJob godoc
// @Summary Post a new job
// @Description Requires an unexpired subscription; the gate is enforced here, not in the client.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateJobRequest true "Job data"
// @Success 201 {object} models.Job
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req models.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobs.CreateJob(c.Request.Context(), caller, &req, time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req models.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobs.UpdateJob(c.Request.Context(), caller, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	if err := h.jobs.DeleteJob(c.Request.Context(), caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) ListMyJobs(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	jobs, err := h.jobs.ListMyJobs(c.Request.Context(), caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, jobs)
}
