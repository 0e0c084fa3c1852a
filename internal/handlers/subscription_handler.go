package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/megane-nerdo/skillhubnext/internal/middleware"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/services"
)

type SubscriptionHandler struct {
	BaseHandler
	subs services.SubscriptionService
}

func NewSubscriptionHandler(base BaseHandler, subs services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{BaseHandler: base, subs: subs}
}

func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	plans := rg.Group("/subscription-plan")
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:id", h.GetPlan)

		admin := plans.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.POST("", h.CreatePlan)
			admin.PUT("/:id", h.UpdatePlan)
			admin.DELETE("/:id", h.DeletePlan)
		}
	}

	subs := rg.Group("/subscription", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer))
	{
		subs.POST("", h.Purchase)
		subs.GET("", h.ListMySubscriptions)
		subs.GET("/check", h.CheckEntitlement)
	}
}

// ListPlans godoc
// @Summary List subscription plans
// @Tags subscription
// @Produce json
// @Success 200 {array} models.SubscriptionPlan
// @Router /subscription-plan [get]
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.subs.ListPlans(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, plans)
}

func (h *SubscriptionHandler) GetPlan(c *gin.Context) {
	plan, err := h.subs.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, plan)
}

// CreatePlan godoc
// @Summary Create a subscription plan
// @Tags subscription
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreatePlanRequest true "Plan data"
// @Success 201 {object} models.SubscriptionPlan
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /subscription-plan [post]
func (h *SubscriptionHandler) CreatePlan(c *gin.Context) {
	var req models.CreatePlanRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	plan, err := h.subs.CreatePlan(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, plan)
}

func (h *SubscriptionHandler) UpdatePlan(c *gin.Context) {
	var req models.UpdatePlanRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	plan, err := h.subs.UpdatePlan(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, plan)
}

func (h *SubscriptionHandler) DeletePlan(c *gin.Context) {
	if err := h.subs.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Plan deleted"})
}

// Purchase godoc
// @Summary Purchase a subscription
// @Tags subscription
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PurchaseSubscriptionRequest true "Plan to purchase"
// @Success 200 {object} models.Subscription
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /subscription [post]
func (h *SubscriptionHandler) Purchase(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req models.PurchaseSubscriptionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	sub, err := h.subs.Purchase(c.Request.Context(), caller, req.PlanID, time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, sub)
}

func (h *SubscriptionHandler) ListMySubscriptions(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	subs, err := h.subs.ListMySubscriptions(c.Request.Context(), caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, subs)
}

// CheckEntitlement godoc
// @Summary Check whether the caller may post jobs right now
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.EntitlementResult
// @Router /subscription/check [get]
func (h *SubscriptionHandler) CheckEntitlement(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	result, err := h.subs.CheckMyEntitlement(c.Request.Context(), caller, time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, result)
}
