package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/megane-nerdo/skillhubnext/internal/middleware"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/services"
)

type CatalogHandler struct {
	BaseHandler
	catalog services.CatalogService
}

func NewCatalogHandler(base BaseHandler, catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, catalog: catalog}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/category")
	{
		categories.GET("", h.ListCategories)

		admin := categories.Group("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.POST("", h.CreateCategory)
			admin.PUT("/:id", h.UpdateCategory)
		}
	}

	industries := rg.Group("/industry")
	{
		industries.GET("", h.ListIndustries)
		industries.POST("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin), h.CreateIndustry)
	}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, categories)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req models.NameRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.catalog.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, category)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req models.NameRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.catalog.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, category)
}

func (h *CatalogHandler) ListIndustries(c *gin.Context) {
	industries, err := h.catalog.ListIndustries(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, industries)
}

func (h *CatalogHandler) CreateIndustry(c *gin.Context) {
	var req models.NameRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	industry, err := h.catalog.CreateIndustry(c.Request.Context(), req.Name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, industry)
}
