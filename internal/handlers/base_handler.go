package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/megane-nerdo/skillhubnext/internal/middleware"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/validator"
	"github.com/megane-nerdo/skillhubnext/pkg/apperrors"
)

// BaseHandler carries the pieces every handler needs.
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{Validator: v}
}

// BindAndValidateJSON binds the request body into obj and runs validation.
// On failure it writes the 400 response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}

	if err := h.Validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}

	return true
}

// Caller returns the authenticated caller or writes a 401 and returns false.
func (h *BaseHandler) Caller(c *gin.Context) (models.Caller, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Unauthorized"))
		return models.Caller{}, false
	}
	return caller, true
}

// HandleServiceError renders a service error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// OK writes a 200 with the given payload.
func (h *BaseHandler) OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 with the given payload.
func (h *BaseHandler) Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}
