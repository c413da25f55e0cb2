// Package handler contains the HTTP handlers of the partner CRM API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/erp/crm/internal/domain/shared"
	"github.com/erp/crm/internal/infrastructure/logger"
	"github.com/erp/crm/internal/interfaces/http/dto"
	"github.com/erp/crm/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response with data as the body
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends the standard error body
func (h *BaseHandler) Error(c *gin.Context, status int, message string, details ...string) {
	c.JSON(status, dto.NewErrorResponse(status, message, c.Request.URL.Path, details...))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string, details ...string) {
	h.Error(c, http.StatusBadRequest, message, details...)
}

// HandleError converts service errors to HTTP responses.
// Storage conflicts and unexpected errors never expose their cause; it is
// logged instead.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		switch domainErr.Code {
		case shared.CodeValidation:
			h.Error(c, status, dto.MsgValidationFailed, domainErr.Detail())
		case shared.CodeDuplicateEntry:
			logger.L(c.Request.Context()).Warn("Unique constraint violated", zap.Error(err))
			h.Error(c, status, dto.MsgDuplicateEntry)
		case shared.CodeDataIntegrity:
			logger.L(c.Request.Context()).Warn("Integrity constraint violated", zap.Error(err))
			h.Error(c, status, dto.MsgDataIntegrity)
		default:
			h.Error(c, status, domainErr.Message)
		}
		return
	}

	logger.L(c.Request.Context()).Error("Unexpected error", zap.Error(err))
	h.Error(c, http.StatusInternalServerError, dto.MsgInternal)
}

// BindJSON decodes and validates the request body into obj.
// On failure the error response is already written and false is returned.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.bindError(c, err, obj)
		return false
	}
	return true
}

// BindQuery decodes and validates query parameters into obj
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.bindError(c, err, obj)
		return false
	}
	return true
}

func (h *BaseHandler) bindError(c *gin.Context, err error, obj any) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		h.Error(c, http.StatusRequestEntityTooLarge, dto.MsgRequestTooLarge)
	case middleware.IsValidationError(err):
		h.BadRequest(c, dto.MsgValidationFailed, middleware.ValidationDetails(err, obj)...)
	default:
		h.BadRequest(c, dto.MsgMalformedRequest)
	}
}

// ParseID reads the positive numeric :id path parameter
func (h *BaseHandler) ParseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		h.BadRequest(c, dto.MsgInvalidID)
		return 0, false
	}
	return uint(id), true
}
