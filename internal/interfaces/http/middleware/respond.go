// Package middleware provides HTTP middleware for the partner CRM API.
package middleware

import (
	"github.com/erp/crm/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AbortWithError stops the chain and writes the standard error body
func AbortWithError(c *gin.Context, status int, message string, details ...string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, message, c.Request.URL.Path, details...))
}
