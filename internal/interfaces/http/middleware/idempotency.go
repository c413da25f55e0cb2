package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/erp/crm/internal/domain/shared"
	"github.com/erp/crm/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader is the client-chosen key of a create request
const IdempotencyKeyHeader = "Idempotency-Key"

// MaxIdempotencyKeyLength bounds the header value
const MaxIdempotencyKeyLength = 255

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Store  shared.IdempotencyStore
	TTL    time.Duration
	Logger *zap.Logger
}

// Idempotency rejects a repeated Idempotency-Key on a route with 409.
// Requests without the header pass through. A key is released again when the
// request fails so the client can retry it. Store errors are logged and the
// request proceeds unguarded.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.Store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = shared.DefaultIdempotencyConfig().TTL
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if len(key) > MaxIdempotencyKeyLength {
			AbortWithError(c, http.StatusBadRequest, dto.MsgMalformedRequest,
				IdempotencyKeyHeader+": must not exceed "+strconv.Itoa(MaxIdempotencyKeyLength)+" characters")
			return
		}

		scoped := c.Request.Method + " " + routePattern(c) + " " + key
		ctx := c.Request.Context()

		reserved, err := cfg.Store.Reserve(ctx, scoped, ttl)
		if err != nil {
			log.Warn("Idempotency store unavailable, skipping check",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.Next()
			return
		}
		if !reserved {
			AbortWithError(c, http.StatusConflict, dto.MsgDuplicateRequest)
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := cfg.Store.Release(context.WithoutCancel(ctx), scoped); err != nil {
				log.Warn("Failed to release idempotency key", zap.Error(err))
			}
		}
	}
}
