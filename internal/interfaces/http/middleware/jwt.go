package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/erp/crm/internal/domain/shared"
	"github.com/erp/crm/internal/infrastructure/auth"
	"github.com/erp/crm/internal/infrastructure/logger"
	"github.com/erp/crm/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	ActorKey      = "actor"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// Authentication failure messages
const (
	msgInvalidAuthHeader = "Invalid authorization header format"
	msgInvalidToken      = "Invalid token"
	msgExpiredToken      = "Token has expired"
)

// JWTMiddlewareConfig holds configuration for the actor middleware
type JWTMiddlewareConfig struct {
	// JWTService validates bearer tokens
	JWTService *auth.JWTService
	// Required rejects requests without a token; otherwise they run as the system actor
	Required bool
	// SkipPaths never require a token
	SkipPaths []string
	Logger    *zap.Logger
}

// JWTActor resolves the audit actor from an optional bearer token.
// A present but invalid token is always rejected with 401.
func JWTActor(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if header == "" {
			if _, ok := skip[c.Request.URL.Path]; cfg.Required && !ok {
				unauthorized(c, log, auth.ErrInvalidToken, dto.MsgUnauthorized)
				return
			}
			c.Set(ActorKey, shared.SystemActor)
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(header, BearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			unauthorized(c, log, auth.ErrInvalidToken, msgInvalidAuthHeader)
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(strings.TrimSpace(token))
		if err != nil {
			msg := msgInvalidToken
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = msgExpiredToken
			}
			unauthorized(c, log, err, msg)
			return
		}

		actor := claims.Actor()
		c.Set(JWTClaimsKey, claims)
		c.Set(ActorKey, actor)

		ctx := shared.WithActor(c.Request.Context(), actor)
		ctx, _ = logger.WithUserID(ctx, logger.FromContext(ctx), claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		log.Debug("JWT authentication successful",
			zap.String("subject", claims.Subject),
			zap.String("actor", actor),
		)
		c.Next()
	}
}

func unauthorized(c *gin.Context, log *zap.Logger, err error, message string) {
	log.Warn("JWT authentication failed",
		zap.Error(err),
		zap.String("message", message),
		zap.String("path", c.Request.URL.Path),
	)
	AbortWithError(c, http.StatusUnauthorized, message)
}

// GetJWTClaims retrieves JWT claims from gin.Context, or nil for anonymous requests
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(JWTClaimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetActor returns the actor resolved by JWTActor
func GetActor(c *gin.Context) string {
	if actor := c.GetString(ActorKey); actor != "" {
		return actor
	}
	return shared.SystemActor
}
