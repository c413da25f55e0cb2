package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/erp/crm/internal/domain/shared"
	"github.com/erp/crm/internal/infrastructure/auth"
	"github.com/erp/crm/internal/infrastructure/config"
	"github.com/erp/crm/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService(expiration time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-with-enough-length",
		Issuer:                "partner-crm",
		AccessTokenExpiration: expiration,
	})
}

// newActorRouter echoes the actor seen by the handler and by the request context
func newActorRouter(cfg JWTMiddlewareConfig) *gin.Engine {
	router := gin.New()
	router.Use(JWTActor(cfg))
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"actor":     GetActor(c),
			"ctx_actor": shared.ActorFromContext(c.Request.Context()),
			"has_claim": GetJWTClaims(c) != nil,
		})
	}
	router.GET("/api/customers", handler)
	router.GET("/health", handler)
	return router
}

func serveWithAuth(router *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(AuthHeaderKey, authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTActor_Optional(t *testing.T) {
	svc := newJWTService(time.Hour)
	router := newActorRouter(JWTMiddlewareConfig{JWTService: svc})

	t.Run("anonymous request runs as system", func(t *testing.T) {
		w := serveWithAuth(router, "/api/customers", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"actor":"system","ctx_actor":"system","has_claim":false}`, w.Body.String())
	})

	t.Run("valid token supplies the actor", func(t *testing.T) {
		token, _, err := svc.GenerateAccessToken("user-42", "maria")
		require.NoError(t, err)

		w := serveWithAuth(router, "/api/customers", BearerPrefix+token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"actor":"maria","ctx_actor":"maria","has_claim":true}`, w.Body.String())
	})

	t.Run("subject is used without username", func(t *testing.T) {
		token, _, err := svc.GenerateAccessToken("user-42", "")
		require.NoError(t, err)

		w := serveWithAuth(router, "/api/customers", BearerPrefix+token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"actor":"user-42","ctx_actor":"user-42","has_claim":true}`, w.Body.String())
	})
}

func TestJWTActor_Rejections(t *testing.T) {
	svc := newJWTService(time.Hour)
	expiredToken, _, err := newJWTService(-time.Minute).GenerateAccessToken("user-1", "old")
	require.NoError(t, err)

	tests := []struct {
		name          string
		required      bool
		path          string
		authorization string
		wantStatus    int
		wantMessage   string
	}{
		{"required without token", true, "/api/customers", "", http.StatusUnauthorized, dto.MsgUnauthorized},
		{"required skips health", true, "/health", "", http.StatusOK, ""},
		{"wrong scheme", false, "/api/customers", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, msgInvalidAuthHeader},
		{"empty bearer", false, "/api/customers", "Bearer   ", http.StatusUnauthorized, msgInvalidAuthHeader},
		{"garbage token", false, "/api/customers", "Bearer not.a.jwt", http.StatusUnauthorized, msgInvalidToken},
		{"expired token", false, "/api/customers", BearerPrefix + expiredToken, http.StatusUnauthorized, msgExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newActorRouter(JWTMiddlewareConfig{
				JWTService: svc,
				Required:   tt.required,
				SkipPaths:  []string{"/health"},
			})

			w := serveWithAuth(router, tt.path, tt.authorization)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				resp := decodeError(t, w)
				assert.Equal(t, tt.wantMessage, resp.Message)
				assert.Equal(t, http.StatusUnauthorized, resp.Status)
				assert.Equal(t, tt.path, resp.Path)
			}
		})
	}
}
