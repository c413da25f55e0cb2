package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/erp/crm/internal/infrastructure/cache"
	"github.com/erp/crm/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type failingStore struct{}

func (failingStore) Reserve(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("connection refused")
}
func (failingStore) Release(context.Context, string) error { return nil }
func (failingStore) Close() error                          { return nil }

// newIdempotentRouter counts handler calls; a body of "fail" answers 400
func newIdempotentRouter(cfg IdempotencyConfig, calls *int) *gin.Engine {
	router := gin.New()
	router.Use(Idempotency(cfg))
	handler := func(c *gin.Context) {
		*calls++
		body, _ := io.ReadAll(c.Request.Body)
		if string(body) == "fail" {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusCreated)
	}
	router.POST("/api/customers", handler)
	router.POST("/api/suppliers", handler)
	router.GET("/api/customers", handler)
	return router
}

func send(router *gin.Engine, method, path, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newMemoryStore(t *testing.T) *cache.InMemoryIdempotencyStore {
	t.Helper()
	store := cache.NewInMemoryIdempotencyStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestIdempotency_RejectsRepeatedKey(t *testing.T) {
	calls := 0
	router := newIdempotentRouter(IdempotencyConfig{Store: newMemoryStore(t), TTL: time.Hour}, &calls)

	assert.Equal(t, http.StatusCreated, send(router, http.MethodPost, "/api/customers", "k-1", "").Code)

	w := send(router, http.MethodPost, "/api/customers", "k-1", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.MsgDuplicateRequest, resp.Message)
	assert.Equal(t, http.StatusConflict, resp.Status)

	// Keys are scoped per route
	assert.Equal(t, http.StatusCreated, send(router, http.MethodPost, "/api/suppliers", "k-1", "").Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotency_PassThrough(t *testing.T) {
	calls := 0
	router := newIdempotentRouter(IdempotencyConfig{Store: newMemoryStore(t)}, &calls)

	assert.Equal(t, http.StatusCreated, send(router, http.MethodPost, "/api/customers", "", "").Code)
	assert.Equal(t, http.StatusCreated, send(router, http.MethodPost, "/api/customers", "", "").Code)
	// Only POST is guarded
	assert.Equal(t, http.StatusCreated, send(router, http.MethodGet, "/api/customers", "k-get", "").Code)
	assert.Equal(t, http.StatusCreated, send(router, http.MethodGet, "/api/customers", "k-get", "").Code)
	assert.Equal(t, 4, calls)
}

func TestIdempotency_ReleasesKeyOnFailure(t *testing.T) {
	calls := 0
	router := newIdempotentRouter(IdempotencyConfig{Store: newMemoryStore(t)}, &calls)

	assert.Equal(t, http.StatusBadRequest, send(router, http.MethodPost, "/api/customers", "retry-me", "fail").Code)
	assert.Equal(t, http.StatusCreated, send(router, http.MethodPost, "/api/customers", "retry-me", "").Code)
	assert.Equal(t, http.StatusConflict, send(router, http.MethodPost, "/api/customers", "retry-me", "").Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotency_KeyTooLong(t *testing.T) {
	calls := 0
	router := newIdempotentRouter(IdempotencyConfig{Store: newMemoryStore(t)}, &calls)

	w := send(router, http.MethodPost, "/api/customers", strings.Repeat("k", MaxIdempotencyKeyLength+1), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.MsgMalformedRequest, resp.Message)
	assert.Equal(t, []string{"Idempotency-Key: must not exceed 255 characters"}, resp.Details)
	assert.Zero(t, calls)
}

func TestIdempotency_StoreFailureFailsOpen(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	calls := 0
	router := newIdempotentRouter(IdempotencyConfig{Store: failingStore{}, Logger: zap.New(core)}, &calls)

	assert.Equal(t, http.StatusCreated, send(router, http.MethodPost, "/api/customers", "k-1", "").Code)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, logs.FilterMessage("Idempotency store unavailable, skipping check").Len())
}

func TestIdempotency_NilStore(t *testing.T) {
	calls := 0
	router := newIdempotentRouter(IdempotencyConfig{}, &calls)

	assert.Equal(t, http.StatusCreated, send(router, http.MethodPost, "/api/customers", "k-1", "").Code)
	assert.Equal(t, http.StatusCreated, send(router, http.MethodPost, "/api/customers", "k-1", "").Code)
}
