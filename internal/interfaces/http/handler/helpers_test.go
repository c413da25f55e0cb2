package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	partnerapp "github.com/erp/crm/internal/application/partner"
	"github.com/erp/crm/internal/infrastructure/persistence"
	"github.com/erp/crm/internal/interfaces/http/dto"
	"github.com/erp/crm/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// newTestDB opens a migrated in-memory SQLite database
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, persistence.AutoMigrate(db))
	return db
}

// newTestAPI wires the real services over SQLite under /api
func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	db := newTestDB(t)

	engine := gin.New()
	api := engine.Group("/api")
	NewCustomerHandler(partnerapp.NewCustomerService(persistence.NewGormCustomerRepository(db))).RegisterRoutes(api)
	NewEmployeeHandler(partnerapp.NewEmployeeService(persistence.NewGormEmployeeRepository(db))).RegisterRoutes(api)
	NewSupplierHandler(partnerapp.NewSupplierService(persistence.NewGormSupplierRepository(db))).RegisterRoutes(api)
	return engine
}

func doRequest(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	return decode[dto.ErrorResponse](t, w)
}
