package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-ordering-api/config"
	"restaurant-ordering-api/models"
	"restaurant-ordering-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires a fresh in-memory database and a full router for one
// test. config.DB is package-global, so tests in this package must not
// run in parallel.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func register(t *testing.T, r *gin.Engine, name, email string, role models.UserRole) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func createDish(t *testing.T, r *gin.Engine, adminToken, name, price, categories string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/admin/menu", adminToken, gin.H{
		"name":        name,
		"price":       price,
		"categories":  categories,
		"description": "test dish",
		"ingredients": []gin.H{{"name": "sal", "quantity": "1", "unit": "g"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Dish struct {
			ID uint `json:"id"`
		} `json:"dish"`
	}
	decodeBody(t, w, &resp)
	require.NotZero(t, resp.Dish.ID)
	return resp.Dish.ID
}

func addToCart(t *testing.T, r *gin.Engine, token string, dishID uint, times int) {
	t.Helper()
	for i := 0; i < times; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/cart", token, gin.H{"dish_id": dishID})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
}
