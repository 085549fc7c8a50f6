package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"restaurant-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderPayload struct {
	ID       uint            `json:"id"`
	UserName string          `json:"user_name"`
	Status   string          `json:"status"`
	Total    decimal.Decimal `json:"total"`
	Comments string          `json:"comments"`
	Items    []struct {
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		Quantity int             `json:"quantity"`
	} `json:"items"`
}

func tokenizeTestCard(t *testing.T, r *gin.Engine, token string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/payment/tokenize", token, gin.H{
		"card_number": "4242424242424242",
		"exp_month":   12,
		"exp_year":    2030,
		"cvc":         "123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		PaymentMethodID string `json:"payment_method_id"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.PaymentMethodID)
	return resp.PaymentMethodID
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	r := setupRouter(t)
	admin := register(t, r, "Admin", "admin@test.com", models.RoleAdmin)
	user := register(t, r, "Ana", "ana@test.com", models.RoleUser)

	tacos := createDish(t, r, admin, "Tacos", "10.00", "mexicana")
	agua := createDish(t, r, admin, "Agua", "5.00", "bebidas")

	addToCart(t, r, user, tacos, 2)
	addToCart(t, r, user, agua, 1)

	pm := tokenizeTestCard(t, r, user)
	w := doJSON(t, r, http.MethodPost, "/api/checkout", user, gin.H{
		"payment_method_id": pm,
		"comments":          "sin cebolla",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Order orderPayload `json:"order"`
	}
	decodeBody(t, w, &resp)

	assert.Equal(t, "pendiente", resp.Order.Status)
	assert.Equal(t, "Ana", resp.Order.UserName)
	assert.Equal(t, "sin cebolla", resp.Order.Comments)
	assert.True(t, resp.Order.Total.Equal(decimal.NewFromInt(25)),
		"expected total 25, got %s", resp.Order.Total)
	require.Len(t, resp.Order.Items, 2)
	quantities := map[string]int{}
	for _, item := range resp.Order.Items {
		quantities[item.Name] = item.Quantity
	}
	assert.Equal(t, map[string]int{"Tacos": 2, "Agua": 1}, quantities)

	// Cart must be empty afterwards
	w = doJSON(t, r, http.MethodGet, "/api/cart", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart struct {
		Count int `json:"count"`
	}
	decodeBody(t, w, &cart)
	assert.Zero(t, cart.Count)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	r := setupRouter(t)
	user := register(t, r, "Ana", "ana@test.com", models.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/api/checkout", user, gin.H{
		"payment_method_id": "pm_test",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutRequiresSession(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/checkout", "", gin.H{
		"payment_method_id": "pm_test",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderSnapshotSurvivesDishEdits(t *testing.T) {
	r := setupRouter(t)
	admin := register(t, r, "Admin", "admin@test.com", models.RoleAdmin)
	user := register(t, r, "Ana", "ana@test.com", models.RoleUser)

	dish := createDish(t, r, admin, "Tacos", "10.00", "mexicana")
	addToCart(t, r, user, dish, 1)

	w := doJSON(t, r, http.MethodPost, "/api/checkout", user, gin.H{
		"payment_method_id": "pm_test",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Reprice the dish after checkout
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/menu/%d", dish), admin, gin.H{
		"name":        "Tacos",
		"price":       "99.00",
		"categories":  "mexicana",
		"description": "test dish",
		"ingredients": []gin.H{{"name": "sal", "quantity": "1", "unit": "g"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/orders", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders struct {
		Active []orderPayload `json:"active"`
	}
	decodeBody(t, w, &orders)
	require.Len(t, orders.Active, 1)
	require.Len(t, orders.Active[0].Items, 1)
	assert.True(t, orders.Active[0].Items[0].Price.Equal(decimal.NewFromInt(10)),
		"snapshot price changed to %s", orders.Active[0].Items[0].Price)
}
