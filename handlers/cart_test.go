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

type cartPayload struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	Cart  []struct {
		DishID   uint `json:"dish_id"`
		Quantity int  `json:"quantity"`
	} `json:"cart"`
}

func getCart(t *testing.T, r *gin.Engine, token string) cartPayload {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var cart cartPayload
	decodeBody(t, w, &cart)
	return cart
}

func TestAddToCartMergesQuantity(t *testing.T) {
	r := setupRouter(t)
	admin := register(t, r, "Admin", "admin@test.com", models.RoleAdmin)
	user := register(t, r, "Ana", "ana@test.com", models.RoleUser)

	dish := createDish(t, r, admin, "Tacos", "10.00", "mexicana")
	addToCart(t, r, user, dish, 3)

	cart := getCart(t, r, user)
	require.Equal(t, 1, cart.Count)
	assert.Equal(t, 3, cart.Cart[0].Quantity)
	assert.True(t, cart.Total.Equal(decimal.NewFromInt(30)))
}

func TestUpdateCartLineQuantity(t *testing.T) {
	r := setupRouter(t)
	admin := register(t, r, "Admin", "admin@test.com", models.RoleAdmin)
	user := register(t, r, "Ana", "ana@test.com", models.RoleUser)

	dish := createDish(t, r, admin, "Tacos", "10.00", "mexicana")
	addToCart(t, r, user, dish, 1)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/cart/%d", dish), user, gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cart := getCart(t, r, user)
	assert.Equal(t, 5, cart.Cart[0].Quantity)
}

func TestCartQuantityZeroRemovesLine(t *testing.T) {
	r := setupRouter(t)
	admin := register(t, r, "Admin", "admin@test.com", models.RoleAdmin)
	user := register(t, r, "Ana", "ana@test.com", models.RoleUser)

	dish := createDish(t, r, admin, "Tacos", "10.00", "mexicana")
	addToCart(t, r, user, dish, 2)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/cart/%d", dish), user, gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cart := getCart(t, r, user)
	assert.Zero(t, cart.Count)

	// Removing an already-removed line is a 404, not a silent success
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/cart/%d", dish), user, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	r := setupRouter(t)
	admin := register(t, r, "Admin", "admin@test.com", models.RoleAdmin)
	ana := register(t, r, "Ana", "ana@test.com", models.RoleUser)
	luis := register(t, r, "Luis", "luis@test.com", models.RoleUser)

	dish := createDish(t, r, admin, "Tacos", "10.00", "mexicana")
	addToCart(t, r, ana, dish, 2)

	assert.Equal(t, 1, getCart(t, r, ana).Count)
	assert.Zero(t, getCart(t, r, luis).Count)
}
