package handlers

import (
	"net/http"

	"restaurant-ordering-api/config"
	"restaurant-ordering-api/middleware"
	"restaurant-ordering-api/models"
	"restaurant-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

func partitionOrders(orders []models.Order) (active, history []models.Order) {
	active = []models.Order{}
	history = []models.Order{}
	for _, o := range orders {
		if statemachine.OrderIsActive(o.Status) {
			active = append(active, o)
		} else {
			history = append(history, o)
		}
	}
	return active, history
}

// GetMyOrders returns the caller's own orders, split into active and
// history views. The owner filter lives here, server-side, not in any
// client.
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)

	active, history := partitionOrders(orders)
	c.JSON(http.StatusOK, gin.H{
		"count":   len(orders),
		"active":  active,
		"history": history,
	})
}

// AdminGetAllOrders returns every order across all users — admin only
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)

	active, history := partitionOrders(orders)
	c.JSON(http.StatusOK, gin.H{
		"count":   len(orders),
		"active":  active,
		"history": history,
	})
}

// AdminAdvanceOrder moves an order to its single next state. The target
// is computed from the stored status, never taken from the request, so a
// repeated call cannot skip a state; it just advances again or stops at
// entregado.
func AdminAdvanceOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	next, err := statemachine.NextOrderStatus(order.Status)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Cannot advance order",
			"reason":         err.Error(),
			"current_status": order.Status,
		})
		return
	}

	prev := statemachine.NormalizeOrderStatus(order.Status)
	if err := config.DB.Model(&order).Update("status", next).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prev,
		"current_status":  next,
	})
}
