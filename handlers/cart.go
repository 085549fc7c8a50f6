package handlers

import (
	"net/http"

	"restaurant-ordering-api/config"
	"restaurant-ordering-api/middleware"
	"restaurant-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AddToCartRequest struct {
	DishID uint `json:"dish_id" binding:"required"`
}

// AddToCart upserts a cart line for the caller: a new dish starts at
// quantity 1, an existing line is bumped by 1. Name, price and image are
// snapshotted from the dish at first add.
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dish models.Dish
	if err := config.DB.First(&dish, req.DishID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}

	var line models.CartLine
	err := config.DB.Where("user_id = ? AND dish_id = ?", userID, req.DishID).First(&line).Error
	switch {
	case err == nil:
		line.Quantity++
		if err := config.DB.Model(&line).Update("quantity", line.Quantity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
	case err == gorm.ErrRecordNotFound:
		line = models.CartLine{
			UserID:   userID,
			DishID:   dish.ID,
			Name:     dish.Name,
			Price:    dish.Price,
			Image:    dish.Image,
			Quantity: 1,
		}
		if err := config.DB.Create(&line).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "line": line})
}

// GetCart lists the caller's cart lines with the running total
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var lines []models.CartLine
	config.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&lines)

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	c.JSON(http.StatusOK, gin.H{"count": len(lines), "cart": lines, "total": total})
}

type UpdateCartLineRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartLine sets a line's quantity. Anything below 1 removes the
// line entirely.
func UpdateCartLine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	dishID := c.Param("dishId")

	var line models.CartLine
	if err := config.DB.Where("user_id = ? AND dish_id = ?", userID, dishID).First(&line).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
		return
	}

	var req UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Quantity < 1 {
		if err := config.DB.Delete(&line).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart line"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart line removed"})
		return
	}

	if err := config.DB.Model(&line).Update("quantity", req.Quantity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart line"})
		return
	}
	line.Quantity = req.Quantity
	c.JSON(http.StatusOK, gin.H{"message": "Cart line updated", "line": line})
}

// RemoveCartLine deletes one line from the caller's cart
func RemoveCartLine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	dishID := c.Param("dishId")

	var line models.CartLine
	if err := config.DB.Where("user_id = ? AND dish_id = ?", userID, dishID).First(&line).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
		return
	}
	if err := config.DB.Delete(&line).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart line"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart line removed"})
}
