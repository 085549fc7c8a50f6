package handlers

import (
	"net/http"

	"restaurant-ordering-api/config"
	"restaurant-ordering-api/middleware"
	"restaurant-ordering-api/models"
	"restaurant-ordering-api/payment"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CardTokenizer is swapped out in tests
var CardTokenizer payment.Tokenizer = payment.NewTokenizer()

// TokenizeCard exchanges card details for an opaque payment-method id.
// The card is validated and discarded; only the token survives.
func TokenizeCard(c *gin.Context) {
	var card payment.CardDetails
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := CardTokenizer.Tokenize(card)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_method_id": token})
}

type CheckoutRequest struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
	Comments        string `json:"comments"`
}

// Checkout converts the caller's cart into an immutable order. The order
// insert and the cart clear run in one transaction, so a failure on
// either side leaves both untouched. The total is recomputed here from
// the cart rows; the client sends no amount.
func Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	var lines []models.CartLine
	config.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&lines)
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, models.OrderItem{
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
			Image:    line.Image,
		})
	}

	order := models.Order{
		Reference:       uuid.NewString(),
		UserID:          userID,
		UserName:        user.Name,
		Status:          models.StatusPendiente,
		Total:           total,
		Comments:        req.Comments,
		PaymentMethodID: req.PaymentMethodID,
		Items:           items,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}
