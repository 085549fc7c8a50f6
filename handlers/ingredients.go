package handlers

import (
	"net/http"
	"strings"

	"restaurant-ordering-api/config"
	"restaurant-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type IngredientRequest struct {
	Name     string `json:"name" binding:"required"`
	Unit     string `json:"unit" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

// ListIngredients returns the whole inventory (admin only)
func ListIngredients(c *gin.Context) {
	var ingredients []models.Ingredient
	config.DB.Order("name asc").Find(&ingredients)
	c.JSON(http.StatusOK, gin.H{"count": len(ingredients), "ingredients": ingredients})
}

// CreateIngredient adds an inventory record (admin only)
func CreateIngredient(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	qty, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be numeric"})
		return
	}

	ingredient := models.Ingredient{Name: req.Name, Unit: req.Unit, Quantity: qty}
	if err := config.DB.Create(&ingredient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Ingredient created", "ingredient": ingredient})
}

// UpdateIngredient rewrites an inventory record (admin only). There is
// no delete: dishes embed ingredient copies, so inventory rows only ever
// get corrected.
func UpdateIngredient(c *gin.Context) {
	var ingredient models.Ingredient
	if err := config.DB.First(&ingredient, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}

	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	qty, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be numeric"})
		return
	}

	ingredient.Name = req.Name
	ingredient.Unit = req.Unit
	ingredient.Quantity = qty
	if err := config.DB.Save(&ingredient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredient"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient updated", "ingredient": ingredient})
}

// SuggestIngredients is the autocomplete source for the dish editor: a
// case-insensitive substring match over ingredient names. Read-only; it
// never touches the dish being edited.
func SuggestIngredients(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if q == "" {
		c.JSON(http.StatusOK, gin.H{"count": 0, "ingredients": []models.Ingredient{}})
		return
	}

	var ingredients []models.Ingredient
	config.DB.Order("name asc").Find(&ingredients)

	matches := []models.Ingredient{}
	for _, ing := range ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			matches = append(matches, ing)
		}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(matches), "ingredients": matches})
}
