package handlers

import (
	"net/http"
	"strings"

	"restaurant-ordering-api/config"
	"restaurant-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ── Public menu ─────────────────────────────────────────────────────────────

// ListDishes returns the full menu (public)
func ListDishes(c *gin.Context) {
	var dishes []models.Dish
	config.DB.Order("name asc").Find(&dishes)

	// Optional category filter, applied over the JSON set
	if category := c.Query("category"); category != "" {
		filtered := dishes[:0]
		for _, d := range dishes {
			for _, cat := range d.Categories {
				if cat == category {
					filtered = append(filtered, d)
					break
				}
			}
		}
		dishes = filtered
	}

	c.JSON(http.StatusOK, gin.H{"count": len(dishes), "menu": dishes})
}

// GetDish returns a single dish (public)
func GetDish(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dish": dish})
}

// ── Admin dish management ───────────────────────────────────────────────────

type IngredientLine struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
	Unit     string `json:"unit" binding:"required"`
}

type DishRequest struct {
	Name        string           `json:"name" binding:"required"`
	Image       string           `json:"image"`
	Categories  string           `json:"categories" binding:"required"`
	Price       string           `json:"price" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Ingredients []IngredientLine `json:"ingredients" binding:"required,min=1,dive"`
}

var ingredientQuantityMax = decimal.NewFromInt(9999)

// ParseCategories splits a comma-separated string into a trimmed set.
// Duplicates are removed by exact match only; the strings are otherwise
// kept as typed.
func ParseCategories(raw string) []string {
	seen := map[string]bool{}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		cat := strings.TrimSpace(part)
		if cat == "" || seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}
	return out
}

func buildDish(req DishRequest) (models.Dish, string) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || !price.IsPositive() {
		return models.Dish{}, "Price must be a positive number"
	}

	categories := ParseCategories(req.Categories)
	if len(categories) == 0 {
		return models.Dish{}, "At least one category is required"
	}

	ingredients := make([]models.DishIngredient, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		qty, err := decimal.NewFromString(line.Quantity)
		if err != nil || !qty.IsPositive() || qty.GreaterThan(ingredientQuantityMax) {
			return models.Dish{}, "Ingredient '" + line.Name + "' needs a quantity between 0 and 9999"
		}
		ingredients = append(ingredients, models.DishIngredient{
			Name:     line.Name,
			Quantity: qty,
			Unit:     line.Unit,
		})
	}

	return models.Dish{
		Name:        req.Name,
		Image:       req.Image,
		Categories:  datatypes.NewJSONSlice(categories),
		Price:       price,
		Description: req.Description,
		Ingredients: datatypes.NewJSONSlice(ingredients),
	}, ""
}

// CreateDish adds a new dish to the menu (admin only)
func CreateDish(c *gin.Context) {
	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, msg := buildDish(req)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := config.DB.Create(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dish"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Dish created", "dish": dish})
}

// UpdateDish rewrites a dish's fields (admin only). Past orders keep
// their snapshots; nothing propagates.
func UpdateDish(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}

	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, msg := buildDish(req)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	updated.ID = dish.ID
	updated.CreatedAt = dish.CreatedAt

	if err := config.DB.Save(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dish"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish updated", "dish": updated})
}

// DeleteDish hard-deletes a dish (admin only)
func DeleteDish(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	if err := config.DB.Delete(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete dish"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted"})
}
