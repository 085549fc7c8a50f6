package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// DishIngredient is one line of a dish's recipe, embedded in the dish
// record rather than referencing the inventory table. Edits to inventory
// never rewrite existing dishes.
type DishIngredient struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

type Dish struct {
	ID          uint                                 `json:"id" gorm:"primaryKey"`
	Name        string                               `json:"name" gorm:"not null"`
	Image       string                               `json:"image"`
	Categories  datatypes.JSONSlice[string]          `json:"categories"`
	Price       decimal.Decimal                      `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string                               `json:"description"`
	Ingredients datatypes.JSONSlice[DishIngredient]  `json:"ingredients"`
	CreatedAt   time.Time                            `json:"created_at"`
	UpdatedAt   time.Time                            `json:"updated_at"`
}

type Ingredient struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"not null"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity" gorm:"type:decimal(10,2)"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
