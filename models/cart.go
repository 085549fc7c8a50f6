package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one pending dish quantity for one user. Name, price and
// image are copied from the dish when the line is created so the cart
// renders without joining back into the menu.
type CartLine struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_dish"`
	DishID    uint            `json:"dish_id" gorm:"not null;uniqueIndex:idx_cart_user_dish"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
