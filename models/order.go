package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the delivery states of a kitchen order
type OrderStatus string

const (
	StatusPendiente OrderStatus = "pendiente"
	StatusCocinando OrderStatus = "cocinando"
	StatusEntregado OrderStatus = "entregado"
)

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Reference       string          `json:"reference" gorm:"uniqueIndex;not null"`
	UserID          uint            `json:"user_id" gorm:"not null"`
	UserName        string          `json:"user_name"`
	Status          OrderStatus     `json:"status" gorm:"not null;default:'pendiente'"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Comments        string          `json:"comments"`
	PaymentMethodID string          `json:"payment_method_id"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is a snapshot of a cart line at checkout. It carries copies
// of the dish fields, not references, so later menu edits never change
// past orders.
type OrderItem struct {
	ID       uint            `json:"id" gorm:"primaryKey"`
	OrderID  uint            `json:"order_id" gorm:"not null"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity int             `json:"quantity" gorm:"not null"`
	Image    string          `json:"image"`
}
