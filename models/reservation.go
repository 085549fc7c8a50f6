package models

import "time"

// ReservationStatus represents the review states of a booking request
type ReservationStatus string

const (
	ReservationPendiente ReservationStatus = "pendiente"
	ReservationAceptado  ReservationStatus = "aceptado"
	ReservationRechazado ReservationStatus = "rechazado"
	ReservationCancelado ReservationStatus = "cancelado"
)

// FoodType is the service slot being booked
type FoodType string

const (
	FoodBrunch   FoodType = "brunch"
	FoodAlmuerzo FoodType = "almuerzo"
	FoodCena     FoodType = "cena"
)

// ExperienceTypes is the fixed set of bookable experiences
var ExperienceTypes = []string{
	"Team building",
	"Show cooking",
	"Taller de cocina",
	"Chef personal a domicilio",
}

type Reservation struct {
	ID             uint              `json:"id" gorm:"primaryKey"`
	UserID         uint              `json:"user_id" gorm:"not null"`
	UserName       string            `json:"user_name"`
	UserEmail      string            `json:"user_email"`
	Date           string            `json:"date" gorm:"not null"` // YYYY-MM-DD
	Time           string            `json:"time" gorm:"not null"` // HH:MM
	FoodType       FoodType          `json:"food_type" gorm:"not null"`
	ExperienceType string            `json:"experience_type" gorm:"not null"`
	PeopleCount    int               `json:"people_count" gorm:"not null"`
	Comments       string            `json:"comments"`
	Status         ReservationStatus `json:"status" gorm:"not null;default:'pendiente'"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
