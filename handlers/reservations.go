package handlers

import (
	"net/http"
	"strconv"
	"time"

	"restaurant-ordering-api/config"
	"restaurant-ordering-api/mailer"
	"restaurant-ordering-api/middleware"
	"restaurant-ordering-api/models"
	"restaurant-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Notifications is the best-effort outbox for reservation emails. Left
// nil (as in most tests) nothing is enqueued.
var Notifications *mailer.Outbox

type ReservationRequest struct {
	Date           string          `json:"date" binding:"required"`
	Time           string          `json:"time" binding:"required"`
	FoodType       models.FoodType `json:"food_type" binding:"required"`
	ExperienceType string          `json:"experience_type" binding:"required"`
	PeopleCount    int             `json:"people_count" binding:"required,min=1,max=100"`
	Comments       string          `json:"comments"`
}

// validateReservation checks the fields binding tags cannot express.
// Returns a user-facing message, or "" when valid. The date must be
// strictly after today, comparing calendar dates only.
func validateReservation(req ReservationRequest) string {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return "Date must be in YYYY-MM-DD format"
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return "Time must be in HH:MM format"
	}
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	if !date.After(today) {
		return "Reservation date must be in the future"
	}

	switch req.FoodType {
	case models.FoodBrunch, models.FoodAlmuerzo, models.FoodCena:
	default:
		return "Food type must be: brunch, almuerzo or cena"
	}

	for _, exp := range models.ExperienceTypes {
		if req.ExperienceType == exp {
			return ""
		}
	}
	return "Unknown experience type"
}

// CreateReservation books a future date for the caller. Invalid input
// writes nothing.
func CreateReservation(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateReservation(req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	reservation := models.Reservation{
		UserID:         userID,
		UserName:       user.Name,
		UserEmail:      user.Email,
		Date:           req.Date,
		Time:           req.Time,
		FoodType:       req.FoodType,
		ExperienceType: req.ExperienceType,
		PeopleCount:    req.PeopleCount,
		Comments:       req.Comments,
		Status:         models.ReservationPendiente,
	}
	if err := config.DB.Create(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Reservation created", "reservation": reservation})
}

// GetMyReservations returns the caller's own reservations
func GetMyReservations(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var reservations []models.Reservation
	config.DB.Where("user_id = ?", userID).Order("date asc, time asc").Find(&reservations)
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// AdminGetAllReservations returns every reservation, split into pending
// and resolved — admin only
func AdminGetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	config.DB.Order("date asc, time asc").Find(&reservations)

	pending := []models.Reservation{}
	resolved := []models.Reservation{}
	for _, r := range reservations {
		if statemachine.ReservationIsPending(r.Status) {
			pending = append(pending, r)
		} else {
			resolved = append(resolved, r)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(reservations),
		"pending":  pending,
		"resolved": resolved,
	})
}

// UpdateReservation rewrites the mutable fields of the caller's own
// reservation. Validation matches creation; status is preserved as-is.
func UpdateReservation(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var reservation models.Reservation
	if err := config.DB.First(&reservation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	if reservation.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This reservation does not belong to you"})
		return
	}

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateReservation(req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	reservation.Date = req.Date
	reservation.Time = req.Time
	reservation.FoodType = req.FoodType
	reservation.ExperienceType = req.ExperienceType
	reservation.PeopleCount = req.PeopleCount
	reservation.Comments = req.Comments
	if err := config.DB.Save(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation updated", "reservation": reservation})
}

func notifyReservation(templateID string, r models.Reservation) {
	if Notifications == nil {
		return
	}
	Notifications.Enqueue(templateID, map[string]string{
		"to_name":         r.UserName,
		"to_email":        r.UserEmail,
		"date":            r.Date,
		"time":            r.Time,
		"food_type":       string(r.FoodType),
		"experience_type": r.ExperienceType,
		"people_count":    strconv.Itoa(r.PeopleCount),
		"comments":        r.Comments,
	})
}

func resolveReservation(c *gin.Context, to models.ReservationStatus, actor, templateID string, ownerOnly bool) {
	var reservation models.Reservation
	if err := config.DB.First(&reservation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	if ownerOnly && reservation.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This reservation does not belong to you"})
		return
	}

	if err := statemachine.CanTransitionReservation(reservation.Status, to, actor); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Cannot update reservation",
			"reason":         err.Error(),
			"current_status": reservation.Status,
		})
		return
	}

	if err := config.DB.Model(&reservation).Update("status", to).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
		return
	}
	reservation.Status = to

	// Notification is best-effort and decoupled: the status change above
	// stands whether or not the email ever goes out.
	notifyReservation(templateID, reservation)

	c.JSON(http.StatusOK, gin.H{"message": "Reservation " + string(to), "reservation": reservation})
}

// AdminAcceptReservation sets a pending reservation to aceptado and
// queues the acceptance email — admin only
func AdminAcceptReservation(c *gin.Context) {
	resolveReservation(c, models.ReservationAceptado, "admin", mailer.TemplateReservationAccepted, false)
}

// AdminRejectReservation sets a pending reservation to rechazado and
// queues the rejection email — admin only
func AdminRejectReservation(c *gin.Context) {
	resolveReservation(c, models.ReservationRechazado, "admin", mailer.TemplateReservationRejected, false)
}

// CancelReservation lets the owner cancel their own pending reservation
func CancelReservation(c *gin.Context) {
	resolveReservation(c, models.ReservationCancelado, "owner", mailer.TemplateReservationCancelled, true)
}
