package routes

import (
	"restaurant-ordering-api/handlers"
	"restaurant-ordering-api/middleware"
	"restaurant-ordering-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu browsing (no auth needed)
		public.GET("/menu", handlers.ListDishes)
		public.GET("/menu/:id", handlers.GetDish)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/auth/email", handlers.UpdateEmail)
		auth.PUT("/auth/password", handlers.UpdatePassword)
	}

	// ── Customer routes ────────────────────────────────────────────
	user := r.Group("/api")
	user.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleUser))
	{
		// Cart
		user.GET("/cart", handlers.GetCart)
		user.POST("/cart", handlers.AddToCart)
		user.PUT("/cart/:dishId", handlers.UpdateCartLine)
		user.DELETE("/cart/:dishId", handlers.RemoveCartLine)

		// Checkout
		user.POST("/payment/tokenize", handlers.TokenizeCard)
		user.POST("/checkout", handlers.Checkout)

		// Orders
		user.GET("/orders", handlers.GetMyOrders)

		// Reservations
		user.POST("/reservations", handlers.CreateReservation)
		user.GET("/reservations", handlers.GetMyReservations)
		user.PUT("/reservations/:id", handlers.UpdateReservation)
		user.PUT("/reservations/:id/cancel", handlers.CancelReservation)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		// Menu management
		admin.POST("/menu", handlers.CreateDish)
		admin.PUT("/menu/:id", handlers.UpdateDish)
		admin.DELETE("/menu/:id", handlers.DeleteDish)

		// Inventory
		admin.GET("/ingredients", handlers.ListIngredients)
		admin.GET("/ingredients/suggest", handlers.SuggestIngredients)
		admin.POST("/ingredients", handlers.CreateIngredient)
		admin.PUT("/ingredients/:id", handlers.UpdateIngredient)

		// Orders
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/advance", handlers.AdminAdvanceOrder)

		// Reservations
		admin.GET("/reservations", handlers.AdminGetAllReservations)
		admin.PUT("/reservations/:id/accept", handlers.AdminAcceptReservation)
		admin.PUT("/reservations/:id/reject", handlers.AdminRejectReservation)

		// Images
		admin.POST("/uploads", handlers.UploadImage)
	}
}
