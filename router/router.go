package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/controllers"
	"github.com/relaxing-koala/restaurant-api/events"
	"github.com/relaxing-koala/restaurant-api/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Engine-level middleware must be attached before any route registers;
	// gin snapshots each route's handler chain at registration time.
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	authCtrl := controllers.NewAuthController(db)
	userCtrl := controllers.NewUserController(db)
	reservationCtrl := controllers.NewReservationController(db)
	menuCtrl := controllers.NewMenuController(db)
	menuItemCtrl := controllers.NewMenuItemController(db)
	orderCtrl := controllers.NewOrderController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	feedbackCtrl := controllers.NewFeedbackController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter for login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", authCtrl.Register)
		public.POST("/login", authCtrl.Login)
	}

	r.GET("/auth/oauth", authCtrl.OAuthLogin)
	r.GET("/auth/oauth/callback", authCtrl.OAuthCallback)

	// Menu browsing needs no session
	r.GET("/menus", menuCtrl.GetMenusPaginated)
	r.GET("/menus/all", menuCtrl.GetAllMenus)
	r.GET("/menus/landing", menuCtrl.GetLandingMenu)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	r.GET("/menu-items", menuItemCtrl.GetMenuItemsPaginated)
	r.GET("/menu-items/all", menuItemCtrl.GetAllMenuItems)
	r.GET("/menu-items/:item_id/menus", menuItemCtrl.GetMenuItemMenus)

	r.GET("/orders", orderCtrl.GetOrdersPaginated)

	r.POST("/feedbacks", feedbackCtrl.CreateFeedback)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", authCtrl.GetProfile)
		auth.GET("/users/:user_id", userCtrl.GetUserByID)

		auth.POST("/reservations", reservationCtrl.CreateReservation)
		auth.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
		auth.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
		auth.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.POST("/orders/:order_id/items", orderCtrl.AddItemToOrder)

		auth.GET("/menu-items/:item_id", menuItemCtrl.GetMenuItemByID)
	}

	// ----------------------------------------------------------------
	//                      STAFF ROUTES
	// ----------------------------------------------------------------
	staff := r.Group("/dashboard")
	staff.Use(middlewares.AuthMiddleware(), middlewares.StaffOnly())
	{
		staff.POST("/menus", menuCtrl.CreateMenu)
		staff.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
		staff.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
		staff.POST("/menus/items", menuCtrl.AddMenuItemToMenu)
		staff.DELETE("/menus/items", menuCtrl.RemoveMenuItemFromMenu)

		staff.POST("/menu-items", menuItemCtrl.CreateMenuItem)
		staff.PATCH("/menu-items/:item_id", menuItemCtrl.UpdateMenuItem)
		staff.DELETE("/menu-items/:item_id", menuItemCtrl.DeleteMenuItem)

		staff.PATCH("/orders/:order_id", orderCtrl.UpdateOrder)
		staff.PATCH("/orders/:order_id/status", orderCtrl.SetOrderStatus)
		staff.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

		staff.POST("/payments", paymentCtrl.CreatePayment)
		staff.GET("/payments", paymentCtrl.GetPaymentsPaginated)

		staff.GET("/reservations", reservationCtrl.GetReservationsPaginated)

		staff.GET("/users", userCtrl.GetUsersPaginated)
		staff.PATCH("/users/:user_id/role", userCtrl.UpdateUserRole)

		staff.GET("/feedbacks", feedbackCtrl.GetFeedbacksPaginated)

		staff.GET("/stats", dashboardCtrl.GetRevenueStats)
		staff.GET("/stats/revenue-chart", dashboardCtrl.GetRevenueChart)
	}

	// Live dashboard updates; token rides in the query string
	ws := r.Group("/ws")
	ws.Use(middlewares.WebSocketAuthMiddleware(), middlewares.StaffOnly())
	{
		ws.GET("", events.Handler)
	}

	return r
}
