package routes

import (
	"quickbite-api/handlers"
	"quickbite-api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the canonical route table. Every guard below is
// generated from the authorization matrix in middleware/authz.go.
func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/signup", handlers.Register)
		public.POST("/login", handlers.Login)
		public.POST("/logout", handlers.Logout)

		public.GET("/state-machine", handlers.GetStateMachineInfo)

		// Role-scoped registration & login (all pre-auth)
		public.POST("/customer/register", handlers.CustomerRegister)
		public.POST("/customer/login", handlers.CustomerLogin)
		public.POST("/customer/logout", handlers.Logout)
		public.POST("/restaurant/register", handlers.RestaurantRegister)
		public.POST("/restaurant/register/:userId", handlers.RestaurantRegisterExisting)
		public.POST("/restaurant/login", handlers.RestaurantLogin)
		public.POST("/delivery/register", handlers.DeliveryRegister)
		public.POST("/delivery/login", handlers.DeliveryLogin)
		public.POST("/delivery/logout", handlers.Logout)
		public.POST("/admin/login", handlers.AdminLogin)
		public.POST("/admin/logout", handlers.Logout)

		// Restaurant discovery is open reads
		public.GET("/customer/restaurants", handlers.ListRestaurants)
		public.GET("/customer/restaurants/search", handlers.SearchRestaurants)
	}

	// ── Authenticated (any role) ───────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired())
	{
		addresses := customer.Group("", middleware.Guard(middleware.ActionManageAddresses))
		{
			addresses.GET("/addresses", handlers.ListMyAddresses)
			addresses.POST("/addresses", handlers.CreateMyAddress)
			addresses.PATCH("/addresses/:addressId", handlers.UpdateMyAddress)
			addresses.DELETE("/addresses/:addressId", handlers.DeleteMyAddress)
		}

		customer.POST("/orders", middleware.Guard(middleware.ActionPlaceOrders), handlers.PlaceOrder)
		customer.GET("/orders", middleware.Guard(middleware.ActionTrackOrders), handlers.OrderHistory)
		customer.GET("/orders/:orderId/track", middleware.Guard(middleware.ActionTrackOrders), handlers.TrackOrder)
		customer.POST("/orders/:orderId/cancel", middleware.Guard(middleware.ActionCancelOwnOrders), handlers.CancelMyOrder)
	}

	// ── Restaurant routes ──────────────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(middleware.AuthRequired())
	{
		profile := restaurant.Group("", middleware.Guard(middleware.ActionManageRestaurant))
		{
			profile.GET("/profile/:restaurantId", handlers.GetRestaurantProfile)
			profile.PATCH("/profile/:restaurantId", handlers.UpdateRestaurantProfile)
		}

		menu := restaurant.Group("", middleware.Guard(middleware.ActionManageMenu))
		{
			menu.GET("/menu/:restaurantId", handlers.GetMenu)
			menu.POST("/menu/:restaurantId", handlers.AddMenuItem)
			menu.PATCH("/item/:itemId", handlers.UpdateMenuItem)
			menu.DELETE("/item/:itemId", handlers.DeleteMenuItem)
		}

		orders := restaurant.Group("", middleware.Guard(middleware.ActionHandleOrders))
		{
			orders.GET("/orders/:restaurantId/:status", handlers.GetRestaurantOrders)
			orders.PATCH("/order/:orderId", handlers.UpdateRestaurantOrderStatus)
		}
	}

	// ── Delivery routes ────────────────────────────────────────────
	delivery := r.Group("/api/delivery")
	delivery.Use(middleware.AuthRequired())
	{
		deliver := delivery.Group("", middleware.Guard(middleware.ActionDeliverOrders))
		{
			deliver.GET("/orders/available", handlers.GetAvailableOrders)
			deliver.POST("/orders/:orderId/accept", handlers.AcceptOrder)
			deliver.PATCH("/orders/:orderId/status", handlers.UpdateDeliveryStatus)
			deliver.PATCH("/availability", handlers.ToggleAvailability)
		}

		delivery.POST("/orders", middleware.Guard(middleware.ActionPlaceOrders), handlers.DeliveryPlaceOrder)
		delivery.GET("/personnel", middleware.Guard(middleware.ActionViewPersonnel), handlers.ListDeliveryPersonnel)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired())
	{
		users := admin.Group("", middleware.Guard(middleware.ActionManageUsers))
		{
			users.POST("/register/users", handlers.AdminRegisterUser)
			users.PATCH("/users/:userId/deactivate", handlers.DeactivateUser)
			users.PATCH("/users/:userId", handlers.AdminUpdateUser)
		}

		addresses := admin.Group("", middleware.Guard(middleware.ActionManageAnyAddress))
		{
			addresses.POST("/users/:userId/delivery-addresses", handlers.AdminCreateAddress)
			addresses.PATCH("/users/:userId/delivery-addresses/:addressId", handlers.AdminUpdateAddress)
		}

		orders := admin.Group("", middleware.Guard(middleware.ActionOverseeOrders))
		{
			orders.GET("/orders", handlers.AdminListOrders)
			orders.GET("/orders/:orderId", handlers.AdminGetOrder)
			orders.POST("/orders/:orderId/cancel", handlers.AdminCancelOrder)
			orders.PATCH("/orders/:orderId/reschedule", handlers.AdminRescheduleOrder)
		}

		reports := admin.Group("", middleware.Guard(middleware.ActionViewReports))
		{
			reports.GET("/reports/popular-restaurants", handlers.ReportPopularRestaurants)
			reports.GET("/reports/average-delivery-time", handlers.ReportAverageDeliveryTime)
			reports.GET("/reports/order-trends", handlers.ReportOrderTrends)
			reports.GET("/monitor/active-users", handlers.MonitorActiveUsers)
			reports.GET("/monitor/delivery-activity", handlers.MonitorDeliveryActivity)
			reports.GET("/monitor/order-statuses", handlers.MonitorOrderStatuses)
		}
	}
}
