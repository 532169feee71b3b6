package handlers

import (
	"net/http"
	"time"

	"quickbite-api/config"
	"quickbite-api/middleware"
	"quickbite-api/models"
	"quickbite-api/statemachine"

	"github.com/gin-gonic/gin"
)

// CustomerRegister creates a customer account; the role is forced
// @Summary Register as customer
// @Tags customer
// @Accept json
// @Produce json
// @Param payload body RegisterRequest true "account details"
// @Success 201 {object} map[string]interface{}
// @Router /customer/register [post]
func CustomerRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Role = models.RoleCustomer

	user := createUser(c, config.DB, &req)
	if user == nil {
		return
	}
	token, ok := issueSession(c, user, middleware.SignupTokenTTL)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Customer account created",
		"token":   token,
		"user":    userView(user),
	})
}

// CustomerLogin authenticates customer accounts only
// @Summary Customer login
// @Tags customer
// @Param payload body LoginRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Router /customer/login [post]
func CustomerLogin(c *gin.Context) {
	loginAs(c, models.RoleCustomer)
}

// ── Restaurant discovery ────────────────────────────────────────────────────

// ListRestaurants returns all restaurants
// @Summary Browse restaurants
// @Tags customer
// @Success 200 {object} map[string]interface{}
// @Router /customer/restaurants [get]
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB.Preload("MenuItems")
	if open := c.Query("open"); open == "true" {
		query = query.Where("is_open = ?", true)
	}
	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// SearchRestaurants matches by menu item name or cuisine. The two query
// parameters are optional and OR-combined; no match is an empty list.
// @Summary Search restaurants
// @Tags customer
// @Param item query string false "menu item name fragment"
// @Param cuisine query string false "cuisine fragment"
// @Success 200 {object} map[string]interface{}
// @Router /customer/restaurants/search [get]
func SearchRestaurants(c *gin.Context) {
	item := c.Query("item")
	cuisine := c.Query("cuisine")

	var restaurants []models.Restaurant
	query := config.DB.Preload("MenuItems").
		Joins("LEFT JOIN menu_items ON menu_items.restaurant_id = restaurants.id").
		Distinct("restaurants.*")

	switch {
	case item != "" && cuisine != "":
		query = query.Where("menu_items.name LIKE ? OR restaurants.cuisine LIKE ?",
			"%"+item+"%", "%"+cuisine+"%")
	case item != "":
		query = query.Where("menu_items.name LIKE ?", "%"+item+"%")
	case cuisine != "":
		query = query.Where("restaurants.cuisine LIKE ?", "%"+cuisine+"%")
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// ── Orders ──────────────────────────────────────────────────────────────────

type PlaceOrderRequest struct {
	RestaurantID      uint `json:"restaurant_id" binding:"required"`
	DeliveryAddressID uint `json:"delivery_address_id" binding:"required"`
	Items             []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// placeOrderFor builds an order for userID. Prices and names are
// snapshotted from the current menu, never taken from the client.
func placeOrderFor(c *gin.Context, userID uint) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if !restaurant.IsOpen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant is currently closed"})
		return
	}

	var address models.DeliveryAddress
	if err := config.DB.Where("id = ? AND user_id = ?", req.DeliveryAddressID, userID).First(&address).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery address not found for this account"})
		return
	}

	var orderItems []models.OrderItem
	var total float64
	for _, reqItem := range req.Items {
		var menuItem models.MenuItem
		if err := config.DB.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not found"})
			return
		}
		if menuItem.RestaurantID != req.RestaurantID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item does not belong to this restaurant"})
			return
		}
		if !menuItem.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + menuItem.Name + "' is not available"})
			return
		}
		total += menuItem.Price * float64(reqItem.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   reqItem.Quantity,
			Price:      menuItem.Price,
			Name:       menuItem.Name,
		})
	}

	order := models.Order{
		UserID:            userID,
		RestaurantID:      req.RestaurantID,
		DeliveryAddressID: address.ID,
		Status:            models.StatusPreparing,
		TotalPrice:        total,
		Date:              time.Now(),
		Items:             orderItems,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	config.DB.Create(&models.OrderStatusHistory{
		OrderID:   order.ID,
		ToStatus:  models.StatusPreparing,
		ChangedBy: userID,
		Note:      "Order placed",
	})

	config.DB.Preload("Items.MenuItem").Preload("Restaurant").Preload("DeliveryAddress").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// PlaceOrder creates a new order for the caller
// @Summary Place an order
// @Tags customer
// @Security CookieAuth
// @Param payload body PlaceOrderRequest true "order"
// @Success 201 {object} map[string]interface{}
// @Router /customer/orders [post]
func PlaceOrder(c *gin.Context) {
	placeOrderFor(c, middleware.GetUserID(c))
}

// TrackOrder returns one of the caller's orders. An order belonging to
// another user answers 404 so order ids cannot be enumerated.
// @Summary Track an order
// @Tags customer
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /customer/orders/{orderId}/track [get]
func TrackOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.
		Preload("Items.MenuItem").
		Preload("Restaurant").
		Preload("StatusHistory").
		Preload("DeliveryPerson").
		Where("id = ? AND user_id = ?", c.Param("orderId"), userID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	elapsed := int(time.Since(order.CreatedAt).Minutes())
	c.JSON(http.StatusOK, gin.H{"order": order, "minutes_elapsed": elapsed})
}

// CancelMyOrder cancels one of the caller's own orders through the
// state machine; out-for-delivery and finished orders stay as they are.
// Foreign orders answer 404, same as tracking.
// @Summary Cancel an order
// @Tags customer
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /customer/orders/{orderId}/cancel [post]
func CancelMyOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("orderId"), userID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, middleware.GetRole(c)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", models.StatusCancelled)

	config.DB.Create(&models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusCancelled,
		ChangedBy:  userID,
		Note:       "Cancelled by customer",
	})

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order cancelled",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"status":          models.StatusCancelled,
	})
}

// OrderHistory returns all orders for the caller, newest first
// @Summary Order history
// @Tags customer
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /customer/orders [get]
func OrderHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items.MenuItem").Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}
