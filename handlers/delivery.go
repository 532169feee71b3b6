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

// DeliveryRegister creates a delivery-personnel account; the role is forced
// @Summary Register as delivery personnel
// @Tags delivery
// @Param payload body RegisterRequest true "account details"
// @Success 201 {object} map[string]interface{}
// @Router /delivery/register [post]
func DeliveryRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Role = models.RoleDelivery

	user := createUser(c, config.DB, &req)
	if user == nil {
		return
	}
	token, ok := issueSession(c, user, middleware.SignupTokenTTL)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Delivery account created",
		"token":   token,
		"user":    userView(user),
	})
}

// DeliveryLogin authenticates delivery accounts only
// @Summary Delivery login
// @Tags delivery
// @Param payload body LoginRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Router /delivery/login [post]
func DeliveryLogin(c *gin.Context) {
	loginAs(c, models.RoleDelivery)
}

// GetAvailableOrders shows preparing orders with no assigned delivery person
// @Summary Available orders
// @Tags delivery
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /delivery/orders/available [get]
func GetAvailableOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Restaurant").Preload("DeliveryAddress").
		Where("status = ? AND delivery_person_id IS NULL", models.StatusPreparing).
		Order("created_at asc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// AcceptOrder assigns the order to the caller and takes it out for delivery
// @Summary Accept an order
// @Tags delivery
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /delivery/orders/{orderId}/accept [post]
func AcceptOrder(c *gin.Context) {
	deliveryID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.DeliveryPersonID != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been accepted"})
		return
	}
	if err := statemachine.CanTransition(order.Status, models.StatusOutForDelivery, models.RoleDelivery); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Invalid state transition",
			"current_status": order.Status,
			"reason":         err.Error(),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Updates(map[string]interface{}{
		"status":             models.StatusOutForDelivery,
		"delivery_person_id": deliveryID,
	})

	config.DB.Create(&models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusOutForDelivery,
		ChangedBy:  deliveryID,
		Note:       "Order accepted for delivery",
	})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order accepted",
		"order_id": order.ID,
		"status":   models.StatusOutForDelivery,
	})
}

// UpdateDeliveryStatus lets the assigned delivery person advance an order,
// typically out_for_delivery → completed
// @Summary Update delivery status
// @Tags delivery
// @Security CookieAuth
// @Param payload body UpdateOrderStatusRequest true "target status"
// @Success 200 {object} map[string]interface{}
// @Router /delivery/orders/{orderId}/status [patch]
func UpdateDeliveryStatus(c *gin.Context) {
	deliveryID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.DeliveryPersonID == nil || *order.DeliveryPersonID != deliveryID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not assigned to this order"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, models.RoleDelivery); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Invalid state transition",
			"current_status": order.Status,
			"reason":         err.Error(),
		})
		return
	}

	prevStatus := order.Status
	update := map[string]interface{}{"status": req.Status}
	if req.Status == models.StatusCompleted {
		update["date"] = time.Now()
	}
	config.DB.Model(&order).Updates(update)

	config.DB.Create(&models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   req.Status,
		ChangedBy:  deliveryID,
		Note:       req.Note,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Delivery status updated",
		"order_id": order.ID,
		"status":   req.Status,
	})
}

// ToggleAvailability flips the caller's delivery roster flag
// @Summary Toggle own availability
// @Tags delivery
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /delivery/availability [patch]
func ToggleAvailability(c *gin.Context) {
	user := middleware.CurrentUser(c)
	available := !user.IsAvailable
	config.DB.Model(user).Update("is_available", available)
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "is_available": available})
}

// ListDeliveryPersonnel returns every delivery account
// @Summary List delivery personnel
// @Tags delivery
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /delivery/personnel [get]
func ListDeliveryPersonnel(c *gin.Context) {
	var personnel []models.User
	query := config.DB.Where("role = ?", models.RoleDelivery)
	if available := c.Query("available"); available == "true" {
		query = query.Where("is_available = ?", true)
	}
	query.Find(&personnel)
	c.JSON(http.StatusOK, gin.H{"count": len(personnel), "personnel": personnel})
}

// DeliveryPlaceOrder lets delivery personnel order for themselves,
// reusing the customer placement flow
// @Summary Place an order as delivery personnel
// @Tags delivery
// @Security CookieAuth
// @Param payload body PlaceOrderRequest true "order"
// @Success 201 {object} map[string]interface{}
// @Router /delivery/orders [post]
func DeliveryPlaceOrder(c *gin.Context) {
	placeOrderFor(c, middleware.GetUserID(c))
}
