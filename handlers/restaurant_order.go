package handlers

import (
	"net/http"

	"quickbite-api/config"
	"quickbite-api/middleware"
	"quickbite-api/models"
	"quickbite-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetRestaurantOrders lists a restaurant's orders filtered by the status
// path segment; "all" disables the filter
// @Summary Restaurant orders by status
// @Tags restaurant
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /restaurant/orders/{restaurantId}/{status} [get]
func GetRestaurantOrders(c *gin.Context) {
	restaurant := restaurantForCaller(c, c.Param("restaurantId"))
	if restaurant == nil {
		return
	}

	status := models.OrderStatus(c.Param("status"))
	if status != "all" && !models.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status '" + string(status) + "'"})
		return
	}

	var orders []models.Order
	query := config.DB.Preload("Items.MenuItem").Preload("User").Preload("DeliveryPerson").
		Where("restaurant_id = ?", restaurant.ID)
	if status != "all" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":    restaurant.Name,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// UpdateRestaurantOrderStatus moves an order through the state machine
// on behalf of the owning restaurant (or an admin)
// @Summary Update order status
// @Tags restaurant
// @Security CookieAuth
// @Param payload body UpdateOrderStatusRequest true "target status"
// @Success 200 {object} map[string]interface{}
// @Router /restaurant/order/{orderId} [patch]
func UpdateRestaurantOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	callerRole := middleware.GetRole(c)
	if callerRole != models.RoleAdmin {
		var restaurant models.Restaurant
		if err := config.DB.Where("id = ? AND owner_id = ?", order.RestaurantID, middleware.GetUserID(c)).
			First(&restaurant).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your restaurant"})
			return
		}
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, callerRole); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", req.Status)

	config.DB.Create(&models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   req.Status,
		ChangedBy:  middleware.GetUserID(c),
		Note:       req.Note,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}
