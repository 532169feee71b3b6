package handlers

import (
	"net/http"
	"strconv"
	"time"

	"quickbite-api/config"
	"quickbite-api/middleware"
	"quickbite-api/models"

	"github.com/gin-gonic/gin"
)

// AdminLogin authenticates admin accounts only
// @Summary Admin login
// @Tags admin
// @Param payload body LoginRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	loginAs(c, models.RoleAdmin)
}

// ── User lifecycle ──────────────────────────────────────────────────────────

// AdminRegisterUser creates an account with any role
// @Summary Register a user (any role)
// @Tags admin
// @Security CookieAuth
// @Param payload body RegisterRequest true "account details"
// @Success 201 {object} map[string]interface{}
// @Router /admin/register/users [post]
func AdminRegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := createUser(c, config.DB, &req)
	if user == nil {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered", "user": userView(user)})
}

// DeactivateUser flips a user to inactive; they can no longer log in
// @Summary Deactivate a user
// @Tags admin
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/users/{userId}/deactivate [patch]
func DeactivateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("userId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	config.DB.Model(&user).Update("status", models.UserInactive)
	c.JSON(http.StatusOK, gin.H{"message": "User deactivated", "user": userView(&user)})
}

// AdminUpdateUser patches allow-listed user fields
// @Summary Update a user
// @Tags admin
// @Security CookieAuth
// @Router /admin/users/{userId} [patch]
func AdminUpdateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("userId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Every allow-listed field is a string column; anything else in the
	// JSON value position is rejected rather than coerced.
	allowed := map[string]bool{"first_name": true, "last_name": true, "phone": true, "status": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if !allowed[k] {
			continue
		}
		s, ok := v.(string)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": k + " must be a string"})
			return
		}
		update[k] = s
	}
	if s, ok := update["status"].(string); ok {
		if models.UserStatus(s) != models.UserActive && models.UserStatus(s) != models.UserInactive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or inactive"})
			return
		}
	}
	config.DB.Model(&user).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": userView(&user)})
}

// ── Address management on behalf of users ───────────────────────────────────

// AdminCreateAddress saves an address for any user
// @Summary Create address for a user
// @Tags admin
// @Security CookieAuth
// @Param payload body AddressRequest true "address"
// @Success 201 {object} map[string]interface{}
// @Router /admin/users/{userId}/delivery-addresses [post]
func AdminCreateAddress(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	createAddress(c, user.ID)
}

// AdminUpdateAddress patches any user's address
// @Summary Update address for a user
// @Tags admin
// @Security CookieAuth
// @Router /admin/users/{userId}/delivery-addresses/{addressId} [patch]
func AdminUpdateAddress(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	updateAddress(c, uint(userID), c.Param("addressId"))
}

// ── Order oversight ─────────────────────────────────────────────────────────

// AdminListOrders returns orders with status/date filters and pagination
// @Summary List all orders
// @Tags admin
// @Security CookieAuth
// @Param status query string false "order status"
// @Param from query string false "created from (2006-01-02)"
// @Param to query string false "created to (2006-01-02)"
// @Param page query int false "page (1-based)"
// @Param limit query int false "page size"
// @Success 200 {object} map[string]interface{}
// @Router /admin/orders [get]
func AdminListOrders(c *gin.Context) {
	query := config.DB.Model(&models.Order{}).
		Preload("Items.MenuItem").Preload("User").Preload("Restaurant").Preload("DeliveryPerson")

	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(models.OrderStatus(status)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status '" + status + "'"})
			return
		}
		query = query.Where("status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be formatted 2006-01-02"})
			return
		}
		query = query.Where("created_at >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be formatted 2006-01-02"})
			return
		}
		query = query.Where("created_at < ?", t.AddDate(0, 0, 1))
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	query.Count(&total)

	var orders []models.Order
	query.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&orders)

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"page":   page,
		"limit":  limit,
		"orders": orders,
	})
}

// AdminGetOrder returns one order with full detail
// @Summary Fetch an order
// @Tags admin
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/orders/{orderId} [get]
func AdminGetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.
		Preload("Items.MenuItem").Preload("User").Preload("Restaurant").
		Preload("DeliveryPerson").Preload("DeliveryAddress").Preload("StatusHistory").
		First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// AdminCancelOrder forces an order to cancelled regardless of its
// current state. Cancelling twice lands on the same terminal state.
// @Summary Cancel an order
// @Tags admin
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/orders/{orderId}/cancel [post]
func AdminCancelOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.Status == models.StatusCancelled {
		c.JSON(http.StatusOK, gin.H{"message": "Order already cancelled", "order_id": order.ID, "status": order.Status})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", models.StatusCancelled)

	config.DB.Create(&models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusCancelled,
		ChangedBy:  middleware.GetUserID(c),
		Note:       "[ADMIN OVERRIDE] order cancelled",
	})

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order cancelled",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"status":          models.StatusCancelled,
	})
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"` // 2006-01-02 or RFC3339
	Note string `json:"note"`
}

// AdminRescheduleOrder moves the fulfillment date and parks the order
// in the rescheduled state
// @Summary Reschedule an order
// @Tags admin
// @Security CookieAuth
// @Param payload body RescheduleRequest true "new date"
// @Success 200 {object} map[string]interface{}
// @Router /admin/orders/{orderId}/reschedule [patch]
func AdminRescheduleOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		date, err = time.Parse("2006-01-02", req.Date)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC3339 or 2006-01-02"})
		return
	}

	if order.Status == models.StatusCompleted || order.Status == models.StatusCancelled {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Cannot reschedule a finished order",
			"current_status": order.Status,
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Updates(map[string]interface{}{
		"status": models.StatusRescheduled,
		"date":   date,
	})

	config.DB.Create(&models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusRescheduled,
		ChangedBy:  middleware.GetUserID(c),
		Note:       req.Note,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order rescheduled",
		"order_id": order.ID,
		"date":     date,
		"status":   models.StatusRescheduled,
	})
}
