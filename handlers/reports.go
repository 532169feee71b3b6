package handlers

import (
	"net/http"
	"strconv"
	"time"

	"quickbite-api/config"
	"quickbite-api/models"

	"github.com/gin-gonic/gin"
)

// ── Reporting (read-only aggregations over orders) ──────────────────────────

// PopularRestaurantRow is one line of the popularity report
type PopularRestaurantRow struct {
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	Cuisine      string `json:"cuisine"`
	OrderCount   int64  `json:"order_count"`
}

// ReportPopularRestaurants ranks restaurants by order count
// @Summary Most popular restaurants
// @Tags reports
// @Security CookieAuth
// @Param limit query int false "max rows (default 10)"
// @Success 200 {object} map[string]interface{}
// @Router /admin/reports/popular-restaurants [get]
func ReportPopularRestaurants(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var rows []PopularRestaurantRow
	err := config.DB.Model(&models.Order{}).
		Select("orders.restaurant_id, restaurants.name, restaurants.cuisine, COUNT(orders.id) AS order_count").
		Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id").
		Group("orders.restaurant_id, restaurants.name, restaurants.cuisine").
		Order("order_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "restaurants": rows})
}

// ReportAverageDeliveryTime averages (fulfillment - creation) in minutes
// over completed orders, optionally bounded by a created-at range
// @Summary Average delivery time
// @Tags reports
// @Security CookieAuth
// @Param from query string false "created from (2006-01-02)"
// @Param to query string false "created to (2006-01-02)"
// @Success 200 {object} map[string]interface{}
// @Router /admin/reports/average-delivery-time [get]
func ReportAverageDeliveryTime(c *gin.Context) {
	query := config.DB.Model(&models.Order{}).Where("status = ?", models.StatusCompleted)

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

	var result struct {
		AvgMinutes *float64 `json:"avg_minutes"`
		Orders     int64    `json:"orders"`
	}
	err := query.
		Select("AVG((julianday(date) - julianday(created_at)) * 1440.0) AS avg_minutes, COUNT(*) AS orders").
		Scan(&result).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	avg := 0.0
	if result.AvgMinutes != nil {
		avg = *result.AvgMinutes
	}
	c.JSON(http.StatusOK, gin.H{
		"average_delivery_minutes": avg,
		"completed_orders":         result.Orders,
	})
}

// TrendRow is one bucket of the order-volume trend
type TrendRow struct {
	Bucket string `json:"bucket"`
	Orders int64  `json:"orders"`
}

// ReportOrderTrends buckets order volume by day or month
// @Summary Order volume trend
// @Tags reports
// @Security CookieAuth
// @Param interval query string false "day (default) or month"
// @Success 200 {object} map[string]interface{}
// @Router /admin/reports/order-trends [get]
func ReportOrderTrends(c *gin.Context) {
	interval := c.DefaultQuery("interval", "day")
	var format string
	switch interval {
	case "day":
		format = "%Y-%m-%d"
	case "month":
		format = "%Y-%m"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "interval must be day or month"})
		return
	}

	var rows []TrendRow
	err := config.DB.Model(&models.Order{}).
		Select("strftime(?, created_at) AS bucket, COUNT(*) AS orders", format).
		Group("bucket").
		Order("bucket ASC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interval": interval, "trend": rows})
}

// ── Monitoring ──────────────────────────────────────────────────────────────

// MonitorActiveUsers counts users active within the given window
// @Summary Active users
// @Tags monitor
// @Security CookieAuth
// @Param minutes query int false "window in minutes (default 15)"
// @Success 200 {object} map[string]interface{}
// @Router /admin/monitor/active-users [get]
func MonitorActiveUsers(c *gin.Context) {
	minutes, err := strconv.Atoi(c.DefaultQuery("minutes", "15"))
	if err != nil || minutes < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minutes must be a positive integer"})
		return
	}
	cutoff := time.Now().Add(-time.Duration(minutes) * time.Minute)

	var count int64
	config.DB.Model(&models.User{}).Where("last_active_at >= ?", cutoff).Count(&count)
	c.JSON(http.StatusOK, gin.H{"window_minutes": minutes, "active_users": count})
}

// MonitorDeliveryActivity lists all orders currently out for delivery
// @Summary Delivery activity
// @Tags monitor
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/monitor/delivery-activity [get]
func MonitorDeliveryActivity(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Restaurant").Preload("DeliveryPerson").Preload("DeliveryAddress").
		Where("status = ?", models.StatusOutForDelivery).
		Order("updated_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// MonitorOrderStatuses breaks all orders down by status
// @Summary Order status breakdown
// @Tags monitor
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/monitor/order-statuses [get]
func MonitorOrderStatuses(c *gin.Context) {
	var rows []struct {
		Status models.OrderStatus
		Count  int64
	}
	err := config.DB.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build breakdown"})
		return
	}

	breakdown := map[string]int64{}
	var total int64
	for _, r := range rows {
		breakdown[string(r.Status)] = r.Count
		total += r.Count
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "statuses": breakdown})
}
