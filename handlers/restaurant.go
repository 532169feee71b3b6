package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"quickbite-api/config"
	"quickbite-api/middleware"
	"quickbite-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// errResponded signals a rolled-back transaction whose handler already
// wrote the HTTP response.
var errResponded = errors.New("response already written")

// ── Registration & login ────────────────────────────────────────────────────

type RestaurantRegisterRequest struct {
	RegisterRequest
	RestaurantName string `json:"restaurant_name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Cuisine        string `json:"cuisine"`
	OpeningHours   string `json:"opening_hours"`
	DeliveryZone   string `json:"delivery_zone"`
}

type CreateRestaurantRequest struct {
	RestaurantName string `json:"restaurant_name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Cuisine        string `json:"cuisine"`
	OpeningHours   string `json:"opening_hours"`
	DeliveryZone   string `json:"delivery_zone"`
}

// RestaurantRegister creates a user and their restaurant in one call.
// The account role is forced to restaurant.
// @Summary Register a restaurant with a new account
// @Tags restaurant
// @Param payload body RestaurantRegisterRequest true "account + restaurant"
// @Success 201 {object} map[string]interface{}
// @Router /restaurant/register [post]
func RestaurantRegister(c *gin.Context) {
	var req RestaurantRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Role = models.RoleRestaurant

	// User and restaurant land together or not at all; a failed
	// restaurant insert must not leave an orphan restaurant-role user.
	var user *models.User
	var restaurant models.Restaurant
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		user = createUser(c, tx, &req.RegisterRequest)
		if user == nil {
			return errResponded
		}
		restaurant = models.Restaurant{
			OwnerID:      user.ID,
			Name:         req.RestaurantName,
			Address:      req.Address,
			Cuisine:      req.Cuisine,
			OpeningHours: req.OpeningHours,
			DeliveryZone: req.DeliveryZone,
			IsOpen:       true,
		}
		if err := tx.Create(&restaurant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
			return err
		}
		return nil
	})
	if err != nil {
		return
	}

	token, ok := issueSession(c, user, middleware.SignupTokenTTL)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Restaurant registered",
		"token":      token,
		"user":       userView(user),
		"restaurant": restaurant,
	})
}

// RestaurantRegisterExisting creates a restaurant under an existing
// restaurant-role user id
// @Summary Register a restaurant for an existing user
// @Tags restaurant
// @Param payload body CreateRestaurantRequest true "restaurant"
// @Success 201 {object} map[string]interface{}
// @Router /restaurant/register/{userId} [post]
func RestaurantRegisterExisting(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var owner models.User
	if err := config.DB.First(&owner, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if owner.Role != models.RoleRestaurant {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User does not have the restaurant role"})
		return
	}

	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		OwnerID:      owner.ID,
		Name:         req.RestaurantName,
		Address:      req.Address,
		Cuisine:      req.Cuisine,
		OpeningHours: req.OpeningHours,
		DeliveryZone: req.DeliveryZone,
		IsOpen:       true,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant registered", "restaurant": restaurant})
}

// RestaurantLogin authenticates restaurant accounts only
// @Summary Restaurant login
// @Tags restaurant
// @Param payload body LoginRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Router /restaurant/login [post]
func RestaurantLogin(c *gin.Context) {
	loginAs(c, models.RoleRestaurant)
}

// ── Profile ─────────────────────────────────────────────────────────────────

// restaurantForCaller loads a restaurant and checks the caller may act
// on it: admins always, restaurant users only for their own. Writes the
// error response and returns nil when access is denied.
func restaurantForCaller(c *gin.Context, restaurantID string) *models.Restaurant {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return nil
	}
	if middleware.GetRole(c) != models.RoleAdmin && restaurant.OwnerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this restaurant"})
		return nil
	}
	return &restaurant
}

// GetRestaurantProfile returns a restaurant, admin or owner only
// @Summary Restaurant profile
// @Tags restaurant
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /restaurant/profile/{restaurantId} [get]
func GetRestaurantProfile(c *gin.Context) {
	restaurant := restaurantForCaller(c, c.Param("restaurantId"))
	if restaurant == nil {
		return
	}
	config.DB.Preload("MenuItems").First(restaurant, restaurant.ID)
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// UpdateRestaurantProfile patches allow-listed restaurant fields
// @Summary Update restaurant profile
// @Tags restaurant
// @Security CookieAuth
// @Router /restaurant/profile/{restaurantId} [patch]
func UpdateRestaurantProfile(c *gin.Context) {
	restaurant := restaurantForCaller(c, c.Param("restaurantId"))
	if restaurant == nil {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"name": true, "cuisine": true, "address": true,
		"opening_hours": true, "delivery_zone": true, "is_open": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(restaurant).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// ── Menu management ─────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// GetMenu lists a restaurant's menu items
// @Summary Restaurant menu
// @Tags restaurant
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /restaurant/menu/{restaurantId} [get]
func GetMenu(c *gin.Context) {
	restaurantID := c.Param("restaurantId")
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var items []models.MenuItem
	config.DB.Where("restaurant_id = ?", restaurantID).Find(&items)
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant.Name, "count": len(items), "menu": items})
}

// AddMenuItem creates a menu item under a restaurant the caller controls
// @Summary Add menu item
// @Tags restaurant
// @Security CookieAuth
// @Param payload body CreateMenuItemRequest true "item"
// @Success 201 {object} map[string]interface{}
// @Router /restaurant/menu/{restaurantId} [post]
func AddMenuItem(c *gin.Context) {
	restaurant := restaurantForCaller(c, c.Param("restaurantId"))
	if restaurant == nil {
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		IsAvailable:  true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// menuItemForCaller resolves an item and enforces restaurant ownership
func menuItemForCaller(c *gin.Context, itemID string) *models.MenuItem {
	var item models.MenuItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return nil
	}
	if middleware.GetRole(c) != models.RoleAdmin {
		var restaurant models.Restaurant
		if err := config.DB.Where("id = ? AND owner_id = ?", item.RestaurantID, middleware.GetUserID(c)).
			First(&restaurant).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
			return nil
		}
	}
	return &item
}

// UpdateMenuItem patches allow-listed fields of a menu item
// @Summary Update menu item
// @Tags restaurant
// @Security CookieAuth
// @Router /restaurant/item/{itemId} [patch]
func UpdateMenuItem(c *gin.Context) {
	item := menuItemForCaller(c, c.Param("itemId"))
	if item == nil {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"name": true, "description": true, "price": true, "is_available": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(item).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item
// @Summary Delete menu item
// @Tags restaurant
// @Security CookieAuth
// @Router /restaurant/item/{itemId} [delete]
func DeleteMenuItem(c *gin.Context) {
	item := menuItemForCaller(c, c.Param("itemId"))
	if item == nil {
		return
	}
	config.DB.Delete(item)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
