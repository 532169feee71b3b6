package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"quickbite-api/config"
	"quickbite-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantRegister_CreatesUserAndRestaurant(t *testing.T) {
	r := setupRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/restaurant/register", map[string]interface{}{
		"first_name":      "Luigi",
		"email":           "luigi@x.com",
		"password":        "Secur3pass",
		"role":            "customer", // ignored, forced to restaurant
		"restaurant_name": "Luigi's",
		"address":         "1 Main St",
		"cuisine":         "Italian",
		"opening_hours":   "10:00-22:00",
		"delivery_zone":   "downtown",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)
	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "restaurant", user["role"])
	restaurant := resp["restaurant"].(map[string]interface{})
	assert.Equal(t, "Luigi's", restaurant["name"])
	assert.EqualValues(t, user["id"], restaurant["owner_id"])
}

func TestRestaurantRegister_FailureLeavesNoPartialRows(t *testing.T) {
	r := setupRouter(t)
	seedUser(t, models.RoleCustomer, "taken@x.com")

	w, _ := doJSON(t, r, http.MethodPost, "/api/restaurant/register", map[string]interface{}{
		"first_name":      "Luigi",
		"email":           "taken@x.com",
		"password":        "Secur3pass",
		"role":            "restaurant",
		"restaurant_name": "Luigi's",
		"address":         "1 Main St",
	}, "")
	require.Equal(t, http.StatusConflict, w.Code)

	// The rejected registration must not create a restaurant, and the
	// existing account must be the only user row
	var restaurants, users int64
	config.DB.Model(&models.Restaurant{}).Count(&restaurants)
	config.DB.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 0, restaurants)
	assert.EqualValues(t, 1, users)
}

func TestRestaurantRegisterExisting(t *testing.T) {
	r := setupRouter(t)
	owner, _ := seedUser(t, models.RoleRestaurant, "o@x.com")

	path := fmt.Sprintf("/api/restaurant/register/%d", owner.ID)
	w, resp := doJSON(t, r, http.MethodPost, path, map[string]interface{}{
		"restaurant_name": "Second Kitchen",
		"address":         "2 Main St",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	restaurant := resp["restaurant"].(map[string]interface{})
	assert.EqualValues(t, owner.ID, restaurant["owner_id"])

	// A user can own several restaurants
	seedRestaurant(t, owner.ID, "Third Kitchen")
	var n int64
	config.DB.Model(&models.Restaurant{}).Where("owner_id = ?", owner.ID).Count(&n)
	assert.EqualValues(t, 2, n)
}

func TestRestaurantRegisterExisting_WrongRole(t *testing.T) {
	r := setupRouter(t)
	customer, _ := seedUser(t, models.RoleCustomer, "c@x.com")

	path := fmt.Sprintf("/api/restaurant/register/%d", customer.ID)
	w, _ := doJSON(t, r, http.MethodPost, path, map[string]interface{}{
		"restaurant_name": "Nope",
		"address":         "3 Main St",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRestaurantLogin_RejectsOtherRoles(t *testing.T) {
	r := setupRouter(t)
	seedUser(t, models.RoleCustomer, "c@x.com")

	w, _ := doJSON(t, r, http.MethodPost, "/api/restaurant/login", map[string]string{
		"email":    "c@x.com",
		"password": "Password1",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateRestaurantProfile_AllowListAndOwnership(t *testing.T) {
	r := setupRouter(t)
	owner, token := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")
	_, intruderToken := seedUser(t, models.RoleRestaurant, "i@x.com")

	path := fmt.Sprintf("/api/restaurant/profile/%d", restaurant.ID)

	// Not the owner
	w, _ := doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"name": "Stolen"}, intruderToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Owner patch: owner_id is not allow-listed and must be dropped
	w, _ = doJSON(t, r, http.MethodPatch, path, map[string]interface{}{
		"name":     "Luigi's Trattoria",
		"owner_id": 999,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Restaurant
	require.NoError(t, config.DB.First(&stored, restaurant.ID).Error)
	assert.Equal(t, "Luigi's Trattoria", stored.Name)
	assert.Equal(t, owner.ID, stored.OwnerID)
}

func TestAdminCanPatchAnyRestaurant(t *testing.T) {
	r := setupRouter(t)
	owner, _ := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")
	_, adminToken := seedUser(t, models.RoleAdmin, "a@x.com")

	path := fmt.Sprintf("/api/restaurant/profile/%d", restaurant.ID)
	w, _ := doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"is_open": false}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Restaurant
	require.NoError(t, config.DB.First(&stored, restaurant.ID).Error)
	assert.False(t, stored.IsOpen)
}

func TestMenuItemLifecycle(t *testing.T) {
	r := setupRouter(t)
	owner, token := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")

	// Create
	menuPath := fmt.Sprintf("/api/restaurant/menu/%d", restaurant.ID)
	w, resp := doJSON(t, r, http.MethodPost, menuPath, map[string]interface{}{
		"name":        "Margherita",
		"description": "Tomato, mozzarella, basil",
		"price":       9.50,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	item := resp["item"].(map[string]interface{})
	itemID := uint(item["id"].(float64))

	// List
	w, resp = doJSON(t, r, http.MethodGet, menuPath, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, resp["count"])

	// Patch with allow-listed and stray fields
	itemPath := fmt.Sprintf("/api/restaurant/item/%d", itemID)
	w, _ = doJSON(t, r, http.MethodPatch, itemPath, map[string]interface{}{
		"price":         10.50,
		"is_available":  false,
		"restaurant_id": 999,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.MenuItem
	require.NoError(t, config.DB.First(&stored, itemID).Error)
	assert.Equal(t, 10.50, stored.Price)
	assert.False(t, stored.IsAvailable)
	assert.Equal(t, restaurant.ID, stored.RestaurantID)

	// Delete
	w, _ = doJSON(t, r, http.MethodDelete, itemPath, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Error(t, config.DB.First(&stored, itemID).Error)
}

func TestMenuItem_ForeignOwnerForbidden(t *testing.T) {
	r := setupRouter(t)
	owner, _ := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")
	item := seedMenuItem(t, restaurant.ID, "Margherita", 9.50)
	_, otherToken := seedUser(t, models.RoleRestaurant, "other@x.com")

	path := fmt.Sprintf("/api/restaurant/item/%d", item.ID)
	w, _ := doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"price": 1.0}, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetRestaurantOrders_FiltersByStatus(t *testing.T) {
	r := setupRouter(t)
	owner, token := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")
	customer, _ := seedUser(t, models.RoleCustomer, "c@x.com")
	address := seedAddress(t, customer.ID, true)

	seedOrder(t, customer.ID, restaurant.ID, address.ID, models.StatusPreparing)
	seedOrder(t, customer.ID, restaurant.ID, address.ID, models.StatusPreparing)
	seedOrder(t, customer.ID, restaurant.ID, address.ID, models.StatusCancelled)

	path := fmt.Sprintf("/api/restaurant/orders/%d/preparing", restaurant.ID)
	w, resp := doJSON(t, r, http.MethodGet, path, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, resp["count"])

	path = fmt.Sprintf("/api/restaurant/orders/%d/all", restaurant.ID)
	w, resp = doJSON(t, r, http.MethodGet, path, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, resp["count"])

	path = fmt.Sprintf("/api/restaurant/orders/%d/bogus", restaurant.ID)
	w, _ = doJSON(t, r, http.MethodGet, path, nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRestaurantOrderStatus_Transitions(t *testing.T) {
	r := setupRouter(t)
	owner, token := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")
	customer, _ := seedUser(t, models.RoleCustomer, "c@x.com")
	address := seedAddress(t, customer.ID, true)
	order := seedOrder(t, customer.ID, restaurant.ID, address.ID, models.StatusPreparing)

	path := fmt.Sprintf("/api/restaurant/order/%d", order.ID)

	// Valid: preparing -> out_for_delivery
	w, _ := doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"status": "out_for_delivery"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Invalid for restaurant: out_for_delivery -> completed is a delivery move
	w, resp := doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"status": "completed"}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid state transition", resp["error"])

	// History was recorded for the successful transition
	var n int64
	config.DB.Model(&models.OrderStatusHistory{}).Where("order_id = ?", order.ID).Count(&n)
	assert.EqualValues(t, 1, n)
}

func TestUpdateRestaurantOrderStatus_ForeignRestaurant(t *testing.T) {
	r := setupRouter(t)
	owner, _ := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")
	customer, _ := seedUser(t, models.RoleCustomer, "c@x.com")
	address := seedAddress(t, customer.ID, true)
	order := seedOrder(t, customer.ID, restaurant.ID, address.ID, models.StatusPreparing)

	_, otherToken := seedUser(t, models.RoleRestaurant, "other@x.com")
	path := fmt.Sprintf("/api/restaurant/order/%d", order.ID)
	w, _ := doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"status": "out_for_delivery"}, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRestaurantOrderStatus_RequiresAuth(t *testing.T) {
	r := setupRouter(t)

	w, _ := doJSON(t, r, http.MethodPatch, "/api/restaurant/order/1", map[string]interface{}{"status": "cancelled"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
