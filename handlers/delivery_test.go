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

func TestGetAvailableOrders_OnlyUnassignedPreparing(t *testing.T) {
	r := setupRouter(t)
	owner, _ := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")
	customer, _ := seedUser(t, models.RoleCustomer, "c@x.com")
	address := seedAddress(t, customer.ID, true)

	seedOrder(t, customer.ID, restaurant.ID, address.ID, models.StatusPreparing)
	seedOrder(t, customer.ID, restaurant.ID, address.ID, models.StatusCancelled)
	assigned := seedOrder(t, customer.ID, restaurant.ID, address.ID, models.StatusPreparing)
	courier, token := seedUser(t, models.RoleDelivery, "d@x.com")
	config.DB.Model(assigned).Update("delivery_person_id", courier.ID)

	w, resp := doJSON(t, r, http.MethodGet, "/api/delivery/orders/available", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, resp["count"])
}

func TestAcceptOrder_AssignsAndConflictsOnSecondAccept(t *testing.T) {
	r := setupRouter(t)
	owner, _ := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")
	customer, _ := seedUser(t, models.RoleCustomer, "c@x.com")
	address := seedAddress(t, customer.ID, true)
	order := seedOrder(t, customer.ID, restaurant.ID, address.ID, models.StatusPreparing)

	courier, token := seedUser(t, models.RoleDelivery, "d1@x.com")
	_, token2 := seedUser(t, models.RoleDelivery, "d2@x.com")

	path := fmt.Sprintf("/api/delivery/orders/%d/accept", order.ID)
	w, _ := doJSON(t, r, http.MethodPost, path, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Order
	require.NoError(t, config.DB.First(&stored, order.ID).Error)
	assert.Equal(t, models.StatusOutForDelivery, stored.Status)
	require.NotNil(t, stored.DeliveryPersonID)
	assert.Equal(t, courier.ID, *stored.DeliveryPersonID)

	// Second courier cannot take it
	w, _ = doJSON(t, r, http.MethodPost, path, nil, token2)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateDeliveryStatus_CompletesAndStampsDate(t *testing.T) {
	r := setupRouter(t)
	owner, _ := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")
	customer, _ := seedUser(t, models.RoleCustomer, "c@x.com")
	address := seedAddress(t, customer.ID, true)
	order := seedOrder(t, customer.ID, restaurant.ID, address.ID, models.StatusOutForDelivery)
	courier, token := seedUser(t, models.RoleDelivery, "d@x.com")
	config.DB.Model(order).Update("delivery_person_id", courier.ID)

	before := order.Date
	path := fmt.Sprintf("/api/delivery/orders/%d/status", order.ID)
	w, _ := doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"status": "completed"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Order
	require.NoError(t, config.DB.First(&stored, order.ID).Error)
	assert.Equal(t, models.StatusCompleted, stored.Status)
	assert.True(t, stored.Date.After(before) || stored.Date.Equal(before))
}

func TestUpdateDeliveryStatus_NotAssigned(t *testing.T) {
	r := setupRouter(t)
	owner, _ := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")
	customer, _ := seedUser(t, models.RoleCustomer, "c@x.com")
	address := seedAddress(t, customer.ID, true)
	order := seedOrder(t, customer.ID, restaurant.ID, address.ID, models.StatusOutForDelivery)
	_, token := seedUser(t, models.RoleDelivery, "d@x.com")

	path := fmt.Sprintf("/api/delivery/orders/%d/status", order.ID)
	w, _ := doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"status": "completed"}, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestToggleAvailability(t *testing.T) {
	r := setupRouter(t)
	courier, token := seedUser(t, models.RoleDelivery, "d@x.com")
	require.True(t, courier.IsAvailable)

	w, resp := doJSON(t, r, http.MethodPatch, "/api/delivery/availability", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp["is_available"])

	w, resp = doJSON(t, r, http.MethodPatch, "/api/delivery/availability", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["is_available"])
}

func TestListDeliveryPersonnel(t *testing.T) {
	r := setupRouter(t)
	_, token := seedUser(t, models.RoleDelivery, "d1@x.com")
	busy, _ := seedUser(t, models.RoleDelivery, "d2@x.com")
	config.DB.Model(busy).Update("is_available", false)
	seedUser(t, models.RoleCustomer, "c@x.com")

	w, resp := doJSON(t, r, http.MethodGet, "/api/delivery/personnel", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, resp["count"])

	w, resp = doJSON(t, r, http.MethodGet, "/api/delivery/personnel?available=true", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, resp["count"])
}

func TestDeliveryRoutes_RejectCustomers(t *testing.T) {
	r := setupRouter(t)
	_, token := seedUser(t, models.RoleCustomer, "c@x.com")

	w, _ := doJSON(t, r, http.MethodGet, "/api/delivery/orders/available", nil, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeliveryPlaceOrder(t *testing.T) {
	r := setupRouter(t)
	owner, _ := seedUser(t, models.RoleRestaurant, "o@x.com")
	restaurant := seedRestaurant(t, owner.ID, "Luigi's")
	pizza := seedMenuItem(t, restaurant.ID, "Margherita", 9.50)
	courier, token := seedUser(t, models.RoleDelivery, "d@x.com")
	address := seedAddress(t, courier.ID, true)

	w, resp := doJSON(t, r, http.MethodPost, "/api/delivery/orders", map[string]interface{}{
		"restaurant_id":       restaurant.ID,
		"delivery_address_id": address.ID,
		"items":               []map[string]interface{}{{"menu_item_id": pizza.ID, "quantity": 1}},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	order := resp["order"].(map[string]interface{})
	assert.EqualValues(t, courier.ID, order["user_id"])
}
