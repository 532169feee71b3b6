package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quickbite-api/config"
	"quickbite-api/middleware"
	"quickbite-api/models"
	"quickbite-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupRouter wires the full route table against a fresh in-memory
// database named after the test, so tests never share state.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// seedUser inserts a user directly and returns it with a session token.
// MinCost keeps the suite fast; verification accepts any cost.
func seedUser(t *testing.T, role models.UserRole, email string) (*models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		FirstName:    "Test",
		LastName:     string(role),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       models.UserActive,
		IsAvailable:  true,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := middleware.GenerateToken(&user, middleware.LoginTokenTTL)
	require.NoError(t, err)
	return &user, token
}

func seedRestaurant(t *testing.T, ownerID uint, name string) *models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		OwnerID: ownerID,
		Name:    name,
		Cuisine: "Italian",
		Address: "1 Main St",
		IsOpen:  true,
	}
	require.NoError(t, config.DB.Create(&restaurant).Error)
	return &restaurant
}

func seedMenuItem(t *testing.T, restaurantID uint, name string, price float64) *models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        price,
		IsAvailable:  true,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return &item
}

func seedAddress(t *testing.T, userID uint, isDefault bool) *models.DeliveryAddress {
	t.Helper()
	address := models.DeliveryAddress{
		UserID:     userID,
		FirstName:  "Test",
		LastName:   "User",
		Line1:      "1 Side St",
		City:       "Springfield",
		State:      "IL",
		Country:    "US",
		PostalCode: "62701",
		IsDefault:  isDefault,
	}
	require.NoError(t, config.DB.Create(&address).Error)
	return &address
}

func seedOrder(t *testing.T, userID, restaurantID, addressID uint, status models.OrderStatus) *models.Order {
	t.Helper()
	order := models.Order{
		UserID:            userID,
		RestaurantID:      restaurantID,
		DeliveryAddressID: addressID,
		Status:            status,
		TotalPrice:        25.50,
		Date:              time.Now(),
	}
	require.NoError(t, config.DB.Create(&order).Error)
	return &order
}

// doJSON performs a request with an optional session token cookie and
// decodes the JSON response body.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}
