package middleware

import (
	"net/http"

	"quickbite-api/models"

	"github.com/gin-gonic/gin"
)

// Action names a resource/verb pair guarded by the authorization matrix
type Action string

const (
	ActionManageUsers      Action = "users:manage"
	ActionManageAnyAddress Action = "addresses:manage-any"
	ActionOverseeOrders    Action = "orders:oversee"
	ActionViewReports      Action = "reports:view"
	ActionManageRestaurant Action = "restaurant:manage"
	ActionManageMenu       Action = "menu:manage"
	ActionHandleOrders     Action = "restaurant-orders:handle"
	ActionManageAddresses  Action = "addresses:own"
	ActionPlaceOrders      Action = "orders:place"
	ActionTrackOrders      Action = "orders:track"
	ActionCancelOwnOrders  Action = "orders:cancel-own"
	ActionDeliverOrders    Action = "orders:deliver"
	ActionViewPersonnel    Action = "personnel:view"
)

// matrix is the single source of truth for role-based access. Route
// guards are generated from it so no endpoint can drift from the table.
var matrix = map[Action][]models.UserRole{
	ActionManageUsers:      {models.RoleAdmin},
	ActionManageAnyAddress: {models.RoleAdmin},
	ActionOverseeOrders:    {models.RoleAdmin},
	ActionViewReports:      {models.RoleAdmin},
	ActionManageRestaurant: {models.RoleRestaurant, models.RoleAdmin},
	ActionManageMenu:       {models.RoleRestaurant, models.RoleAdmin},
	ActionHandleOrders:     {models.RoleRestaurant, models.RoleAdmin},
	ActionManageAddresses:  {models.RoleCustomer},
	ActionPlaceOrders:      {models.RoleCustomer, models.RoleDelivery},
	ActionTrackOrders:      {models.RoleCustomer, models.RoleDelivery},
	ActionCancelOwnOrders:  {models.RoleCustomer},
	ActionDeliverOrders:    {models.RoleDelivery},
	ActionViewPersonnel:    {models.RoleAdmin, models.RoleDelivery},
}

// Allowed reports whether role may perform action
func Allowed(action Action, role models.UserRole) bool {
	for _, r := range matrix[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Guard produces a middleware enforcing the matrix entry for action.
// It must be chained after AuthRequired.
func Guard(action Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c)
		if role == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		if !Allowed(action, role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied for role '" + string(role) + "'"})
			c.Abort()
			return
		}
		c.Next()
	}
}
