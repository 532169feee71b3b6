package handlers

import (
	"net/http"

	"quickbite-api/config"
	"quickbite-api/middleware"
	"quickbite-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddressRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	Country    string `json:"country" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	IsDefault  bool   `json:"is_default"`
}

type AddressUpdateRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postal_code"`
	IsDefault  *bool   `json:"is_default"`
}

// createAddress persists a new address for userID. The clear-then-set
// default swap runs in one transaction so a user can never end up with
// two defaults.
func createAddress(c *gin.Context, userID uint) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address := models.DeliveryAddress{
		UserID:     userID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		IsDefault:  req.IsDefault,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.DeliveryAddress{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Address saved", "address": address})
}

// updateAddress patches an existing address owned by userID
func updateAddress(c *gin.Context, userID uint, addressID string) {
	var address models.DeliveryAddress
	if err := config.DB.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}

	var req AddressUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{}
	if req.FirstName != nil {
		update["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		update["last_name"] = *req.LastName
	}
	if req.Line1 != nil {
		update["line1"] = *req.Line1
	}
	if req.Line2 != nil {
		update["line2"] = *req.Line2
	}
	if req.City != nil {
		update["city"] = *req.City
	}
	if req.State != nil {
		update["state"] = *req.State
	}
	if req.Country != nil {
		update["country"] = *req.Country
	}
	if req.PostalCode != nil {
		update["postal_code"] = *req.PostalCode
	}
	if req.IsDefault != nil {
		update["is_default"] = *req.IsDefault
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault != nil && *req.IsDefault {
			if err := tx.Model(&models.DeliveryAddress{}).
				Where("user_id = ? AND id <> ?", userID, address.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&address).Updates(update).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address updated", "address": address})
}

// ── Customer-scoped handlers ────────────────────────────────────────────────

// ListMyAddresses returns the caller's saved addresses
// @Summary List own delivery addresses
// @Tags customer
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /customer/addresses [get]
func ListMyAddresses(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var addresses []models.DeliveryAddress
	config.DB.Where("user_id = ?", userID).Order("is_default desc, created_at asc").Find(&addresses)
	c.JSON(http.StatusOK, gin.H{"count": len(addresses), "addresses": addresses})
}

// CreateMyAddress saves a new address for the caller
// @Summary Add a delivery address
// @Tags customer
// @Security CookieAuth
// @Param payload body AddressRequest true "address"
// @Success 201 {object} map[string]interface{}
// @Router /customer/addresses [post]
func CreateMyAddress(c *gin.Context) {
	createAddress(c, middleware.GetUserID(c))
}

// UpdateMyAddress patches one of the caller's addresses
// @Summary Update a delivery address
// @Tags customer
// @Security CookieAuth
// @Router /customer/addresses/{addressId} [patch]
func UpdateMyAddress(c *gin.Context) {
	updateAddress(c, middleware.GetUserID(c), c.Param("addressId"))
}

// DeleteMyAddress removes an address by (caller, addressId) pair
// @Summary Delete a delivery address
// @Tags customer
// @Security CookieAuth
// @Router /customer/addresses/{addressId} [delete]
func DeleteMyAddress(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var address models.DeliveryAddress
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("addressId"), userID).First(&address).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}
	config.DB.Delete(&address)
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
