package handlers

import (
	"net/http"
	"time"

	"quickbite-api/config"
	"quickbite-api/middleware"
	"quickbite-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	FirstName string          `json:"first_name" binding:"required"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required"`
	Role      models.UserRole `json:"role" binding:"required"`
	Gender    string          `json:"gender"`
	Phone     string          `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// userView strips a user down to the fields returned by auth endpoints
func userView(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"role":       u.Role,
		"status":     u.Status,
	}
}

// createUser validates a registration payload and persists the account
// through db, which may be a transaction handle. It writes the error
// response itself and returns nil on failure.
func createUser(c *gin.Context, db *gorm.DB, req *RegisterRequest) *models.User {
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: admin, customer, restaurant or delivery"})
		return nil
	}
	if err := middleware.ValidatePasswordStrength(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil
	}

	var existing models.User
	if result := db.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return nil
	}

	hash, err := middleware.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return nil
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Gender:       req.Gender,
		Status:       models.UserActive,
		Phone:        req.Phone,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return nil
	}
	return &user
}

// issueSession generates a token for user and sets the session cookie
func issueSession(c *gin.Context, user *models.User, ttl time.Duration) (string, bool) {
	token, err := middleware.GenerateToken(user, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return "", false
	}
	middleware.SetTokenCookie(c, token, ttl)
	return token, true
}

// loginAs authenticates credentials, optionally restricted to a role set.
// Inactive accounts are rejected on every login path.
func loginAs(c *gin.Context, allowed ...models.UserRole) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if !middleware.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if user.Status == models.UserInactive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is deactivated"})
		return
	}
	if len(allowed) > 0 {
		ok := false
		for _, r := range allowed {
			if user.Role == r {
				ok = true
				break
			}
		}
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "This login is not available for your account type"})
			return
		}
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_active_at", now)

	token, ok := issueSession(c, &user, middleware.LoginTokenTTL)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    userView(&user),
	})
}

// Register creates a new account with a caller-chosen role
// @Summary Sign up
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body RegisterRequest true "account details"
// @Success 201 {object} map[string]interface{}
// @Router /signup [post]
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := createUser(c, config.DB, &req)
	if user == nil {
		return
	}

	token, ok := issueSession(c, user, middleware.SignupTokenTTL)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user":    userView(user),
	})
}

// Login authenticates any account
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body LoginRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Router /login [post]
func Login(c *gin.Context) {
	loginAs(c)
}

// Logout expires the session cookie
// @Summary Log out
// @Tags auth
// @Success 200 {object} map[string]interface{}
// @Router /logout [post]
func Logout(c *gin.Context) {
	middleware.ClearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile returns the authenticated user's record
// @Summary Current profile
// @Tags auth
// @Security CookieAuth
// @Success 200 {object} map[string]interface{}
// @Router /profile [get]
func GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": user})
}
