package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/profast/parcel-server/internal/models"
)

// RegisterUser creates the user once per email. Repeat registrations are
// acknowledged without touching the stored record.
func RegisterUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil || user.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
			return
		}

		var existing models.User
		err := db.Where("email = ?", user.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "User already exists", "inserted": false})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error looking up user %s: %v", user.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user", "error": err.Error()})
			return
		}

		if user.Role == "" {
			user.Role = models.RoleUser
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error inserting user %s: %v", user.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"inserted": true, "insertedId": user.ID})
	}
}

// GetUserRole returns the stored role for an email, defaulting to "user"
// when the stored value is empty.
func GetUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		role := user.Role
		if role == "" {
			role = models.RoleUser
		}
		c.JSON(http.StatusOK, gin.H{"role": role})
	}
}

// SearchUsers matches emails by case-insensitive substring.
func SearchUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fragment := c.Query("email")
		if fragment == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing email query"})
			return
		}

		var users []models.User
		pattern := "%" + strings.ToLower(fragment) + "%"
		if err := db.Where("LOWER(email) LIKE ?", pattern).Find(&users).Error; err != nil {
			log.Printf("Error searching users: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to search users", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// UpdateUserRole assigns one of the fixed roles by user id.
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID format"})
			return
		}

		var input struct {
			Role string `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
			return
		}
		if !models.IsAssignableRole(input.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
			return
		}

		result := db.Model(&models.User{}).Where("id = ?", id).Update("role", input.Role)
		if result.Error != nil {
			log.Printf("Error updating role for user %d: %v", id, result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update role", "error": result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"modifiedCount": result.RowsAffected, "message": "Role updated"})
	}
}
