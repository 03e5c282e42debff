package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/profast/parcel-server/internal/models"
)

// ApplyRider stores a delivery-personnel application, pending by default.
func ApplyRider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rider models.Rider
		if err := c.ShouldBindJSON(&rider); err != nil || rider.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid rider data"})
			return
		}

		if rider.Status == "" {
			rider.Status = models.RiderStatusPending
		}

		if err := db.Create(&rider).Error; err != nil {
			log.Printf("Error inserting rider application: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create rider application", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": rider.ID})
	}
}

// GetPendingRiders lists applications awaiting review, newest first.
func GetPendingRiders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var riders []models.Rider
		err := db.Where("status = ?", models.RiderStatusPending).
			Order("created_at DESC, id DESC").
			Find(&riders).Error
		if err != nil {
			log.Printf("Error fetching pending riders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get pending riders", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, riders)
	}
}

// GetActiveRiders lists approved riders.
func GetActiveRiders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var riders []models.Rider
		err := db.Where("status = ?", models.RiderStatusActive).
			Order("id").
			Find(&riders).Error
		if err != nil {
			log.Printf("Error fetching active riders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get active riders", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, riders)
	}
}

// UpdateRiderStatus changes an application's status. Activation additionally
// promotes the owning user's role to "rider" as a second, independent write.
func UpdateRiderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid rider ID format"})
			return
		}

		var input struct {
			Status string `json:"status" binding:"required"`
			Email  string `json:"email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status data", "error": err.Error()})
			return
		}

		result := db.Model(&models.Rider{}).Where("id = ?", id).Update("status", input.Status)
		if result.Error != nil {
			log.Printf("Error updating rider %d status: %v", id, result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update rider status", "error": result.Error.Error()})
			return
		}

		if input.Status == models.RiderStatusActive {
			err := db.Model(&models.User{}).
				Where("email = ?", input.Email).
				Update("role", models.RoleRider).Error
			if err != nil {
				log.Printf("Error promoting user %s to rider: %v", input.Email, err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user role", "error": err.Error()})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"modifiedCount": result.RowsAffected, "message": "Rider status updated"})
	}
}
