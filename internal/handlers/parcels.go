package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/profast/parcel-server/internal/middleware"
	"github.com/profast/parcel-server/internal/models"
)

func parseParcelID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid parcel ID format"})
		return 0, false
	}
	return uint(id), true
}

// CreateParcel stores a new parcel booking for the authenticated user.
func CreateParcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var parcel models.Parcel
		if err := c.ShouldBindJSON(&parcel); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid parcel data", "error": err.Error()})
			return
		}

		if parcel.CreatedBy == "" {
			parcel.CreatedBy = c.GetString(middleware.ContextEmailKey)
		}
		if parcel.PaymentStatus == "" {
			parcel.PaymentStatus = models.PaymentStatusUnpaid
		}

		if err := db.Create(&parcel).Error; err != nil {
			log.Printf("Error inserting parcel: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create parcel", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": parcel.ID})
	}
}

// GetParcels lists parcels, optionally filtered by the creator's email,
// newest first. The result set is unbounded.
func GetParcels(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Parcel{})
		if email := c.Query("email"); email != "" {
			query = query.Where("created_by = ?", email)
		}

		var parcels []models.Parcel
		if err := query.Order("created_at DESC, id DESC").Find(&parcels).Error; err != nil {
			log.Printf("Error fetching parcels: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get parcels", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, parcels)
	}
}

func GetParcelByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseParcelID(c)
		if !ok {
			return
		}

		var parcel models.Parcel
		if err := db.First(&parcel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Parcel not found"})
				return
			}
			log.Printf("Error fetching parcel %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get parcel", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, parcel)
	}
}

func DeleteParcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseParcelID(c)
		if !ok {
			return
		}

		result := db.Delete(&models.Parcel{}, id)
		if result.Error != nil {
			log.Printf("Error deleting parcel %d: %v", id, result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete parcel", "error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Parcel not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"deletedCount": result.RowsAffected,
			"message":      "Parcel deleted successfully",
		})
	}
}
