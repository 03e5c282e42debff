package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/profast/parcel-server/internal/middleware"
	"github.com/profast/parcel-server/internal/models"
	"github.com/profast/parcel-server/internal/services"
)

// CreateTrackingEvent appends one status entry to a parcel's log and fans it
// out to live subscribers and the reporting channel.
func CreateTrackingEvent(db *gorm.DB, hub *services.Hub, publisher *services.TrackingPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			// Legacy client key, kept for wire compatibility.
			TrackingID string `json:"trackind_id" binding:"required"`
			ParcelID   *uint  `json:"parcel_id"`
			Status     string `json:"status"`
			Message    string `json:"message"`
			UpdatedBy  string `json:"updated_by"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tracking data", "error": err.Error()})
			return
		}

		event := models.TrackingEvent{
			TrackingID: input.TrackingID,
			ParcelID:   input.ParcelID,
			Status:     input.Status,
			Message:    input.Message,
			UpdatedBy:  input.UpdatedBy,
			Time:       time.Now(),
		}

		if err := db.Create(&event).Error; err != nil {
			log.Printf("Error inserting tracking event: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record tracking event", "error": err.Error()})
			return
		}

		// Best-effort fan-out; the insert already succeeded.
		if hub != nil {
			if data, err := json.Marshal(event); err == nil {
				hub.Broadcast(data)
			}
		}
		if err := publisher.Publish(c.Request.Context(), event); err != nil {
			log.Printf("Error publishing tracking event: %v", err)
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "insertedId": event.ID})
	}
}

// TrackingFeed upgrades the connection and streams appended tracking events.
func TrackingFeed(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.ContextEmailKey)
		services.ServeWS(hub, c.Writer, c.Request, email)
	}
}
