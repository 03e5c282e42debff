package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/profast/parcel-server/internal/config"
	"github.com/profast/parcel-server/internal/middleware"
	"github.com/profast/parcel-server/internal/models"
	"github.com/profast/parcel-server/internal/services"
)

// CreatePaymentIntent asks the card processor for a client-payable intent.
func CreatePaymentIntent(intents services.IntentCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			// Legacy client key, kept for wire compatibility.
			AmountCents int64 `json:"amoutCents"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment request", "error": err.Error()})
			return
		}

		clientSecret, err := intents.CreateIntent(c.Request.Context(), input.AmountCents)
		if err != nil {
			log.Printf("Error creating payment intent: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment intent", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
	}
}

// RecordPayment marks the parcel paid, then stores the settled payment. The
// two writes stay sequential unless PAYMENT_TX puts them in one transaction.
func RecordPayment(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ParcelID      uint   `json:"parcelId" binding:"required"`
			Email         string `json:"email"`
			Amount        int64  `json:"amount"`
			PaymentMethod string `json:"paymentMethod"`
			TransactionID string `json:"transactionId"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment data", "error": err.Error()})
			return
		}

		payment := models.Payment{
			ParcelID:      input.ParcelID,
			Email:         input.Email,
			Amount:        input.Amount,
			PaymentMethod: input.PaymentMethod,
			TransactionID: input.TransactionID,
			PaidAt:        time.Now(),
		}

		record := func(tx *gorm.DB) error {
			result := tx.Model(&models.Parcel{}).
				Where("id = ?", input.ParcelID).
				Update("payment_status", models.PaymentStatusPaid)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return tx.Create(&payment).Error
		}

		var err error
		if cfg != nil && cfg.PaymentTx {
			err = db.Transaction(record)
		} else {
			err = record(db)
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Parcel not found"})
			return
		}
		if err != nil {
			log.Printf("Error recording payment for parcel %d: %v", input.ParcelID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record payment", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Payment recorded successfully", "insertedId": payment.ID})
	}
}

// ListPayments returns the caller's payment history, newest first. The
// queried email must match the verified identity.
func ListPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		verified := c.GetString(middleware.ContextEmailKey)
		if email == "" || email != verified {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		var payments []models.Payment
		if err := db.Where("email = ?", email).Order("paid_at DESC, id DESC").Find(&payments).Error; err != nil {
			log.Printf("Error fetching payments for %s: %v", email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get payments", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, payments)
	}
}
