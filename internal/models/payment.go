package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment records a settled card payment for a parcel. Rows are immutable
// once inserted; repeated attempts for one parcel produce separate rows.
type Payment struct {
	gorm.Model
	ParcelID      uint      `gorm:"index;not null" json:"parcelId"`
	Email         string    `gorm:"index" json:"email"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId"`
	PaidAt        time.Time `gorm:"column:paid_at" json:"paid_at"`
}

func (Payment) TableName() string {
	return "payments"
}
