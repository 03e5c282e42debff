package models

import "gorm.io/gorm"

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Parcel is a shipment booking created by a customer. The field set mirrors
// the booking form; fields are accepted as supplied.
type Parcel struct {
	gorm.Model
	Title               string  `json:"title"`
	Type                string  `json:"type"`
	SenderName          string  `json:"senderName"`
	SenderContact       string  `json:"senderContact"`
	SenderRegion        string  `json:"senderRegion"`
	SenderCenter        string  `json:"senderCenter"`
	SenderAddress       string  `json:"senderAddress"`
	PickupInstruction   string  `json:"pickupInstruction"`
	ReceiverName        string  `json:"receiverName"`
	ReceiverContact     string  `json:"receiverContact"`
	ReceiverRegion      string  `json:"receiverRegion"`
	ReceiverCenter      string  `json:"receiverCenter"`
	ReceiverAddress     string  `json:"receiverAddress"`
	DeliveryInstruction string  `json:"deliveryInstruction"`
	Weight              float64 `json:"weight"`
	Cost                int64   `json:"cost"`
	TrackingID          string  `gorm:"index" json:"trackingId"`
	CreatedBy           string  `gorm:"column:created_by;index" json:"created_by"`
	PaymentStatus       string  `gorm:"default:unpaid" json:"payment_status"`
	DeliveryStatus      string  `gorm:"default:not_collected" json:"delivery_status"`
}

func (Parcel) TableName() string {
	return "parcels"
}
