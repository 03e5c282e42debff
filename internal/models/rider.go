package models

import "gorm.io/gorm"

const (
	RiderStatusPending  = "pending"
	RiderStatusActive   = "active"
	RiderStatusRejected = "rejected"
)

// Rider is a delivery-personnel application. Applications start pending;
// activation by an admin promotes the owning user's role to "rider".
type Rider struct {
	gorm.Model
	Name             string `json:"name"`
	Email            string `gorm:"index;not null" json:"email"`
	Phone            string `json:"phone"`
	Region           string `json:"region"`
	District         string `json:"district"`
	NID              string `gorm:"column:nid" json:"nid"`
	BikeBrand        string `json:"bikeBrand"`
	BikeRegistration string `json:"bikeRegistration"`
	Status           string `gorm:"default:pending" json:"status"`
}

func (Rider) TableName() string {
	return "riders"
}
