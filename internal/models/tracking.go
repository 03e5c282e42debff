package models

import (
	"time"

	"gorm.io/gorm"
)

// TrackingEvent is one append-only entry in a parcel's status log.
type TrackingEvent struct {
	gorm.Model
	TrackingID string    `gorm:"index;not null" json:"tracking_id"`
	ParcelID   *uint     `gorm:"index" json:"parcel_id,omitempty"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	UpdatedBy  string    `json:"updated_by"`
	Time       time.Time `json:"time"`
}

func (TrackingEvent) TableName() string {
	return "tracking_events"
}
