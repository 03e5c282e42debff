package database

import (
	"github.com/profast/parcel-server/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.Parcel{},
		&models.Payment{},
		&models.Rider{},
		&models.TrackingEvent{},
	)
	if err != nil {
		return err
	}

	// Rows imported from the legacy store may predate the payment_status
	// and role defaults.
	if err := db.Exec(`UPDATE parcels SET payment_status = 'unpaid' WHERE payment_status IS NULL OR payment_status = ''`).Error; err != nil {
		return err
	}
	return db.Exec(`UPDATE users SET role = 'user' WHERE role IS NULL OR role = ''`).Error
}
