package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/profast/parcel-server/internal/config"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
}
