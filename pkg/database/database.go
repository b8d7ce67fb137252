package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bakery_frontdesk/pkg/config"
	"bakery_frontdesk/pkg/models"
)

var DB *gorm.DB

// InitDatabase opens the gateway's own store. The only table it owns is the
// pending-order saga record; every domain entity lives upstream.
func InitDatabase() error {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}
	if config.IsDevelopment() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), gormConfig)
	if err != nil {
		return err
	}
	DB = db

	if err := DB.AutoMigrate(&models.PendingOrder{}); err != nil {
		return err
	}

	log.Println("✅ Database connection established")
	return nil
}

// CloseDatabase closes the underlying connection pool.
func CloseDatabase() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
