package database

import (
	"log"

	"restoran/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDatabase(dsn string) {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Failed to access underlying database connection: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	err = DB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Item{},
		&model.Reservation{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Database connection and migration completed successfully")
}
