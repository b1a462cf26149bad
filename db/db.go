package db

import (
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/models"
	"github.com/oggainzofficial-dotcom/og-gainz-sub001/utils"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogError(err, "Warning: Impossible to load the .env file")
		utils.LogInfo("The environment variable DB_URL must be defined in the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "DB_URL is not set")
		panic("Database URL is not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.Subscription{},
		&models.Delivery{},
		&models.DeliveryItem{},
		&models.DeliveryStatusLog{},
		&models.PauseRequest{},
		&models.SkipRequest{},
		&models.WithdrawPauseRequest{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	utils.LogSuccess("Database connection successful")
}
