package config

import (
	"fmt"
	"log"
	"os"

	"revsplit/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDBConfigByEnv(env string) string {
	var user, password, host, port, name string

	switch env {
	case "dev":
		user = os.Getenv("DEV_DB_USER")
		password = os.Getenv("DEV_DB_PASSWORD")
		host = os.Getenv("DEV_DB_HOST")
		port = os.Getenv("DEV_DB_PORT")
		name = os.Getenv("DEV_DB_NAME")
	case "qc":
		user = os.Getenv("QC_DB_USER")
		password = os.Getenv("QC_DB_PASSWORD")
		host = os.Getenv("QC_DB_HOST")
		port = os.Getenv("QC_DB_PORT")
		name = os.Getenv("QC_DB_NAME")
	case "prod":
		user = os.Getenv("PROD_DB_USER")
		password = os.Getenv("PROD_DB_PASSWORD")
		host = os.Getenv("PROD_DB_HOST")
		port = os.Getenv("PROD_DB_PORT")
		name = os.Getenv("PROD_DB_NAME")
	default:
		log.Fatalf("Unknown environment: %s", env)
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require TimeZone=Asia/Ho_Chi_Minh",
		host, user, password, name, port)
}

func ConnectDB() {
	var err error
	env := os.Getenv("ENV")
	dsn := getDBConfigByEnv(env)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// MigrateDB migrate schema và tạo các partial unique index bảo vệ lát active:
// kỷ luật deactivate-then-insert là thuộc tính ràng buộc của database, không
// phải lock phía ứng dụng.
func MigrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Collection{},
		&models.CollectionMember{},
		&models.Category{},
		&models.Product{},
		&models.CollectionRevenueConfig{},
		&models.IndividualShare{},
		&models.ItemAttribution{},
		&models.RevenueEvent{},
		&models.DailyCollectionRevenue{},
	); err != nil {
		return err
	}

	// Một share active duy nhất cho mỗi (collection, beneficiary)
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_user_share
		ON individual_shares (collection_id, user_id) WHERE is_active AND user_id IS NOT NULL`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_wallet_share
		ON individual_shares (collection_id, wallet_address) WHERE is_active AND user_id IS NULL`).Error; err != nil {
		return err
	}

	// Một attribution active duy nhất cho mỗi item
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_attribution
		ON item_attributions (item_id, item_type) WHERE is_active`).Error
}
