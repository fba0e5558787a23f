package db

import (
	"log"

	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) {
	err := db.AutoMigrate(&User{}, &RefreshToken{}, &Round{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	err = db.Exec("CREATE INDEX IF NOT EXISTS rounds_user_ts_idx ON rounds (user_id, timestamp DESC);").Error
	if err != nil {
		log.Fatalf("failed to create rounds index: %v", err)
	}
}
