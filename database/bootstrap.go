package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"agribot/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.IrrigationRecord{},
		&entities.ChatSession{},
		&entities.ChatMessage{},
		&entities.MarketPrice{},
		&entities.NewsArticle{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
