package db

import (
	"fmt"
	"log"

	"github.com/issuehub/issuehub/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	// TranslateError maps unique-constraint violations to
	// gorm.ErrDuplicatedKey so races on email/key creation surface as
	// the user-facing "already exists" condition.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}
}

// InitWithGormDB swaps in an externally constructed connection (tests).
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
