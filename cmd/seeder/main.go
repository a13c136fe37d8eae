package main

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"arcana/internal/infra"
	"arcana/internal/models/db_models"
	"arcana/pkg/utils"
)

// Seeds a demo account with a funded wallet and a small reading history,
// including the one failed row nothing else ever writes.
func main() {
	cfg := infra.LoadConfig()
	db := infra.InitPostgresql(cfg)
	defer infra.ClosePostgresql(db)

	var existing db_models.Account
	if err := db.First(&existing, "email = ?", "demo@arcana.test").Error; err == nil {
		log.Println("Demo account already seeded, nothing to do")
		return
	}

	hash, err := utils.HashPassword("password")
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	birthDate := "1990-01-01"
	birthTime := "12:00"
	birthLocation := "Istanbul"

	account := db_models.Account{
		Name:          "Demo User",
		Email:         "demo@arcana.test",
		PasswordHash:  hash,
		Balance:       decimal.RequireFromString("25.00"),
		BirthDate:     &birthDate,
		BirthTime:     &birthTime,
		BirthLocation: &birthLocation,
	}
	if err := db.Create(&account).Error; err != nil {
		log.Fatalf("Failed to seed account: %v", err)
	}

	completed := "The stars favor bold decisions this week."
	readings := []db_models.Reading{
		{
			AccountID: account.ID,
			Type:      db_models.ReadingTypeHoroscope,
			InputData: datatypes.JSON(`{"name":"Demo User","dob":"1990-01-01","time":"12:00","location":"Istanbul","period":"weekly"}`),
			Result:    &completed,
			Status:    db_models.ReadingStatusCompleted,
		},
		{
			AccountID: account.ID,
			Type:      db_models.ReadingTypePalm,
			InputData: datatypes.JSON(`{"image_path":"palm_images/seed.jpg"}`),
			Status:    db_models.ReadingStatusFailed,
		},
	}
	for i := range readings {
		if err := db.Create(&readings[i]).Error; err != nil {
			log.Fatalf("Failed to seed reading: %v", err)
		}
	}

	log.Printf("Seeded demo account %s with %d readings", account.ID, len(readings))
}
