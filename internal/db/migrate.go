package db

import (
	"puckline/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Team{},
		&models.Player{},
		&models.Game{},
		&models.OddsLine{},
		&models.PlayerProp{},
		&models.NewsArticle{},
		&models.Parlay{},
		&models.BetLeg{},
		&models.Analysis{},
		&models.PlayerStatLine{},
	)
}
