package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"p9e.in/abpts/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250103_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				// Children reference opportunities by plain uuid columns.
				// No FK constraints: deleting an opportunity must not
				// cascade, and orphaned children are tolerated downstream.
				return tx.AutoMigrate(&models.Opportunity{}, &models.ComplianceItem{},
					&models.Document{}, &models.Activity{})
			},
		},
		{
			ID: "20250212_add_document_file_url",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Document{})
			},
		},
	})

	return m.Migrate()
}
