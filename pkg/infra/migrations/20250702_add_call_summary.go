package migrations

import (
	"github.com/NeuralTrust/TrustAssess/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250702_add_call_summary",
		Name: "Keep the caller supplied summary so reassessments can rebuild the headline",
		Up: func(db *gorm.DB) error {
			return db.Exec(`
				ALTER TABLE public.risk_assessments
				ADD COLUMN IF NOT EXISTS call_summary TEXT NOT NULL DEFAULT '';
			`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`ALTER TABLE public.risk_assessments DROP COLUMN IF EXISTS call_summary;`).Error
		},
	})
}
