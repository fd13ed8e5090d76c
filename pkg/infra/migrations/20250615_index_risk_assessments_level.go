package migrations

import (
	"github.com/NeuralTrust/TrustAssess/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250615_index_risk_assessments_level",
		Name: "Index risk_assessments by level and detection time",
		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_risk_assessments_detected_at
				ON public.risk_assessments (detected_at DESC);
			`).Error; err != nil {
				return err
			}
			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_risk_assessments_level_detected_at
				ON public.risk_assessments (risk_level, detected_at DESC);
			`).Error
		},
		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP INDEX IF EXISTS public.idx_risk_assessments_level_detected_at;`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP INDEX IF EXISTS public.idx_risk_assessments_detected_at;`).Error
		},
	})
}
