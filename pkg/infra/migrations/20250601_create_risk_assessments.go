package migrations

import (
	"github.com/NeuralTrust/TrustAssess/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250601_create_risk_assessments",
		Name: "Create risk_assessments table",
		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS public.risk_assessments (
					id                   UUID PRIMARY KEY,
					conversation_id      TEXT NOT NULL,
					agent_id             TEXT NOT NULL DEFAULT '',
					user_id              TEXT,
					risk_level           TEXT NOT NULL CHECK (risk_level IN ('critical', 'high', 'medium', 'low')),
					risk_score           INTEGER NOT NULL CHECK (risk_score BETWEEN 0 AND 100),
					assessment           JSONB NOT NULL,
					transcript           JSONB,
					conversation_summary TEXT NOT NULL DEFAULT '',
					detected_at          TIMESTAMPTZ NOT NULL,
					created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}
			return db.Exec(`
				CREATE UNIQUE INDEX IF NOT EXISTS idx_risk_assessments_conversation_id
				ON public.risk_assessments (conversation_id);
			`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS public.risk_assessments;`).Error
		},
	})
}
