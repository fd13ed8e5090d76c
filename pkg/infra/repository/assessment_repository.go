package repository

import (
	"context"
	"errors"
	"math"

	"github.com/NeuralTrust/TrustAssess/pkg/domain"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) assessment.Repository {
	return &assessmentRepository{
		db: db,
	}
}

// Upsert keeps the original row id and created_at when a conversation is
// reassessed; everything else is replaced. The stored id and created_at are
// read back into record so callers cache and publish what the row holds.
func (r *assessmentRepository) Upsert(ctx context.Context, record *assessment.Record) error {
	return r.upsert(r.db.WithContext(ctx), record).Error
}

func (r *assessmentRepository) upsert(tx *gorm.DB, record *assessment.Record) *gorm.DB {
	return tx.Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "conversation_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"agent_id",
				"user_id",
				"risk_level",
				"risk_score",
				"assessment",
				"transcript",
				"conversation_summary",
				"call_summary",
				"detected_at",
				"updated_at",
			}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "created_at"}}},
	).Create(record)
}

func (r *assessmentRepository) GetByConversationID(ctx context.Context, conversationID string) (*assessment.Record, error) {
	var record assessment.Record
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("assessment", conversationID)
		}
		return nil, err
	}
	return &record, nil
}

func (r *assessmentRepository) ListLatest(ctx context.Context, filter assessment.ListFilter) ([]assessment.Record, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	query := r.db.WithContext(ctx).
		Omit("transcript").
		Order("detected_at DESC").
		Limit(limit)
	if filter.Level != nil {
		query = query.Where("risk_level = ?", *filter.Level)
	}

	var records []assessment.Record
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *assessmentRepository) Stats(ctx context.Context) (*assessment.Stats, error) {
	type row struct {
		RiskLevel risk.Category
		Count     int
		ScoreSum  int
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&assessment.Record{}).
		Select("risk_level, COUNT(*) AS count, COALESCE(SUM(risk_score), 0) AS score_sum").
		Group("risk_level").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	byLevel := make(map[string]levelTotals, len(rows))
	for _, rw := range rows {
		byLevel[string(rw.RiskLevel)] = levelTotals{count: rw.Count, scoreSum: rw.ScoreSum}
	}
	return buildStats(byLevel), nil
}

type levelTotals struct {
	count    int
	scoreSum int
}

func buildStats(byLevel map[string]levelTotals) *assessment.Stats {
	stats := &assessment.Stats{ByLevel: make(map[risk.Category]int, len(risk.Categories()))}
	sum := 0
	for _, c := range risk.Categories() {
		stats.ByLevel[c] = 0
	}
	for level, t := range byLevel {
		c, err := risk.Parse(level)
		if err != nil {
			continue
		}
		stats.ByLevel[c] = t.count
		stats.Total += t.count
		sum += t.scoreSum
	}
	if stats.Total > 0 {
		stats.AverageScore = int(math.Round(float64(sum) / float64(stats.Total)))
	}
	return stats
}
