package assessment

import (
	"context"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
)

type ListFilter struct {
	Limit int
	Level *risk.Category
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=assessment_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	// Upsert inserts the record or replaces the one stored for the same
	// conversation. On replace, record's ID and CreatedAt are set to the
	// stored row's.
	Upsert(ctx context.Context, record *Record) error
	GetByConversationID(ctx context.Context, conversationID string) (*Record, error)
	ListLatest(ctx context.Context, filter ListFilter) ([]Record, error)
	Stats(ctx context.Context) (*Stats, error)
}
