package assessment

import "context"

// Sink receives every stored assessment. Deliveries are best effort: a
// failing sink never fails the webhook that produced the record.
//
//go:generate mockery --name=Sink --dir=. --output=./mocks --filename=sink_mock.go --case=underscore --with-expecter
type Sink interface {
	Name() string
	Deliver(ctx context.Context, record *Record) error
}
