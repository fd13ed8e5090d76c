package sinks

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultQueueSize       = 1000
	DefaultDeliveryTimeout = 15 * time.Second
)

//go:generate mockery --name=Dispatcher --dir=. --output=./mocks --filename=dispatcher_mock.go --case=underscore --with-expecter
type Dispatcher interface {
	Dispatch(record *assessment.Record)
}

// Worker delivers stored assessments to every sink off the request path.
// Tasks are dropped, with a warning, when the queue is full.
type Worker struct {
	logger   *logrus.Logger
	sinks    []assessment.Sink
	timeout  time.Duration
	taskChan chan *assessment.Record
	closed   atomic.Bool
	mu       sync.RWMutex
	wg       sync.WaitGroup
}

func NewWorker(logger *logrus.Logger, sinks []assessment.Sink, queueSize int, timeout time.Duration) *Worker {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}
	return &Worker{
		logger:   logger,
		sinks:    sinks,
		timeout:  timeout,
		taskChan: make(chan *assessment.Record, queueSize),
	}
}

func (w *Worker) StartWorkers(n int) {
	if n <= 0 {
		n = 1
	}
	w.logger.WithField("workers", n).Info("starting sink workers")
	for i := 0; i < n; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for record := range w.taskChan {
				w.Deliver(context.Background(), record)
			}
		}()
	}
}

func (w *Worker) Dispatch(record *assessment.Record) {
	if len(w.sinks) == 0 {
		return
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed.Load() {
		return
	}
	select {
	case w.taskChan <- record:
	default:
		w.logger.WithField("conversation_id", record.ConversationID).
			Warn("sink queue is full, dropping delivery")
		prometheus.RecordSinkFailure("queue")
	}
}

// Deliver fans record out to all sinks concurrently and waits for them.
// Failures are logged and counted per sink; one failing sink does not cancel
// the others.
func (w *Worker) Deliver(ctx context.Context, record *assessment.Record) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, sink := range w.sinks {
		sink := sink
		g.Go(func() error {
			if err := sink.Deliver(gctx, record); err != nil {
				w.logger.WithFields(logrus.Fields{
					"sink":            sink.Name(),
					"conversation_id": record.ConversationID,
				}).WithError(err).Error("sink delivery failed")
				prometheus.RecordSinkFailure(sink.Name())
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Shutdown stops accepting records and waits for queued ones to drain or
// for ctx to expire.
func (w *Worker) Shutdown(ctx context.Context) {
	w.mu.Lock()
	if w.closed.Swap(true) {
		w.mu.Unlock()
		return
	}
	close(w.taskChan)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		w.logger.Info("sink workers stopped")
	case <-ctx.Done():
		w.logger.WithField("pending", len(w.taskChan)).Warn("sink workers did not drain before shutdown")
	}
}
