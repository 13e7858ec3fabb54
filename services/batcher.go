package services

import (
	"context"
	"errors"
	"kucukaslan/userapi/domain"
	"log"
	"sync"
	"time"
)

var (
	// ErrBufferFull is returned when the activity buffer channel is full
	ErrBufferFull = errors.New("activity buffer is full")
)

// ActivitySink persists batches of activity events
type ActivitySink interface {
	SaveActivities(ctx context.Context, events []domain.ActivityEvent) error
}

// ActivityDedup tracks which events were already persisted
type ActivityDedup interface {
	AreProcessed(ctx context.Context, events []domain.ActivityEvent) (map[string]bool, error)
	MarkProcessed(ctx context.Context, events []domain.ActivityEvent) error
}

var _ domain.ActivityRecorder = &ActivityBatcher{}

// ActivityBatcher buffers activity events and flushes them to the sink in
// batches, either when a batch fills up or when the flush interval elapses
type ActivityBatcher struct {
	eventChan     chan domain.ActivityEvent
	batchSize     int
	flushInterval time.Duration
	sink          ActivitySink
	dedup         ActivityDedup
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	mu            sync.Mutex
	isRunning     bool
	currentBatch  []domain.ActivityEvent
}

// NewActivityBatcher creates a batcher with a buffer of the given capacity.
// Call Start to launch the worker.
func NewActivityBatcher(
	capacity int,
	batchSize int,
	flushInterval time.Duration,
	sink ActivitySink,
	dedup ActivityDedup,
) *ActivityBatcher {
	if batchSize <= 0 {
		batchSize = 1
	}
	if flushInterval <= 0 {
		flushInterval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ActivityBatcher{
		eventChan:     make(chan domain.ActivityEvent, capacity),
		batchSize:     batchSize,
		flushInterval: flushInterval,
		sink:          sink,
		dedup:         dedup,
		ctx:           ctx,
		cancel:        cancel,
		currentBatch:  make([]domain.ActivityEvent, 0, batchSize),
	}
}

// Start launches the background worker goroutine
func (b *ActivityBatcher) Start() {
	b.mu.Lock()
	if b.isRunning {
		b.mu.Unlock()
		return
	}
	b.isRunning = true
	b.mu.Unlock()

	b.wg.Add(1)
	go b.worker()
	log.Println("ActivityBatcher started")
}

// Record enqueues an event without blocking. Returns ErrBufferFull if the channel is full.
func (b *ActivityBatcher) Record(event domain.ActivityEvent) error {
	select {
	case b.eventChan <- event:
		return nil
	default:
		return ErrBufferFull
	}
}

func (b *ActivityBatcher) worker() {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.ctx.Done():
			b.flushRemaining()
			return

		case event := <-b.eventChan:
			b.mu.Lock()
			b.currentBatch = append(b.currentBatch, event)
			shouldFlush := len(b.currentBatch) >= b.batchSize
			b.mu.Unlock()

			if shouldFlush {
				b.flushBatch()
			}

		case <-ticker.C:
			b.flushBatch()
		}
	}
}

func (b *ActivityBatcher) flushBatch() {
	b.mu.Lock()
	if len(b.currentBatch) == 0 {
		b.mu.Unlock()
		return
	}
	batch := make([]domain.ActivityEvent, len(b.currentBatch))
	copy(batch, b.currentBatch)
	b.currentBatch = b.currentBatch[:0]
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pending := b.filterProcessed(ctx, batch)
	if len(pending) == 0 {
		log.Printf("ActivityBatcher: All %d events in batch were already processed", len(batch))
		return
	}

	if err := b.sink.SaveActivities(ctx, pending); err != nil {
		log.Printf("ActivityBatcher: Failed to flush batch of %d events: %v", len(pending), err)
		return
	}
	log.Printf("ActivityBatcher: Flushed batch of %d events (filtered from %d)", len(pending), len(batch))

	if err := b.dedup.MarkProcessed(ctx, pending); err != nil {
		log.Printf("ActivityBatcher: Failed to mark events as processed: %v", err)
	}
}

// flushRemaining empties both the pending batch and the channel during shutdown
func (b *ActivityBatcher) flushRemaining() {
	drained := 0
	for {
		select {
		case event := <-b.eventChan:
			b.mu.Lock()
			b.currentBatch = append(b.currentBatch, event)
			b.mu.Unlock()
			drained++
		default:
			if drained > 0 {
				log.Printf("ActivityBatcher: Drained %d events from channel during shutdown", drained)
			}
			b.flushBatch()
			return
		}
	}
}

// filterProcessed drops events the dedup store has already seen. If the store
// is unreachable every event is treated as new.
func (b *ActivityBatcher) filterProcessed(ctx context.Context, events []domain.ActivityEvent) []domain.ActivityEvent {
	processed, err := b.dedup.AreProcessed(ctx, events)
	if err != nil {
		log.Printf("ActivityBatcher: Dedup check failed, assuming all events are new: %v", err)
		return events
	}

	pending := make([]domain.ActivityEvent, 0, len(events))
	for _, e := range events {
		if !processed[e.UniqueKey()] {
			pending = append(pending, e)
		}
	}
	return pending
}

// Shutdown stops the worker after flushing everything still buffered
func (b *ActivityBatcher) Shutdown() error {
	b.mu.Lock()
	if !b.isRunning {
		b.mu.Unlock()
		return nil
	}
	b.isRunning = false
	b.mu.Unlock()

	log.Println("ActivityBatcher: Initiating graceful shutdown...")
	b.cancel()
	b.wg.Wait()
	log.Println("ActivityBatcher: Shutdown complete")
	return nil
}

// BufferSize returns the number of events waiting in the channel
func (b *ActivityBatcher) BufferSize() int {
	return len(b.eventChan)
}

// PendingSize returns the number of events collected but not yet flushed
func (b *ActivityBatcher) PendingSize() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.currentBatch)
}
