package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/carepoint/clinic-admin/internal/api/metrics"
	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// AuditDispatcher persists audit entries off the request path. Entries are
// sharded by actor so each actor's trail is written in order.
type AuditDispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their channel and
// stop once ctx is cancelled; Wait blocks until they have.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has exited.
func (d *AuditDispatcher) Wait() { d.wg.Wait() }

// Record hands an entry to the worker for its actor. It never blocks: when
// the worker is saturated the entry is dropped and logged.
func (d *AuditDispatcher) Record(entry domain.AuditEntry) {
	idx := d.shardIndex(entry.ActorID)
	// Count before the send: the worker may dequeue before this goroutine runs again.
	depth := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx))
	depth.Inc()
	select {
	case d.workers[idx] <- entry:
	default:
		depth.Dec()
		metrics.AuditEntriesTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("actor_id", entry.ActorID).
			Str("action", entry.Action).
			Str("resource", entry.Resource).
			Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an actor deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(actorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actorID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			d.drain(label, ch)
			return
		case entry := <-ch:
			metrics.AuditQueueDepth.WithLabelValues(label).Dec()
			d.write(context.Background(), id, entry)
		}
	}
}

// drain flushes whatever is already queued so shutdown does not lose entries.
func (d *AuditDispatcher) drain(label string, ch <-chan domain.AuditEntry) {
	for {
		select {
		case entry := <-ch:
			metrics.AuditQueueDepth.WithLabelValues(label).Dec()
			d.write(context.Background(), -1, entry)
		default:
			return
		}
	}
}

func (d *AuditDispatcher) write(ctx context.Context, workerID int, entry domain.AuditEntry) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	start := time.Now()
	err := d.repo.Insert(ctx, &entry)
	metrics.AuditWriteDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AuditEntriesTotal.WithLabelValues("failed").Inc()
		d.log.Error().Err(err).
			Str("actor_id", entry.ActorID).
			Str("resource", entry.Resource).
			Int("worker_id", workerID).
			Msg("audit write failed")
		return
	}
	metrics.AuditEntriesTotal.WithLabelValues("written").Inc()
}
