package services

import (
	"context"
	"dweb-bridge/contract"
	"dweb-bridge/domain"
	"fmt"
	"log/slog"
	"sync"
)

// DownloadQueue is the single process-wide FIFO of download jobs.
// At most maxConcurrent fetches run at the same time, the rest wait in arrival order.
// Jobs are dispatched in order but their responses may be delivered in any order,
// since every fetch takes its own time.
type DownloadQueue struct {
	mu            sync.Mutex // Protects pending and active
	ctx           context.Context
	log           *slog.Logger
	fetcher       contract.BackendFetcher
	maxConcurrent int
	pending       []domain.DownloadJob
	active        int
	wg            sync.WaitGroup // Tracks in-flight fetches
}

// NewDownloadQueue builds a queue whose fetches live as long as ctx.
func NewDownloadQueue(ctx context.Context, log *slog.Logger, fetcher contract.BackendFetcher, maxConcurrent int) *DownloadQueue {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &DownloadQueue{
		ctx:           ctx,
		log:           log,
		fetcher:       fetcher,
		maxConcurrent: maxConcurrent,
	}
}

// Enqueue appends the job and dispatches as many jobs as there are free slots.
func (q *DownloadQueue) Enqueue(job domain.DownloadJob) {
	q.mu.Lock()
	q.pending = append(q.pending, job)
	q.mu.Unlock()

	q.log.Debug("Download queued", "address", job.Address)
	q.drain()
}

// drain dispatches queued jobs while the number of in-flight fetches is below the bound.
func (q *DownloadQueue) drain() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.active < q.maxConcurrent && len(q.pending) > 0 {
		job := q.pending[0]
		q.pending[0] = domain.DownloadJob{} // release the connection reference
		q.pending = q.pending[1:]
		q.active++
		q.wg.Add(1)
		go q.dispatch(job)
	}
}

// dispatch runs one fetch and always gives its slot back, whatever the outcome.
func (q *DownloadQueue) dispatch(job domain.DownloadJob) {
	defer q.wg.Done()
	defer q.release()
	defer func() {
		if r := recover(); r != nil {
			q.log.Error("Fetch panicked", "address", job.Address, "panic", r)
		}
	}()

	if job.Conn.Closed() {
		q.log.Debug("Client gone, skipping download", "address", job.Address)
		return
	}

	frame, err := q.fetch(job.Address)
	if err != nil {
		q.log.Error("Error fetching from backend", "address", job.Address, "error", err)
		if sendErr := job.Conn.SendJSON(domain.NewErrorResponse(fmt.Sprintf("Error fetching: %s", err))); sendErr != nil {
			q.log.Warn("Unable to report download failure", "session_id", job.Conn.ID(), "error", sendErr)
		}
		return
	}

	if err := job.Conn.SendBinary(frame); err != nil {
		q.log.Warn("Unable to deliver download", "session_id", job.Conn.ID(), "address", job.Address, "error", err)
		return
	}
	q.log.Info("Download delivered", "address", job.Address, "bytes", len(frame))
}

func (q *DownloadQueue) fetch(address domain.ContentAddress) ([]byte, error) {
	result, err := q.fetcher.Fetch(q.ctx, address)
	if err != nil {
		return nil, err
	}
	return domain.EncodeFrame(address, result)
}

func (q *DownloadQueue) release() {
	q.mu.Lock()
	q.active--
	q.mu.Unlock()
	q.drain()
}

// Stats returns a snapshot of the queue.
func (q *DownloadQueue) Stats() domain.QueueStats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return domain.QueueStats{
		Queued:        len(q.pending),
		Active:        q.active,
		MaxConcurrent: q.maxConcurrent,
	}
}

// Wait blocks until every dispatched fetch has completed.
func (q *DownloadQueue) Wait() {
	q.wg.Wait()
}
