package services

import (
	"bytes"
	"dweb-bridge/domain"
	"dweb-bridge/errors"
	"dweb-bridge/internal/clock"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
)

// uploadEntry is the live state of one upload session.
type uploadEntry struct {
	mimeType    string
	totalChunks int
	received    int
	slots       [][]byte
	filled      []bool
	options     domain.UploadOptions
	conn        domain.Connection
	timer       *clock.Timer
	generation  uint64 // Bumped on every arrival, a timer only expires the generation it was armed for
}

// UploadAccumulator reassembles files sent as indexed chunks, keyed by filename.
// An entry lives until all its slots are filled, its metadata is contradicted,
// or no chunk arrived for the expiration window.
type UploadAccumulator struct {
	mu          sync.Mutex // Protects entries and every entry they hold
	log         *slog.Logger
	clock       clock.Clock
	expiration  time.Duration
	expiredChan chan<- domain.UploadExpired
	entries     map[string]*uploadEntry
}

// NewUploadAccumulator initializes an empty accumulator.
// Expiration events are pushed to expiredChan without blocking; a nil channel disables them.
func NewUploadAccumulator(log *slog.Logger, c clock.Clock, expiration time.Duration,
	expiredChan chan<- domain.UploadExpired) *UploadAccumulator {
	return &UploadAccumulator{
		log:         log,
		clock:       c,
		expiration:  expiration,
		expiredChan: expiredChan,
		entries:     make(map[string]*uploadEntry),
	}
}

// Add stores one chunk. It returns the reconstructed file once every index has been received.
// A duplicate index is ignored (first write wins) but still resets the expiration timer.
func (a *UploadAccumulator) Add(chunk domain.UploadChunk) (*domain.CompletedUpload, error) {
	if chunk.TotalChunks < 1 || chunk.ChunkIndex < 0 || chunk.ChunkIndex >= chunk.TotalChunks {
		return nil, errors.ErrChunkIndexOutOfRange
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	key := chunk.Filename
	entry, ok := a.entries[key]
	if !ok {
		entry = &uploadEntry{
			mimeType:    chunk.MimeType,
			totalChunks: chunk.TotalChunks,
			slots:       make([][]byte, chunk.TotalChunks),
			filled:      make([]bool, chunk.TotalChunks),
			options:     chunk.Options,
		}
		a.entries[key] = entry
		a.log.Debug("Upload started", "filename", key, "total_chunks", chunk.TotalChunks)
	} else if entry.totalChunks != chunk.TotalChunks || entry.mimeType != chunk.MimeType {
		a.removeLocked(key, entry)
		a.log.Warn("Upload metadata mismatch, dropping entry", "filename", key,
			"total_chunks", entry.totalChunks, "got_total_chunks", chunk.TotalChunks,
			"mime_type", entry.mimeType, "got_mime_type", chunk.MimeType)
		return nil, fmt.Errorf("%w: expected total_chunks=%d mime_type=%q, got total_chunks=%d mime_type=%q",
			errors.ErrUploadMismatch, entry.totalChunks, entry.mimeType, chunk.TotalChunks, chunk.MimeType)
	}

	if !entry.filled[chunk.ChunkIndex] {
		entry.slots[chunk.ChunkIndex] = chunk.Data
		entry.filled[chunk.ChunkIndex] = true
		entry.received++
	}
	entry.conn = chunk.Conn
	a.armLocked(key, entry)

	if entry.received < entry.totalChunks {
		return nil, nil
	}

	a.removeLocked(key, entry)
	return &domain.CompletedUpload{
		Filename: key,
		MimeType: entry.mimeType,
		Data:     bytes.Join(entry.slots, nil),
		Options:  entry.options,
		Conn:     entry.conn,
	}, nil
}

// armLocked (re)starts the inactivity timer of an entry. Must be called with a.mu held.
func (a *UploadAccumulator) armLocked(key string, entry *uploadEntry) {
	if entry.timer != nil {
		entry.timer.Stop()
	}
	entry.generation++
	generation := entry.generation
	entry.timer = a.clock.AfterFunc(a.expiration, func() {
		a.expire(key, entry, generation)
	})
}

// removeLocked deletes an entry and cancels its timer. Must be called with a.mu held.
func (a *UploadAccumulator) removeLocked(key string, entry *uploadEntry) {
	if entry.timer != nil {
		entry.timer.Stop()
	}
	delete(a.entries, key)
}

// expire is the Active -> Expired transition. A timer that lost a race against a newer
// chunk finds a different generation and does nothing.
func (a *UploadAccumulator) expire(key string, entry *uploadEntry, generation uint64) {
	a.mu.Lock()
	current, ok := a.entries[key]
	if !ok || current != entry || entry.generation != generation {
		a.mu.Unlock()
		return
	}
	delete(a.entries, key)
	event := domain.UploadExpired{
		Filename:    key,
		Received:    entry.received,
		TotalChunks: entry.totalChunks,
		Conn:        entry.conn,
		ExpiredAt:   a.clock.Now(),
	}
	a.mu.Unlock()

	a.log.Warn("Upload expired", "filename", key, "received", event.Received, "total_chunks", event.TotalChunks)
	if a.expiredChan == nil {
		return
	}
	select {
	case a.expiredChan <- event:
	default:
		a.log.Warn("Expiration notice dropped", "filename", key)
	}
}

// Pending lists uploads still being accumulated, sorted by filename.
func (a *UploadAccumulator) Pending() []domain.UploadStatus {
	a.mu.Lock()
	statuses := lo.MapToSlice(a.entries, func(key string, entry *uploadEntry) domain.UploadStatus {
		return domain.UploadStatus{Filename: key, Received: entry.received, TotalChunks: entry.totalChunks}
	})
	a.mu.Unlock()

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Filename < statuses[j].Filename
	})
	return statuses
}
