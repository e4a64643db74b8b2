package workers

import (
	"context"
	"dweb-bridge/domain"
	"dweb-bridge/errors"
	"log/slog"
)

// ExpirationWorker consumes upload expirations emitted by the accumulator.
// When notify is set, the client that sent the last chunk is told its upload was dropped.
type ExpirationWorker struct {
	log         *slog.Logger
	expiredChan <-chan domain.UploadExpired
	notify      bool
}

func NewExpirationWorker(log *slog.Logger, expiredChan <-chan domain.UploadExpired, notify bool) *ExpirationWorker {
	return &ExpirationWorker{log: log, expiredChan: expiredChan, notify: notify}
}

func (w *ExpirationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case expired, ok := <-w.expiredChan:
			if !ok {
				return nil
			}
			w.handle(expired)
		}
	}
}

func (w *ExpirationWorker) handle(expired domain.UploadExpired) {
	w.log.Info("Upload dropped after inactivity", "filename", expired.Filename,
		"received", expired.Received, "total_chunks", expired.TotalChunks, "expired_at", expired.ExpiredAt)

	if !w.notify || expired.Conn == nil || expired.Conn.Closed() {
		return
	}
	response := domain.NewUploadErrorResponse(errors.ErrUploadExpired.Error(), expired.Filename)
	if err := expired.Conn.SendJSON(response); err != nil {
		w.log.Warn("Unable to notify expiration", "session_id", expired.Conn.ID(), "filename", expired.Filename, "error", err)
	}
}
