package services

import (
	"context"
	"dweb-bridge/contract"
	"dweb-bridge/domain"
	"dweb-bridge/errors"
	"log/slog"
	"sync"
)

// UploadService glues the accumulator to the finalizer.
// Each completed file is finalized in its own goroutine so the connection keeps reading.
type UploadService struct {
	log         *slog.Logger
	accumulator contract.IUploadAccumulator
	finalizer   contract.IUploadFinalizer
	wg          sync.WaitGroup
}

func NewUploadService(log *slog.Logger, accumulator contract.IUploadAccumulator, finalizer contract.IUploadFinalizer) *UploadService {
	return &UploadService{log: log, accumulator: accumulator, finalizer: finalizer}
}

func (s *UploadService) HandleChunk(ctx context.Context, chunk domain.UploadChunk) error {
	completed, err := s.accumulator.Add(chunk)
	if err != nil {
		return err
	}
	if completed == nil {
		return nil
	}

	s.log.Debug("All chunks received", "filename", completed.Filename, "bytes", len(completed.Data))
	// Uploads outlive the connection that started them
	finalizeCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("Finalization panicked", "filename", completed.Filename, "panic", r)
				s.abort(*completed)
			}
		}()
		s.finalizer.Finalize(finalizeCtx, *completed)
	}()
	return nil
}

// abort answers the client of an upload whose finalization never reported back.
func (s *UploadService) abort(upload domain.CompletedUpload) {
	if upload.Conn == nil {
		return
	}
	response := domain.NewUploadErrorResponse(errors.ErrUploadAborted.Error(), upload.Filename)
	if err := upload.Conn.SendJSON(response); err != nil {
		s.log.Warn("Unable to report upload failure", "session_id", upload.Conn.ID(),
			"filename", upload.Filename, "error", err)
	}
}

func (s *UploadService) Pending() []domain.UploadStatus {
	return s.accumulator.Pending()
}

// Wait blocks until every running finalization has returned.
func (s *UploadService) Wait() {
	s.wg.Wait()
}
