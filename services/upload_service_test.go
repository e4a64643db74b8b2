package services

import (
	"context"
	"dweb-bridge/domain"
	"dweb-bridge/errors"
	"dweb-bridge/mocks"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUploadService_HandleChunk(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	accumulator := mocks.NewMockIUploadAccumulator(ctrl)
	finalizer := mocks.NewMockIUploadFinalizer(ctrl)
	service := NewUploadService(log, accumulator, finalizer)

	first := chunk("a.txt", 0, 2, "he")
	last := chunk("a.txt", 1, 2, "llo")
	completed := &domain.CompletedUpload{Filename: "a.txt", MimeType: "text/plain", Data: []byte("hello")}

	gomock.InOrder(
		accumulator.EXPECT().Add(first).Return(nil, nil),
		accumulator.EXPECT().Add(last).Return(completed, nil),
	)
	finalizer.EXPECT().Finalize(gomock.Any(), *completed).Times(1)

	// Given a connection context canceled right after the last chunk
	ctx, cancel := context.WithCancel(context.Background())

	req.NoError(service.HandleChunk(ctx, first))
	req.NoError(service.HandleChunk(ctx, last))
	cancel()
	service.Wait()
}

func TestUploadService_FinalizationOutlivesConnection(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	accumulator := mocks.NewMockIUploadAccumulator(ctrl)
	finalizer := mocks.NewMockIUploadFinalizer(ctrl)
	service := NewUploadService(log, accumulator, finalizer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	accumulator.EXPECT().Add(gomock.Any()).Return(&domain.CompletedUpload{Filename: "a.txt"}, nil)
	finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, upload domain.CompletedUpload) {
			req.NoError(ctx.Err())
		})

	req.NoError(service.HandleChunk(ctx, chunk("a.txt", 0, 1, "x")))
	service.Wait()
}

func TestUploadService_FinalizationPanicAnswersClient(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	accumulator := mocks.NewMockIUploadAccumulator(ctrl)
	finalizer := mocks.NewMockIUploadFinalizer(ctrl)
	service := NewUploadService(log, accumulator, finalizer)
	conn := newRecordingConn("session-1")

	// Given a finalizer that panics
	accumulator.EXPECT().Add(gomock.Any()).Return(&domain.CompletedUpload{Filename: "a.txt", Conn: conn}, nil)
	finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, upload domain.CompletedUpload) {
			panic("boom")
		})

	// When the last chunk arrives
	req.NoError(service.HandleChunk(context.Background(), chunk("a.txt", 0, 1, "x")))
	service.Wait()

	// Then the client still gets an error naming its file
	req.Equal([]any{domain.NewUploadErrorResponse(errors.ErrUploadAborted.Error(), "a.txt")}, conn.JSONs())
}

func TestUploadService_PropagatesAccumulatorErrors(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	accumulator := mocks.NewMockIUploadAccumulator(ctrl)
	finalizer := mocks.NewMockIUploadFinalizer(ctrl)
	service := NewUploadService(log, accumulator, finalizer)

	accumulator.EXPECT().Add(gomock.Any()).Return(nil, errors.ErrUploadMismatch)
	finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any()).Times(0)

	err := service.HandleChunk(context.Background(), chunk("a.txt", 0, 2, "x"))
	req.ErrorIs(err, errors.ErrUploadMismatch)
}

func TestUploadService_Pending(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	accumulator := mocks.NewMockIUploadAccumulator(ctrl)
	service := NewUploadService(log, accumulator, mocks.NewMockIUploadFinalizer(ctrl))

	statuses := []domain.UploadStatus{{Filename: "a.txt", Received: 1, TotalChunks: 3}}
	accumulator.EXPECT().Pending().Return(statuses)

	req.Equal(statuses, service.Pending())
}
