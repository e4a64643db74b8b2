package services

import (
	"dweb-bridge/domain"
	"dweb-bridge/errors"
	"dweb-bridge/internal/clock"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const expiration = 180 * time.Second

func newAccumulator(t *testing.T) (*UploadAccumulator, *clock.FakeClock, chan domain.UploadExpired) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	expired := make(chan domain.UploadExpired, 8)
	return NewUploadAccumulator(log, fake, expiration, expired), fake, expired
}

func chunk(filename string, index, total int, data string) domain.UploadChunk {
	return domain.UploadChunk{
		Filename:    filename,
		MimeType:    "text/plain",
		ChunkIndex:  index,
		TotalChunks: total,
		Data:        []byte(data),
		Conn:        newRecordingConn("session-1"),
	}
}

func TestUploadAccumulator_CompletesInAnyOrder(t *testing.T) {
	req := require.New(t)
	accumulator, fake, _ := newAccumulator(t)

	// Given chunks arriving out of order
	for _, index := range []int{2, 0} {
		completed, err := accumulator.Add(chunk("a.txt", index, 3, []string{"he", "ll", "o!"}[index]))
		req.NoError(err)
		req.Nil(completed)
	}

	// When the last missing index arrives
	completed, err := accumulator.Add(chunk("a.txt", 1, 3, "ll"))

	// Then the file is rebuilt in index order and the entry is gone
	req.NoError(err)
	req.NotNil(completed)
	req.Equal("hello!", string(completed.Data))
	req.Equal("text/plain", completed.MimeType)
	req.Empty(accumulator.Pending())
	req.Equal(0, fake.PendingCount())
}

func TestUploadAccumulator_DuplicateIndexIsIdempotent(t *testing.T) {
	req := require.New(t)
	accumulator, _, _ := newAccumulator(t)

	_, err := accumulator.Add(chunk("a.txt", 0, 2, "first"))
	req.NoError(err)
	completed, err := accumulator.Add(chunk("a.txt", 0, 2, "second"))
	req.NoError(err)
	req.Nil(completed)
	req.Equal([]domain.UploadStatus{{Filename: "a.txt", Received: 1, TotalChunks: 2}}, accumulator.Pending())

	completed, err = accumulator.Add(chunk("a.txt", 1, 2, "-tail"))
	req.NoError(err)
	req.NotNil(completed)
	req.Equal("first-tail", string(completed.Data))
}

func TestUploadAccumulator_SingleChunkCompletesImmediately(t *testing.T) {
	req := require.New(t)
	accumulator, fake, _ := newAccumulator(t)

	completed, err := accumulator.Add(chunk("one.txt", 0, 1, "whole"))

	req.NoError(err)
	req.NotNil(completed)
	req.Equal("whole", string(completed.Data))
	req.Equal(0, fake.PendingCount())
}

func TestUploadAccumulator_ExpiresIdleEntry(t *testing.T) {
	req := require.New(t)
	accumulator, fake, expired := newAccumulator(t)

	_, err := accumulator.Add(chunk("a.txt", 0, 2, "he"))
	req.NoError(err)

	// When the entry stays idle for the whole window
	fake.Advance(expiration)

	// Then it is removed and an expiration event is emitted
	req.Empty(accumulator.Pending())
	select {
	case event := <-expired:
		req.Equal("a.txt", event.Filename)
		req.Equal(1, event.Received)
		req.Equal(2, event.TotalChunks)
		req.NotNil(event.Conn)
	default:
		req.Fail("expected an expiration event")
	}

	// And a later chunk starts a fresh entry
	completed, err := accumulator.Add(chunk("a.txt", 1, 2, "llo"))
	req.NoError(err)
	req.Nil(completed)
	req.Equal([]domain.UploadStatus{{Filename: "a.txt", Received: 1, TotalChunks: 2}}, accumulator.Pending())
}

func TestUploadAccumulator_ArrivalResetsTimer(t *testing.T) {
	req := require.New(t)
	accumulator, fake, expired := newAccumulator(t)

	_, err := accumulator.Add(chunk("a.txt", 0, 3, "a"))
	req.NoError(err)
	fake.Advance(100 * time.Second)

	// A duplicate still counts as activity
	_, err = accumulator.Add(chunk("a.txt", 0, 3, "a"))
	req.NoError(err)
	fake.Advance(100 * time.Second)
	req.Len(accumulator.Pending(), 1)
	req.Empty(expired)

	fake.Advance(80 * time.Second)
	req.Empty(accumulator.Pending())
	req.Len(expired, 1)
}

func TestUploadAccumulator_Rejections(t *testing.T) {
	tests := []struct {
		description string
		first       *domain.UploadChunk
		modify      func(c *domain.UploadChunk)
		wantErr     error
	}{
		{
			"Should reject a chunk index equal to total chunks",
			nil,
			func(c *domain.UploadChunk) { c.ChunkIndex = 2 },
			errors.ErrChunkIndexOutOfRange,
		},
		{
			"Should reject a negative chunk index",
			nil,
			func(c *domain.UploadChunk) { c.ChunkIndex = -1 },
			errors.ErrChunkIndexOutOfRange,
		},
		{
			"Should reject zero total chunks",
			nil,
			func(c *domain.UploadChunk) { c.TotalChunks = 0 },
			errors.ErrChunkIndexOutOfRange,
		},
		{
			"Should fail the entry when total chunks changes",
			&domain.UploadChunk{Filename: "a.txt", MimeType: "text/plain", ChunkIndex: 0, TotalChunks: 2},
			func(c *domain.UploadChunk) { c.TotalChunks = 3 },
			errors.ErrUploadMismatch,
		},
		{
			"Should fail the entry when mime type changes",
			&domain.UploadChunk{Filename: "a.txt", MimeType: "text/plain", ChunkIndex: 0, TotalChunks: 2},
			func(c *domain.UploadChunk) { c.MimeType = "image/png" },
			errors.ErrUploadMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			accumulator, fake, _ := newAccumulator(t)

			// Given an optional first chunk
			if tt.first != nil {
				_, err := accumulator.Add(*tt.first)
				req.NoError(err)
			}

			// When the offending chunk arrives
			c := chunk("a.txt", 1, 2, "x")
			tt.modify(&c)
			completed, err := accumulator.Add(c)

			// Then it is rejected and no state is left behind
			req.ErrorIs(err, tt.wantErr)
			req.Nil(completed)
			req.Empty(accumulator.Pending())
			req.Equal(0, fake.PendingCount())
		})
	}
}

func TestUploadAccumulator_PendingIsSorted(t *testing.T) {
	req := require.New(t)
	accumulator, _, _ := newAccumulator(t)

	for _, name := range []string{"c.bin", "a.bin", "b.bin"} {
		_, err := accumulator.Add(chunk(name, 0, 4, "x"))
		req.NoError(err)
	}

	pending := accumulator.Pending()
	req.Len(pending, 3)
	req.Equal("a.bin", pending[0].Filename)
	req.Equal("b.bin", pending[1].Filename)
	req.Equal("c.bin", pending[2].Filename)
}
