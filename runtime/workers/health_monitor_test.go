package workers

import (
	"context"
	"dweb-bridge/domain"
	"dweb-bridge/mocks"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthMonitorWorker_ReportsPeriodically(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockHealthReporter(ctrl)

	reported := make(chan struct{}, 8)
	reporter.EXPECT().Health().DoAndReturn(func() domain.HealthStats {
		select {
		case reported <- struct{}{}:
		default:
		}
		return domain.HealthStats{Queued: 1, Active: 2, MaxConcurrent: 5}
	}).MinTimes(2)

	worker := NewHealthMonitorWorker(log, reporter, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Given two ticks
	for i := 0; i < 2; i++ {
		select {
		case <-reported:
		case <-time.After(time.Second):
			req.Fail("health should have been reported")
		}
	}

	// When the context ends the worker returns cleanly
	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("worker should stop on cancel")
	}
}
