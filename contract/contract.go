//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"dweb-bridge/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// BackendFetcher retrieves content from the local retrieval service.
// The deadline is carried by ctx.
type BackendFetcher interface {
	Fetch(ctx context.Context, address domain.ContentAddress) (domain.FetchResult, error)
}

// ContentUploader pushes a local file to the network and returns its xorname.
type ContentUploader interface {
	Upload(ctx context.Context, path string, options domain.UploadOptions) (string, error)
}

type IDownloadQueue interface {
	Enqueue(job domain.DownloadJob)
	Stats() domain.QueueStats
}

type IUploadAccumulator interface {
	Add(chunk domain.UploadChunk) (*domain.CompletedUpload, error)
	Pending() []domain.UploadStatus
}

type IUploadFinalizer interface {
	Finalize(ctx context.Context, upload domain.CompletedUpload)
}

type IUploadService interface {
	HandleChunk(ctx context.Context, chunk domain.UploadChunk) error
	Pending() []domain.UploadStatus
}

// HealthReporter exposes a snapshot of the bridge load.
type HealthReporter interface {
	Health() domain.HealthStats
}
