package errors

import "fmt"

// Client facing errors. Their text is sent as-is in the "message" field of an error response.
var (
	ErrInvalidJSON          = fmt.Errorf("Invalid JSON")
	ErrInvalidMessageType   = fmt.Errorf("Invalid message type")
	ErrInvalidAddress       = fmt.Errorf("Invalid address format")
	ErrInvalidUploadFields  = fmt.Errorf("Missing or invalid upload fields")
	ErrChunkIndexOutOfRange = fmt.Errorf("chunk_index out of range")
	ErrTooManyChunks        = fmt.Errorf("total_chunks exceeds the allowed maximum")
	ErrUploadMismatch       = fmt.Errorf("Upload metadata mismatch")
	ErrUploadExpired        = fmt.Errorf("Upload expired before all chunks were received")
)

// Backend and uploader errors.
var (
	ErrFetchTimeout     = fmt.Errorf("request timed out")
	ErrBackendStatus    = fmt.Errorf("http")
	ErrUploadNoAddress  = fmt.Errorf("upload succeeded but no address found in output")
	ErrUploaderExit     = fmt.Errorf("ant exited with non-zero code")
	ErrUploaderNotFound = fmt.Errorf("uploader binary not found")
	ErrEmptyAddress     = fmt.Errorf("Upload failed or returned no address")
	ErrUploadAborted    = fmt.Errorf("Upload failed unexpectedly")
)

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrSessionClosed   = fmt.Errorf("session is closed")
	ErrReceiptNotFound = fmt.Errorf("receipt not found")
)
