package domain

import "time"

// UploadOptions are forwarded to the external uploader.
type UploadOptions struct {
	Public   bool
	Quorum   string
	NoVerify bool
}

// UploadChunk is a validated and decoded upload_chunk message.
type UploadChunk struct {
	Filename    string
	MimeType    string
	ChunkIndex  int
	TotalChunks int
	Data        []byte
	Options     UploadOptions
	Conn        Connection
}

// CompletedUpload is produced once every slot of an entry has been filled.
type CompletedUpload struct {
	Filename string
	MimeType string
	Data     []byte
	Options  UploadOptions
	Conn     Connection
}

// UploadExpired is emitted when an entry stayed idle longer than the expiration window.
// Conn is the connection which sent the last chunk, it may already be closed.
type UploadExpired struct {
	Filename    string
	Received    int
	TotalChunks int
	Conn        Connection
	ExpiredAt   time.Time
}

// UploadStatus describes the progress of an upload still being accumulated.
type UploadStatus struct {
	Filename    string
	Received    int
	TotalChunks int
}

// Receipt is the audit record of a successful upload.
type Receipt struct {
	Xorname          string    `cbor:"1,keyasint"`
	Filename         string    `cbor:"2,keyasint"`
	DeclaredMimeType string    `cbor:"3,keyasint"`
	DetectedMimeType string    `cbor:"4,keyasint"`
	Size             int       `cbor:"5,keyasint"`
	UploadedAt       time.Time `cbor:"6,keyasint"`
}
