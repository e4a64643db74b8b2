package domain

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

const DefaultMimeType = "application/octet-stream"

// frameHeaderSize is the size of the big-endian metadata length prefix.
const frameHeaderSize = 4

// DownloadJob is consumed exactly once by a fetch.
type DownloadJob struct {
	Address ContentAddress
	Conn    Connection
}

// FetchResult is the body and content type returned by the backend.
type FetchResult struct {
	MimeType string
	Body     []byte
}

// FrameMetadata is the JSON block placed between the length prefix and the payload.
type FrameMetadata struct {
	MimeType string `json:"mimeType"`
	Xorname  string `json:"xorname"`
}

// EncodeFrame builds the binary message sent for a successful download:
// [uint32 BE length N][N bytes JSON metadata][payload]
func EncodeFrame(address ContentAddress, result FetchResult) ([]byte, error) {
	metadata, err := json.Marshal(FrameMetadata{MimeType: result.MimeType, Xorname: address.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frame metadata: %w", err)
	}
	frame := make([]byte, frameHeaderSize+len(metadata)+len(result.Body))
	binary.BigEndian.PutUint32(frame, uint32(len(metadata)))
	copy(frame[frameHeaderSize:], metadata)
	copy(frame[frameHeaderSize+len(metadata):], result.Body)
	return frame, nil
}

// DecodeFrame splits a binary download message back into its metadata and payload.
func DecodeFrame(frame []byte) (FrameMetadata, []byte, error) {
	var metadata FrameMetadata
	if len(frame) < frameHeaderSize {
		return metadata, nil, fmt.Errorf("frame too short: %d bytes", len(frame))
	}
	size := int(binary.BigEndian.Uint32(frame))
	if len(frame) < frameHeaderSize+size {
		return metadata, nil, fmt.Errorf("frame declares %d bytes of metadata, only %d available", size, len(frame)-frameHeaderSize)
	}
	if err := json.Unmarshal(frame[frameHeaderSize:frameHeaderSize+size], &metadata); err != nil {
		return metadata, nil, fmt.Errorf("invalid frame metadata: %w", err)
	}
	return metadata, frame[frameHeaderSize+size:], nil
}

// QueueStats is a snapshot of the download admission queue.
type QueueStats struct {
	Queued        int `json:"queued"`
	Active        int `json:"active"`
	MaxConcurrent int `json:"max_concurrent"`
}
