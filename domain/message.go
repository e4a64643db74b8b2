// Package domain contains the core concepts of the bridge.
// This file defines the messages exchanged with clients over the websocket.
package domain

import "encoding/json"

type MessageType string

const (
	MessageDownload       MessageType = "download"
	MessageUploadChunk    MessageType = "upload_chunk"
	MessageUploadComplete MessageType = "upload_complete"
	MessageError          MessageType = "error"
)

// Envelope is the first decoding pass of every inbound message.
// Fields are kept raw so the second pass can check their JSON types.
type Envelope struct {
	Type    MessageType     `json:"type"`
	Address json.RawMessage `json:"address"`
}

// UploadChunkRequest carries one part of a file.
// Pointers let the validator tell a missing field from a zero value.
type UploadChunkRequest struct {
	Filename    *string `json:"filename" validate:"required"`
	MimeType    *string `json:"mime_type" validate:"required"`
	ChunkIndex  *int    `json:"chunk_index" validate:"required,gte=0"`
	TotalChunks *int    `json:"total_chunks" validate:"required,gte=1"`
	ChunkBase64 *string `json:"chunk_base64" validate:"required"`
	Public      *bool   `json:"public,omitempty"`
	Quorum      *string `json:"quorum,omitempty"`
	NoVerify    *bool   `json:"no_verify,omitempty"`
}

type ErrorResponse struct {
	Type     MessageType `json:"type"`
	Message  string      `json:"message"`
	Filename string      `json:"filename,omitempty"`
}

type UploadCompleteResponse struct {
	Type     MessageType `json:"type"`
	Xorname  string      `json:"xorname"`
	Filename string      `json:"filename"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Type: MessageError, Message: message}
}

func NewUploadErrorResponse(message, filename string) ErrorResponse {
	return ErrorResponse{Type: MessageError, Message: message, Filename: filename}
}

func NewUploadCompleteResponse(xorname, filename string) UploadCompleteResponse {
	return UploadCompleteResponse{Type: MessageUploadComplete, Xorname: xorname, Filename: filename}
}
