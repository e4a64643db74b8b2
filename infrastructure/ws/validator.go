package ws

import (
	"dweb-bridge/domain"
	"dweb-bridge/errors"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// ParseUploadChunk checks an upload_chunk message and decodes its payload.
// The filename is returned whenever it could be read, so errors can be attributed.
func ParseUploadChunk(data []byte, maxTotalChunks int, defaults domain.UploadOptions) (domain.UploadChunk, error) {
	var request domain.UploadChunkRequest
	if err := json.Unmarshal(data, &request); err != nil {
		return domain.UploadChunk{}, fmt.Errorf("%w: %s", errors.ErrInvalidUploadFields, err)
	}
	if err := validate.Struct(request); err != nil {
		return domain.UploadChunk{}, fmt.Errorf("%w: %s", errors.ErrInvalidUploadFields, err)
	}

	chunk := domain.UploadChunk{
		Filename:    *request.Filename,
		MimeType:    *request.MimeType,
		ChunkIndex:  *request.ChunkIndex,
		TotalChunks: *request.TotalChunks,
		Options: domain.UploadOptions{
			Public:   lo.FromPtrOr(request.Public, defaults.Public),
			Quorum:   lo.FromPtrOr(request.Quorum, defaults.Quorum),
			NoVerify: lo.FromPtrOr(request.NoVerify, defaults.NoVerify),
		},
	}

	if chunk.TotalChunks > maxTotalChunks {
		return chunk, fmt.Errorf("%w (%d > %d)", errors.ErrTooManyChunks, chunk.TotalChunks, maxTotalChunks)
	}
	if chunk.ChunkIndex >= chunk.TotalChunks {
		return chunk, fmt.Errorf("%w (%d >= %d)", errors.ErrChunkIndexOutOfRange, chunk.ChunkIndex, chunk.TotalChunks)
	}

	payload, err := decodeBase64(*request.ChunkBase64)
	if err != nil {
		return chunk, fmt.Errorf("%w: %s", errors.ErrInvalidUploadFields, err)
	}
	chunk.Data = payload
	return chunk, nil
}

// decodeBase64 accepts standard base64 with or without padding.
func decodeBase64(s string) ([]byte, error) {
	payload, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return payload, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(s); rawErr == nil {
		return raw, nil
	}
	return nil, err
}
