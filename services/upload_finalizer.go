package services

import (
	"context"
	"dweb-bridge/contract"
	"dweb-bridge/domain"
	"dweb-bridge/domain/mimetypes"
	"dweb-bridge/errors"
	"dweb-bridge/infrastructure/storage"
	"dweb-bridge/internal/clock"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const fallbackFilename = "upload.bin"

// UploadFinalizer writes a reconstructed file to a scoped temp directory,
// hands it to the uploader and reports the outcome to the client.
type UploadFinalizer struct {
	log           *slog.Logger
	uploader      contract.ContentUploader
	receipts      storage.IReceiptRepository // Optional
	tempDir       string
	keepTempFiles bool
	clock         clock.Clock
}

func NewUploadFinalizer(
	log *slog.Logger,
	uploader contract.ContentUploader,
	receipts storage.IReceiptRepository,
	tempDir string,
	keepTempFiles bool,
	c clock.Clock,
) *UploadFinalizer {
	return &UploadFinalizer{
		log:           log,
		uploader:      uploader,
		receipts:      receipts,
		tempDir:       tempDir,
		keepTempFiles: keepTempFiles,
		clock:         c,
	}
}

// Finalize never returns an error, every outcome is sent through the upload's connection.
func (f *UploadFinalizer) Finalize(ctx context.Context, upload domain.CompletedUpload) {
	xorname, err := f.upload(ctx, upload)
	if err != nil {
		f.log.Error("Upload failed", "filename", upload.Filename, "error", err)
		f.reply(upload, domain.NewUploadErrorResponse(err.Error(), upload.Filename))
		return
	}

	f.log.Info("Upload complete", "filename", upload.Filename, "xorname", xorname, "bytes", len(upload.Data))
	f.reply(upload, domain.NewUploadCompleteResponse(xorname, upload.Filename))
	f.record(upload, xorname)
}

func (f *UploadFinalizer) upload(ctx context.Context, upload domain.CompletedUpload) (string, error) {
	dir, err := os.MkdirTemp(f.tempDir, "upload-")
	if err != nil {
		return "", fmt.Errorf("unable to create temp dir: %w", err)
	}
	if !f.keepTempFiles {
		defer func() {
			if err := os.RemoveAll(dir); err != nil {
				f.log.Warn("Unable to remove temp dir", "dir", dir, "error", err)
			}
		}()
	}

	path := filepath.Join(dir, SafeFilename(upload.Filename))
	if err := os.WriteFile(path, upload.Data, 0o600); err != nil {
		return "", fmt.Errorf("unable to write %s: %w", path, err)
	}
	f.log.Debug("File persisted for upload", "filename", upload.Filename, "path", path)

	xorname, err := f.uploader.Upload(ctx, path, upload.Options)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(xorname) == "" {
		return "", errors.ErrEmptyAddress
	}
	return xorname, nil
}

func (f *UploadFinalizer) reply(upload domain.CompletedUpload, v any) {
	if upload.Conn == nil {
		return
	}
	if err := upload.Conn.SendJSON(v); err != nil {
		f.log.Warn("Unable to report upload outcome", "session_id", upload.Conn.ID(),
			"filename", upload.Filename, "error", err)
	}
}

// record sniffs the content type and stores the receipt, failures are only logged.
func (f *UploadFinalizer) record(upload domain.CompletedUpload, xorname string) {
	detected := mimetype.Detect(upload.Data).String()
	if !mimetypes.Agree(upload.MimeType, detected) {
		f.log.Warn("Declared mime type does not match content", "filename", upload.Filename,
			"declared", upload.MimeType, "detected", detected)
	}
	if f.receipts == nil {
		return
	}
	receipt := domain.Receipt{
		Xorname:          xorname,
		Filename:         upload.Filename,
		DeclaredMimeType: upload.MimeType,
		DetectedMimeType: detected,
		Size:             len(upload.Data),
		UploadedAt:       f.clock.Now().UTC(),
	}
	if err := f.receipts.Save(receipt); err != nil {
		f.log.Error("Unable to save upload receipt", "xorname", xorname, "error", err)
	}
}

// SafeFilename keeps only the last element of a client supplied name.
func SafeFilename(name string) string {
	base := filepath.Base(filepath.FromSlash(strings.ReplaceAll(name, `\`, "/")))
	switch base {
	case ".", "..", string(filepath.Separator), "":
		return fallbackFilename
	}
	return base
}
