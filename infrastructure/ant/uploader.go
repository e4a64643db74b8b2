// Package ant wraps the "ant" command line client used to push files to the network.
package ant

import (
	"bytes"
	"context"
	"dweb-bridge/domain"
	"dweb-bridge/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
)

var addressLine = regexp.MustCompile(`(?i)At address:\s*([a-f0-9]{64})`)

type Uploader struct {
	log     *slog.Logger
	binPath string
}

func NewUploader(log *slog.Logger, binPath string) *Uploader {
	return &Uploader{log: log, binPath: binPath}
}

// Upload runs `ant file upload` on path and extracts the resulting xorname
// from the combined stdout and stderr.
func (u *Uploader) Upload(ctx context.Context, path string, options domain.UploadOptions) (string, error) {
	if _, err := os.Stat(u.binPath); err != nil {
		return "", fmt.Errorf("%w: %s", errors.ErrUploaderNotFound, u.binPath)
	}

	var output bytes.Buffer
	cmd := u.command(ctx, path, options)
	cmd.Stdout = &output
	cmd.Stderr = &output

	u.log.Debug("Running uploader", "bin", u.binPath, "args", cmd.Args[1:])
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: code %d\nOutput:\n%s", errors.ErrUploaderExit, exitErr.ExitCode(), output.String())
		}
		return "", fmt.Errorf("failed to run uploader: %w", err)
	}

	return ParseAddress(output.String())
}

func (u *Uploader) command(ctx context.Context, path string, options domain.UploadOptions) *exec.Cmd {
	cmd := exec.CommandContext(ctx, u.binPath, Args(path, options)...)
	setPlatformSpecificAttrs(cmd)
	return cmd
}

// Args builds the command line for one upload, options first and the file last.
func Args(path string, options domain.UploadOptions) []string {
	args := []string{"file", "upload"}
	if options.Public {
		args = append(args, "-p")
	}
	if options.Quorum != "" {
		args = append(args, "-q", options.Quorum)
	}
	if options.NoVerify {
		args = append(args, "-x")
	}
	return append(args, path)
}

// ParseAddress finds the xorname printed by a successful upload.
func ParseAddress(output string) (string, error) {
	match := addressLine.FindStringSubmatch(output)
	if match == nil {
		return "", errors.ErrUploadNoAddress
	}
	return match[1], nil
}
