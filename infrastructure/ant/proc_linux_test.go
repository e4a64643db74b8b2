//go:build linux

package ant

import (
	"context"
	"dweb-bridge/domain"
	"log/slog"
	"syscall"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestUploader_CommandDiesWithBridge(t *testing.T) {
	req := require.New(t)
	uploader := NewUploader(logs.GetLoggerFromLevel(slog.LevelDebug), "/usr/bin/ant")

	cmd := uploader.command(context.Background(), "/tmp/a.txt", domain.UploadOptions{Public: true})

	req.Equal([]string{"/usr/bin/ant", "file", "upload", "-p", "/tmp/a.txt"}, cmd.Args)
	req.NotNil(cmd.SysProcAttr)
	req.Equal(syscall.SIGKILL, cmd.SysProcAttr.Pdeathsig)
}
