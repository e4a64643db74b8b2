package e2e

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"testing"

	"dweb-bridge/domain"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

var xornamePattern = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)

type testBridgeSuite struct {
	BaseWsSuite
}

func TestBridgeSuite(t *testing.T) {
	suite.Run(t, &testBridgeSuite{})
}

func (s *testBridgeSuite) TestHealth() {
	s.header("Health endpoint")
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", s.Config.BridgeAddr))
	s.Require().NoError(err)
	defer resp.Body.Close()

	var health domain.HealthStats
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&health))
	s.Require().GreaterOrEqual(health.MaxConcurrent, 1)
}

func (s *testBridgeSuite) TestRejections() {
	s.WithConn("Invalid messages keep the connection open", func(conn *websocket.Conn) {
		s.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte("{")))
		_, _, fields := s.Receive(conn)
		s.Require().Equal("Invalid JSON", fields["message"])

		s.Send(conn, map[string]any{"type": "download", "address": "../etc/passwd"})
		_, _, fields = s.Receive(conn)
		s.Require().Equal("Invalid address format", fields["message"])

		s.Send(conn, map[string]any{"type": "upload_chunk", "filename": "x"})
		_, _, fields = s.Receive(conn)
		s.Require().Equal("Missing or invalid upload fields", fields["message"])
	})
}

func (s *testBridgeSuite) TestDownload() {
	if s.Config.DownloadAddress == "" {
		s.T().Skip("E2E_DOWNLOAD_ADDRESS is not set")
	}
	s.WithConn("Download a known address", func(conn *websocket.Conn) {
		s.Send(conn, map[string]any{"type": "download", "address": s.Config.DownloadAddress})
		messageType, data, fields := s.Receive(conn)
		s.Require().Equal(websocket.BinaryMessage, messageType, "unexpected response: %v", fields)

		metadata, _, err := domain.DecodeFrame(data)
		s.Require().NoError(err)
		s.Require().Equal(s.Config.DownloadAddress, metadata.Xorname)
		s.Require().NotEmpty(metadata.MimeType)
	})
}

func (s *testBridgeSuite) TestUploadTwoChunks() {
	if !s.Config.Upload {
		s.T().Skip("E2E_UPLOAD is not enabled")
	}
	filename := fmt.Sprintf("e2e-%s.txt", uuid.NewString())
	parts := []string{"hello ", "from the e2e suite"}

	s.WithConn("Upload a file in two chunks, last one first", func(conn *websocket.Conn) {
		for _, index := range []int{1, 0} {
			s.Send(conn, map[string]any{
				"type":         "upload_chunk",
				"filename":     filename,
				"mime_type":    "text/plain",
				"chunk_index":  index,
				"total_chunks": len(parts),
				"chunk_base64": base64.StdEncoding.EncodeToString([]byte(parts[index])),
			})
		}
		_, _, fields := s.Receive(conn)
		s.Require().Equal("upload_complete", fields["type"], "unexpected response: %v", fields)
		s.Require().Equal(filename, fields["filename"])
		s.Require().Regexp(xornamePattern, fields["xorname"])
	})
}
