package e2e

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

const readTimeout = 90 * time.Second

type BaseWsSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseWsSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BridgeAddr == "" {
		s.T().Skip("BRIDGE_ADDR is not set, skipping live bridge scenarios")
	}
}

func (s *BaseWsSuite) header(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// WithConn opens a websocket to the bridge for the duration of one step
func (s *BaseWsSuite) WithConn(name string, fn func(conn *websocket.Conn)) {
	s.header(name)
	target := url.URL{Scheme: "ws", Host: s.Config.BridgeAddr, Path: "/"}
	conn, _, err := websocket.DefaultDialer.Dial(target.String(), nil)
	s.Require().NoError(err, "Failed to connect to the bridge at "+target.String())
	defer conn.Close()
	fn(conn)
}

func (s *BaseWsSuite) Send(conn *websocket.Conn, message any) {
	if s.Config.DebugJSON {
		body, _ := json.MarshalIndent(message, "", "  ")
		s.T().Logf("SEND:\n%s", body)
	}
	s.Require().NoError(conn.WriteJSON(message))
}

// Receive returns the next message, text messages are decoded into fields.
func (s *BaseWsSuite) Receive(conn *websocket.Conn) (int, []byte, map[string]any) {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(readTimeout)))
	messageType, data, err := conn.ReadMessage()
	s.Require().NoError(err)

	if messageType != websocket.TextMessage {
		s.T().Logf("RECEIVED: %d binary bytes", len(data))
		return messageType, data, nil
	}
	if s.Config.DebugJSON {
		s.T().Logf("RECEIVED:\n%s", data)
	}
	var fields map[string]any
	s.Require().NoError(json.Unmarshal(data, &fields))
	return messageType, data, fields
}
