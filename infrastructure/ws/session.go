package ws

import (
	"dweb-bridge/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const closeGracePeriod = time.Second

// Session owns the write side of one websocket connection.
// gorilla connections support one concurrent writer, fetch and upload goroutines
// all go through the session mutex.
type Session struct {
	mu           sync.Mutex
	id           string
	conn         *websocket.Conn
	log          *slog.Logger
	writeTimeout time.Duration
	closed       atomic.Bool // No more writes, the peer may still hold the socket
	released     sync.Once   // Guards the single conn.Close
}

func NewSession(id string, conn *websocket.Conn, log *slog.Logger, writeTimeout time.Duration) *Session {
	return &Session{
		id:           id,
		conn:         conn,
		log:          log.With("session_id", id),
		writeTimeout: writeTimeout,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Closed() bool { return s.closed.Load() }

func (s *Session) SendJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	return s.write(websocket.TextMessage, data)
}

func (s *Session) SendBinary(data []byte) error {
	return s.write(websocket.BinaryMessage, data)
}

func (s *Session) write(messageType int, data []byte) error {
	if s.closed.Load() {
		return errors.ErrSessionClosed
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	if err := s.conn.WriteMessage(messageType, data); err != nil {
		// A failed write leaves the connection unusable
		s.closed.Store(true)
		return fmt.Errorf("write failed: %w", err)
	}
	return nil
}

// Close releases the socket, sending a close frame first when the peer is still there.
// Safe to call more than once, and after markClosed or a failed write.
func (s *Session) Close() {
	s.released.Do(func() {
		peerGone := s.closed.Swap(true)
		s.mu.Lock()
		defer s.mu.Unlock()

		if !peerGone {
			message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			if err := s.conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(closeGracePeriod)); err != nil {
				s.log.Debug("Unable to send close frame", "error", err)
			}
		}
		if err := s.conn.Close(); err != nil {
			s.log.Debug("Unable to close connection", "error", err)
		}
	})
}

// markClosed flags the session once the peer is gone, the socket is released by Close.
func (s *Session) markClosed() {
	s.closed.Store(true)
}
