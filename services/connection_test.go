package services

import (
	"dweb-bridge/errors"
	"sync"
	"sync/atomic"
)

// recordingConn keeps every message a component sent to the client.
type recordingConn struct {
	mu       sync.Mutex
	id       string
	jsons    []any
	binaries [][]byte
	closed   atomic.Bool
}

func newRecordingConn(id string) *recordingConn {
	return &recordingConn{id: id}
}

func (c *recordingConn) ID() string { return c.id }

func (c *recordingConn) SendJSON(v any) error {
	if c.closed.Load() {
		return errors.ErrSessionClosed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jsons = append(c.jsons, v)
	return nil
}

func (c *recordingConn) SendBinary(data []byte) error {
	if c.closed.Load() {
		return errors.ErrSessionClosed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.binaries = append(c.binaries, data)
	return nil
}

func (c *recordingConn) Closed() bool { return c.closed.Load() }

func (c *recordingConn) JSONs() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]any(nil), c.jsons...)
}

func (c *recordingConn) Binaries() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.binaries...)
}
