package ws

import (
	"context"
	"dweb-bridge/contract"
	"dweb-bridge/domain"
	"dweb-bridge/errors"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const liveMessage = "WebSocket server is live"

type Options struct {
	MaxTotalChunks       int
	MaxMessageSize       int64
	WriteTimeout         time.Duration
	DefaultUploadOptions domain.UploadOptions
}

// Gateway accepts websocket clients and routes their messages
// to the download queue or the upload service.
type Gateway struct {
	log      *slog.Logger
	queue    contract.IDownloadQueue
	uploads  contract.IUploadService
	registry *Registry
	upgrader websocket.Upgrader
	options  Options
}

func NewGateway(log *slog.Logger, queue contract.IDownloadQueue, uploads contract.IUploadService,
	registry *Registry, options Options) *Gateway {
	return &Gateway{
		log:      log,
		queue:    queue,
		uploads:  uploads,
		registry: registry,
		upgrader: websocket.Upgrader{
			// Browser dApps are served from any origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		options: options,
	}
}

// Handler serves the websocket endpoint on "/" and the stats on "/healthz".
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", g.serveHealth)
	mux.HandleFunc("/", g.serveRoot)
	return mux
}

func (g *Gateway) serveRoot(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(liveMessage))
		return
	}
	g.serveWebsocket(w, r)
}

func (g *Gateway) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(g.Health()); err != nil {
		g.log.Warn("Unable to write health stats", "error", err)
	}
}

// Health gathers queue, upload and session counters.
func (g *Gateway) Health() domain.HealthStats {
	queue := g.queue.Stats()
	return domain.HealthStats{
		Queued:            queue.Queued,
		Active:            queue.Active,
		MaxConcurrent:     queue.MaxConcurrent,
		UploadsInProgress: len(g.uploads.Pending()),
		Sessions:          g.registry.Count(),
	}
}

func (g *Gateway) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the client
		g.log.Warn("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	if g.options.MaxMessageSize > 0 {
		conn.SetReadLimit(g.options.MaxMessageSize)
	}

	session := NewSession(uuid.NewString(), conn, g.log, g.options.WriteTimeout)
	g.registry.Subscribe(session)
	g.log.Info("Client connected", "session_id", session.ID(), "remote", r.RemoteAddr)
	defer func() {
		g.registry.Unsubscribe(session.ID())
		session.Close()
		g.log.Info("Client disconnected", "session_id", session.ID())
	}()

	ctx := r.Context()
	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			session.markClosed()
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				g.log.Warn("Connection error", "session_id", session.ID(), "error", err)
			}
			return
		}
		if messageType != websocket.TextMessage && messageType != websocket.BinaryMessage {
			continue
		}
		g.HandleMessage(ctx, session, data)
	}
}

// HandleMessage processes one inbound message. Every rejection is answered
// on the same connection, which stays open.
func (g *Gateway) HandleMessage(ctx context.Context, conn domain.Connection, data []byte) {
	if !json.Valid(data) {
		g.reply(conn, domain.NewErrorResponse(errors.ErrInvalidJSON.Error()))
		return
	}

	var envelope domain.Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		g.reply(conn, domain.NewErrorResponse(errors.ErrInvalidMessageType.Error()))
		return
	}

	switch envelope.Type {
	case domain.MessageDownload:
		g.handleDownload(conn, envelope)
	case domain.MessageUploadChunk:
		g.handleUploadChunk(ctx, conn, data)
	default:
		g.log.Debug("Unknown message type", "session_id", conn.ID(), "type", envelope.Type)
		g.reply(conn, domain.NewErrorResponse(errors.ErrInvalidMessageType.Error()))
	}
}

func (g *Gateway) handleDownload(conn domain.Connection, envelope domain.Envelope) {
	var raw *string
	if err := json.Unmarshal(envelope.Address, &raw); err != nil || raw == nil {
		g.reply(conn, domain.NewErrorResponse(errors.ErrInvalidMessageType.Error()))
		return
	}

	address, err := domain.ParseContentAddress(*raw)
	if err != nil {
		g.log.Debug("Rejected download", "session_id", conn.ID(), "error", err)
		g.reply(conn, domain.NewErrorResponse(errors.ErrInvalidAddress.Error()))
		return
	}
	g.queue.Enqueue(domain.DownloadJob{Address: address, Conn: conn})
}

func (g *Gateway) handleUploadChunk(ctx context.Context, conn domain.Connection, data []byte) {
	chunk, err := ParseUploadChunk(data, g.options.MaxTotalChunks, g.options.DefaultUploadOptions)
	if err != nil {
		g.log.Debug("Rejected upload chunk", "session_id", conn.ID(), "filename", chunk.Filename, "error", err)
		if stderrors.Is(err, errors.ErrInvalidUploadFields) {
			g.reply(conn, domain.NewErrorResponse(errors.ErrInvalidUploadFields.Error()))
			return
		}
		g.reply(conn, domain.NewUploadErrorResponse(err.Error(), chunk.Filename))
		return
	}

	chunk.Conn = conn
	if err := g.uploads.HandleChunk(ctx, chunk); err != nil {
		g.log.Warn("Upload chunk refused", "session_id", conn.ID(), "filename", chunk.Filename, "error", err)
		g.reply(conn, domain.NewUploadErrorResponse(err.Error(), chunk.Filename))
	}
}

func (g *Gateway) reply(conn domain.Connection, response domain.ErrorResponse) {
	if err := conn.SendJSON(response); err != nil {
		g.log.Warn("Unable to send error response", "session_id", conn.ID(), "error", err)
	}
}

// Shutdown closes every open session.
func (g *Gateway) Shutdown() {
	g.log.Info("Closing client sessions", "count", g.registry.Count())
	g.registry.CloseAll()
}
