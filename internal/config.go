package internal

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"dweb-bridge/domain"
)

type Config struct {
	ClientHost         string        `env:"CLIENT_HOST,default=0.0.0.0"`
	ClientPort         int           `env:"CLIENT_PORT,default=8081"`
	AntTPHost          string        `env:"ANTTP_HOST,default=127.0.0.1"`
	AntTPPort          int           `env:"ANTTP_PORT,default=8082"`
	MaxConcurrent      int           `env:"MAX_CONCURRENT_FETCHES,default=5"`
	FetchTimeout       time.Duration `env:"FETCH_TIMEOUT,default=60s"`
	UploadExpiration   time.Duration `env:"UPLOAD_EXPIRATION,default=180s"`
	NotifyUploadExpiry bool          `env:"NOTIFY_UPLOAD_EXPIRY,default=true"`
	MaxTotalChunks     int           `env:"MAX_TOTAL_CHUNKS,default=100000"`
	MaxMessageSize     int64         `env:"MAX_MESSAGE_SIZE,default=16777216"`
	HeadersTimeout     time.Duration `env:"HEADERS_TIMEOUT,default=120s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT,default=30s"`
	AntBinPath         string        `env:"ANT_BIN_PATH,default=bin/linux/ant"`
	AntPublic          bool          `env:"ANT_PUBLIC,default=false"`
	AntQuorum          string        `env:"ANT_QUORUM"`
	AntNoVerify        bool          `env:"ANT_NO_VERIFY,default=false"`
	TempDir            string        `env:"TEMP_DIR"`
	KeepTempFiles      bool          `env:"KEEP_TEMP_FILES,default=false"`
	ReceiptsDBPath     string        `env:"RECEIPTS_DB_PATH"`
	MonitorInterval    time.Duration `env:"MONITOR_INTERVAL,default=30s"`
	DebugPort          int           `env:"DEBUG_PORT,default=8083"`
	LogLevel           string        `env:"LOG_LEVEL,default=INFO"`
}

// Validate rejects settings the bridge cannot run with.
func (c Config) Validate() error {
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("MAX_CONCURRENT_FETCHES must be at least 1, got %d", c.MaxConcurrent)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}
	if c.UploadExpiration <= 0 {
		return fmt.Errorf("UPLOAD_EXPIRATION must be positive, got %s", c.UploadExpiration)
	}
	if c.MaxTotalChunks < 1 {
		return fmt.Errorf("MAX_TOTAL_CHUNKS must be at least 1, got %d", c.MaxTotalChunks)
	}
	if c.ClientPort <= 0 || c.AntTPPort <= 0 {
		return fmt.Errorf("CLIENT_PORT and ANTTP_PORT must be positive")
	}
	return nil
}

// ListenAddress is where the websocket server accepts clients.
func (c Config) ListenAddress() string {
	return net.JoinHostPort(c.ClientHost, strconv.Itoa(c.ClientPort))
}

// BackendAddress is the host:port of the retrieval service.
func (c Config) BackendAddress() string {
	return net.JoinHostPort(c.AntTPHost, strconv.Itoa(c.AntTPPort))
}

// DefaultUploadOptions are used when a client does not pick its own.
func (c Config) DefaultUploadOptions() domain.UploadOptions {
	return domain.UploadOptions{
		Public:   c.AntPublic,
		Quorum:   c.AntQuorum,
		NoVerify: c.AntNoVerify,
	}
}
