package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BRIDGE_ADDR is the host:port of a running bridge, the suite is skipped without it
	BridgeAddr string `envconfig:"BRIDGE_ADDR"`
	// E2E_DOWNLOAD_ADDRESS is an address known to the backend, download scenarios need it
	DownloadAddress string `envconfig:"E2E_DOWNLOAD_ADDRESS"`
	// E2E_UPLOAD enables scenarios which publish content on the network
	Upload bool `envconfig:"E2E_UPLOAD" default:"false"`
	// E2E_DEBUG_JSON allows dumping every message exchanged with the bridge
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
