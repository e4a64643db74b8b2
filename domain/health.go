package domain

// HealthStats is what /healthz answers and what the health monitor logs.
type HealthStats struct {
	Queued            int `json:"queued"`
	Active            int `json:"active"`
	MaxConcurrent     int `json:"max_concurrent"`
	UploadsInProgress int `json:"uploads_in_progress"`
	Sessions          int `json:"sessions"`
}
