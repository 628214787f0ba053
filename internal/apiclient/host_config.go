package apiclient

import (
	"time"
)

// HostConfig is the per-call client configuration. Host is the service root
// (scheme optional, https assumed), not the images endpoint; each operation
// appends its own path.
type HostConfig struct {
	Host                 string        `json:"host"`
	DisableTlsValidation bool          `json:"disable_tls_validation"`
	Timeout              time.Duration `json:"timeout"`
}
