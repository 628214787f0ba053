package util

import (
	"os"

	"github.com/spf13/viper"
	"imgapi-client/internal/apiclient"
)

// GetBoolPointer returns a pointer to bool value
func GetBoolPointer(in bool) *bool {
	return &in
}

// IsOutputType check if the output type is t
func IsOutputType(t string) bool {
	return viper.GetString("output") == t
}

// GetHostID returns an identifier for usage events
func GetHostID() string {
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

// NewHostConfig builds the catalog endpoint configuration from the global flags
func NewHostConfig() apiclient.HostConfig {
	return apiclient.HostConfig{
		Host:                 viper.GetString("url"),
		DisableTlsValidation: viper.GetBool("insecure"),
		Timeout:              viper.GetDuration("timeout"),
	}
}
