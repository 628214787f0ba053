package ping

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/formatter"
)

const (
	defaultPingListing = "table {{.Ping}}\t{{.Version}}\t{{.Imgapi}}"
	pingHeader         = "Ping"
	versionHeader      = "Version"
	imgapiHeader       = "IMGAPI"
)

// Context for ping outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	p apimodels.PingResponse
}

// NewPingFormat for formatting output
func NewPingFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultPingListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a ping response
func Write(ctx formatter.Context, pings []apimodels.PingResponse) error {
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, p := range pings {
			err := format(&Context{p: p})
			if err != nil {
				logrus.Debugf("Error rendering ping response: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewPingContext(), render)
}

// NewPingContext creates a new context for rendering ping responses
func NewPingContext() *Context {
	pingCtx := Context{}
	pingCtx.Header = formatter.SubHeaderContext{
		"Ping":    pingHeader,
		"Version": versionHeader,
		"Imgapi":  imgapiHeader,
	}
	return &pingCtx
}

// Ping fetches the ping reply
func (c *Context) Ping() string {
	return c.p.Ping
}

// Version fetches the service version
func (c *Context) Version() string {
	if c.p.Version == "" {
		return "-"
	}
	return c.p.Version
}

// Imgapi fetches whether the endpoint identifies itself as an image catalog
func (c *Context) Imgapi() string {
	return fmt.Sprintf("%t", c.p.Imgapi)
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.p)
}
