package channel

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/formatter"
)

const (
	defaultChannelListing = "table {{.Name}}\t{{.Default}}\t{{.Description}}"
	defaultHeader         = "Default"
)

// Context for channel outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	c apimodels.Channel
}

// NewChannelFormat for formatting output
func NewChannelFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultChannelListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Channels
func Write(ctx formatter.Context, channels []apimodels.Channel) error {
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, ch := range channels {
			err := format(&Context{c: ch})
			if err != nil {
				logrus.Debugf("Error rendering channel: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewChannelContext(), render)
}

// NewChannelContext creates a new context for rendering channel
func NewChannelContext() *Context {
	channelCtx := Context{}
	channelCtx.Header = formatter.SubHeaderContext{
		"Name":        formatter.NameHeader,
		"Default":     defaultHeader,
		"Description": formatter.DescriptionHeader,
	}
	return &channelCtx
}

// Name fetches the channel name
func (c *Context) Name() string {
	return c.c.Name
}

// Default fetches the default marker of the channel
func (c *Context) Default() string {
	return fmt.Sprintf("%t", c.c.Default)
}

// Description fetches the channel description
func (c *Context) Description() string {
	if c.c.Description == "" {
		return "-"
	}
	return c.c.Description
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.c)
}
