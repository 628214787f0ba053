package image

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/sirupsen/logrus"
	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/formatter"
)

const (
	defaultNetwork = "table {{.Name}}\t{{.Description}}"
)

// NetworkContext for required network outputs
type NetworkContext struct {
	formatter.HeaderContext
	formatter.Context
	n apimodels.Network
}

// SetNetwork initializes the context with the network data
func (n *NetworkContext) SetNetwork(network apimodels.Network) {
	n.n = network
}

type networkContext struct {
	Network *NetworkContext
}

// Write populates the output table to be displayed in the command line
func (n *NetworkContext) Write(index int) error {
	nc := &networkContext{
		Network: &NetworkContext{},
	}
	nc.Network.n = n.n

	tmpl, err := n.startSubsection(defaultNetwork)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	n.Output.Write([]byte(formatter.Colorize(
		fmt.Sprintf("Network %d: Details", index+1), formatter.BlueColor)))
	n.Output.Write([]byte("\n"))
	if err := n.ContextFormat(tmpl, nc.Network); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	n.PostFormat(tmpl, NewNetworkContext())
	n.Output.Write([]byte("\n"))

	return nil
}

func (n *NetworkContext) startSubsection(format string) (*template.Template, error) {
	n.Buffer = bytes.NewBufferString("")
	n.ContextHeader = ""
	n.Format = formatter.Format(format)
	n.PreFormat()

	return n.ParseFormat()
}

// NewNetworkContext creates a new context for rendering required networks
func NewNetworkContext() *NetworkContext {
	networkCtx := NetworkContext{}
	networkCtx.Header = formatter.SubHeaderContext{
		"Name":        formatter.NameHeader,
		"Description": formatter.DescriptionHeader,
	}
	return &networkCtx
}

// Name of the required network
func (n *NetworkContext) Name() string {
	return n.n.Name
}

// Description of the required network
func (n *NetworkContext) Description() string {
	if n.n.Description == "" {
		return "-"
	}
	return n.n.Description
}

// MarshalJSON function
func (n *NetworkContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.n)
}
