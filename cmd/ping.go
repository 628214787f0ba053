package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"imgapi-client/cmd/util"
	"imgapi-client/internal/apiclient"
	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/formatter"
	"imgapi-client/internal/formatter/ping"
	"imgapi-client/internal/telemetry"
)

var pingCmd = &cobra.Command{
	Use:     "ping",
	Short:   "Check that the remote catalog is reachable",
	Long:    "Check that the remote catalog is reachable and report its version",
	Example: `img ping`,
	Run: func(cmd *cobra.Command, args []string) {
		config := util.NewHostConfig()
		r, err := apiclient.Ping(cmd.Context(), config)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		telemetry.TrackEvent(cmd.Context(), telemetry.NewTelemetryItem(
			cmd.Context(), util.GetHostID(),
			telemetry.EventPing, telemetry.ModeGet,
			nil, nil))

		pingCtx := formatter.Context{
			Output: os.Stdout,
			Format: ping.NewPingFormat(viper.GetString("output")),
		}
		ping.Write(pingCtx, []apimodels.PingResponse{*r})
	},
}
