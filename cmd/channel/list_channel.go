package channel

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"imgapi-client/cmd/util"
	"imgapi-client/internal/apiclient"
	"imgapi-client/internal/formatter"
	"imgapi-client/internal/formatter/channel"
	"imgapi-client/internal/telemetry"
)

var listChannelCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List distribution channels of the remote catalog",
	Long:    "List distribution channels of the remote catalog",
	Example: `img channel list`,
	Run: func(cmd *cobra.Command, args []string) {
		config := util.NewHostConfig()
		r, err := apiclient.ListChannels(cmd.Context(), config)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		telemetry.TrackEvent(cmd.Context(), telemetry.NewTelemetryItem(
			cmd.Context(), util.GetHostID(),
			telemetry.EventChannel, telemetry.ModeList,
			nil, nil))

		channelCtx := formatter.Context{
			Output: os.Stdout,
			Format: channel.NewChannelFormat(viper.GetString("output")),
		}
		if len(r) < 1 {
			if util.IsOutputType(formatter.TableFormatKey) {
				logrus.Info("No channels found\n")
			} else {
				logrus.Info("[]\n")
			}
			return
		}
		channel.Write(channelCtx, r)
	},
}
