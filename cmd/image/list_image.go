package image

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"imgapi-client/cmd/util"
	"imgapi-client/internal/apiclient"
	"imgapi-client/internal/formatter"
	"imgapi-client/internal/formatter/image"
	"imgapi-client/internal/telemetry"
)

var listImageCmd = &cobra.Command{
	Use:     "list [key=value ...]",
	Aliases: []string{"ls"},
	Short:   "List images in the remote catalog",
	Long: "List images in the remote catalog. " +
		"Accepts key=value filters: account, channel, inclAdminFields, owner, " +
		"name, version, public, os, type, billing_tag, limit.",
	Example: `img image list os=smartos public=true name=~base`,
	Run: func(cmd *cobra.Command, args []string) {
		filter, err := BuildImageFilter(args)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		config := util.NewHostConfig()
		r, err := apiclient.ListImages(cmd.Context(), config, filter)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		telemetry.TrackEvent(cmd.Context(), telemetry.NewTelemetryItem(
			cmd.Context(), util.GetHostID(),
			telemetry.EventImage, telemetry.ModeList,
			nil, nil))

		logrus.Infof("found %d image(s) matching filter\n", len(r))

		imageCtx := formatter.Context{
			Output: os.Stdout,
			Format: image.NewImageFormat(viper.GetString("output")),
		}
		if len(r) < 1 {
			if util.IsOutputType(formatter.TableFormatKey) {
				logrus.Info("No images found\n")
			} else {
				logrus.Info("[]\n")
			}
			return
		}
		image.Write(imageCtx, r)
	},
}
