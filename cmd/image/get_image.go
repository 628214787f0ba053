package image

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"imgapi-client/cmd/util"
	"imgapi-client/internal/apiclient"
	"imgapi-client/internal/apiclient/apimodels"
	"imgapi-client/internal/formatter"
	"imgapi-client/internal/formatter/image"
	"imgapi-client/internal/telemetry"
)

var getImageCmd = &cobra.Command{
	Use:     "get <image-uuid>",
	Aliases: []string{"describe"},
	Short:   "Get a single image manifest",
	Long:    "Get a single image manifest from the remote catalog by its UUID",
	Example: `img image get 01b2c898-945f-11e1-a523-af1afbe22822`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := util.NewHostConfig()
		r, err := apiclient.GetImage(cmd.Context(), config, args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		telemetry.TrackEvent(cmd.Context(), telemetry.NewTelemetryItem(
			cmd.Context(), util.GetHostID(),
			telemetry.EventImage, telemetry.ModeGet,
			nil, nil))

		if util.IsOutputType(formatter.TableFormatKey) {
			fullImageContext := *image.NewFullImageContext()
			fullImageContext.Output = os.Stdout
			fullImageContext.Format = image.NewFullImageFormat(viper.GetString("output"))
			fullImageContext.SetFullImage(*r)
			fullImageContext.Write()
			return
		}

		imageCtx := formatter.Context{
			Output: os.Stdout,
			Format: image.NewImageFormat(viper.GetString("output")),
		}
		image.Write(imageCtx, []apimodels.Image{*r})
	},
}
