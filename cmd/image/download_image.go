package image

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"imgapi-client/cmd/util"
	"imgapi-client/internal/apiclient"
	"imgapi-client/internal/formatter"
	"imgapi-client/internal/helpers"
	"imgapi-client/internal/telemetry"
)

var downloadImageCmd = &cobra.Command{
	Use:     "download <image-uuid>",
	Short:   "Download the file artifact of an image",
	Long:    "Download the file artifact of an image and verify it against the manifest",
	Example: `img image download 01b2c898-945f-11e1-a523-af1afbe22822 --file ./base.zfs.gz`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		destination, err := cmd.Flags().GetString("file")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		config := util.NewHostConfig()
		manifest, err := apiclient.GetImage(cmd.Context(), config, args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if len(manifest.Files) == 0 {
			logrus.Fatalf(formatter.Colorize(
				fmt.Sprintf("image %s has no file artifact\n", manifest.UUID),
				formatter.RedColor))
		}

		s := spinner.New(spinner.CharSets[36], 300*time.Millisecond)
		s.Color(formatter.GreenColor)
		s.Start()
		s.Suffix = fmt.Sprintf(" Downloading image %s", manifest.UUID)
		s.FinalMSG = ""

		written, err := apiclient.DownloadImageFile(cmd.Context(), config, args[0], destination)
		s.Stop()
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		expected := manifest.Files[0].Sha1
		computed, err := helpers.Sha1HashOfFile(destination)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if computed != expected {
			os.Remove(destination)
			logrus.Fatalf(formatter.Colorize(
				fmt.Sprintf("sha1 mismatch for %s: expected %s, computed %s\n",
					destination, expected, computed),
				formatter.RedColor))
		}

		telemetry.TrackEvent(cmd.Context(), telemetry.NewTelemetryItem(
			cmd.Context(), util.GetHostID(),
			telemetry.EventImage, telemetry.ModeDownload,
			nil, nil))

		logrus.Infof("downloaded image %s (%s) to %s\n",
			manifest.UUID, humanize.IBytes(uint64(written)), destination)
	},
}

func init() {
	downloadImageCmd.Flags().SortFlags = false
	downloadImageCmd.Flags().StringP("file", "f", "",
		"[Required] Destination path for the downloaded image file.")
	downloadImageCmd.MarkFlagRequired("file")
}
