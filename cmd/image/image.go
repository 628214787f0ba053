package image

import (
	"github.com/spf13/cobra"
)

// ImageCmd set of commands are used to query images in the remote catalog
var ImageCmd = &cobra.Command{
	Use:   "image",
	Short: "Query images in the remote catalog",
	Long:  "Query images in the remote catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	ImageCmd.AddCommand(listImageCmd)
	ImageCmd.AddCommand(getImageCmd)
	ImageCmd.AddCommand(downloadImageCmd)
}
