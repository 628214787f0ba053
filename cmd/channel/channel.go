package channel

import (
	"github.com/spf13/cobra"
)

// ChannelCmd set of commands are used to query channels in the remote catalog
var ChannelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Query distribution channels of the remote catalog",
	Long:  "Query distribution channels of the remote catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	ChannelCmd.AddCommand(listChannelCmd)
}
