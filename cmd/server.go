package cmd

import (
	"tunedex/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the TuneDex HTTP server",
	Long:  `Start the TuneDex catalog server, serving the JSON API for users, playlists, songs and artists.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
