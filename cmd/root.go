package cmd

import (
	"fmt"
	"log"
	"os"

	"tunedex/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tunedex",
	Short: "TuneDex is a music catalog service.",
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Starting TuneDex server...")
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
