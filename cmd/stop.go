package cmd

import "github.com/spf13/cobra"

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the Phantom Tunnel service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStop(stdinReader())
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
