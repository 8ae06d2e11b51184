package cmd

import "github.com/spf13/cobra"

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the Phantom Tunnel service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRestart(stdinReader())
	},
}

func init() {
	rootCmd.AddCommand(restartCmd)
}
