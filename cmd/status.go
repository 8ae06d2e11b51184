package cmd

import "github.com/spf13/cobra"

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the Phantom Tunnel service status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(stdinReader())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
