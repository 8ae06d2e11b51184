package cmd

import "github.com/spf13/cobra"

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove Phantom Tunnel and all of its data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUninstall(stdinReader())
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
