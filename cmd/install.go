package cmd

import "github.com/spf13/cobra"

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install or update Phantom Tunnel to the latest release",
	Long: `Download the newest release for this machine's architecture, install the
binary, write the systemd unit, and start the service. Prompts for panel
port and admin credentials on the very first install only.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(stdinReader())
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
