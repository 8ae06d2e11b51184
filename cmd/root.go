package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "2.2.0"

var rootCmd = &cobra.Command{
	Use:   "phantomctl",
	Short: "Install and manage the Phantom Tunnel service",
	Long: `phantomctl installs, updates, and manages the Phantom Tunnel binary as a
systemd service. Run it without arguments for the interactive menu, or use
the subcommands directly:

  phantomctl install      # install or update to the latest release
  phantomctl status       # show the service status
  phantomctl logs         # follow the service logs
  phantomctl uninstall    # remove everything`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "version", "help":
			return nil
		}
		if os.Geteuid() != 0 {
			return fmt.Errorf("phantomctl must run as root")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(stdinReader())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("phantomctl %s\n", Version)
		return nil
	},
}

func Execute() error {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
