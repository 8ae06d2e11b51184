package cmd

import "github.com/spf13/cobra"

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Follow the Phantom Tunnel service logs",
	Long: `Stream the service journal, starting with the most recent entries.
Press Ctrl-C to stop following.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogs(stdinReader())
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
}
