package cmd

import (
	"fmt"

	"github.com/Ramin-Setoodehnia/phantomctl/internal/config"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/doctor"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/execx"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/systemd"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/term"
	"github.com/spf13/cobra"
)

var doctorRunFn = func() doctor.Report {
	settings, err := config.Load()
	service := config.DefaultService
	if err == nil {
		service = settings.Service
	}
	return doctor.Run(config.DefaultPaths(), systemd.NewManager(service, execx.System{}))
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose installation issues",
	Long: `Run diagnostic checks over the installation and print a pass/fail/warn
checklist.

  phantomctl doctor`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printReport(doctorRunFn())
		return nil
	},
}

func printReport(report doctor.Report) {
	for _, r := range report.Results {
		fmt.Printf("  %s  %-20s %s\n", statusIcon(r.Status), r.Name, r.Message)
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.Pass:
		return term.CheckMark
	case doctor.Warn:
		return term.WarnMark
	case doctor.Fail:
		return term.CrossMark
	default:
		return "?"
	}
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
