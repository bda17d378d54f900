package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the operations center overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			overview, err := apiClient.Overview(ctx)
			if err != nil {
				return fmt.Errorf("failed to get overview: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(overview)
			}

			title := "A2A Threat Center"
			if branding, err := apiClient.Branding(ctx); err == nil {
				title = branding.Solution + " / " + branding.Team
			}

			fmt.Fprintln(stdout, title)
			fmt.Fprintln(stdout, strings.Repeat("=", 40))

			generator := "(unknown)"
			if health, err := apiClient.Health(ctx); err == nil && health.Generator != "" {
				generator = formatStatus(health.Generator)
			}

			fmt.Fprintf(stdout, "  Agents:        %d (%d links)\n", overview.AgentCount, overview.CommunicationCount)
			fmt.Fprintf(stdout, "  Packets:       %d (%d high severity)\n", overview.TotalPackets, overview.HighThreats)
			fmt.Fprintf(stdout, "  Alerts:        %d generated", overview.TotalAlerts)
			if high := overview.AlertSeverityCounts["high"]; high > 0 {
				fmt.Fprintf(stdout, " (%d high severity)", high)
			}
			fmt.Fprintln(stdout)
			fmt.Fprintf(stdout, "  Generator:     %s\n", generator)
			if overview.LastUpdate != nil {
				fmt.Fprintf(stdout, "  Last packet:   %s\n", overview.LastUpdate.Local().Format(timeFormat))
			}

			return nil
		},
	}
}
