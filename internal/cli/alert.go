package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/attager/a2a-threat-center/pkg/client"
	"github.com/spf13/cobra"
)

func newAlertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "alert",
		Aliases: []string{"alerts"},
		Short:   "Show generated alerts",
	}

	cmd.AddCommand(newAlertListCmd())
	cmd.AddCommand(newAlertGetCmd())

	return cmd
}

func newAlertListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			alerts, err := apiClient.Alerts().Recent(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("failed to list alerts: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(alerts)
			}

			renderAlerts(alerts)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of alerts to show (max 100)")

	return cmd
}

func newAlertGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get alert details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid alert ID: %s", args[0])
			}

			alert, err := apiClient.Alerts().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get alert: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(alert)
			}

			fmt.Fprintf(stdout, "ID:          %d\n", alert.ID)
			fmt.Fprintf(stdout, "Time:        %s\n", alert.Timestamp.Local().Format(timeFormat))
			fmt.Fprintf(stdout, "Source:      %s\n", alert.SourceAgent)
			fmt.Fprintf(stdout, "Target:      %s\n", alert.TargetAgent)
			fmt.Fprintf(stdout, "Threat:      %s\n", alert.ThreatType)
			fmt.Fprintf(stdout, "Severity:    %s\n", formatSeverity(alert.Severity))
			fmt.Fprintf(stdout, "Layer:       %s\n", alert.ProtocolLayer)
			fmt.Fprintf(stdout, "Description: %s\n", alert.Description)
			return nil
		},
	}
}

func renderAlerts(alerts []client.Alert) {
	t := NewTable("ID", "TIME", "SOURCE", "TARGET", "THREAT", "SEVERITY", "LAYER")
	for _, a := range alerts {
		t.AddRow(
			strconv.FormatInt(a.ID, 10),
			a.Timestamp.Local().Format(timeFormat),
			a.SourceAgent,
			a.TargetAgent,
			a.ThreatType,
			formatSeverity(a.Severity),
			a.ProtocolLayer,
		)
	}
	t.Render()
}
