package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newAgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agent",
		Aliases: []string{"agents"},
		Short:   "Inspect the agent roster",
	}

	cmd.AddCommand(newAgentListCmd())
	cmd.AddCommand(newAgentLinksCmd())

	return cmd
}

func newAgentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List agents with status and risk score",
		RunE: func(cmd *cobra.Command, args []string) error {
			agents, err := apiClient.Agents().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list agents: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(agents)
			}

			t := NewTable("ID", "NAME", "ROLE", "STATUS", "RISK", "LAST SEEN")
			for _, a := range agents {
				t.AddRow(
					strconv.FormatInt(a.ID, 10),
					a.Name,
					a.Role,
					formatStatus(a.Status),
					strconv.FormatFloat(a.RiskScore, 'f', 2, 64),
					a.LastSeen.Local().Format(timeFormat),
				)
			}
			t.Render()
			return nil
		},
	}
}

func newAgentLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "List observed agent communications, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := apiClient.Agents().Graph(context.Background())
			if err != nil {
				return fmt.Errorf("failed to load agent graph: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(graph.Communications)
			}

			t := NewTable("SOURCE", "TARGET", "LAST ACTIVITY", "SUMMARY")
			for _, c := range graph.Communications {
				t.AddRow(
					c.Source,
					c.Target,
					c.LastActivity.Local().Format(timeFormat),
					truncate(c.ThreatSummary, 60),
				)
			}
			t.Render()
			return nil
		},
	}
}
