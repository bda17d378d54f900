package cli

import (
	"context"
	"fmt"

	"github.com/attager/a2a-threat-center/pkg/client"
	"github.com/spf13/cobra"
)

func newPacketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packet",
		Aliases: []string{"packets"},
		Short:   "Query the historical packet log",
	}

	cmd.AddCommand(newPacketListCmd())
	cmd.AddCommand(newPacketRecentCmd())

	return cmd
}

func newPacketListCmd() *cobra.Command {
	opts := client.PacketListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packets with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Packets().List(context.Background(), &opts)
			if err != nil {
				return fmt.Errorf("failed to list packets: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page)
			}

			renderPackets(page.Packets)
			if page.TotalPages > 0 {
				fmt.Fprintf(stdout, "\nPage %d of %d (%d packets)\n", page.Page, page.TotalPages, page.TotalItems)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Threat, "threat", "", "filter by threat type substring")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "filter by severity (low, medium, high)")
	cmd.Flags().StringVar(&opts.Source, "source", "", "filter by source agent substring")
	cmd.Flags().StringVar(&opts.Target, "target", "", "filter by target agent substring")
	cmd.Flags().StringVar(&opts.Layer, "layer", "", "filter by protocol layer, e.g. \"Layer 3\"")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 20, "packets per page (max 100)")

	return cmd
}

func newPacketRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Show the newest packets",
		RunE: func(cmd *cobra.Command, args []string) error {
			packets, err := apiClient.Packets().Recent(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list recent packets: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(packets)
			}

			renderPackets(packets)
			return nil
		},
	}
}

func renderPackets(packets []client.Packet) {
	t := NewTable("TIME", "SOURCE", "TARGET", "LAYER", "THREAT", "SEVERITY", "RESOLUTION")
	for _, p := range packets {
		t.AddRow(
			p.Timestamp.Local().Format(timeFormat),
			p.SourceAgent,
			p.TargetAgent,
			p.ProtocolLayer,
			p.ThreatType,
			formatSeverity(p.Severity),
			truncate(p.Resolution, 40),
		)
	}
	t.Render()
}
