package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/attager/a2a-threat-center/pkg/client"
	"github.com/spf13/cobra"
)

var errStreamDone = errors.New("stream event limit reached")

func newStreamCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Tail the live alert stream",
		Long: `Connects to the server's event stream and prints each alert as it is
generated. Each connection takes events from the shared delivery queue, so
running several tails at once splits the feed between them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			format := getOutputFormat()
			seen := 0
			err := apiClient.Stream(ctx, func(a client.Alert) error {
				if err := printStreamEvent(format, a); err != nil {
					return err
				}
				seen++
				if count > 0 && seen >= count {
					return errStreamDone
				}
				return nil
			})
			if errors.Is(err, errStreamDone) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "exit after this many events (0 streams until interrupted)")

	return cmd
}

func printStreamEvent(format string, a client.Alert) error {
	switch format {
	case "json":
		// one event per line
		enc := json.NewEncoder(stdout)
		enc.SetEscapeHTML(false)
		return enc.Encode(a)
	case "yaml":
		fmt.Fprintln(stdout, "---")
		return printYAML(a)
	default:
		_, err := fmt.Fprintf(stdout, "%s  %-12s %-22s %s\n",
			a.Timestamp.Local().Format(timeFormat),
			formatSeverity(a.Severity),
			a.ThreatType,
			a.Description,
		)
		return err
	}
}
