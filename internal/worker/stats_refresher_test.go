package worker

import (
	"context"
	"testing"

	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/testutil"
)

func TestStatsRefresher_Refresh(t *testing.T) {
	r := NewStatsRefresher(
		testutil.NewMockAgentRepository(testutil.Roster("Atlas-Planner", "Hermes-Router")...),
		testutil.NewMockAlertRepository(),
		testutil.NewMockPacketRepository(),
		"@every 1h",
		logger.Nop(),
	)

	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
}

func TestStatsRefresher_StartStop(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		wantErr  bool
	}{
		{"descriptor", "@every 30s", false},
		{"standard", "*/5 * * * *", false},
		{"invalid", "every now and then", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewStatsRefresher(
				testutil.NewMockAgentRepository(),
				testutil.NewMockAlertRepository(),
				testutil.NewMockPacketRepository(),
				tt.schedule,
				logger.Nop(),
			)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			err := r.Start(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Start() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			if err := r.Start(ctx); err == nil {
				t.Error("second Start() succeeded")
			}
			r.Stop()
		})
	}
}
