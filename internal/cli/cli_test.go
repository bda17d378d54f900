package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return buf.String()
}

func TestPacketList_SendsFilters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"packets":[{"id":1,"source_agent":"Hermes-Router","target_agent":"Atlas-Planner","protocol_layer":"Layer 6","threat_type":"Supply Chain Attack","severity":"high"}],"page":1,"page_size":20,"total_items":1,"total_pages":1}`)
	}))
	defer srv.Close()

	out := runCLI(t, "packet", "list", "--server", srv.URL, "-o", "table", "--severity", "high", "--source", "Hermes")

	for _, want := range []string{"severity=high", "source=Hermes", "page=1", "page_size=20"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
	if !strings.Contains(out, "Supply Chain Attack") || !strings.Contains(out, "[H] HIGH") {
		t.Errorf("table output missing packet row:\n%s", out)
	}
	if !strings.Contains(out, "Page 1 of 1 (1 packets)") {
		t.Errorf("table output missing paging footer:\n%s", out)
	}
}

func TestAlertList_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/alerts/recent" {
			t.Errorf("path = %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"alerts":[{"id":9,"description":"Atlas-Planner → Nyx-Vault communication matched 'Task Replay' signature"}]}`)
	}))
	defer srv.Close()

	out := runCLI(t, "alert", "list", "--server", srv.URL, "-o", "json")

	var alerts []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &alerts); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(alerts) != 1 || alerts[0]["id"] != float64(9) {
		t.Errorf("alerts = %v", alerts)
	}
	if !strings.Contains(out, "→") {
		t.Errorf("arrow was escaped in output: %s", out)
	}
}

func TestStream_StopsAfterCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for i := 1; i <= 3; i++ {
			fmt.Fprintf(w, "data: {\"id\":%d,\"severity\":\"low\",\"threat_type\":\"Task Replay\"}\n\n", i)
		}
	}))
	defer srv.Close()

	out := runCLI(t, "stream", "--server", srv.URL, "-o", "json", "-n", "2")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d events, want 2:\n%s", len(lines), out)
	}
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"severity high", formatSeverity("high"), "[H] HIGH"},
		{"severity unknown", formatSeverity("critical"), "critical"},
		{"status quarantined", formatStatus("quarantined"), "[-] quarantined"},
		{"status caution", formatStatus("caution"), "[*] caution"},
		{"truncate short", truncate("Atlas", 10), "Atlas"},
		{"truncate long", truncate("Atlas-Planner → Hermes-Router", 10), "Atlas-P..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
