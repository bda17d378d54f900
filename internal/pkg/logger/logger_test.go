package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.WithComponent("generator").WithFields(map[string]interface{}{
		"alert_id": 7,
	}).Info("Alert generated")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log entry: %v", err)
	}

	if entry["component"] != "generator" {
		t.Errorf("component = %v, want generator", entry["component"])
	}
	if entry["alert_id"] != float64(7) {
		t.Errorf("alert_id = %v, want 7", entry["alert_id"])
	}
	if entry["message"] != "Alert generated" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "error", Format: "json", Output: &buf})

	log.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info entry written at error level: %s", buf.String())
	}

	log.Error("kept")
	if buf.Len() == 0 {
		t.Error("error entry was not written")
	}
}
