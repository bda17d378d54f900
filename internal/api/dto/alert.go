package dto

import "github.com/attager/a2a-threat-center/internal/domain/alert"

// AlertListResponse is the body of GET /api/alerts/recent
type AlertListResponse struct {
	Alerts []*alert.Alert `json:"alerts"`
}
