package models

import "time"

const (
	NotificationInfo  = "info"
	NotificationError = "error"
)

// Notification is the single dismissible message shown to the operator.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // info | error
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardView is everything a client needs to render the dashboard.
type DashboardView struct {
	Reading       SensorReading  `json:"reading"`
	Alerts        Alerts         `json:"alerts"`
	LiveStatus    SafetyStatus   `json:"liveStatus"`
	Analyzing     bool           `json:"analyzing"`
	CurrentReport *ShiftReport   `json:"currentReport,omitempty"`
	ReportLines   []ReportLine   `json:"reportLines,omitempty"`
	Notification  *Notification  `json:"notification,omitempty"`
	History       []HistoryEntry `json:"history"`
}
