package models

import "time"

// SafetyStatus classifies a reading by its safety thresholds.
type SafetyStatus string

const (
	SafetyGreen  SafetyStatus = "Green"
	SafetyYellow SafetyStatus = "Yellow"
	SafetyRed    SafetyStatus = "Red"
)

// ShiftReport is the parsed result of one generation call. Treat as immutable.
type ShiftReport struct {
	SafetyStatus SafetyStatus `json:"safetyStatus"`
	EcoImpact    string       `json:"ecoImpact"`
	WorkerTip    string       `json:"workerTip"`
	Content      string       `json:"content"` // narrative without the JSON block
	RawJSON      string       `json:"rawJson"`
	GeneratedAt  time.Time    `json:"generatedAt"`
}

// Line kinds used when rendering report content.
const (
	LineHeading = "heading"
	LineAlert   = "alert"
	LineText    = "text"
)

// ReportLine is a single rendered line of report content.
type ReportLine struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}
