package models

// Review states of a generated report.
const (
	ReviewPending  = "pending"
	ReviewAccepted = "accepted"
	ReviewRejected = "rejected"
)

// HistoryEntry is a reading snapshot kept in the rolling history.
type HistoryEntry struct {
	SensorReading
	ID     string       `json:"id"`
	Report *ShiftReport `json:"report,omitempty"`
	Review string       `json:"review"`
}

// VitalsPoint is one sample of the vitals chart series.
type VitalsPoint struct {
	Index       int     `json:"index"`
	HeartRate   float64 `json:"heartRate"`
	MachineTemp float64 `json:"machineTemp"`
}
