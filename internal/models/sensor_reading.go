package models

// Sensor reading field names, as sent by the operator form.
const (
	FieldWorkerID          = "workerId"
	FieldHeartRate         = "heartRate"
	FieldMachineTemp       = "machineTemp"
	FieldEnergyConsumption = "energyConsumption"
	FieldActiveTasks       = "activeTasks"
)

// SensorReading is the operator-edited snapshot of worker vitals and machine telemetry.
type SensorReading struct {
	WorkerID          string  `json:"workerId"`
	HeartRate         float64 `json:"heartRate"`         // bpm
	MachineTemp       float64 `json:"machineTemp"`       // °C
	EnergyConsumption float64 `json:"energyConsumption"` // kWh
	ActiveTasks       string  `json:"activeTasks"`
	Timestamp         string  `json:"timestamp"` // RFC3339
}

// Alerts are the warning flags derived from a reading on every view.
type Alerts struct {
	SafetyCritical bool `json:"safetyCritical"`
	EcoWarning     bool `json:"ecoWarning"`
}
