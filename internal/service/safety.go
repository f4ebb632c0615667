package service

import "ecosync/internal/models"

// Safety thresholds. Comparisons are strict: a value equal to a limit does not trip it.
const (
	CriticalHeartRateBPM = 110.0
	CriticalMachineTempC = 85.0
	ElevatedHeartRateBPM = 100.0
	ElevatedMachineTempC = 75.0
	EcoEnergyLimitKWh    = 50.0
)

// ClassifySafety derives the safety status of a reading from the thresholds alone.
func ClassifySafety(r models.SensorReading) models.SafetyStatus {
	switch {
	case r.HeartRate > CriticalHeartRateBPM || r.MachineTemp > CriticalMachineTempC:
		return models.SafetyRed
	case r.HeartRate > ElevatedHeartRateBPM || r.MachineTemp > ElevatedMachineTempC || r.EnergyConsumption > EcoEnergyLimitKWh:
		return models.SafetyYellow
	default:
		return models.SafetyGreen
	}
}

// DeriveAlerts computes the warning flags shown next to the sensor form.
func DeriveAlerts(r models.SensorReading) models.Alerts {
	return models.Alerts{
		SafetyCritical: r.HeartRate > CriticalHeartRateBPM || r.MachineTemp > CriticalMachineTempC,
		EcoWarning:     r.EnergyConsumption > EcoEnergyLimitKWh,
	}
}
