package service

import (
	"testing"

	"ecosync/internal/models"
)

func TestClassifySafety(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   models.SensorReading
		want models.SafetyStatus
	}{
		{"nominal", models.SensorReading{HeartRate: 72, MachineTemp: 45, EnergyConsumption: 32}, models.SafetyGreen},
		{"limits are not breaches", models.SensorReading{HeartRate: 100, MachineTemp: 75, EnergyConsumption: 50}, models.SafetyGreen},
		{"elevated heart rate", models.SensorReading{HeartRate: 101, MachineTemp: 45, EnergyConsumption: 32}, models.SafetyYellow},
		{"elevated temperature", models.SensorReading{HeartRate: 72, MachineTemp: 75.5, EnergyConsumption: 32}, models.SafetyYellow},
		{"energy only", models.SensorReading{HeartRate: 72, MachineTemp: 45, EnergyConsumption: 51}, models.SafetyYellow},
		{"critical heart rate boundary", models.SensorReading{HeartRate: 110, MachineTemp: 45}, models.SafetyYellow},
		{"critical heart rate", models.SensorReading{HeartRate: 111, MachineTemp: 45}, models.SafetyRed},
		{"critical temperature boundary", models.SensorReading{HeartRate: 72, MachineTemp: 85}, models.SafetyYellow},
		{"critical temperature", models.SensorReading{HeartRate: 72, MachineTemp: 85.1}, models.SafetyRed},
		{"red wins over energy", models.SensorReading{HeartRate: 130, MachineTemp: 90, EnergyConsumption: 999}, models.SafetyRed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifySafety(tc.in); got != tc.want {
				t.Fatalf("ClassifySafety(%+v) = %s; want %s", tc.in, got, tc.want)
			}
		})
	}
}

// TestClassifySafety_Grid sweeps the input space and checks every cell
// against the threshold rule.
func TestClassifySafety_Grid(t *testing.T) {
	t.Parallel()

	for hr := 40.0; hr <= 160; hr += 2.5 {
		for temp := 10.0; temp <= 120; temp += 2.5 {
			for _, energy := range []float64{0, 49.9, 50, 50.1, 200} {
				r := models.SensorReading{HeartRate: hr, MachineTemp: temp, EnergyConsumption: energy}
				got := ClassifySafety(r)

				var want models.SafetyStatus
				switch {
				case hr > 110 || temp > 85:
					want = models.SafetyRed
				case hr > 100 || temp > 75 || energy > 50:
					want = models.SafetyYellow
				default:
					want = models.SafetyGreen
				}
				if got != want {
					t.Fatalf("hr=%v temp=%v energy=%v: got %s, want %s", hr, temp, energy, got, want)
				}
			}
		}
	}
}

func TestDeriveAlerts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   models.SensorReading
		want models.Alerts
	}{
		{"calm", models.SensorReading{HeartRate: 72, MachineTemp: 45, EnergyConsumption: 32}, models.Alerts{}},
		{"heart rate", models.SensorReading{HeartRate: 111}, models.Alerts{SafetyCritical: true}},
		{"temperature", models.SensorReading{MachineTemp: 86}, models.Alerts{SafetyCritical: true}},
		{"energy", models.SensorReading{EnergyConsumption: 50.5}, models.Alerts{EcoWarning: true}},
		{"both", models.SensorReading{HeartRate: 120, EnergyConsumption: 60}, models.Alerts{SafetyCritical: true, EcoWarning: true}},
		{"yellow is not critical", models.SensorReading{HeartRate: 105, MachineTemp: 80}, models.Alerts{}},
	}
	for _, tc := range cases {
		if got := DeriveAlerts(tc.in); got != tc.want {
			t.Fatalf("%s: DeriveAlerts = %+v; want %+v", tc.name, got, tc.want)
		}
	}
}
