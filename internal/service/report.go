package service

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"ecosync/internal/models"
)

// SystemInstruction is sent with every generation request.
const SystemInstruction = `You are the "EcoSync OS," a specialized AI interface for Human-Centric Smart Factories.

Core Logic:
1. Human-Partner Mode: You do not replace workers; you monitor their safety and the machine's eco-efficiency.
2. Safety Thresholds:
   - If Heart Rate > 110, trigger "SAFETY PROTOCOL ALERT".
   - If Machine Temp > 85°C, trigger "SAFETY PROTOCOL ALERT".
3. Eco-Logic:
   - If Energy > 50kWh, suggest a specific "Green Optimization" (e.g., "Dimming floor lights by 20%", "Optimizing spindle speed").
4. Human Dignity: Always ask for the worker's feedback after giving a suggestion to ensure they feel in control.

Output Format:
Return a Shift Report in Markdown.
Include:
- A "Safety Status" (Green/Yellow/Red) based on thresholds.
- An "Eco-Impact" Analysis.
- A "Worker Empowerment Tip".
- A simulated JSON block at the end (using ` + "```json" + ` blocks) that represents factory log entry.

Interaction Style: Professional, supportive, and industrial. Technical but accessible.`

// Placeholder summaries; the full analysis lives in the report content.
const (
	ecoImpactSummary = "Analysis complete based on energy consumption metrics."
	workerTipSummary = "Empowerment tip generated within report text."
)

// jsonBlockRe matches the first fenced json block, non-greedy, across lines.
var jsonBlockRe = regexp.MustCompile("(?s)```json(.*?)```")

// TextGenerator produces free text for a system instruction and a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error)
}

type ReportService struct {
	gen TextGenerator
	now func() time.Time
}

func NewReportService(gen TextGenerator) *ReportService {
	return &ReportService{gen: gen, now: time.Now}
}

// Generate asks the text generator for a shift report on r.
// Generator errors are returned as is; nothing is retried.
func (s *ReportService) Generate(ctx context.Context, r models.SensorReading) (models.ShiftReport, error) {
	text, err := s.gen.GenerateText(ctx, SystemInstruction, BuildPrompt(r))
	if err != nil {
		return models.ShiftReport{}, err
	}
	report := ParseReport(text, r)
	report.GeneratedAt = s.now().UTC()
	return report, nil
}

// BuildPrompt renders the per-call prompt for r.
func BuildPrompt(r models.SensorReading) string {
	var b strings.Builder
	b.WriteString("Generate a shift report for the following sensor data:\n")
	b.WriteString("Worker ID: " + r.WorkerID + "\n")
	b.WriteString("Heart Rate: " + formatNumber(r.HeartRate) + " bpm\n")
	b.WriteString("Machine Temp: " + formatNumber(r.MachineTemp) + " °C\n")
	b.WriteString("Energy Consumption: " + formatNumber(r.EnergyConsumption) + " kWh\n")
	b.WriteString("Current Tasks: " + r.ActiveTasks)
	return b.String()
}

// ParseReport turns raw generated text into a report for r.
// The safety status never depends on the generated text.
func ParseReport(text string, r models.SensorReading) models.ShiftReport {
	rawJSON := ""
	content := text
	if loc := jsonBlockRe.FindStringSubmatchIndex(text); loc != nil {
		rawJSON = strings.TrimSpace(text[loc[2]:loc[3]])
		content = text[:loc[0]] + text[loc[1]:]
	} else {
		rawJSON = serializeReading(r)
	}

	return models.ShiftReport{
		SafetyStatus: ClassifySafety(r),
		EcoImpact:    ecoImpactSummary,
		WorkerTip:    workerTipSummary,
		Content:      strings.TrimSpace(content),
		RawJSON:      rawJSON,
	}
}

func serializeReading(r models.SensorReading) string {
	b, err := json.Marshal(r)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// formatNumber prints v in its shortest form, so 72 stays "72" and 36.6 stays "36.6".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
