package service

import (
	"strings"

	"ecosync/internal/models"
)

const safetyAlertMarker = "SAFETY PROTOCOL ALERT"

// RenderLines splits report content into display lines. Heading text keeps
// the whitespace that followed the '#' marks.
func RenderLines(content string) []models.ReportLine {
	if content == "" {
		return nil
	}
	parts := strings.Split(content, "\n")
	out := make([]models.ReportLine, 0, len(parts))
	for _, line := range parts {
		switch {
		case strings.HasPrefix(line, "#"):
			out = append(out, models.ReportLine{Kind: models.LineHeading, Text: strings.ReplaceAll(line, "#", "")})
		case strings.Contains(line, safetyAlertMarker):
			out = append(out, models.ReportLine{Kind: models.LineAlert, Text: line})
		default:
			out = append(out, models.ReportLine{Kind: models.LineText, Text: line})
		}
	}
	return out
}
