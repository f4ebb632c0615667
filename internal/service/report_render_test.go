package service

import (
	"testing"

	"ecosync/internal/models"

	"github.com/google/go-cmp/cmp"
)

func TestRenderLines(t *testing.T) {
	t.Parallel()

	content := "## Safety Status: Red\n**SAFETY PROTOCOL ALERT** heart rate high\n\nTake a break."
	want := []models.ReportLine{
		{Kind: models.LineHeading, Text: " Safety Status: Red"},
		{Kind: models.LineAlert, Text: "**SAFETY PROTOCOL ALERT** heart rate high"},
		{Kind: models.LineText, Text: ""},
		{Kind: models.LineText, Text: "Take a break."},
	}
	if diff := cmp.Diff(want, RenderLines(content)); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderLines_HeadingWinsOverAlert(t *testing.T) {
	t.Parallel()

	got := RenderLines("# SAFETY PROTOCOL ALERT")
	if len(got) != 1 || got[0].Kind != models.LineHeading {
		t.Fatalf("expected heading, got %+v", got)
	}
}

func TestRenderLines_HeadingStripsEveryHash(t *testing.T) {
	t.Parallel()

	got := RenderLines("## Safety #1 ##")
	want := []models.ReportLine{{Kind: models.LineHeading, Text: " Safety 1 "}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderLines_Empty(t *testing.T) {
	t.Parallel()

	if got := RenderLines(""); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
