package service

import (
	"context"

	"ecosync/internal/logger"
	"ecosync/internal/models"
	"ecosync/internal/repository"
)

// Dashboard exposes the operator dashboard: reading edits, report lifecycle,
// notifications and history.
type Dashboard interface {
	Reading() models.SensorReading
	UpdateField(field string, value any) (models.SensorReading, error)
	GenerateReport(ctx context.Context) (models.ShiftReport, error)
	AcceptReport(ctx context.Context) error
	RejectReport(ctx context.Context) error
	SubmitFeedback(text string) models.Notification
	DismissNotification()
	View(ctx context.Context) (models.DashboardView, error)
	History(ctx context.Context) ([]models.HistoryEntry, error)
	VitalsSeries(ctx context.Context) ([]models.VitalsPoint, error)
}

// Reports turns a reading into a shift report via the text generator.
type Reports interface {
	Generate(ctx context.Context, r models.SensorReading) (models.ShiftReport, error)
}

// Service aggregates all sub-services.
type Service struct {
	Dashboard
	Reports
}

// NewService wires repositories and the text generator into concrete services.
func NewService(repos *repository.Repository, gen TextGenerator, initial models.SensorReading, log *logger.Logger) *Service {
	reports := NewReportService(gen)
	return &Service{
		Dashboard: NewDashboardService(reports, repos.History, repos.FactoryLog, initial, log),
		Reports:   reports,
	}
}
