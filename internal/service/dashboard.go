package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"ecosync/internal/logger"
	"ecosync/internal/models"
	"ecosync/internal/repository"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Operator-facing notification texts.
const (
	msgGenerationFailed = "Error: Failed to sync with EcoSync OS neural link."
	msgFeedbackReceived = "Feedback received. Human-centric parameters updated."
	msgReportAccepted   = "Report accepted. Shift log updated."
	msgReportRejected   = "Report rejected. Adjust the readings and generate a new report."
)

var (
	ErrGenerationInProgress = errors.New("report generation already in progress")
	ErrGenerationFailed     = errors.New("generation failed")
	ErrNoCurrentReport      = errors.New("no current report")
	ErrUnknownField         = errors.New("unknown sensor field")
	ErrInvalidFieldValue    = errors.New("invalid sensor field value")
)

// DefaultReading is the reading the dashboard starts with.
func DefaultReading() models.SensorReading {
	return models.SensorReading{
		WorkerID:          "W-8821",
		HeartRate:         72,
		MachineTemp:       45,
		EnergyConsumption: 32,
		ActiveTasks:       "Calibration of Line A",
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	}
}

// reportGenerator is the slice of ReportService the dashboard depends on.
type reportGenerator interface {
	Generate(ctx context.Context, r models.SensorReading) (models.ShiftReport, error)
}

// DashboardService owns the operator's reading, the current report, the
// notification and the history. Safe for concurrent use.
type DashboardService struct {
	reports    reportGenerator
	history    repository.HistoryRepo
	factoryLog repository.FactoryLog
	log        *logger.Logger

	now   func() time.Time
	newID func() string

	mu           sync.Mutex
	reading      models.SensorReading
	analyzing    bool
	current      *models.ShiftReport
	currentID    string
	notification *models.Notification
}

func NewDashboardService(reports reportGenerator, history repository.HistoryRepo, factoryLog repository.FactoryLog, initial models.SensorReading, log *logger.Logger) *DashboardService {
	if factoryLog == nil {
		factoryLog = repository.NopFactoryLog{}
	}
	return &DashboardService{
		reports:    reports,
		history:    history,
		factoryLog: factoryLog,
		log:        log,
		now:        time.Now,
		newID:      uuid.NewString,
		reading:    initial,
	}
}

// Reading returns a copy of the current reading.
func (s *DashboardService) Reading() models.SensorReading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reading
}

// UpdateField sets a single field of the current reading.
// Numeric fields accept numbers or numeric strings; an empty string reads as 0.
func (s *DashboardService) UpdateField(field string, value any) (models.SensorReading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.reading
	switch field {
	case models.FieldWorkerID:
		v, err := cast.ToStringE(value)
		if err != nil {
			return s.reading, fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, field, err)
		}
		next.WorkerID = v
	case models.FieldActiveTasks:
		v, err := cast.ToStringE(value)
		if err != nil {
			return s.reading, fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, field, err)
		}
		next.ActiveTasks = v
	case models.FieldHeartRate, models.FieldMachineTemp, models.FieldEnergyConsumption:
		v, err := toNumber(value)
		if err != nil {
			return s.reading, fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, field, err)
		}
		switch field {
		case models.FieldHeartRate:
			next.HeartRate = v
		case models.FieldMachineTemp:
			next.MachineTemp = v
		default:
			next.EnergyConsumption = v
		}
	default:
		return s.reading, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	s.reading = next
	return next, nil
}

func toNumber(value any) (float64, error) {
	if str, ok := value.(string); ok {
		str = strings.TrimSpace(str)
		if str == "" {
			return 0, nil
		}
		value = str
	}
	v, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%v is not a finite number", value)
	}
	return v, nil
}

// GenerateReport snapshots the current reading and generates a report for it.
// Only one generation may be in flight. On failure the history and the current
// report are left as they were and a single error notification is posted.
func (s *DashboardService) GenerateReport(ctx context.Context) (models.ShiftReport, error) {
	s.mu.Lock()
	if s.analyzing {
		s.mu.Unlock()
		return models.ShiftReport{}, ErrGenerationInProgress
	}
	s.analyzing = true
	snapshot := s.reading
	snapshot.Timestamp = s.now().UTC().Format(time.RFC3339)
	s.mu.Unlock()

	report, err := s.generate(ctx, snapshot)

	s.mu.Lock()
	s.analyzing = false
	if err != nil {
		s.notifyLocked(models.NotificationError, msgGenerationFailed)
		s.mu.Unlock()
		if s.log != nil {
			s.log.Errorw("report_generation_failed", "err", err, "worker_id", snapshot.WorkerID)
		}
		return models.ShiftReport{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	entry := models.HistoryEntry{
		SensorReading: snapshot,
		ID:            s.newID(),
		Report:        &report,
		Review:        models.ReviewPending,
	}
	if herr := s.history.Prepend(ctx, entry); herr != nil && s.log != nil {
		s.log.Errorw("history_prepend_failed", "err", herr, "entry_id", entry.ID)
	}
	s.current = &report
	s.currentID = entry.ID
	s.mu.Unlock()

	if perr := s.factoryLog.Publish(ctx, entry); perr != nil && s.log != nil {
		s.log.Warnw("factory_log_publish_failed", "err", perr, "entry_id", entry.ID)
	}
	if s.log != nil {
		s.log.Infow("report_generated", "entry_id", entry.ID, "safety_status", report.SafetyStatus)
	}
	return report, nil
}

// generate turns a generator panic into an error so the in-flight flag is
// always released.
func (s *DashboardService) generate(ctx context.Context, r models.SensorReading) (report models.ShiftReport, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("report generator panic: %v", p)
		}
	}()
	return s.reports.Generate(ctx, r)
}

// AcceptReport keeps the current report and marks its history entry accepted.
func (s *DashboardService) AcceptReport(ctx context.Context) error {
	return s.review(ctx, models.ReviewAccepted)
}

// RejectReport clears the current report and marks its history entry rejected.
func (s *DashboardService) RejectReport(ctx context.Context) error {
	return s.review(ctx, models.ReviewRejected)
}

func (s *DashboardService) review(ctx context.Context, verdict string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoCurrentReport
	}
	// The entry may already have been evicted from the history; the verdict still applies.
	if err := s.history.SetReview(ctx, s.currentID, verdict); err != nil && !errors.Is(err, repository.ErrEntryNotFound) {
		return err
	}
	if verdict == models.ReviewRejected {
		s.current = nil
		s.currentID = ""
		s.notifyLocked(models.NotificationInfo, msgReportRejected)
		return nil
	}
	s.notifyLocked(models.NotificationInfo, msgReportAccepted)
	return nil
}

// SubmitFeedback acknowledges operator feedback. The text is not stored.
func (s *DashboardService) SubmitFeedback(text string) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.log != nil {
		s.log.Debugw("feedback_received", "length", len(text))
	}
	return s.notifyLocked(models.NotificationInfo, msgFeedbackReceived)
}

// DismissNotification clears the displayed notification, if any.
func (s *DashboardService) DismissNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notification = nil
}

// View assembles the full dashboard state.
func (s *DashboardService) View(ctx context.Context) (models.DashboardView, error) {
	history, err := s.history.List(ctx)
	if err != nil {
		return models.DashboardView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	view := models.DashboardView{
		Reading:    s.reading,
		Alerts:     DeriveAlerts(s.reading),
		LiveStatus: ClassifySafety(s.reading),
		Analyzing:  s.analyzing,
		History:    history,
	}
	if s.current != nil {
		rep := *s.current
		view.CurrentReport = &rep
		view.ReportLines = RenderLines(rep.Content)
	}
	if s.notification != nil {
		n := *s.notification
		view.Notification = &n
	}
	return view, nil
}

// History returns the rolling history, newest first.
func (s *DashboardService) History(ctx context.Context) ([]models.HistoryEntry, error) {
	return s.history.List(ctx)
}

// VitalsSeries returns the history as a chart series, oldest first.
func (s *DashboardService) VitalsSeries(ctx context.Context) ([]models.VitalsPoint, error) {
	history, err := s.history.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.VitalsPoint, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		out = append(out, models.VitalsPoint{
			Index:       len(out),
			HeartRate:   history[i].HeartRate,
			MachineTemp: history[i].MachineTemp,
		})
	}
	return out, nil
}

// notifyLocked replaces the displayed notification. Callers hold s.mu.
func (s *DashboardService) notifyLocked(kind, msg string) models.Notification {
	n := models.Notification{
		ID:        s.newID(),
		Kind:      kind,
		Message:   msg,
		CreatedAt: s.now().UTC(),
	}
	s.notification = &n
	return n
}
