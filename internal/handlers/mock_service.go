package handlers

import (
	"context"
	"sync"

	"ecosync/internal/models"
	"ecosync/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockDashboard struct {
	mu sync.Mutex

	reading   models.SensorReading
	updateErr error
	lastField string
	lastValue any

	report      models.ShiftReport
	generateErr error
	generated   int

	acceptErr error
	rejectErr error
	accepted  int
	rejected  int

	lastFeedback string
	dismissed    int

	view    models.DashboardView
	viewErr error

	history    []models.HistoryEntry
	historyErr error
	vitals     []models.VitalsPoint
}

func (m *mockDashboard) Reading() models.SensorReading {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reading
}

func (m *mockDashboard) UpdateField(field string, value any) (models.SensorReading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastField = field
	m.lastValue = value
	return m.reading, m.updateErr
}

func (m *mockDashboard) GenerateReport(ctx context.Context) (models.ShiftReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated++
	return m.report, m.generateErr
}

func (m *mockDashboard) AcceptReport(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accepted++
	return m.acceptErr
}

func (m *mockDashboard) RejectReport(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected++
	return m.rejectErr
}

func (m *mockDashboard) SubmitFeedback(text string) models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFeedback = text
	return models.Notification{ID: "n-1", Kind: models.NotificationInfo, Message: "Feedback received. Human-centric parameters updated."}
}

func (m *mockDashboard) DismissNotification() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dismissed++
}

func (m *mockDashboard) View(ctx context.Context) (models.DashboardView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view, m.viewErr
}

func (m *mockDashboard) History(ctx context.Context) ([]models.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history, m.historyErr
}

func (m *mockDashboard) VitalsSeries(ctx context.Context) ([]models.VitalsPoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vitals, m.historyErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
