package handlers

import (
	"errors"
	"net/http"

	"ecosync/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK        = "ok"
	statusUpdated   = "updated"
	statusGenerated = "generated"
	statusAccepted  = "accepted"
	statusRejected  = "rejected"
	statusReceived  = "received"

	errLoadDashboard    = "failed to load dashboard"
	errLoadHistory      = "failed to load history"
	errGenerationFailed = "report generation failed"
	errInProgress       = "report generation already in progress"
	errNoCurrentReport  = "no current report"
	errReviewReport     = "failed to review report"
	errMissingValue     = "invalid body: value is required"
	errInvalidBodyPref  = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with a status and include the dashboard view if available (best-effort).
func (h *Handler) respondWithStatusAndView(c *gin.Context, status string, extra gin.H) {
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	if view, err := h.services.Dashboard.View(c.Request.Context()); err == nil {
		resp["dashboard"] = view
	}
	c.JSON(http.StatusOK, resp)
}

// FieldUpdateRequest documents the body of a reading field update.
type FieldUpdateRequest struct {
	// New value; numbers or numeric strings for heartRate, machineTemp, energyConsumption
	Value any `json:"value" swaggertype:"string" example:"112"`
}

type feedbackRequest struct {
	Text string `json:"text"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Dashboard view
// @Description  Reading, derived alerts, loading flag, current report, notification and history
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardView
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	view, err := h.services.Dashboard.View(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadDashboard, "dashboard_view_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Current reading
// @Tags         reading
// @Produce      json
// @Success      200  {object}  models.SensorReading
// @Router       /api/v1/reading [get]
func (h *Handler) getReading(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Dashboard.Reading())
}

// @Summary      Update one reading field
// @Tags         reading
// @Accept       json
// @Produce      json
// @Param        field  path  string              true  "Field"  Enums(workerId,heartRate,machineTemp,energyConsumption,activeTasks)
// @Param        body   body  FieldUpdateRequest  true  "New value"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/reading/{field} [put]
func (h *Handler) updateReadingField(c *gin.Context) {
	var req FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if req.Value == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingValue})
		return
	}
	field := c.Param("field")
	reading, err := h.services.Dashboard.UpdateField(field, req.Value)
	if err != nil {
		if h.log != nil {
			h.log.Infow("reading_update_rejected", "err", err, "field", field)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusUpdated, "reading": reading})
}

// @Summary      Generate shift report
// @Description  Snapshots the current reading and asks the generative service for a report
// @Tags         reports
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, report, dashboard"
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/reports [post]
func (h *Handler) generateReport(c *gin.Context) {
	report, err := h.services.Dashboard.GenerateReport(c.Request.Context())
	switch {
	case errors.Is(err, service.ErrGenerationInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": errInProgress})
		return
	case err != nil:
		// Already logged by the dashboard; the view carries the notification.
		c.JSON(http.StatusBadGateway, gin.H{"error": errGenerationFailed})
		return
	}
	h.respondWithStatusAndView(c, statusGenerated, gin.H{"report": report})
}

// @Summary      Accept current report
// @Tags         reports
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/reports/current/accept [post]
func (h *Handler) acceptReport(c *gin.Context) {
	if err := h.services.Dashboard.AcceptReport(c.Request.Context()); err != nil {
		h.reviewError(c, err)
		return
	}
	h.respondWithStatusAndView(c, statusAccepted, gin.H{})
}

// @Summary      Reject current report
// @Tags         reports
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/reports/current/reject [post]
func (h *Handler) rejectReport(c *gin.Context) {
	if err := h.services.Dashboard.RejectReport(c.Request.Context()); err != nil {
		h.reviewError(c, err)
		return
	}
	h.respondWithStatusAndView(c, statusRejected, gin.H{})
}

func (h *Handler) reviewError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNoCurrentReport) {
		c.JSON(http.StatusNotFound, gin.H{"error": errNoCurrentReport})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errReviewReport, "report_review_failed", err)
}

// @Summary      Submit feedback
// @Description  Feedback is acknowledged and discarded
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body  feedbackRequest  true  "Feedback"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/feedback [post]
func (h *Handler) submitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	n := h.services.Dashboard.SubmitFeedback(req.Text)
	c.JSON(http.StatusOK, gin.H{"status": statusReceived, "notification": n})
}

// @Summary      Dismiss notification
// @Tags         dashboard
// @Success      204
// @Router       /api/v1/notification [delete]
func (h *Handler) dismissNotification(c *gin.Context) {
	h.services.Dashboard.DismissNotification()
	c.Status(http.StatusNoContent)
}

// @Summary      Report history
// @Description  Up to 10 entries, newest first
// @Tags         history
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, entries"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	entries, err := h.services.Dashboard.History(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadHistory, "history_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

// @Summary      Vitals chart series
// @Description  Heart rate and machine temperature per history entry, oldest first
// @Tags         history
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "points"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/history/vitals [get]
func (h *Handler) getVitals(c *gin.Context) {
	points, err := h.services.Dashboard.VitalsSeries(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadHistory, "vitals_series_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}
