package handlers

import (
	"time"

	"ecosync/internal/logger"
	"ecosync/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	interval time.Duration
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// WithStreamInterval sets the default push interval of the /ws stream.
// Values outside (0, 10s] keep the built-in 1s default.
func (h *Handler) WithStreamInterval(d time.Duration) *Handler {
	h.interval = d
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Dashboard state stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/dashboard", h.getDashboard)
		h.registerReadingRoutes(api)
		h.registerReportRoutes(api)
		h.registerHistoryRoutes(api)

		api.POST("/feedback", h.submitFeedback)
		api.DELETE("/notification", h.dismissNotification)
	}
}

func (h *Handler) registerReadingRoutes(api *gin.RouterGroup) {
	reading := api.Group("/reading")
	{
		reading.GET("", h.getReading)
		// Body example: {"value": 112}
		reading.PUT("/:field", h.updateReadingField)
	}
}

func (h *Handler) registerReportRoutes(api *gin.RouterGroup) {
	reports := api.Group("/reports")
	{
		reports.POST("", h.generateReport)
		reports.POST("/current/accept", h.acceptReport)
		reports.POST("/current/reject", h.rejectReport)
	}
}

func (h *Handler) registerHistoryRoutes(api *gin.RouterGroup) {
	history := api.Group("/history")
	{
		history.GET("", h.getHistory)
		history.GET("/vitals", h.getVitals)
	}
}
