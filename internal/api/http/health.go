package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devportfolio/portfolio-backend/internal/storage/postgres"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	conn        *postgres.Connector
}

func NewHealthHandler(serviceName, version string, conn *postgres.Connector) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		conn:        conn,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "disabled"
	if h.conn != nil {
		if db, err := h.conn.Connect(); err != nil {
			dbStatus = "down"
		} else if err := db.PingContext(c.Request.Context()); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
