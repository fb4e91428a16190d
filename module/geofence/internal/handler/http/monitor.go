package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
)

type monitorService interface {
	Status() domain.SafetyStatus
	CurrentZone() *domain.Zone
	LastCoordinate() *domain.Coordinate
	Panic(ctx context.Context) domain.PanicAck
}

type historyService interface {
	ListAlerts(ctx context.Context, limit int) ([]domain.AlertRecord, error)
}

type statusResponse struct {
	Safety    domain.SafetyStatus `json:"safety"`
	Zone      string              `json:"zone"`
	Latitude  *float64            `json:"latitude"`
	Longitude *float64            `json:"longitude"`
}

const (
	defaultAlertLimit = 50
	maxAlertLimit     = 500
)

type MonitorHandler struct {
	monitorSvc monitorService
	historySvc historyService
}

func NewMonitorHandler(monitorSvc monitorService, historySvc historyService) *MonitorHandler {
	return &MonitorHandler{monitorSvc: monitorSvc, historySvc: historySvc}
}

func (h *MonitorHandler) Register(r *gin.RouterGroup) {
	r.GET("/status", h.GetStatus)
	r.GET("/location", h.GetLocation)
	r.GET("/alerts", h.GetAlerts)
	r.POST("/panic", h.PostPanic)
}

func (h *MonitorHandler) GetStatus(c *gin.Context) {
	resp := statusResponse{
		Safety: h.monitorSvc.Status(),
	}
	if z := h.monitorSvc.CurrentZone(); z != nil {
		resp.Zone = z.Name
	}
	if coord := h.monitorSvc.LastCoordinate(); coord != nil {
		resp.Latitude = &coord.Lat
		resp.Longitude = &coord.Lon
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MonitorHandler) GetLocation(c *gin.Context) {
	coord := h.monitorSvc.LastCoordinate()
	if coord == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no position observed yet"})
		return
	}
	c.JSON(http.StatusOK, coord)
}

func (h *MonitorHandler) GetAlerts(c *gin.Context) {
	limit := defaultAlertLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
			return
		}
		if parsed > maxAlertLimit {
			parsed = maxAlertLimit
		}
		limit = parsed
	}

	alerts, err := h.historySvc.ListAlerts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch alerts"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// PostPanic always acknowledges locally; delivery trouble is the
// dispatcher's problem, not the caller's.
func (h *MonitorHandler) PostPanic(c *gin.Context) {
	ack := h.monitorSvc.Panic(c.Request.Context())
	c.JSON(http.StatusOK, ack)
}
