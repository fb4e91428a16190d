package config

import (
	"database/sql"
	"net/http"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
)

// SessionProbe exposes the running monitoring session to the health check.
type SessionProbe interface {
	Status() domain.SafetyStatus
	LastCoordinate() *domain.Coordinate
}

// HealthChecker reports the three collaborators the engine depends on
// (Postgres for history, RabbitMQ for alert delivery, MQTT for the position
// stream) plus the monitoring session itself.
type HealthChecker struct {
	db       *sql.DB
	amqpConn *amqp.Connection
	mqtt     mqtt.Client
	session  SessionProbe
}

func NewHealthChecker(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, session SessionProbe) *HealthChecker {
	return &HealthChecker{db: db, amqpConn: amqpConn, mqtt: mqttClient, session: session}
}

func (h *HealthChecker) Register(r *gin.Engine) {
	r.GET("/healthz", h.Handle)
}

func (h *HealthChecker) Handle(c *gin.Context) {
	status := http.StatusOK
	deps := gin.H{}

	if err := h.db.PingContext(c.Request.Context()); err != nil {
		deps["postgres"] = gin.H{"status": "down", "error": err.Error()}
		status = http.StatusServiceUnavailable
	} else {
		deps["postgres"] = gin.H{"status": "up"}
	}

	if h.amqpConn.IsClosed() {
		deps["rabbitmq"] = gin.H{"status": "down", "error": "connection closed"}
		status = http.StatusServiceUnavailable
	} else {
		deps["rabbitmq"] = gin.H{"status": "up"}
	}

	if !h.mqtt.IsConnected() {
		deps["mqtt"] = gin.H{"status": "down", "error": "not connected"}
		status = http.StatusServiceUnavailable
	} else {
		deps["mqtt"] = gin.H{"status": "up"}
	}

	deps["monitor"] = h.sessionDep()

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":       overall,
		"dependencies": deps,
	})
}

// sessionDep describes the monitoring session. A session without a position
// fix is still healthy; it just has not heard from the device yet.
func (h *HealthChecker) sessionDep() gin.H {
	if h.session == nil {
		return gin.H{"status": "down", "error": "no session"}
	}
	return gin.H{
		"status":       "up",
		"safety":       h.session.Status(),
		"position_fix": h.session.LastCoordinate() != nil,
	}
}
