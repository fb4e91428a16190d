package geofence

import (
	"database/sql"
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
	handler "github.com/DivyanshTulsiani/geofence/module/geofence/internal/handler/http"
	"github.com/DivyanshTulsiani/geofence/module/geofence/internal/handler/subscriber"
	"github.com/DivyanshTulsiani/geofence/module/geofence/internal/repository/database/postgres"
	"github.com/DivyanshTulsiani/geofence/module/geofence/internal/repository/publisher/rabbitmq"
	"github.com/DivyanshTulsiani/geofence/module/geofence/service"
)

type Module struct {
	Monitor    *service.Monitor
	HistorySvc *service.HistoryService
	handler    *handler.MonitorHandler
	subscriber *subscriber.PositionSubscriber
}

// Build wires the module. onStreamError is the observer for position-stream
// failures; pass the same function given to config.NewMQTT so subscribe
// errors and connection loss reach one place.
func Build(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, zones []domain.Zone, recipientID string, onStreamError func(error)) (*Module, error) {
	registry, err := service.NewRegistry(zones)
	if err != nil {
		return nil, fmt.Errorf("zone registry: %w", err)
	}

	alertPub, err := rabbitmq.NewAlertPublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("alert publisher: %w", err)
	}

	alertRepo := postgres.NewAlertRepo(db)
	sampleRepo := postgres.NewSampleRepo(db)

	dispatcher := service.NewAlertDispatcher(alertPub, alertRepo, recipientID, func(err error) {
		log.Printf("outbound alert not delivered: %v", err)
	})

	monitor := service.NewMonitor(registry, dispatcher, sampleRepo, service.Callbacks{
		OnSafetyStatusChange: func(s domain.SafetyStatus) { log.Printf("safety status: %s", s) },
		OnZoneChange: func(zone string) {
			if zone == "" {
				zone = "(outside all zones)"
			}
			log.Printf("zone: %s", zone)
		},
	})

	historySvc := service.NewHistoryService(alertRepo, sampleRepo)

	if onStreamError == nil {
		onStreamError = func(err error) {
			log.Printf("position stream error: %v", err)
		}
	}

	h := handler.NewMonitorHandler(monitor, historySvc)
	sub := subscriber.NewPositionSubscriber(mqttClient, monitor, onStreamError)

	return &Module{
		Monitor:    monitor,
		HistorySvc: historySvc,
		handler:    h,
		subscriber: sub,
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.handler.Register(r)
}

func (m *Module) StartMonitoring() error {
	return m.subscriber.Start()
}

func (m *Module) StopMonitoring() error {
	return m.subscriber.Stop()
}
