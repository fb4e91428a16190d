package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/DivyanshTulsiani/geofence/config"
	"github.com/DivyanshTulsiani/geofence/module/geofence"
	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
)

// demoZones is the built-in catalog used when ZONES_FILE is unset. Order is
// precedence order.
var demoZones = []domain.Zone{
	{
		Name:           "Connaught Place",
		Shape:          domain.ShapeCircle,
		Center:         domain.Coordinate{Lat: 28.6041, Lon: 77.2025},
		ExtentMeters:   100,
		Classification: domain.ClassDanger,
	},
	{
		Name:           "Karol Bagh Market",
		Shape:          domain.ShapeSquare,
		Center:         domain.Coordinate{Lat: 28.62, Lon: 77.09},
		ExtentMeters:   90,
		Classification: domain.ClassSafe,
	},
	{
		Name:           "Karol Bagh Perimeter",
		Shape:          domain.ShapeSquare,
		Center:         domain.Coordinate{Lat: 28.62, Lon: 77.09},
		ExtentMeters:   200,
		Classification: domain.ClassCaution,
	},
}

func main() {
	cfg := config.Load()

	zones := demoZones
	if cfg.ZonesFile != "" {
		loaded, err := config.LoadZones(cfg.ZonesFile)
		if err != nil {
			log.Fatalf("zones: %v", err)
		}
		zones = loaded
	}

	recipientID, err := config.LoadOrCreateIdentity(cfg.IdentityFile)
	if err != nil {
		log.Fatalf("identity: %v", err)
	}

	db, err := config.NewPostgres(cfg)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	amqpConn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer func() { _ = amqpConn.Close() }()

	// one observer for every way the position stream can fail: subscribe
	// errors and dropped connections both land here
	onStreamError := func(err error) {
		log.Printf("position stream error: %v", err)
	}

	mqttClient, err := config.NewMQTT(cfg, onStreamError)
	if err != nil {
		log.Fatalf("mqtt: %v", err)
	}
	defer mqttClient.Disconnect(250)

	mod, err := geofence.Build(db, amqpConn, mqttClient, zones, recipientID, onStreamError)
	if err != nil {
		log.Fatalf("geofence module: %v", err)
	}

	if err := mod.StartMonitoring(); err != nil {
		log.Fatalf("start monitoring: %v", err)
	}
	defer func() { _ = mod.StopMonitoring() }()

	r := gin.Default()

	health := config.NewHealthChecker(db, amqpConn, mqttClient, mod.Monitor)
	health.Register(r)

	mod.RegisterRoutes(&r.RouterGroup)

	log.Printf("monitoring %d zones as %s, listening on :%s", len(zones), recipientID, cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
