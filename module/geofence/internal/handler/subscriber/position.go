package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/DivyanshTulsiani/geofence/module/geofence/domain"
)

const topicPattern = "/geoguard/device/+/position"

type sampleHandler interface {
	HandleSample(ctx context.Context, s domain.Sample)
}

type positionMessage struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// PositionSubscriber adapts the device position stream into samples for the
// monitor. Messages are fed through in arrival order, unfiltered and
// unsmoothed. Malformed payloads are dropped with a log line so one bad
// message never ends a session.
type PositionSubscriber struct {
	client  mqtt.Client
	monitor sampleHandler
	onError func(error)
}

func NewPositionSubscriber(client mqtt.Client, monitor sampleHandler, onError func(error)) *PositionSubscriber {
	return &PositionSubscriber{
		client:  client,
		monitor: monitor,
		onError: onError,
	}
}

func (s *PositionSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		if s.onError != nil {
			s.onError(err)
		}
		return err
	}
	return nil
}

// Stop unsubscribes synchronously; after it returns no further callback
// will mutate the session's state.
func (s *PositionSubscriber) Stop() error {
	token := s.client.Unsubscribe(topicPattern)
	token.Wait()
	return token.Error()
}

func (s *PositionSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw positionMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.Printf("invalid position message: %v", err)
		return
	}

	if err := validatePositionMessage(&raw); err != nil {
		log.Printf("validation error: %v", err)
		return
	}

	s.monitor.HandleSample(context.Background(), domain.Sample{
		Coordinate: domain.Coordinate{Lat: raw.Latitude, Lon: raw.Longitude},
		Timestamp:  time.Unix(raw.Timestamp, 0),
	})
}

func validatePositionMessage(msg *positionMessage) error {
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}
