package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type positionMessage struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

type waypoint struct {
	lat, lon float64
	label    string
}

// path walks across the demo danger zone at Connaught Place: approach from
// outside, enter, drift within, leave, then re-enter. Exercises the whole
// entry/suppression/re-arm cycle end to end.
var path = []waypoint{
	{28.7000, 77.3000, "far outside"},
	{28.6100, 77.2100, "approaching"},
	{28.6041, 77.2025, "zone center (entry)"},
	{28.6042, 77.2026, "inside, drifting"},
	{28.6043, 77.2024, "inside, drifting"},
	{28.7000, 77.3000, "left the zone"},
	{28.6041, 77.2025, "re-entry"},
	{28.6042, 77.2025, "inside again"},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds>\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}

	deviceID := "walker-device"
	if v := os.Getenv("DEVICE_ID"); v != "" {
		deviceID = v
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("geoguard-walker")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	topic := fmt.Sprintf("/geoguard/device/%s/position", deviceID)
	log.Printf("connected to %s, walking every %ds...", broker, intervalSec)

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	i := 0
	for range ticker.C {
		wp := path[i%len(path)]
		i++

		msg := positionMessage{
			Latitude:  wp.lat,
			Longitude: wp.lon,
			Timestamp: time.Now().Unix(),
		}

		payload, _ := json.Marshal(msg)
		token := client.Publish(topic, 1, false, payload)
		token.Wait()

		log.Printf("published %s: %s", wp.label, payload)
	}
}
