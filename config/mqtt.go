package config

import (
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// NewMQTT connects to the broker. onConnectionLost is the session's stream
// error observer; a lost connection means no further position samples until
// the stream is restarted, so the application must hear about it.
func NewMQTT(cfg *Config, onConnectionLost func(error)) (mqtt.Client, error) {
	client := mqtt.NewClient(mqttOptions(cfg, onConnectionLost))
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return client, nil
}

func mqttOptions(cfg *Config, onConnectionLost func(error)) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientID)

	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Printf("position stream lost: %v", err)
		if onConnectionLost != nil {
			onConnectionLost(err)
		}
	})
	return opts
}
