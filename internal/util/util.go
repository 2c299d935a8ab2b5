package util

import (
	"github.com/lymanepp/epson2mqtt/internal/config"

	"go.uber.org/zap"
)

func LoadTestConfig() config.Config {
	return config.Config{
		LogLevel: zap.DebugLevel,
		Printer: config.PrinterConfig{
			Host:               "-.-.-.-",
			Path:               "/PRESENTATION/HTML/TOP/PRTINFO.HTML",
			PollIntervalMillis: 5000,
		},
		MQTT: config.MQTTConfig{
			Host:             "localhost",
			Port:             1883,
			BaseTopic:        "epson2mqtt",
			HADiscoveryTopic: "homeassistant",
		},
		Port: 8080,
	}
}
