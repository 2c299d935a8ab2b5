package mqtt

import (
	"testing"

	"github.com/lymanepp/epson2mqtt/internal/config"
	"github.com/lymanepp/epson2mqtt/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func testClient() *MQTTClient {
	cfg := &config.Config{
		MQTT: config.MQTTConfig{
			Host:             "localhost",
			Port:             1883,
			BaseTopic:        "epson2mqtt",
			HADiscoveryTopic: "homeassistant",
		},
	}
	return CreateMQTTClient(cfg, OptsFromConfig(cfg), nil, nil)
}

func TestStateTopics(t *testing.T) {

	assert := assert.New(t)

	client := testClient()

	assert.Equal("epson2mqtt/bridge/state", client.BridgeStateTopic())
	assert.Equal("epson2mqtt/sensor/ink_bk/state", client.SensorStateTopic("ink_bk"))
	assert.Equal("epson2mqtt/binary_sensor/printer_online/state", client.BinarySensorStateTopic("printer_online"))
	assert.Equal("homeassistant/status", client.HAStatusTopic())
}

func TestHADiscoverySensorTopic(t *testing.T) {

	assert := assert.New(t)

	client := testClient()
	sensor := domain.GenericSensor{
		Device:     domain.Device{Id: "epson_printer_abc12345"},
		Id:         "ink_bk",
		SensorType: domain.SENSOR_TYPE_SENSOR,
	}

	assert.Equal("homeassistant/sensor/epson_printer_abc12345/ink_bk/config", client.HADiscoverySensorTopic(sensor))
}

func TestGenericSensorToHADiscoveryMessage(t *testing.T) {

	assert := assert.New(t)

	client := testClient()
	sensor := domain.GenericSensor{
		Device: domain.Device{
			Id:           "epson_printer_abc12345",
			Manufacturer: "Epson",
			Model:        "Epson ET-8500 Series",
			Connections:  [][2]string{{"mac", "dc:cd:2f:0c:9e:89"}},
		},
		Id:                "ink_bk",
		SensorType:        domain.SENSOR_TYPE_SENSOR,
		Name:              "Ink level Black",
		StateClass:        domain.STATE_CLASS_MEASUREMENT,
		UnitOfMeasurement: "%",
		Icon:              "mdi:water",
		UniqueId:          "epson_printer_abc12345_ink_bk",
	}

	msg := GenericSensorToHADiscoveryMessage(client, sensor)

	assert.Equal("epson2mqtt/sensor/ink_bk/state", msg.StateTopic)
	assert.Equal("epson2mqtt/bridge/state", msg.AvTopic)
	assert.Equal("measurement", msg.StateClass)
	assert.Equal("%", msg.UnitOfMeasurement)
	assert.Equal("epson_printer_abc12345_ink_bk", msg.UniqueId)
	assert.Equal("mqtt", msg.Platform)
	assert.Equal([]string{"epson_printer_abc12345"}, msg.Device.Id)
	assert.Equal([][2]string{{"mac", "dc:cd:2f:0c:9e:89"}}, msg.Device.Connections)
	assert.Empty(msg.PayloadOn)
}

func TestBinarySensorDiscoveryPayloads(t *testing.T) {

	assert := assert.New(t)

	client := testClient()
	sensor := domain.GenericSensor{
		Device:      domain.Device{Id: "epson_printer_abc12345"},
		Id:          domain.SENSOR_ID_PRINTER_ONLINE,
		SensorType:  domain.SENSOR_TYPE_BINARY,
		Name:        "Online",
		DeviceClass: domain.DEVICE_CLASS_CONNECTIVITY,
	}

	msg := GenericSensorToHADiscoveryMessage(client, sensor)

	assert.Equal("epson2mqtt/binary_sensor/printer_online/state", msg.StateTopic)
	assert.Equal(MQTT_PAYLOAD_ON, msg.PayloadOn)
	assert.Equal(MQTT_PAYLOAD_OFF, msg.PayloadOff)
	assert.Equal("connectivity", msg.DeviceClass)
}

func TestBridgeSensorDiscoveryMessage(t *testing.T) {

	assert := assert.New(t)

	client := testClient()
	sensor := domain.BridgeSensors(domain.BridgeDevice("epson2mqtt"))[0]

	msg := GenericSensorToHADiscoveryMessage(client, sensor)

	assert.Equal("epson2mqtt/bridge/state", msg.StateTopic)
	assert.Equal(MQTT_PAYLOAD_ONLINE, msg.PayloadOn)
	assert.Equal(MQTT_PAYLOAD_OFFLINE, msg.PayloadOff)
}

type stubMessage struct {
	topic   string
	payload []byte
}

func (m stubMessage) Duplicate() bool   { return false }
func (m stubMessage) Qos() byte         { return 0 }
func (m stubMessage) Retained() bool    { return false }
func (m stubMessage) Topic() string     { return m.topic }
func (m stubMessage) MessageID() uint16 { return 0 }
func (m stubMessage) Payload() []byte   { return m.payload }
func (m stubMessage) Ack()              {}

func TestIsHABirthMessage(t *testing.T) {

	assert := assert.New(t)

	client := testClient()

	assert.True(client.IsHABirthMessage(stubMessage{"homeassistant/status", []byte("online")}))
	assert.False(client.IsHABirthMessage(stubMessage{"homeassistant/status", []byte("offline")}))
	assert.False(client.IsHABirthMessage(stubMessage{"epson2mqtt/status", []byte("online")}))
}
