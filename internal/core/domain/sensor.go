package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/lymanepp/epson2mqtt/pkg/epsonwf"

	"github.com/carlmjohnson/versioninfo"
)

const (
	SENSOR_ID_BRIDGE_STATE    = "bridge"
	SENSOR_ID_PRINTER_STATUS  = "printer_status"
	SENSOR_ID_PRINTER_ONLINE  = "printer_online"
	SENSOR_ID_MAINTENANCE_BOX = "maintenance_box"
	SENSOR_ID_WIFI_SSID       = "wifi_ssid"
	SENSOR_ID_WIFI_SIGNAL     = "wifi_signal_strength"

	STATE_CLASS_MEASUREMENT   = "measurement"
	DEVICE_CLASS_CONNECTIVITY = "connectivity"
	ENTITY_CLASS_DIAGNOSTIC   = "diagnostic"
	SENSOR_TYPE_SENSOR        = "sensor"
	SENSOR_TYPE_BINARY        = "binary_sensor"
)

// display names for the cartridge codes printed on the status page
var cartridgeNames = map[string]string{
	epsonwf.CartridgeBlack:        "Black",
	epsonwf.CartridgePhotoBlack:   "Photo Black",
	epsonwf.CartridgeGray:         "Gray",
	epsonwf.CartridgeCyan:         "Cyan",
	epsonwf.CartridgeMagenta:      "Magenta",
	epsonwf.CartridgeYellow:       "Yellow",
	epsonwf.CartridgeLightCyan:    "Light Cyan",
	epsonwf.CartridgeLightMagenta: "Light Magenta",
}

func InkSensorId(cartridge string) string {
	return fmt.Sprintf("ink_%s", strings.ToLower(cartridge))
}

func CartridgeName(cartridge string) string {
	if name, ok := cartridgeNames[cartridge]; ok {
		return name
	}
	return cartridge
}

func BridgeDevice(baseTopic string) Device {
	return Device{
		Id:           fmt.Sprintf("epson2mqtt_bridge_%s", md5HashShort(baseTopic)),
		Manufacturer: "epson2mqtt",
		Model:        "Epson2MQTT",
		Version:      versioninfo.Short(),
		Name:         fmt.Sprintf("Epson2MQTT %s", md5HashShort(baseTopic)),
	}
}

func PrinterDevice(info *epsonwf.PrinterInfo) Device {
	serial := info.MACAddress
	if serial == "" {
		serial = info.Model
	}
	dev := Device{
		Id:           fmt.Sprintf("epson_printer_%s", md5HashShort(serial)),
		Manufacturer: "Epson",
		Model:        info.Model,
		Name:         fmt.Sprintf("%s %s", info.Model, md5HashShort(serial)),
	}
	if info.MACAddress != "" {
		dev.Connections = [][2]string{{"mac", strings.ToLower(info.MACAddress)}}
	}
	return dev
}

func IdDevice(device Device) Device {
	return Device{
		Id:   device.Id,
		Name: device.Name,
	}
}

func BridgeSensors(bridgeDevice Device) []GenericSensor {
	return []GenericSensor{
		{
			Device:      bridgeDevice,
			Id:          SENSOR_ID_BRIDGE_STATE,
			SensorType:  SENSOR_TYPE_BINARY,
			Name:        "Bridge state",
			DeviceClass: DEVICE_CLASS_CONNECTIVITY,
			UniqueId:    uniqueId(bridgeDevice.Id, SENSOR_ID_BRIDGE_STATE),
		},
	}
}

// PrinterSensors builds the entity set for one printer from a first
// snapshot: only values the page actually carries become entities, so a
// four color printer does not get photo black or light cyan sensors.
func PrinterSensors(printerDevice Device, snap *epsonwf.Snapshot) []GenericSensor {

	var sensors []GenericSensor

	// Printer reachable
	sensors = append(sensors, GenericSensor{
		Device:      printerDevice,
		Id:          SENSOR_ID_PRINTER_ONLINE,
		SensorType:  SENSOR_TYPE_BINARY,
		Name:        "Online",
		DeviceClass: DEVICE_CLASS_CONNECTIVITY,
		UniqueId:    uniqueId(printerDevice.Id, SENSOR_ID_PRINTER_ONLINE),
	})

	// Printer status
	if snap.PrinterStatus != "" {
		sensors = append(sensors, GenericSensor{
			Device:     printerDevice,
			Id:         SENSOR_ID_PRINTER_STATUS,
			SensorType: SENSOR_TYPE_SENSOR,
			Name:       "Printer status",
			Icon:       "mdi:printer",
			UniqueId:   uniqueId(printerDevice.Id, SENSOR_ID_PRINTER_STATUS),
		})
	}

	// One ink level sensor per detected cartridge
	for _, cartridge := range sortedCartridges(snap.Inks) {
		id := InkSensorId(cartridge)
		sensors = append(sensors, GenericSensor{
			Device:            printerDevice,
			Id:                id,
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              fmt.Sprintf("Ink level %s", CartridgeName(cartridge)),
			StateClass:        STATE_CLASS_MEASUREMENT,
			UnitOfMeasurement: "%",
			Icon:              "mdi:water",
			UniqueId:          uniqueId(printerDevice.Id, id),
		})
	}

	// Maintenance box
	if snap.HasMaintenanceBox() {
		sensors = append(sensors, GenericSensor{
			Device:            printerDevice,
			Id:                SENSOR_ID_MAINTENANCE_BOX,
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              "Maintenance box",
			StateClass:        STATE_CLASS_MEASUREMENT,
			UnitOfMeasurement: "%",
			Icon:              "mdi:broom",
			UniqueId:          uniqueId(printerDevice.Id, SENSOR_ID_MAINTENANCE_BOX),
		})
	}

	// Network diagnostics
	if snap.SSID() != "" {
		sensors = append(sensors, GenericSensor{
			Device:         printerDevice,
			Id:             SENSOR_ID_WIFI_SSID,
			SensorType:     SENSOR_TYPE_SENSOR,
			Name:           "Wi-Fi SSID",
			EntityCategory: ENTITY_CLASS_DIAGNOSTIC,
			Icon:           "mdi:wifi",
			UniqueId:       uniqueId(printerDevice.Id, SENSOR_ID_WIFI_SSID),
		})
	}
	if snap.SignalStrength() != "" {
		sensors = append(sensors, GenericSensor{
			Device:         printerDevice,
			Id:             SENSOR_ID_WIFI_SIGNAL,
			SensorType:     SENSOR_TYPE_SENSOR,
			Name:           "Wi-Fi signal strength",
			EntityCategory: ENTITY_CLASS_DIAGNOSTIC,
			Icon:           "mdi:wifi",
			UniqueId:       uniqueId(printerDevice.Id, SENSOR_ID_WIFI_SIGNAL),
		})
	}

	return sensors
}

func sortedCartridges(inks map[string]int) []string {
	cartridges := make([]string, 0, len(inks))
	for cartridge := range inks {
		cartridges = append(cartridges, cartridge)
	}
	sort.Strings(cartridges)
	return cartridges
}

func uniqueId(deviceId, sensorId string) string {
	return fmt.Sprintf("%s_%s", deviceId, sensorId)
}

func md5HashShort(value string) string {
	hash := md5.Sum([]byte(value))
	return hex.EncodeToString(hash[:])[:8]
}
