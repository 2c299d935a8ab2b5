package events

import (
	. "github.com/lymanepp/epson2mqtt/internal/core/domain"
	"github.com/lymanepp/epson2mqtt/pkg/epsonwf"
)

func SnapshotToUpdateEvents(snap *epsonwf.Snapshot) []any {
	var events []any

	// Printer status
	if snap.PrinterStatus != "" {
		events = append(events, TextSensorUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: SENSOR_ID_PRINTER_STATUS,
			},
			Value: snap.PrinterStatus,
		})
	}

	// Ink levels
	for cartridge, percent := range snap.Inks {
		events = append(events, FloatSensorUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: InkSensorId(cartridge),
			},
			Value:    float64(percent),
			Decimals: 0,
		})
	}

	// Maintenance box
	if snap.HasMaintenanceBox() {
		events = append(events, FloatSensorUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: SENSOR_ID_MAINTENANCE_BOX,
			},
			Value:    float64(*snap.MaintenanceBoxPercent),
			Decimals: 0,
		})
	}

	// Network diagnostics
	if ssid := snap.SSID(); ssid != "" {
		events = append(events, TextSensorUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: SENSOR_ID_WIFI_SSID,
			},
			Value: ssid,
		})
	}
	if signal := snap.SignalStrength(); signal != "" {
		events = append(events, TextSensorUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: SENSOR_ID_WIFI_SIGNAL,
			},
			Value: signal,
		})
	}

	return events
}

func PrinterOnlineUpdateEvent(online bool) BinarySensorUpdateEvent {
	return BinarySensorUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: SENSOR_ID_PRINTER_ONLINE,
		},
		Value: online,
	}
}
