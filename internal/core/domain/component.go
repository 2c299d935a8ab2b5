package domain

type Device struct {
	Id           string
	Name         string
	Version      string
	Model        string
	Manufacturer string
	Connections  [][2]string
	ViaDevice    string
}

type GenericSensor struct {
	Device            Device
	Id                string
	SensorType        string
	Name              string
	UniqueId          string
	UnitOfMeasurement string
	StateClass        string // measurement
	DeviceClass       string // connectivity for the online binary sensor
	EntityCategory    string // diagnostic, nil
	EnabledByDefault  *bool
	Icon              string
}
