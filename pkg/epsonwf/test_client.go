package epsonwf

func CreateTestStatusReader() (StatusReader, error) {
	return TestStatusReader{}, nil
}

type TestStatusReader struct {
}

func (reader TestStatusReader) Open() error {
	return nil
}

func (reader TestStatusReader) Close() error {
	return nil
}

func (reader TestStatusReader) Validate() error {
	return nil
}

func (reader TestStatusReader) GetInfo() (*PrinterInfo, error) {
	return &PrinterInfo{
		Model:      "Epson ET-8500 Series",
		MACAddress: "DC:CD:2F:0C:9E:89",
	}, nil
}

func (reader TestStatusReader) GetSnapshot() (*Snapshot, error) {
	maintenance := 36
	return &Snapshot{
		Model:         "Epson ET-8500 Series",
		MACAddress:    "DC:CD:2F:0C:9E:89",
		PrinterStatus: "Available",
		Inks: map[string]int{
			CartridgeBlack:      26,
			CartridgePhotoBlack: 38,
			CartridgeCyan:       40,
			CartridgeMagenta:    42,
			CartridgeYellow:     46,
			CartridgeGray:       44,
		},
		MaintenanceBoxPercent: &maintenance,
		Network: map[string]string{
			"MAC Address":     "DC:CD:2F:0C:9E:89",
			"SSID":            "IoT",
			"Signal Strength": "Excellent",
		},
		WifiDirect: map[string]string{
			"Connection Method": "Not Set",
		},
	}, nil
}
