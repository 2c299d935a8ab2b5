package epsonwf

// cartridge codes as printed on the status page
const (
	CartridgeBlack        = "BK"
	CartridgePhotoBlack   = "PB"
	CartridgeGray         = "GY"
	CartridgeCyan         = "C"
	CartridgeMagenta      = "M"
	CartridgeYellow       = "Y"
	CartridgeLightCyan    = "LC"
	CartridgeLightMagenta = "LM"
)

const (
	// DefaultStatusPath is the status page path used by most WorkForce and
	// EcoTank firmwares.
	DefaultStatusPath = "/PRESENTATION/HTML/TOP/PRTINFO.HTML"

	// DefaultModel is reported when the page carries no usable title.
	DefaultModel = "WorkForce Printer"
)

type PrinterInfo struct {
	Model      string
	MACAddress string
}

// Snapshot is one parse of the status page. Fields the page does not carry
// are left at their zero value: an ink color missing from Inks means the
// printer does not have that cartridge, not that it is empty.
type Snapshot struct {
	Model         string
	MACAddress    string
	PrinterStatus string

	// Inks maps cartridge code (BK, C, M, ...) to fill percent 0-100.
	Inks map[string]int

	// MaintenanceBoxPercent is the remaining waste tank capacity,
	// nil on models without a user-visible maintenance box.
	MaintenanceBoxPercent *int

	Network    map[string]string
	WifiDirect map[string]string
}

func (s *Snapshot) InkPercent(cartridge string) (int, bool) {
	pct, ok := s.Inks[cartridge]
	return pct, ok
}

func (s *Snapshot) HasMaintenanceBox() bool {
	return s.MaintenanceBoxPercent != nil
}

func (s *Snapshot) SignalStrength() string {
	return s.Network["Signal Strength"]
}

func (s *Snapshot) SSID() string {
	return s.Network["SSID"]
}
