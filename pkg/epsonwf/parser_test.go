package epsonwf

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *Snapshot {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return ParseStatusPage(doc)
}

func TestPrinterStatusFieldsetLayout(t *testing.T) {

	assert := assert.New(t)

	cases := []struct {
		html     string
		expected string
	}{
		{`<html><body><fieldset id="PRT_STATUS"><ul>Available.</ul></fieldset></body></html>`, "Available"},
		{`<html><body><fieldset id="PRT_STATUS"><ul>Ready</ul></fieldset></body></html>`, "Ready"},
		{`<html><body><fieldset id="PRT_STATUS"><ul>Paper jam.</ul></fieldset></body></html>`, "Paper jam"},
		// long statuses keep their trailing period
		{`<html><body><fieldset id="PRT_STATUS"><ul>This is a very long status message that exceeds the trim limit.</ul></fieldset></body></html>`,
			"This is a very long status message that exceeds the trim limit."},
		// some firmwares prefix the text with the field label
		{`<html><body><fieldset id="PRT_STATUS"><ul>Printer Status: Available.</ul></fieldset></body></html>`, "Available"},
	}

	for _, c := range cases {
		snap := parseHTML(t, c.html)
		assert.Equal(c.expected, snap.PrinterStatus, c.html)
	}
}

func TestPrinterStatusInformationDivLayout(t *testing.T) {

	assert := assert.New(t)

	html := `<html><body>
		<div class="information"><p class="clearfix"><span>Available.</span></p></div>
	</body></html>`
	assert.Equal("Available", parseHTML(t, html).PrinterStatus)

	// without the clearfix paragraph
	html = `<html><body><div class="information"><span>Ready</span></div></body></html>`
	assert.Equal("Ready", parseHTML(t, html).PrinterStatus)

	// multiple spans: the first one wins
	html = `<html><body>
		<div class="information"><p class="clearfix"><span>Printing.</span><span>Page 1 of 5</span></p></div>
	</body></html>`
	assert.Equal("Printing", parseHTML(t, html).PrinterStatus)
}

func TestPrinterStatusPriorityOrder(t *testing.T) {

	html := `<html><body>
		<fieldset id="PRT_STATUS"><ul>Primary Status</ul></fieldset>
		<div class="information"><p class="clearfix"><span>Fallback Status</span></p></div>
	</body></html>`
	assert.Equal(t, "Primary Status", parseHTML(t, html).PrinterStatus)
}

func TestPrinterStatusFallsBackOnEmptyFieldset(t *testing.T) {

	html := `<html><body>
		<fieldset id="PRT_STATUS"></fieldset>
		<div class="information"><span>Fallback Works</span></div>
	</body></html>`
	assert.Equal(t, "Fallback Works", parseHTML(t, html).PrinterStatus)
}

func TestPrinterStatusMissing(t *testing.T) {

	html := `<html><body><div>Some other content</div></body></html>`
	assert.Equal(t, "", parseHTML(t, html).PrinterStatus)
}

func TestInkTanksHeightAttribute(t *testing.T) {

	assert := assert.New(t)

	html := `<html><body><ul>
		<li class="tank"><div class="clrname">BK</div><div class="tank"><img class="color" height="13"></div></li>
		<li class="tank"><div class="clrname">C</div><div class="tank"><img class="color" height="50"></div></li>
		<li class="tank"><div class="clrname">Y</div><div class="tank"><img class="color" height="23"></div></li>
	</ul></body></html>`

	snap := parseHTML(t, html)
	assert.Equal(map[string]int{"BK": 26, "C": 100, "Y": 46}, snap.Inks)
	assert.False(snap.HasMaintenanceBox())
}

func TestInkTanksStyleHeightFallback(t *testing.T) {

	html := `<html><body><ul>
		<li class="tank"><div class="clrname">M</div><div class="tank"><div class="color" style="height: 40px"></div></div></li>
	</ul></body></html>`

	snap := parseHTML(t, html)
	assert.Equal(t, map[string]int{"M": 80}, snap.Inks)
}

func TestInkTanksClampAndLowercaseLabel(t *testing.T) {

	assert := assert.New(t)

	html := `<html><body><ul>
		<li class="tank"><div class="clrname">bk</div><div class="tank"><img height="70"></div></li>
	</ul></body></html>`

	snap := parseHTML(t, html)
	// 70*2 exceeds 100 and gets clamped, labels are uppercased
	assert.Equal(map[string]int{"BK": 100}, snap.Inks)
}

func TestMaintenanceBoxRow(t *testing.T) {

	assert := assert.New(t)

	html := `<html><body><ul>
		<li class="tank"><div class="clrname">BK</div><div class="tank"><img height="48"></div></li>
		<li class="tank"><div class="mbicn">Waste</div><div class="tank"><img height="18"></div></li>
	</ul></body></html>`

	snap := parseHTML(t, html)
	assert.Equal(map[string]int{"BK": 96}, snap.Inks)
	require.True(t, snap.HasMaintenanceBox())
	assert.Equal(36, *snap.MaintenanceBoxPercent)
}

func TestTankWithoutBarIsSkipped(t *testing.T) {

	html := `<html><body><ul>
		<li class="tank"><div class="clrname">BK</div></li>
	</ul></body></html>`

	assert.Empty(t, parseHTML(t, html).Inks)
}

func TestNetworkTable(t *testing.T) {

	assert := assert.New(t)

	html := `<html><body><div id="info-network"><table>
		<tr><td class="item-key">MAC Address&nbsp;:</td><td class="item-value">B0:E8:92:05:3D:87</td></tr>
		<tr><td class="item-key">SSID :</td><td class="item-value">CHAOS</td></tr>
		<tr><td class="item-key">Signal Strength :</td><td class="item-value">Excellent</td></tr>
	</table></div></body></html>`

	snap := parseHTML(t, html)
	assert.Equal("B0:E8:92:05:3D:87", snap.Network["MAC Address"])
	assert.Equal("CHAOS", snap.SSID())
	assert.Equal("Excellent", snap.SignalStrength())
	assert.Equal("B0:E8:92:05:3D:87", snap.MACAddress)
	assert.Nil(snap.WifiDirect)
}

func TestWifiDirectTable(t *testing.T) {

	html := `<html><body><div id="info-wfd"><table>
		<tr><td class="item-key">Connection Method :</td><td class="item-value">Not Set</td></tr>
	</table></div></body></html>`

	assert.Equal(t, "Not Set", parseHTML(t, html).WifiDirect["Connection Method"])
}

func TestMACAddressTextFallback(t *testing.T) {

	html := `<html><body><p>MAC Address: 38:1A:52:06:27:4A</p></body></html>`
	assert.Equal(t, "38:1A:52:06:27:4A", parseHTML(t, html).MACAddress)
}

func TestModelFromTitle(t *testing.T) {

	assert := assert.New(t)

	html := `<html><head><title>ET-8500 Series</title></head><body></body></html>`
	assert.Equal("Epson ET-8500 Series", parseHTML(t, html).Model)

	html = `<html><body><span class="header">WF-7720 Series</span></body></html>`
	assert.Equal("Epson WF-7720 Series", parseHTML(t, html).Model)

	html = `<html><body></body></html>`
	assert.Equal("", parseHTML(t, html).Model)
}

func TestFullStatusPage(t *testing.T) {

	assert := assert.New(t)

	html := `<html><head><title>L6270 Series</title></head><body>
		<fieldset id="PRT_STATUS"><ul><li>Available.</li></ul></fieldset>
		<ul class="inklist">
			<li class="tank"><div class="clrname">BK</div><div class="tank"><img class="color" height="34"></div></li>
			<li class="tank"><div class="clrname">C</div><div class="tank"><img class="color" height="40"></div></li>
			<li class="tank"><div class="clrname">M</div><div class="tank"><img class="color" height="40"></div></li>
			<li class="tank"><div class="clrname">Y</div><div class="tank"><img class="color" height="40"></div></li>
			<li class="tank"><div class="mbicn"></div><div class="tank"><img class="color" height="45"></div></li>
		</ul>
		<div id="info-network"><table>
			<tr><td class="item-key">MAC Address :</td><td class="item-value">68:55:D4:7E:22:46</td></tr>
			<tr><td class="item-key">SSID :</td><td class="item-value">eLeCtRoN-Lan-SD</td></tr>
			<tr><td class="item-key">Signal Strength :</td><td class="item-value">Excellent</td></tr>
		</table></div>
		<div id="info-wfd"><table>
			<tr><td class="item-key">Connection Method :</td><td class="item-value">Not Set</td></tr>
		</table></div>
	</body></html>`

	snap := parseHTML(t, html)

	assert.Equal("Epson L6270 Series", snap.Model)
	assert.Equal("Available", snap.PrinterStatus)
	assert.Equal("68:55:D4:7E:22:46", snap.MACAddress)
	assert.Equal(map[string]int{"BK": 68, "C": 80, "M": 80, "Y": 80}, snap.Inks)
	require.True(t, snap.HasMaintenanceBox())
	assert.Equal(90, *snap.MaintenanceBoxPercent)
	assert.Equal("eLeCtRoN-Lan-SD", snap.SSID())
}
