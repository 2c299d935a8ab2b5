package epsonwf

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStatusPage = `<html><head><title>WF-3540 Series</title></head><body>
<fieldset id="PRT_STATUS"><ul>Available.</ul></fieldset>
<ul>
	<li class="tank"><div class="clrname">BK</div><div class="tank"><img class="color" height="13"></div></li>
	<li class="tank"><div class="clrname">C</div><div class="tank"><img class="color" height="50"></div></li>
</ul>
<div id="info-network"><table>
	<tr><td class="item-key">MAC Address :</td><td class="item-value">B0:E8:92:05:3D:87</td></tr>
</table></div>
</body></html>`

func newTestReader(t *testing.T, handler http.HandlerFunc) (StatusReader, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	reader, err := CreateHTTPStatusReader(u.Host, DefaultStatusPath, false, 2*time.Second, log.New())
	require.NoError(t, err)
	return reader, server
}

func TestHTTPStatusReaderSnapshot(t *testing.T) {

	assert := assert.New(t)

	reader, _ := newTestReader(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(DefaultStatusPath, r.URL.Path)
		_, _ = w.Write([]byte(testStatusPage))
	})

	require.NoError(t, reader.Open())
	require.NoError(t, reader.Validate())

	snap, err := reader.GetSnapshot()
	require.NoError(t, err)

	assert.Equal("Epson WF-3540 Series", snap.Model)
	assert.Equal("Available", snap.PrinterStatus)
	assert.Equal(map[string]int{"BK": 26, "C": 100}, snap.Inks)
	assert.Equal("B0:E8:92:05:3D:87", snap.MACAddress)

	info, err := reader.GetInfo()
	require.NoError(t, err)
	assert.Equal("Epson WF-3540 Series", info.Model)
	assert.Equal("B0:E8:92:05:3D:87", info.MACAddress)

	assert.NoError(reader.Close())
}

func TestHTTPStatusReaderDefaultModel(t *testing.T) {

	reader, _ := newTestReader(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><fieldset id="PRT_STATUS"><ul>Ready</ul></fieldset></body></html>`))
	})

	info, err := reader.GetInfo()
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, info.Model)
}

func TestHTTPStatusReaderHTTPError(t *testing.T) {

	reader, _ := newTestReader(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := reader.GetSnapshot()
	assert.Error(t, err)
}

func TestHTTPStatusReaderValidateRejectsForeignPage(t *testing.T) {

	reader, _ := newTestReader(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>login required</p></body></html>`))
	})

	assert.Error(t, reader.Validate())
}

func TestCreateHTTPStatusReaderRequiresHost(t *testing.T) {

	_, err := CreateHTTPStatusReader("", DefaultStatusPath, false, time.Second, nil)
	assert.Error(t, err)
}
