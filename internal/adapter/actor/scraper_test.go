package actor

import (
	"errors"
	"testing"
	"time"

	"github.com/lymanepp/epson2mqtt/internal/core/domain"
	"github.com/lymanepp/epson2mqtt/internal/util/actorutil"
	"github.com/lymanepp/epson2mqtt/pkg/epsonwf"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type unreachableStatusReader struct {
}

func (reader unreachableStatusReader) Open() error {
	return nil
}

func (reader unreachableStatusReader) Close() error {
	return nil
}

func (reader unreachableStatusReader) Validate() error {
	return nil
}

func (reader unreachableStatusReader) GetInfo() (*epsonwf.PrinterInfo, error) {
	return nil, errors.New("printer unreachable")
}

func (reader unreachableStatusReader) GetSnapshot() (*epsonwf.Snapshot, error) {
	return nil, errors.New("printer unreachable")
}

func TestGetPrinterInfoScraperActor(t *testing.T) {

	assert := assert.New(t)

	reader, err := epsonwf.CreateTestStatusReader()
	if err != nil {
		t.Error(err)
		return
	}

	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)

	context := as.Root

	props := actor.PropsFromProducer(func() actor.Actor { return NewScraperActor(reader, logger) })
	pid := context.Spawn(props)

	time.Sleep(1 * time.Second)

	msg := domain.GetPrinterInfoRequest{}
	result, err := context.RequestFuture(pid, msg, 15*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp := result.(domain.GetPrinterInfoResponse)

	assert.Equal(resp.Info.Model, "Epson ET-8500 Series", "printer model")
	assert.Equal(resp.Info.MACAddress, "DC:CD:2F:0C:9E:89", "printer MAC address")

	context.Stop(pid)

	as.Shutdown()
}

func TestGetSnapshotScraperActor(t *testing.T) {

	assert := assert.New(t)

	reader, err := epsonwf.CreateTestStatusReader()
	if err != nil {
		t.Error(err)
		return
	}

	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)
	context := as.Root

	props := actor.PropsFromProducer(func() actor.Actor { return NewScraperActor(reader, logger) })
	pid := context.Spawn(props)

	time.Sleep(1 * time.Second)

	msg := domain.GetSnapshotRequest{}

	result, err := context.RequestFuture(pid, msg, 15*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp := result.(domain.GetSnapshotResponse)

	assert.Equal(resp.Snapshot.PrinterStatus, "Available", "printer status")
	blackInk, hasBlack := resp.Snapshot.InkPercent(epsonwf.CartridgeBlack)
	assert.True(hasBlack, "black cartridge present")
	assert.Equal(blackInk, 26, "black ink level")
	assert.True(resp.Snapshot.HasMaintenanceBox(), "maintenance box present")
	assert.Equal(*resp.Snapshot.MaintenanceBoxPercent, 36, "maintenance box level")
	assert.Equal(resp.Snapshot.SSID(), "IoT", "wifi ssid")
	assert.Equal(resp.Snapshot.SignalStrength(), "Excellent", "wifi signal strength")

	context.Stop(pid)

	as.Shutdown()
}

func TestGetSnapshotScraperActorUnreachablePrinter(t *testing.T) {

	assert := assert.New(t)

	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)
	context := as.Root

	props := actor.PropsFromProducer(func() actor.Actor { return NewScraperActor(unreachableStatusReader{}, logger) })
	pid := context.Spawn(props)

	time.Sleep(1 * time.Second)

	msg := domain.GetSnapshotRequest{}

	result, err := context.RequestFuture(pid, msg, 5*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp := result.(domain.GetSnapshotResponse)

	assert.True(resp.HasResponseError(), "snapshot error is reported")
	assert.Nil(resp.Snapshot, "no snapshot on error")

	// the actor keeps answering after a failed fetch
	result, err = context.RequestFuture(pid, domain.ActorHealthRequest{}, 5*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	health := result.(domain.ActorHealthResponse)
	assert.True(health.Healthy, "scraper stays healthy")

	context.Stop(pid)

	as.Shutdown()
}
