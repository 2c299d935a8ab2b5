package domain

import "github.com/lymanepp/epson2mqtt/pkg/epsonwf"

const (
	ACTOR_ID_MASTER       = "master"
	ACTOR_ID_SCRAPER      = "scraper"
	ACTOR_ID_POLLER       = "poller"
	ACTOR_ID_MQTT         = "mqtt"
	ACTOR_ID_HA_DISCOVERY = "hadiscovery"
)

type GetPrinterInfoRequest struct {
	ActorRequestMixIn
}

type GetPrinterInfoResponse struct {
	ActorResponseMixIn
	Info *epsonwf.PrinterInfo
}

type GetSnapshotRequest struct {
	ActorRequestMixIn
}

type GetSnapshotResponse struct {
	ActorResponseMixIn
	Snapshot *epsonwf.Snapshot
}

type PublishMessageRequest struct {
	ActorRequestMixIn
	Topic   string
	Payload string
	Retain  bool
}

type PublishMessageResponse struct {
	ActorResponseMixIn
}

type PublishSensorUpdateRequest struct {
	ActorRequestMixIn
	Retain bool
	Event  SensorUpdateEvent
}

type PublishSensorUpdateResponse struct {
	ActorResponseMixIn
}

type PublishDiscoveryRequest struct {
	ActorRequestMixIn
	Sensors []GenericSensor
}

type PublishDiscoveryResponse struct {
	ActorResponseMixIn
}

// RunDiscoveryRequest asks the discovery actor to rebuild and re-announce
// the entity set. Sent on boot and whenever Home Assistant comes back
// online.
type RunDiscoveryRequest struct {
	ActorRequestMixIn
}

type ActorHealthRequest struct {
	ActorRequestMixIn
}

type ActorHealthResponse struct {
	ActorResponseMixIn
	Id      string
	Healthy bool
	State   string
}
