package actor

import (
	"errors"
	"fmt"
	"time"

	"github.com/lymanepp/epson2mqtt/internal/config"
	"github.com/lymanepp/epson2mqtt/internal/core/domain"
	"github.com/lymanepp/epson2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type HADiscoveryActor struct {
	config              *config.Config
	behavior            actor.Behavior
	stash               *actorutil.Stash
	scraperActor        *actor.PID
	mqttActor           *actor.PID
	scraperActorHealthy bool
	mqttActorHealthy    bool
	healthyRecv         int
	printerInfo         *domain.GetPrinterInfoResponse
	sensors             []domain.GenericSensor

	logger *zap.Logger
}

func NewHADiscoveryActor(config *config.Config, scraperActor *actor.PID, mqttActor *actor.PID, logger *zap.Logger) *HADiscoveryActor {
	act := &HADiscoveryActor{
		config:       config,
		scraperActor: scraperActor,
		mqttActor:    mqttActor,
		behavior:     actor.NewBehavior(),
		stash:        &actorutil.Stash{},
		logger:       actorutil.ActorLogger(domain.ACTOR_ID_HA_DISCOVERY, logger),
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *HADiscoveryActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *HADiscoveryActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("hadiscovery@starting started")

		// Check scraper and MQTT actor healthy
		state.healthyRecv = 0
		state.scraperActorHealthy = false
		state.mqttActorHealthy = false
		// Scraper Actor Request
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.scraperActor, domain.ActorHealthRequest{}, 2*time.Second), func(err error) any {
			return domain.ActorHealthResponse{
				Id:      domain.ACTOR_ID_SCRAPER,
				Healthy: false,
			}
		})
		// MQTT Actor Request
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.mqttActor, domain.ActorHealthRequest{}, 2*time.Second), func(err error) any {
			return domain.ActorHealthResponse{
				Id:      domain.ACTOR_ID_MQTT,
				Healthy: false,
			}
		})
		state.behavior.Become(state.WaitingHealthyReceive)
	case *actor.Restarting:
	default:
		state.logger.Debug("hadiscovery@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) WaitingHealthyReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthResponse:
		state.logger.Debug("hadiscovery@healthcheck ActorHealthResponse", zap.String("sender", msg.Id), zap.Bool("healthy", msg.Healthy))
		state.healthyRecv++
		if msg.Healthy {
			switch msg.Id {
			case domain.ACTOR_ID_SCRAPER:
				state.scraperActorHealthy = true
			case domain.ACTOR_ID_MQTT:
				state.mqttActorHealthy = true
			}
		}
		if state.healthyRecv == 2 {

			if state.scraperActorHealthy && state.mqttActorHealthy {
				// Ask scraper GetPrinterInfoRequest
				actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.scraperActor, domain.GetPrinterInfoRequest{}, 20*time.Second), func(err error) any {
					return domain.GetPrinterInfoResponse{
						ActorResponseMixIn: domain.ActorResponseMixIn{
							ResponseError: err,
						},
					}
				})
				state.behavior.Become(state.WaitingInfoReceive)
				state.stash.UnstashAll(ctx)
			} else {
				panic(errors.New("MQTT Actor or Scraper Actor are not healthy"))
			}
		}
	default:
		state.logger.Debug("hadiscovery@healthcheck: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) WaitingInfoReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetPrinterInfoResponse:
		if msg.HasResponseError() {
			panic(msg.GetResponseError())
		}
		state.logger.Debug("hadiscovery@info: GetPrinterInfoResponse", zap.Any("response", msg))
		state.printerInfo = &msg

		// the first snapshot decides which entities exist
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.scraperActor, domain.GetSnapshotRequest{}, 20*time.Second), func(err error) any {
			return domain.GetSnapshotResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: err,
				},
			}
		})
		state.behavior.Become(state.WaitingSnapshotReceive)
	default:
		state.logger.Debug("hadiscovery@info: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) WaitingSnapshotReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetSnapshotResponse:
		if msg.HasResponseError() {
			panic(msg.GetResponseError())
		}
		state.logger.Debug("hadiscovery@snapshot: GetSnapshotResponse")

		var sensors []domain.GenericSensor

		bridgeDevice := domain.BridgeDevice(state.config.MQTT.BaseTopic)
		bridgeSensors := domain.BridgeSensors(bridgeDevice)
		sensors = append(sensors, bridgeSensors...)

		printerDevice := domain.PrinterDevice(state.printerInfo.Info)
		printerDevice.ViaDevice = bridgeDevice.Id
		printerSensors := domain.PrinterSensors(printerDevice, msg.Snapshot)
		for i := range printerSensors {
			if i > 0 {
				printerSensors[i].Device = domain.IdDevice(printerDevice)
			}
			sensors = append(sensors, printerSensors[i])
		}

		state.sensors = sensors
		ctx.Send(state.mqttActor, domain.PublishDiscoveryRequest{
			Sensors: sensors,
		})
		state.behavior.Become(state.Done)
		state.stash.UnstashAll(ctx)

	default:
		state.logger.Debug("hadiscovery@snapshot: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) Done(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_HA_DISCOVERY,
			Healthy: true,
			State:   "done",
		})
	case domain.RunDiscoveryRequest:
		// re-announce the entity set built at boot
		state.logger.Debug("hadiscovery@done: RunDiscoveryRequest")
		ctx.Send(state.mqttActor, domain.PublishDiscoveryRequest{
			Sensors: state.sensors,
		})
	default:
		state.logger.Debug("hadiscovery@done: default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}
