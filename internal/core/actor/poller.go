package actor

import (
	"fmt"
	"time"

	"github.com/lymanepp/epson2mqtt/internal/config"
	"github.com/lymanepp/epson2mqtt/internal/core/domain"
	"github.com/lymanepp/epson2mqtt/internal/core/events"
	. "github.com/lymanepp/epson2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/asynkron/protoactor-go/scheduler"
	"go.uber.org/zap"
)

type PollerActor struct {
	behavior  actor.Behavior
	stash     *Stash
	scheduler *scheduler.TimerScheduler

	scraperActor *actor.PID
	config       *config.Config
	eventStream  *eventstream.EventStream
	online       bool

	logger *zap.Logger
}

type pollTick struct {
}

func NewPollerActor(config *config.Config, scraperActor *actor.PID, eventStream *eventstream.EventStream, logger *zap.Logger) *PollerActor {
	act := &PollerActor{
		config:       config,
		scraperActor: scraperActor,
		behavior:     actor.NewBehavior(),
		stash:        &Stash{},
		logger:       ActorLogger("poller", logger),
		eventStream:  eventStream,
		online:       true,
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *PollerActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *PollerActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("poller@starting started")

		if state.config.Printer.PollIntervalMillis > 0 {
			state.scheduler = scheduler.NewTimerScheduler(ctx)
			state.scheduler.RequestOnce(time.Duration(state.config.Printer.PollIntervalMillis)*time.Millisecond, ctx.Self(), pollTick{})
		}
		state.behavior.Become(state.DefaultReceive)
		state.stash.UnstashAll(ctx)
	case *actor.Restarting:
	default:
		state.logger.Debug("poller@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *PollerActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("poller@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_POLLER,
			Healthy: true,
			State:   "idle",
		})
	case pollTick:
		state.logger.Debug("poller@default tick")
		// get a fresh status page snapshot
		PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.scraperActor, domain.GetSnapshotRequest{}, 20*time.Second), func(err error) any {
			return domain.GetSnapshotResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: err,
				},
			}
		})

		// schedule next tick
		state.scheduler.RequestOnce(time.Duration(state.config.Printer.PollIntervalMillis)*time.Millisecond, ctx.Self(), pollTick{})
		state.behavior.BecomeStacked(state.WaitingSnapshotReceive)
	default:
		state.logger.Debug("poller@default: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *PollerActor) WaitingSnapshotReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetSnapshotResponse:
		if msg.HasResponseError() {
			// an unreachable printer is reported, not fatal
			if state.online {
				state.logger.Warn("poller@waiting printer unreachable", zap.Error(msg.GetResponseError()))
				state.online = false
			}
			state.eventStream.Publish(events.PrinterOnlineUpdateEvent(false))
			state.behavior.UnbecomeStacked()
			state.stash.UnstashAll(ctx)
			return
		}
		state.logger.Debug("poller@waiting GetSnapshotResponse")
		if !state.online {
			state.logger.Info("poller@waiting printer is back online")
			state.online = true
		}
		state.eventStream.Publish(events.PrinterOnlineUpdateEvent(true))
		if msg.Snapshot != nil {
			evs := events.SnapshotToUpdateEvents(msg.Snapshot)
			for _, ev := range evs {
				state.eventStream.Publish(ev)
			}
		}
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("poller@waiting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}
