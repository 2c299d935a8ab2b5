package actor

import (
	"fmt"
	"time"

	"github.com/lymanepp/epson2mqtt/internal/core/domain"
	"github.com/lymanepp/epson2mqtt/internal/util/actorutil"
	"github.com/lymanepp/epson2mqtt/pkg/epsonwf"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/reugn/go-quartz/logger"
	"go.uber.org/zap"
)

const (
	SCRAPER_ACTOR_ID = "scraper"

	scrapeTimeout = 15 * time.Second
)

type ScraperActor struct {
	behavior actor.Behavior
	stash    *actorutil.Stash
	reader   epsonwf.StatusReader
	logger   *zap.Logger
}

type backgroundTaskResult struct {
	message any
	replyTo *actor.PID
}

func NewScraperActor(reader epsonwf.StatusReader, logger *zap.Logger) *ScraperActor {
	act := &ScraperActor{
		reader:   reader,
		behavior: actor.NewBehavior(),
		stash:    &actorutil.Stash{},
		logger:   actorutil.ActorLogger("scraper", logger),
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *ScraperActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *ScraperActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("scraper@starting started")
		if err := state.reader.Open(); err != nil {
			panic(err)
		}
		if err := state.reader.Validate(); err != nil {
			panic(err)
		}
		state.behavior.Become(state.DefaultReceive)
		state.stash.UnstashAll(ctx)
	case *actor.Restarting:
		state.reader.Close()
	default:
		state.logger.Debug("scraper@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *ScraperActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("scraper@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      SCRAPER_ACTOR_ID,
			Healthy: true,
			State:   "idle",
		})
	case domain.GetPrinterInfoRequest:
		state.logger.Debug("scraper@default: GetPrinterInfoRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)

		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, state.getPrinterInfo),
			mapTaskResult[domain.GetPrinterInfoResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.GetPrinterInfoResponse{
					ActorResponseMixIn: domain.ActorResponseMixIn{
						ResponseError: err,
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(scrapeTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingScrape)
	case domain.GetSnapshotRequest:
		state.logger.Debug("scraper@default: GetSnapshotRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)

		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, state.getSnapshot),
			mapTaskResult[domain.GetSnapshotResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.GetSnapshotResponse{
					ActorResponseMixIn: domain.ActorResponseMixIn{
						ResponseError: err,
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(scrapeTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingScrape)
	case *actor.Stopping:
		state.reader.Close()
	default:
		state.logger.Debug("scraper@default default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

func (state *ScraperActor) WaitingScrape(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case backgroundTaskResult:
		state.logger.Debug("scraper@WaitingScrape backgroundTaskResult", zap.String("type", fmt.Sprintf("%T", msg.message)))
		if msg.replyTo != nil {
			ctx.Send(msg.replyTo, msg.message)
		}
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	case *actor.Stopping:
		state.reader.Close()
	default:
		state.logger.Debug("scraper@WaitingScrape stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (a *ScraperActor) getPrinterInfo() (*domain.GetPrinterInfoResponse, error) {
	info, err := a.reader.GetInfo()
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	return &domain.GetPrinterInfoResponse{
		Info: info,
	}, nil
}

func (a *ScraperActor) getSnapshot() (*domain.GetSnapshotResponse, error) {
	snap, err := a.reader.GetSnapshot()
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	return &domain.GetSnapshotResponse{
		Snapshot: snap,
	}, nil
}

func mapTaskResult[T any](sender *actor.PID) func(t *T) *backgroundTaskResult {
	return func(t *T) *backgroundTaskResult {
		return &backgroundTaskResult{
			message: *t,
			replyTo: sender,
		}
	}
}
