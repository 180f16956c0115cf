// Package scheduler runs matching passes on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"nudge/config"
	"nudge/internal/delivery"
	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type scheduler struct {
	interval   time.Duration
	matchingUC usecase.MatchingUsecase
	logger     *slog.Logger

	stopCtx context.Context
	stop    context.CancelFunc
}

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	MatchingUC usecase.MatchingUsecase
}

// New creates the periodic matching delivery. A zero matching.interval disables it.
func New(params Params) (delivery.Delivery, error) {
	var interval time.Duration
	if params.Cfg.Matching != nil {
		interval = params.Cfg.Matching.Interval
	}

	stopCtx, stop := context.WithCancel(context.Background())
	s := &scheduler{
		interval:   interval,
		matchingUC: params.MatchingUC,
		logger:     params.Logger,
		stopCtx:    stopCtx,
		stop:       stop,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			s.logger.Info("Stopping matching scheduler")
			s.stop()

			return nil
		},
	})

	return s, nil
}

// Serve blocks, running a pass on every tick until ctx is done or the app stops.
func (s *scheduler) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("Matching scheduler disabled")

		return nil
	}

	s.logger.Info("Starting matching scheduler", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCtx.Done():
			return nil
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

func (s *scheduler) runPass(ctx context.Context) {
	requestID := uuid.New().String()
	passLogger := s.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, passLogger)
	ctx = deliverycontext.WithPassTrigger(ctx, deliverycontext.TriggerScheduled)

	result, err := s.matchingUC.RunMatchingPass(ctx)
	if err != nil {
		passLogger.Error("Scheduled matching pass failed", slog.Any("error", err))

		return
	}

	passLogger.Debug("Scheduled matching pass finished",
		slog.Int("intents", len(result.Intents)),
		slog.Int("failures", len(result.Failures)),
	)
}
