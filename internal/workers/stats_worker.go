package workers

import (
	"context"
	"time"

	"go.uber.org/zap"
	followerPort "yatube/internal/ports/follower"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"
)

// StatsWorker periodically logs the size of the content store. It is purely
// observational; nothing reads its output programmatically.
type StatsWorker struct {
	PostRepo     postPort.PostRepository
	UserRepo     userPort.UserRepository
	FollowerRepo followerPort.FollowerRepository
	Interval     time.Duration
	Logger       *zap.Logger
}

func NewStatsWorker(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	followerRepo followerPort.FollowerRepository,
	interval time.Duration,
	logger *zap.Logger,
) *StatsWorker {
	return &StatsWorker{
		PostRepo:     postRepo,
		UserRepo:     userRepo,
		FollowerRepo: followerRepo,
		Interval:     interval,
		Logger:       logger,
	}
}

func (w *StatsWorker) Run(ctx context.Context) {
	w.Logger.Info("stats worker started", zap.Duration("interval", w.Interval))
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("stats worker stopped")
			return
		case <-ticker.C:
			w.report(ctx)
		}
	}
}

func (w *StatsWorker) report(ctx context.Context) {
	posts, err := w.PostRepo.Count()
	if err != nil {
		w.Logger.Error("could not count posts", zap.Error(err))
		return
	}
	users, err := w.UserRepo.Count()
	if err != nil {
		w.Logger.Error("could not count users", zap.Error(err))
		return
	}
	follows, err := w.FollowerRepo.Count(ctx)
	if err != nil {
		w.Logger.Error("could not count follows", zap.Error(err))
		return
	}

	w.Logger.Info("content store statistics",
		zap.Int64("posts", posts),
		zap.Int64("users", users),
		zap.Int64("follows", follows),
	)
}
