package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/streaks"
	"github.com/comitanigiacomo/rings-closed-engine/internal/observability"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type ActivityRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]*domain.ActivityRecord, error)
}

type SnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *domain.StreakSnapshot) error
	ListComputedBefore(ctx context.Context, day time.Time) ([]*domain.StreakSnapshot, error)
}

type StreakJob struct {
	UserID string
}

type Options struct {
	QueueSize   int
	Concurrency int
}

// StreakWorker recomputes the per-dimension snapshots of a user in the
// background after their activity changes, and again after day rollover.
type StreakWorker struct {
	users     UserRepository
	activity  ActivityRepository
	snapshots SnapshotRepository
	jobs      chan StreakJob

	concurrency int
	now         func() time.Time
	log         *zap.Logger
}

func NewStreakWorker(users UserRepository, activity ActivityRepository, snapshots SnapshotRepository, opts Options, log *zap.Logger) *StreakWorker {
	if opts.QueueSize < 1 {
		opts.QueueSize = 100
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &StreakWorker{
		users:       users,
		activity:    activity,
		snapshots:   snapshots,
		jobs:        make(chan StreakJob, opts.QueueSize),
		concurrency: opts.Concurrency,
		now:         time.Now,
		log:         log.With(zap.String("component", "streak_worker")),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		w.log.Info("Streak worker started in background")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.log.Info("Streak worker shutting down")
				return
			}
		}
	}()
}

// StartScheduler runs RefreshStale every interval until ctx is done.
func (w *StreakWorker) StartScheduler(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		w.log.Warn("Snapshot refresh disabled, interval must be positive", zap.Duration("interval", interval))
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n, err := w.RefreshStale(ctx)
				if err != nil {
					w.log.Error("Snapshot refresh failed", zap.Error(err))
					continue
				}
				if n > 0 {
					w.log.Info("Refreshed stale snapshots", zap.Int("users", n))
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(userID string) {
	select {
	case w.jobs <- StreakJob{UserID: userID}:
	default:
		observability.WorkerJob("dropped")
		w.log.Warn("Streak worker queue full, dropping job", zap.String("user_id", userID))
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	if err := w.Recalculate(ctx, job.UserID); err != nil {
		observability.WorkerJob("failed")
		w.log.Error("Snapshot recalculation failed", zap.String("user_id", job.UserID), zap.Error(err))
		return
	}
	observability.WorkerJob("processed")
}

// Recalculate rebuilds and stores one snapshot per dimension for the user,
// evaluated on the current day of the user's time zone.
func (w *StreakWorker) Recalculate(ctx context.Context, userID string) error {
	user, err := w.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			w.log.Debug("Skipping snapshot for deleted user", zap.String("user_id", userID))
			return nil
		}
		return fmt.Errorf("worker: fetch user: %w", err)
	}

	records, err := w.activity.ListByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("worker: list activity: %w", err)
	}

	cal := domain.NewCalendar(user.Location())
	now := w.now()

	started := time.Now()
	all := streaks.All(records, now, cal)
	took := time.Since(started)

	for _, dim := range domain.AllDimensions {
		observability.ObserveStreaks(string(dim), len(all.For(dim)), took)

		snap := domain.NewStreakSnapshot(userID, dim, all, now, cal)
		if err := w.snapshots.Upsert(ctx, snap); err != nil {
			return fmt.Errorf("worker: store %s snapshot: %w", dim, err)
		}
	}

	w.log.Debug("Snapshots updated",
		zap.String("user_id", userID),
		zap.Int("records", len(records)),
		zap.Duration("took", took),
	)
	return nil
}

// RefreshStale recomputes every user whose snapshots were computed before
// their current local day. It returns the number of users refreshed.
func (w *StreakWorker) RefreshStale(ctx context.Context) (int, error) {
	now := w.now()

	// No zone is more than a day ahead of UTC.
	y, m, d := now.UTC().Date()
	cutoff := time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)

	candidates, err := w.snapshots.ListComputedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("worker: list stale snapshots: %w", err)
	}

	seen := make(map[string]struct{})
	var userIDs []string
	for _, s := range candidates {
		if _, ok := seen[s.UserID]; ok || !s.IsStale(now) {
			continue
		}
		seen[s.UserID] = struct{}{}
		userIDs = append(userIDs, s.UserID)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for _, id := range userIDs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			w.processJob(gCtx, StreakJob{UserID: id})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(userIDs), nil
}
