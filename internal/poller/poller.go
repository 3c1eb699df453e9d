// Package poller periodically refreshes the cached assignment snapshot of
// every watched class from the LEB2 API. The reminder scheduler only ever
// reads these snapshots; it never fetches synchronously itself.
package poller

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/assignwatch/assignwatch/internal/model"
)

//go:generate mockgen -source=poller.go -destination=../mocks/poller/mock.go -package=mocks
type assignmentFetcher interface {
	Assignments(ctx context.Context, classID, studentID int) ([]model.Assignment, error)
}

type watchService interface {
	ListClasses(context.Context) ([]model.Class, error)
	SaveSnapshot(ctx context.Context, classID int, assignments []model.Assignment, fetchedAt time.Time) error
}

// Poller refreshes assignment snapshots on a fixed interval.
type Poller struct {
	fetcher  assignmentFetcher
	service  watchService
	interval time.Duration
}

func New(fetcher assignmentFetcher, service watchService, interval time.Duration) *Poller {
	return &Poller{
		fetcher:  fetcher,
		service:  service,
		interval: interval,
	}
}

// Run refreshes snapshots immediately and then on every interval until ctx
// is cancelled.
func (p *Poller) Run(ctx context.Context) {
	zlog.Logger.Info().Msgf("snapshot poller started, refresh every %s", p.interval)

	p.RunOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("snapshot poller stopped")
			return
		case <-ticker.C:
			p.RunOnce(ctx)
		}
	}
}

// RunOnce refreshes the snapshot of every watched class. A failing class is
// logged and skipped; the remaining classes still refresh.
func (p *Poller) RunOnce(ctx context.Context) {
	classes, err := p.service.ListClasses(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list watched classes")
		return
	}

	for _, class := range classes {
		assignments, err := p.fetcher.Assignments(ctx, class.ID, class.StudentID)
		if err != nil {
			zlog.Logger.Error().Err(err).Int("class_id", class.ID).Msg("failed to fetch assignments")
			continue
		}

		if err := p.service.SaveSnapshot(ctx, class.ID, assignments, time.Now()); err != nil {
			zlog.Logger.Error().Err(err).Int("class_id", class.ID).Msg("failed to save snapshot")
		}
	}
}
