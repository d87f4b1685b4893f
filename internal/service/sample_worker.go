package service

import (
	"context"
	"log"
	"time"

	"github.com/tubescope/tubescope-go/internal/model"
	"github.com/tubescope/tubescope-go/internal/repository"
	"github.com/tubescope/tubescope-go/internal/youtube"
)

// refreshBatchSize bounds how many stale channels one tick re-fetches, so a
// large backlog never bursts against the YouTube API quota.
const refreshBatchSize = 20

// SampleWorker is a periodic background job that re-fetches stale stored
// channel samples so repeat analyses stay warm.
type SampleWorker struct {
	repo       *repository.SampleRepo
	yt         *youtube.Client
	cache      *CacheService
	interval   time.Duration
	maxAge     time.Duration
	sampleSize int
	stopCh     chan struct{}
}

// NewSampleWorker creates a worker that ticks every interval and refreshes
// samples older than maxAge.
func NewSampleWorker(repo *repository.SampleRepo, yt *youtube.Client, cache *CacheService, interval, maxAge time.Duration, sampleSize int) *SampleWorker {
	return &SampleWorker{
		repo:       repo,
		yt:         yt,
		cache:      cache,
		interval:   interval,
		maxAge:     maxAge,
		sampleSize: sampleSize,
		stopCh:     make(chan struct{}),
	}
}

// Start begins the periodic refresh loop. It runs one tick immediately,
// then every interval.
func (w *SampleWorker) Start(ctx context.Context) {
	log.Printf("sample-worker: starting (interval=%s, max-age=%s)", w.interval, w.maxAge)

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("sample-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("sample-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *SampleWorker) Stop() {
	close(w.stopCh)
}

// tick runs one cycle: refresh a batch of the oldest stale samples.
func (w *SampleWorker) tick(ctx context.Context) {
	start := time.Now()

	stale, err := w.repo.ListStale(ctx, w.maxAge, refreshBatchSize)
	if err != nil {
		log.Printf("sample-worker: error listing stale samples: %v", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	refreshed := 0
	for _, s := range stale {
		if err := w.refresh(ctx, s); err != nil {
			log.Printf("sample-worker: error refreshing %s: %v", s.ChannelID, err)
			continue
		}
		refreshed++
	}

	elapsed := time.Since(start)
	log.Printf("sample-worker: tick complete — %d/%d samples refreshed (%s)",
		refreshed, len(stale), elapsed.Round(time.Millisecond))
}

// refresh re-fetches one channel's videos, replaces the stored sample, and
// drops the cached copy so the next analysis sees the new data.
func (w *SampleWorker) refresh(ctx context.Context, s repository.StaleSample) error {
	videos, err := w.yt.FetchChannelVideos(ctx, s.ChannelID, w.sampleSize)
	if err != nil {
		return err
	}

	sample := model.ChannelSample{
		ChannelID:    s.ChannelID,
		ChannelTitle: s.ChannelTitle,
		Ref:          s.Ref,
		Videos:       videos,
		FetchedAt:    time.Now().UTC(),
	}
	if err := w.repo.Upsert(ctx, sample); err != nil {
		return err
	}

	if s.Ref != "" {
		if err := w.cache.InvalidateSample(ctx, s.Ref); err != nil {
			log.Printf("sample-worker: cache invalidate error for %s: %v", s.ChannelID, err)
		}
	}
	return nil
}
