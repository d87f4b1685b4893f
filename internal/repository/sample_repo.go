package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tubescope/tubescope-go/internal/model"
)

// SampleRepo stores fetched channel samples so repeat analyses don't hit the
// YouTube API for every request. It holds raw upstream metadata only; derived
// analyses are never persisted.
type SampleRepo struct {
	pool *pgxpool.Pool
}

func NewSampleRepo(pool *pgxpool.Pool) *SampleRepo {
	return &SampleRepo{pool: pool}
}

// Upsert writes a channel's sample set, replacing any previous one.
func (r *SampleRepo) Upsert(ctx context.Context, sample model.ChannelSample) error {
	videos, err := json.Marshal(sample.Videos)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO channel_samples (channel_id, channel_title, ref, videos, fetched_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (channel_id) DO UPDATE
		SET channel_title = EXCLUDED.channel_title,
		    ref = EXCLUDED.ref,
		    videos = EXCLUDED.videos,
		    fetched_at = NOW()`,
		sample.ChannelID, sample.ChannelTitle, sample.Ref, videos)
	return err
}

// FindFresh returns the stored sample for a channel if it is younger than
// maxAge, or nil when absent or stale.
func (r *SampleRepo) FindFresh(ctx context.Context, channelID string, maxAge time.Duration) (*model.ChannelSample, error) {
	var (
		sample model.ChannelSample
		videos []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT channel_id, channel_title, ref, videos, fetched_at
		FROM channel_samples
		WHERE channel_id = $1`,
		channelID).Scan(&sample.ChannelID, &sample.ChannelTitle, &sample.Ref, &videos, &sample.FetchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if time.Since(sample.FetchedAt) > maxAge {
		return nil, nil
	}

	if err := json.Unmarshal(videos, &sample.Videos); err != nil {
		return nil, err
	}
	return &sample, nil
}

// StaleSample identifies a stored sample due for a background refresh.
type StaleSample struct {
	ChannelID    string
	ChannelTitle string
	Ref          string
}

// ListStale returns up to limit samples older than maxAge, oldest first.
func (r *SampleRepo) ListStale(ctx context.Context, maxAge time.Duration, limit int) ([]StaleSample, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT channel_id, channel_title, ref
		FROM channel_samples
		WHERE fetched_at < NOW() - $1::interval
		ORDER BY fetched_at ASC
		LIMIT $2`,
		maxAge, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stale []StaleSample
	for rows.Next() {
		var s StaleSample
		if err := rows.Scan(&s.ChannelID, &s.ChannelTitle, &s.Ref); err != nil {
			return nil, err
		}
		stale = append(stale, s)
	}
	return stale, rows.Err()
}
