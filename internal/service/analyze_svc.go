package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/tubescope/tubescope-go/internal/analyzer"
	"github.com/tubescope/tubescope-go/internal/model"
	"github.com/tubescope/tubescope-go/internal/repository"
	"github.com/tubescope/tubescope-go/internal/youtube"
)

// AnalyzeService orchestrates one analysis: resolve each channel reference,
// load its sample (cache → store → live fetch), run the aggregator, and
// assemble the API response. A failure on any channel fails the whole
// request; partial results are never returned.
type AnalyzeService struct {
	yt           *youtube.Client
	repo         *repository.SampleRepo
	cache        *CacheService
	cfg          analyzer.Config
	sampleSize   int
	sampleMaxAge time.Duration
}

func NewAnalyzeService(yt *youtube.Client, repo *repository.SampleRepo, cache *CacheService, cfg analyzer.Config, sampleSize int, sampleMaxAge time.Duration) *AnalyzeService {
	return &AnalyzeService{
		yt:           yt,
		repo:         repo,
		cache:        cache,
		cfg:          cfg,
		sampleSize:   sampleSize,
		sampleMaxAge: sampleMaxAge,
	}
}

// Analyze resolves the request's channels and optional target video, then
// runs the text-statistics aggregation over the collected samples.
func (s *AnalyzeService) Analyze(ctx context.Context, req model.AnalyzeRequest) (*model.AnalyzeResponse, error) {
	refs := dedupRefs(req.Channels)
	if len(refs) == 0 {
		return nil, analyzer.ErrNoChannels
	}

	samples := make([]model.ChannelSample, 0, len(refs))
	for _, ref := range refs {
		sample, err := s.channelSample(ctx, ref)
		if err != nil {
			return nil, err
		}
		samples = append(samples, *sample)
	}

	var target *model.TargetVideo
	if strings.TrimSpace(req.TargetVideoURL) != "" {
		var err error
		target, err = s.targetVideo(ctx, req.TargetVideoURL)
		if err != nil {
			return nil, err
		}
	}

	result, err := analyzer.Analyze(samples, target, s.cfg)
	if err != nil {
		return nil, err
	}

	return &model.AnalyzeResponse{
		ChannelAnalyses:     result.Channels,
		AggregateKeywords:   tokens(result.Keywords),
		AggregateHashtags:   tokens(result.Hashtags),
		AggregateFirstWords: tokens(result.FirstWords),
		TargetVideo:         target,
		Recommendation:      result.Recommendation,
	}, nil
}

// channelSample loads one channel's sample, cache-aside: Redis first, then
// the Postgres sample store, then a live YouTube fetch that repopulates both.
func (s *AnalyzeService) channelSample(ctx context.Context, ref string) (*model.ChannelSample, error) {
	norm := normalizeRef(ref)

	if cached, err := s.cache.GetSample(ctx, norm); err != nil {
		log.Printf("cache: sample get error: %v", err)
	} else if cached != nil {
		var sample model.ChannelSample
		if err := json.Unmarshal(cached, &sample); err == nil {
			return &sample, nil
		}
	}

	ch, err := s.yt.ResolveChannel(ctx, ref)
	if err != nil {
		return nil, err
	}

	// The store is a fetch cache; read errors degrade to a live fetch.
	sample, err := s.repo.FindFresh(ctx, ch.ID, s.sampleMaxAge)
	if err != nil {
		log.Printf("store: sample read error for %s: %v", ch.ID, err)
		sample = nil
	}

	if sample == nil {
		videos, err := s.yt.FetchChannelVideos(ctx, ch.ID, s.sampleSize)
		if err != nil {
			return nil, err
		}
		sample = &model.ChannelSample{
			ChannelID:    ch.ID,
			ChannelTitle: ch.Title,
			Ref:          norm,
			Videos:       videos,
			FetchedAt:    time.Now().UTC(),
		}
		if err := s.repo.Upsert(ctx, *sample); err != nil {
			log.Printf("store: sample write error for %s: %v", ch.ID, err)
		}
	}

	if err := s.cache.SetSample(ctx, norm, sample); err != nil {
		log.Printf("cache: sample set error: %v", err)
	}
	return sample, nil
}

// targetVideo resolves the target video URL and fetches its snippet,
// cache-aside through Redis.
func (s *AnalyzeService) targetVideo(ctx context.Context, rawURL string) (*model.TargetVideo, error) {
	videoID, err := youtube.ParseVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	if cached, err := s.cache.GetVideo(ctx, videoID); err != nil {
		log.Printf("cache: video get error: %v", err)
	} else if cached != nil {
		var video model.TargetVideo
		if err := json.Unmarshal(cached, &video); err == nil {
			return &video, nil
		}
	}

	video, err := s.yt.FetchVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetVideo(ctx, videoID, video); err != nil {
		log.Printf("cache: video set error: %v", err)
	}
	return video, nil
}

// dedupRefs trims the submitted references, drops blanks, and removes
// duplicates while preserving submission order.
func dedupRefs(refs []string) []string {
	seen := make(map[string]bool, len(refs))
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		norm := normalizeRef(ref)
		if seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, ref)
	}
	return out
}

func normalizeRef(ref string) string {
	return strings.ToLower(strings.TrimSpace(ref))
}

// tokens projects a ranked list down to its tokens for the aggregate arrays
// of the API response.
func tokens(ranked []model.TokenCount) []string {
	out := make([]string, 0, len(ranked))
	for _, tc := range ranked {
		out = append(out, tc.Token)
	}
	return out
}
