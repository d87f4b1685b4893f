// Package analyzer implements the text-statistics aggregation behind the
// SEO workbench: per-channel keyword/hashtag/opening-word frequencies,
// cross-channel aggregation, and recommendation synthesis for a target video.
// It is a pure function of its inputs; all YouTube fetching happens upstream.
package analyzer

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/tubescope/tubescope-go/internal/model"
)

var (
	// ErrNoChannels means the caller supplied an empty channel sample list.
	ErrNoChannels = errors.New("no channel samples supplied")
	// ErrNoText means no channel sample yielded a single parseable token.
	ErrNoText = errors.New("channel samples contain no parseable text")
)

// Result is the full output of one aggregation run.
type Result struct {
	Channels   []model.ChannelAnalysis
	Keywords   []model.TokenCount
	Hashtags   []model.TokenCount
	FirstWords []model.TokenCount
	// Recommendation is non-nil iff a target video was supplied.
	Recommendation *model.SeoRecommendation
}

// Analyze runs the per-channel analysis, merges the rankings across channels,
// and, when target is non-nil, synthesizes an SEO recommendation for it.
func Analyze(samples []model.ChannelSample, target *model.TargetVideo, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()

	if len(samples) == 0 {
		return nil, ErrNoChannels
	}

	aggKeywords := newCounter()
	aggHashtags := newCounter()
	aggFirstWords := newCounter()

	var (
		channels    []model.ChannelAnalysis
		titleChars  int
		titleCount  int
		tokensTotal int
	)

	for _, sample := range samples {
		ca, stats := analyzeChannel(sample, cfg)
		channels = append(channels, ca)

		aggKeywords.merge(stats.keywords)
		aggHashtags.merge(stats.hashtags)
		aggFirstWords.merge(stats.firstWords)

		titleChars += stats.titleChars
		titleCount += stats.titleCount
		tokensTotal += stats.tokens
	}

	if tokensTotal == 0 {
		return nil, ErrNoText
	}

	res := &Result{
		Channels:   channels,
		Keywords:   aggKeywords.ranked(cfg.TopN),
		Hashtags:   aggHashtags.ranked(cfg.TopN),
		FirstWords: aggFirstWords.ranked(cfg.TopN),
	}

	if target != nil {
		avgLen := 0.0
		if titleCount > 0 {
			avgLen = float64(titleChars) / float64(titleCount)
		}
		res.Recommendation = synthesize(target, res.Keywords, res.Hashtags, avgLen, cfg)
	}

	return res, nil
}

// channelStats carries the raw counters of one channel so the aggregate pass
// can merge exact counts rather than the truncated ranked lists.
type channelStats struct {
	keywords   *counter
	hashtags   *counter
	firstWords *counter
	titleChars int
	titleCount int
	tokens     int
}

func analyzeChannel(sample model.ChannelSample, cfg Config) (model.ChannelAnalysis, channelStats) {
	stats := channelStats{
		keywords:   newCounter(),
		hashtags:   newCounter(),
		firstWords: newCounter(),
	}

	var sampleTitles, sampleDescriptions []string

	for _, v := range sample.Videos {
		for _, text := range []string{v.Title, v.Description} {
			tokens := tokenize(text)
			stats.tokens += len(tokens)
			for _, tok := range tokens {
				if cfg.Stopwords[tok] {
					continue
				}
				stats.keywords.add(tok)
			}
			for _, tag := range extractHashtags(text) {
				stats.hashtags.add(tag)
			}
		}

		stats.titleChars += utf8.RuneCountInString(v.Title)
		stats.titleCount++
		stats.firstWords.add(firstWord(v.Title))

		if len(sampleTitles) < cfg.MaxSamples {
			sampleTitles = append(sampleTitles, v.Title)
			sampleDescriptions = append(sampleDescriptions, truncate(v.Description, cfg.MaxSampleDescriptionLen))
		}
	}

	avgLen := 0.0
	if stats.titleCount > 0 {
		avgLen = float64(stats.titleChars) / float64(stats.titleCount)
	}

	if sampleTitles == nil {
		sampleTitles = []string{}
	}
	if sampleDescriptions == nil {
		sampleDescriptions = []string{}
	}

	ca := model.ChannelAnalysis{
		ChannelID:          sample.ChannelID,
		ChannelTitle:       sample.ChannelTitle,
		SampleTitles:       sampleTitles,
		SampleDescriptions: sampleDescriptions,
		AverageTitleLength: avgLen,
		Keywords:           stats.keywords.ranked(cfg.TopN),
		Hashtags:           stats.hashtags.ranked(cfg.TopN),
		FirstWords:         stats.firstWords.asMap(),
	}
	return ca, stats
}

// truncate cuts s to at most max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max])) + "…"
}
