package analyzer

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tubescope/tubescope-go/internal/model"
)

// synthesize builds the recommended metadata for the target video from the
// aggregate rankings. avgTitleLen is the observed mean title length across
// every sampled title; it bounds the recommended title.
func synthesize(target *model.TargetVideo, keywords, hashtags []model.TokenCount, avgTitleLen float64, cfg Config) *model.SeoRecommendation {
	limit := int(math.Round(avgTitleLen))
	if limit <= 0 {
		limit = cfg.FallbackTitleLength
	}

	tags := pickHashtags(hashtags, cfg.MaxHashtags)
	highlights := pickHighlights(target, keywords, cfg.MaxHighlights)

	return &model.SeoRecommendation{
		Title:             buildTitle(target.Title, keywords, limit),
		Description:       buildDescription(target.Description, highlights, tags, cfg.TopicsLabel),
		Hashtags:          tags,
		KeywordHighlights: highlights,
	}
}

// buildTitle extends the target's own title with high-rank keywords it does
// not already contain, stopping before the character limit. The original
// title is never clipped, even when it alone exceeds the limit.
func buildTitle(title string, keywords []model.TokenCount, limit int) string {
	out := strings.TrimSpace(title)

	present := make(map[string]bool)
	for _, tok := range tokenize(out) {
		present[tok] = true
	}

	for _, kw := range keywords {
		if present[kw.Token] {
			continue
		}
		candidate := out + " | " + titleCase(kw.Token)
		if utf8.RuneCountInString(candidate) > limit {
			break
		}
		out = candidate
		present[kw.Token] = true
	}
	return out
}

// buildDescription templates the recommended description: the target's own
// description, a keyword line, and the recommended hashtags.
func buildDescription(description string, highlights, tags []string, topicsLabel string) string {
	var parts []string

	if d := strings.TrimSpace(description); d != "" {
		parts = append(parts, d)
	}
	if len(highlights) > 0 {
		parts = append(parts, topicsLabel+" "+strings.Join(highlights, ", "))
	}
	if len(tags) > 0 {
		parts = append(parts, strings.Join(tags, " "))
	}
	return strings.Join(parts, "\n\n")
}

// pickHashtags takes up to max hashtags from the ranked aggregate list.
// The counter already deduplicated them.
func pickHashtags(hashtags []model.TokenCount, max int) []string {
	out := make([]string, 0, max)
	for _, tc := range hashtags {
		if len(out) == max {
			break
		}
		out = append(out, tc.Token)
	}
	return out
}

// pickHighlights selects up to max top aggregate keywords, ranking those the
// target already uses ahead of the ones that would supplement its metadata.
func pickHighlights(target *model.TargetVideo, keywords []model.TokenCount, max int) []string {
	present := make(map[string]bool)
	for _, tok := range tokenize(target.Title + " " + target.Description) {
		present[tok] = true
	}

	var used, missing []string
	for _, kw := range keywords {
		if present[kw.Token] {
			used = append(used, kw.Token)
		} else {
			missing = append(missing, kw.Token)
		}
	}

	out := append(used, missing...)
	if len(out) > max {
		out = out[:max]
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// titleCase uppercases the first rune of a token for title display.
func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
