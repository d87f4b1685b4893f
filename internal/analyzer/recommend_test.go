package analyzer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tubescope/tubescope-go/internal/model"
)

func kws(tokens ...string) []model.TokenCount {
	out := make([]model.TokenCount, len(tokens))
	for i, tok := range tokens {
		out[i] = model.TokenCount{Token: tok, Count: len(tokens) - i}
	}
	return out
}

func TestBuildTitle_AppendsKeywordsWithinLimit(t *testing.T) {
	got := buildTitle("My Video", kws("golang", "tutorial"), 40)
	if !strings.HasPrefix(got, "My Video") {
		t.Errorf("recommended title %q does not start with the target title", got)
	}
	if !strings.Contains(got, "Golang") {
		t.Errorf("recommended title %q missing top keyword", got)
	}
	if utf8.RuneCountInString(got) > 40 {
		t.Errorf("recommended title %q exceeds limit of 40", got)
	}
}

func TestBuildTitle_NeverClipsOriginal(t *testing.T) {
	long := "A Very Long Original Title That Exceeds Every Limit We Set"
	got := buildTitle(long, kws("golang"), 20)
	if got != long {
		t.Errorf("original title was altered: %q", got)
	}
}

func TestBuildTitle_SkipsKeywordsAlreadyPresent(t *testing.T) {
	got := buildTitle("Golang Tutorial", kws("golang", "tips"), 60)
	if strings.Count(strings.ToLower(got), "golang") != 1 {
		t.Errorf("keyword already in title was appended again: %q", got)
	}
	if !strings.Contains(got, "Tips") {
		t.Errorf("missing keyword was not appended: %q", got)
	}
}

func TestPickHashtags_Bounded(t *testing.T) {
	tags := pickHashtags(kws("#a", "#b", "#c", "#d", "#e", "#f", "#g"), 5)
	if len(tags) != 5 {
		t.Errorf("got %d hashtags, want 5", len(tags))
	}
	if tags[0] != "#a" {
		t.Errorf("hashtags not taken in rank order: %v", tags)
	}
}

func TestPickHighlights_PresentTokensFirst(t *testing.T) {
	target := &model.TargetVideo{Title: "Rust tutorial", Description: "learn rust"}
	got := pickHighlights(target, kws("golang", "rust", "tutorial", "tips"), 10)

	// "rust" and "tutorial" appear in the target, so they lead despite
	// "golang" outranking them in the aggregate.
	if len(got) != 4 {
		t.Fatalf("got %d highlights, want 4", len(got))
	}
	if got[0] != "rust" || got[1] != "tutorial" {
		t.Errorf("highlights = %v, want rust, tutorial first", got)
	}
	if got[2] != "golang" || got[3] != "tips" {
		t.Errorf("supplemental keywords out of rank order: %v", got)
	}
}

func TestPickHighlights_Bounded(t *testing.T) {
	target := &model.TargetVideo{Title: "x"}
	got := pickHighlights(target, kws("a", "b", "c", "d"), 2)
	if len(got) != 2 {
		t.Errorf("got %d highlights, want 2", len(got))
	}
}

func TestBuildDescription_Template(t *testing.T) {
	got := buildDescription("  Original description.  ", []string{"go", "tips"}, []string{"#golang"}, "Topics covered:")

	if !strings.HasPrefix(got, "Original description.") {
		t.Errorf("description does not open with the target's own text: %q", got)
	}
	if !strings.Contains(got, "Topics covered: go, tips") {
		t.Errorf("description missing keyword line: %q", got)
	}
	if !strings.HasSuffix(got, "#golang") {
		t.Errorf("description missing hashtag line: %q", got)
	}
}

func TestBuildDescription_EmptyTarget(t *testing.T) {
	got := buildDescription("", []string{"go"}, nil, "Topics covered:")
	if strings.HasPrefix(got, "\n") {
		t.Errorf("empty target description left a leading blank block: %q", got)
	}
	if got != "Topics covered: go" {
		t.Errorf("got %q, want keyword line only", got)
	}
}

func TestSynthesize_FallbackTitleLimit(t *testing.T) {
	target := &model.TargetVideo{Title: "Short"}
	rec := synthesize(target, kws("alpha", "beta", "gamma"), nil, 0, DefaultConfig())

	if utf8.RuneCountInString(rec.Title) > DefaultConfig().FallbackTitleLength {
		t.Errorf("title %q exceeds fallback limit", rec.Title)
	}
	if !strings.Contains(rec.Title, "Alpha") {
		t.Errorf("fallback limit left no room for keywords: %q", rec.Title)
	}
}
