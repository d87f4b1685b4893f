package analyzer

import (
	"sort"

	"github.com/tubescope/tubescope-go/internal/model"
)

// counter counts tokens while remembering first-seen order, so that ranking
// ties break deterministically in favor of the token seen first.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(token string) {
	c.addN(token, 1)
}

func (c *counter) addN(token string, n int) {
	if token == "" || n <= 0 {
		return
	}
	if _, seen := c.counts[token]; !seen {
		c.order = append(c.order, token)
	}
	c.counts[token] += n
}

// merge folds another counter into this one, preserving this counter's
// first-seen order for tokens both have.
func (c *counter) merge(other *counter) {
	for _, token := range other.order {
		c.addN(token, other.counts[token])
	}
}

func (c *counter) empty() bool {
	return len(c.order) == 0
}

// ranked returns the tokens sorted by descending count, first-seen order on
// ties, truncated to topN (topN <= 0 means no truncation).
func (c *counter) ranked(topN int) []model.TokenCount {
	out := make([]model.TokenCount, 0, len(c.order))
	for _, token := range c.order {
		out = append(out, model.TokenCount{Token: token, Count: c.counts[token]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// asMap returns a copy of the raw counts.
func (c *counter) asMap() map[string]int {
	out := make(map[string]int, len(c.counts))
	for token, n := range c.counts {
		out[token] = n
	}
	return out
}
