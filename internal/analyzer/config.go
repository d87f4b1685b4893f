package analyzer

// Config carries the tunable parameters of the aggregation. The stopword set
// and the recommendation wording are presentation choices, so they live here
// rather than as hard-coded values inside the algorithm.
type Config struct {
	// TopN truncates every ranked keyword/hashtag/opening-word list.
	TopN int
	// MaxSamples bounds the representative titles/descriptions kept per channel.
	MaxSamples int
	// MaxSampleDescriptionLen truncates each kept description for display.
	MaxSampleDescriptionLen int
	// MaxHashtags bounds the recommended hashtag set.
	MaxHashtags int
	// MaxHighlights bounds the keyword-highlight list.
	MaxHighlights int
	// FallbackTitleLength bounds the recommended title when no average title
	// length could be observed.
	FallbackTitleLength int
	// TopicsLabel introduces the keyword line of the recommended description.
	TopicsLabel string
	// Stopwords are tokens excluded from keyword frequency counting.
	Stopwords map[string]bool
}

// DefaultConfig returns the configuration used by the API service.
func DefaultConfig() Config {
	return Config{
		TopN:                    15,
		MaxSamples:              10,
		MaxSampleDescriptionLen: 200,
		MaxHashtags:             5,
		MaxHighlights:           10,
		FallbackTitleLength:     70,
		TopicsLabel:             "Topics covered:",
		Stopwords:               defaultStopwords(),
	}
}

func defaultStopwords() map[string]bool {
	words := []string{
		"a", "an", "the", "and", "or", "but", "so", "if", "then",
		"of", "to", "in", "on", "at", "by", "for", "with", "from", "into",
		"is", "am", "are", "was", "were", "be", "been", "being",
		"do", "does", "did", "have", "has", "had", "will", "would", "can",
		"could", "should", "not", "no", "yes",
		"i", "me", "my", "we", "us", "our", "you", "your", "he", "she",
		"it", "its", "they", "them", "their", "this", "that", "these",
		"those", "there", "here", "what", "which", "who", "whom", "whose",
		"when", "where", "why", "how", "all", "any", "each", "more", "most",
		"other", "some", "such", "as", "than", "too", "very", "just",
		"about", "up", "out", "over", "under", "again", "only", "own",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TopN <= 0 {
		c.TopN = def.TopN
	}
	if c.MaxSamples <= 0 {
		c.MaxSamples = def.MaxSamples
	}
	if c.MaxSampleDescriptionLen <= 0 {
		c.MaxSampleDescriptionLen = def.MaxSampleDescriptionLen
	}
	if c.MaxHashtags <= 0 {
		c.MaxHashtags = def.MaxHashtags
	}
	if c.MaxHighlights <= 0 {
		c.MaxHighlights = def.MaxHighlights
	}
	if c.FallbackTitleLength <= 0 {
		c.FallbackTitleLength = def.FallbackTitleLength
	}
	if c.TopicsLabel == "" {
		c.TopicsLabel = def.TopicsLabel
	}
	if c.Stopwords == nil {
		c.Stopwords = def.Stopwords
	}
	return c
}
