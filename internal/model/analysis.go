package model

// TokenCount is one entry of a ranked frequency list.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// ChannelAnalysis is the derived, read-only summary of one channel sample.
type ChannelAnalysis struct {
	ChannelID          string         `json:"channelId"`
	ChannelTitle       string         `json:"channelTitle,omitempty"`
	SampleTitles       []string       `json:"sampleTitles"`
	SampleDescriptions []string       `json:"sampleDescriptions"`
	AverageTitleLength float64        `json:"averageTitleLength"`
	Keywords           []TokenCount   `json:"keywords"`
	Hashtags           []TokenCount   `json:"hashtags"`
	FirstWords         map[string]int `json:"firstWords"`
}

// SeoRecommendation is the synthesized metadata suggestion for the target video.
type SeoRecommendation struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Hashtags          []string `json:"hashtags"`
	KeywordHighlights []string `json:"keywordHighlights"`
}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Channels       []string `json:"channels"`
	TargetVideoURL string   `json:"targetVideoUrl,omitempty"`
}

// AnalyzeResponse is the API response for a completed analysis.
// TargetVideo and Recommendation are present together or not at all.
type AnalyzeResponse struct {
	ChannelAnalyses     []ChannelAnalysis  `json:"channelAnalyses"`
	AggregateKeywords   []string           `json:"aggregateKeywords"`
	AggregateHashtags   []string           `json:"aggregateHashtags"`
	AggregateFirstWords []string           `json:"aggregateFirstWords"`
	TargetVideo         *TargetVideo       `json:"targetVideo,omitempty"`
	Recommendation      *SeoRecommendation `json:"recommendation,omitempty"`
}
