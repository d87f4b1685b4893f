package model

import "time"

// VideoText is one raw title/description pair sampled from a channel's uploads.
type VideoText struct {
	VideoID     string `json:"videoId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChannelSample holds the text collected for one reference channel.
// Immutable once collected; the analyzer never mutates it.
type ChannelSample struct {
	ChannelID    string      `json:"channelId"`
	ChannelTitle string      `json:"channelTitle,omitempty"`
	Ref          string      `json:"ref,omitempty"`
	Videos       []VideoText `json:"videos"`
	FetchedAt    time.Time   `json:"fetchedAt,omitempty"`
}

// TargetVideo is the video the user is optimizing metadata for.
type TargetVideo struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle,omitempty"`
}
