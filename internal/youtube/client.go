// Package youtube is a thin client for the YouTube Data API v3, covering the
// three calls the workbench relies on: resolving channel references, sampling
// a channel's recent uploads, and fetching a target video's snippet.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tubescope/tubescope-go/internal/model"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	maxPageSize    = 50
)

// Channel is the resolved identity of a channel reference.
type Channel struct {
	ID    string
	Title string
}

// Client wraps the handful of YouTube API calls we rely on.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a client with sane defaults.
func New(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithBaseURL creates a client against a non-default API endpoint (tests).
func NewWithBaseURL(apiKey, baseURL string) *Client {
	c := New(apiKey)
	c.baseURL = baseURL
	return c
}

// ResolveChannel turns a channel reference (URL, @handle, or ID) into a
// resolved channel identity.
func (c *Client) ResolveChannel(ctx context.Context, raw string) (*Channel, error) {
	ref, err := ParseChannelRef(raw)
	if err != nil {
		return nil, err
	}

	params := url.Values{"part": {"snippet"}}
	if ref.ChannelID != "" {
		params.Set("id", ref.ChannelID)
	} else {
		params.Set("forHandle", ref.Handle)
	}

	var decoded struct {
		Items []struct {
			ID      string `json:"id"`
			Snippet struct {
				Title string `json:"title"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := c.getJSON(ctx, "/channels", params, &decoded); err != nil {
		return nil, resolutionErr(raw, "channel lookup failed", err)
	}
	if len(decoded.Items) == 0 {
		return nil, resolutionErr(raw, "no such channel", nil)
	}

	return &Channel{ID: decoded.Items[0].ID, Title: decoded.Items[0].Snippet.Title}, nil
}

// FetchChannelVideos returns up to limit recent uploads of a channel as raw
// title/description pairs, newest first.
func (c *Client) FetchChannelVideos(ctx context.Context, channelID string, limit int) ([]model.VideoText, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	params := url.Values{
		"part":       {"snippet"},
		"channelId":  {channelID},
		"type":       {"video"},
		"order":      {"date"},
		"maxResults": {fmt.Sprint(limit)},
	}

	var decoded struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title       string `json:"title"`
				Description string `json:"description"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := c.getJSON(ctx, "/search", params, &decoded); err != nil {
		return nil, resolutionErr(channelID, "video listing failed", err)
	}

	videos := make([]model.VideoText, 0, len(decoded.Items))
	for _, item := range decoded.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, model.VideoText{
			VideoID: item.ID.VideoID,
			// The search endpoint HTML-escapes snippet text.
			Title:       html.UnescapeString(item.Snippet.Title),
			Description: html.UnescapeString(item.Snippet.Description),
		})
	}
	return videos, nil
}

// FetchVideo returns the snippet of the target video.
func (c *Client) FetchVideo(ctx context.Context, videoID string) (*model.TargetVideo, error) {
	params := url.Values{
		"part": {"snippet"},
		"id":   {videoID},
	}

	var decoded struct {
		Items []struct {
			ID      string `json:"id"`
			Snippet struct {
				Title        string `json:"title"`
				Description  string `json:"description"`
				ChannelTitle string `json:"channelTitle"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := c.getJSON(ctx, "/videos", params, &decoded); err != nil {
		return nil, resolutionErr(videoID, "video lookup failed", err)
	}
	if len(decoded.Items) == 0 {
		return nil, resolutionErr(videoID, "no such video", nil)
	}

	item := decoded.Items[0]
	return &model.TargetVideo{
		VideoID:      item.ID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ChannelTitle: item.Snippet.ChannelTitle,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("youtube api: %s (%s)", resp.Status, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
