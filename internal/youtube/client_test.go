package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithBaseURL("test-key", srv.URL)
}

func TestResolveChannel_ByHandle(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/channels", r.URL.Path)
		assert.Equal(t, "@somechannel", r.URL.Query().Get("forHandle"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"items":[{"id":"UC_x5XG1OV2P6uZZ5FSM9Ttw","snippet":{"title":"Some Channel"}}]}`))
	})

	ch, err := c.ResolveChannel(context.Background(), "@somechannel")
	require.NoError(t, err)
	assert.Equal(t, "UC_x5XG1OV2P6uZZ5FSM9Ttw", ch.ID)
	assert.Equal(t, "Some Channel", ch.Title)
}

func TestResolveChannel_ByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "UC_x5XG1OV2P6uZZ5FSM9Ttw", r.URL.Query().Get("id"))
		assert.Empty(t, r.URL.Query().Get("forHandle"))
		w.Write([]byte(`{"items":[{"id":"UC_x5XG1OV2P6uZZ5FSM9Ttw","snippet":{"title":"Some Channel"}}]}`))
	})

	ch, err := c.ResolveChannel(context.Background(), "UC_x5XG1OV2P6uZZ5FSM9Ttw")
	require.NoError(t, err)
	assert.Equal(t, "UC_x5XG1OV2P6uZZ5FSM9Ttw", ch.ID)
}

func TestResolveChannel_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})

	_, err := c.ResolveChannel(context.Background(), "@missing")
	require.Error(t, err)
	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "@missing", resErr.Ref)
}

func TestResolveChannel_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"quotaExceeded"}}`, http.StatusForbidden)
	})

	_, err := c.ResolveChannel(context.Background(), "@somechannel")
	require.Error(t, err)
	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
}

func TestFetchChannelVideos(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "UCabc", r.URL.Query().Get("channelId"))
		assert.Equal(t, "date", r.URL.Query().Get("order"))
		assert.Equal(t, "video", r.URL.Query().Get("type"))
		assert.Equal(t, "2", r.URL.Query().Get("maxResults"))
		w.Write([]byte(`{"items":[
			{"id":{"videoId":"dQw4w9WgXcQ"},"snippet":{"title":"Go Tips &amp; Tricks","description":"daily tips"}},
			{"id":{"videoId":"abcdefghijk"},"snippet":{"title":"Rust Review","description":""}},
			{"id":{},"snippet":{"title":"a playlist, not a video"}}
		]}`))
	})

	videos, err := c.FetchChannelVideos(context.Background(), "UCabc", 2)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "dQw4w9WgXcQ", videos[0].VideoID)
	// HTML entities from the search endpoint are decoded.
	assert.Equal(t, "Go Tips & Tricks", videos[0].Title)
	assert.Equal(t, "daily tips", videos[0].Description)
	assert.Equal(t, "Rust Review", videos[1].Title)
}

func TestFetchVideo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("id"))
		w.Write([]byte(`{"items":[{"id":"dQw4w9WgXcQ","snippet":{"title":"My Video","description":"about things","channelTitle":"My Channel"}}]}`))
	})

	video, err := c.FetchVideo(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", video.VideoID)
	assert.Equal(t, "My Video", video.Title)
	assert.Equal(t, "about things", video.Description)
	assert.Equal(t, "My Channel", video.ChannelTitle)
}

func TestFetchVideo_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})

	_, err := c.FetchVideo(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
}
