package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// channelIDRe matches canonical channel IDs (UC + 22 chars).
	channelIDRe = regexp.MustCompile(`^UC[A-Za-z0-9_-]{22}$`)
	// videoIDRe matches 11-character video IDs.
	videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	// handleRe matches @handles without the marker.
	handleRe = regexp.MustCompile(`^[A-Za-z0-9._-]{3,30}$`)
)

// ChannelRef is a parsed channel reference: either a canonical channel ID or
// an @handle, never both.
type ChannelRef struct {
	ChannelID string
	Handle    string
	raw       string
}

// String returns the reference as the user supplied it.
func (r ChannelRef) String() string { return r.raw }

// ParseChannelRef accepts the channel reference forms the workbench supports:
// bare @handles, bare handles, canonical UC… IDs, and youtube.com URLs
// (/@handle, /channel/UC…, legacy /c/name and /user/name).
func ParseChannelRef(raw string) (ChannelRef, error) {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return ChannelRef{}, resolutionErr(raw, "empty channel reference", nil)
	}

	if strings.Contains(ref, "/") || strings.Contains(ref, "youtube.com") {
		return parseChannelURL(raw, ref)
	}

	if channelIDRe.MatchString(ref) {
		return ChannelRef{ChannelID: ref, raw: raw}, nil
	}

	handle := strings.TrimPrefix(ref, "@")
	if handleRe.MatchString(handle) {
		return ChannelRef{Handle: "@" + handle, raw: raw}, nil
	}

	return ChannelRef{}, resolutionErr(raw, "not a recognizable channel URL, @handle, or channel ID", nil)
}

func parseChannelURL(raw, ref string) (ChannelRef, error) {
	if !strings.Contains(ref, "://") {
		ref = "https://" + ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ChannelRef{}, resolutionErr(raw, "malformed URL", err)
	}
	if !isYouTubeHost(u.Host) {
		return ChannelRef{}, resolutionErr(raw, "not a youtube.com URL", nil)
	}

	segs := pathSegments(u)
	if len(segs) == 0 {
		return ChannelRef{}, resolutionErr(raw, "URL has no channel path", nil)
	}

	switch {
	case strings.HasPrefix(segs[0], "@"):
		handle := strings.TrimPrefix(segs[0], "@")
		if handleRe.MatchString(handle) {
			return ChannelRef{Handle: "@" + handle, raw: raw}, nil
		}
	case segs[0] == "channel" && len(segs) > 1:
		if channelIDRe.MatchString(segs[1]) {
			return ChannelRef{ChannelID: segs[1], raw: raw}, nil
		}
	case (segs[0] == "c" || segs[0] == "user") && len(segs) > 1:
		// Legacy custom URLs resolve like handles.
		if handleRe.MatchString(segs[1]) {
			return ChannelRef{Handle: "@" + segs[1], raw: raw}, nil
		}
	}

	return ChannelRef{}, resolutionErr(raw, "URL does not point at a channel", nil)
}

// ParseVideoID extracts the video ID from the URL forms YouTube uses:
// watch?v=, youtu.be/, /shorts/, /embed/, or a bare 11-character ID.
func ParseVideoID(raw string) (string, error) {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return "", resolutionErr(raw, "empty video reference", nil)
	}

	if videoIDRe.MatchString(ref) {
		return ref, nil
	}

	if !strings.Contains(ref, "://") {
		ref = "https://" + ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", resolutionErr(raw, "malformed URL", err)
	}

	segs := pathSegments(u)

	switch {
	case strings.HasSuffix(u.Host, "youtu.be"):
		if len(segs) > 0 && videoIDRe.MatchString(segs[0]) {
			return segs[0], nil
		}
	case isYouTubeHost(u.Host):
		if id := u.Query().Get("v"); videoIDRe.MatchString(id) {
			return id, nil
		}
		if len(segs) > 1 && (segs[0] == "shorts" || segs[0] == "embed" || segs[0] == "live") &&
			videoIDRe.MatchString(segs[1]) {
			return segs[1], nil
		}
	}

	return "", resolutionErr(raw, "not a recognizable video URL or ID", nil)
}

func isYouTubeHost(host string) bool {
	host = strings.ToLower(host)
	return host == "youtube.com" || strings.HasSuffix(host, ".youtube.com")
}

func pathSegments(u *url.URL) []string {
	var segs []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
