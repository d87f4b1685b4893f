package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Request shape limits. References are validated for shape only here;
// whether they resolve is the YouTube client's concern.
const (
	MaxChannels   = 10  // reference channels per analysis
	MaxRefLen     = 200 // single channel reference
	MaxVideoURLen = 300 // target video URL
)

// ErrorResponse returns the standard API error body: a user-facing message
// string plus a machine-readable code.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
		"code":  code,
	})
}

// ValidateChannels trims the submitted channel references, drops blanks, and
// enforces count and length limits. Returns the cleaned list or an error message.
func ValidateChannels(channels []string) ([]string, string) {
	cleaned := make([]string, 0, len(channels))
	for _, ref := range channels {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		if len(ref) > MaxRefLen {
			return nil, fmt.Sprintf("channel reference must be at most %d characters", MaxRefLen)
		}
		cleaned = append(cleaned, ref)
	}
	if len(cleaned) == 0 {
		return nil, "at least one channel is required"
	}
	if len(cleaned) > MaxChannels {
		return nil, fmt.Sprintf("at most %d channels per analysis", MaxChannels)
	}
	return cleaned, ""
}

// ValidateTargetURL checks the optional target video URL's shape.
// An empty URL is valid: the recommendation is simply omitted.
func ValidateTargetURL(rawURL string) (string, string) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ""
	}
	if len(rawURL) > MaxVideoURLen {
		return "", fmt.Sprintf("target video URL must be at most %d characters", MaxVideoURLen)
	}
	return rawURL, ""
}
