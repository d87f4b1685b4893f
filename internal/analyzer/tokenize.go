package analyzer

import (
	"regexp"
	"strings"
)

var (
	// wordRe matches word tokens: letters, digits, inner apostrophes.
	// Punctuation, whitespace and the hashtag marker act as delimiters.
	wordRe = regexp.MustCompile(`[\p{L}\p{N}']+`)
	// hashtagRe matches hashtag tokens including the leading marker.
	hashtagRe = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
)

// tokenize lowercases s and splits it into word tokens.
func tokenize(s string) []string {
	return wordRe.FindAllString(strings.ToLower(s), -1)
}

// extractHashtags lowercases s and returns every #token it contains.
func extractHashtags(s string) []string {
	return hashtagRe.FindAllString(strings.ToLower(s), -1)
}

// firstWord returns the opening word token of a title, or "" for blank titles.
func firstWord(title string) string {
	tokens := tokenize(title)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}
