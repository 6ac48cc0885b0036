package domain

import (
	"regexp"
	"strings"
)

// DefaultPlaylistName is used when sanitization leaves nothing behind.
const DefaultPlaylistName = "Vibeflow Playlist"

const maxPlaylistNameLen = 100

var (
	invalidNameChars = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
)

// SanitizePlaylistName strips characters the catalog rejects, collapses
// whitespace runs, trims, substitutes the default name when the result is
// empty, and truncates to 100 characters.
func SanitizePlaylistName(name string) string {
	cleaned := invalidNameChars.ReplaceAllString(name, "")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		cleaned = DefaultPlaylistName
	}
	if len(cleaned) > maxPlaylistNameLen {
		cleaned = cleaned[:maxPlaylistNameLen]
	}
	return cleaned
}
