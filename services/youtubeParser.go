package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	YoutubeURLVideo    = "VIDEO"
	YoutubeURLPlaylist = "PLAYLIST"
	YoutubeURLInvalid  = "INVALID"
)

// ParsedYoutubeURL is the outcome of classifying a lesson video URL.
type ParsedYoutubeURL struct {
	Type       string `json:"type"`
	VideoID    string `json:"video_id,omitempty"`
	PlaylistID string `json:"playlist_id,omitempty"`
}

var (
	youtubeWatchPattern    = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	youtubeEmbedPattern    = regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`)
	youtubeShortPattern    = regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`)
	youtubePlaylistPattern = regexp.MustCompile(`[?&]list=([a-zA-Z0-9_-]+)`)
	isoDurationPattern     = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
)

// ParseYoutubeURL classifies a URL as a video, a playlist or invalid. A watch
// URL that also carries a list parameter is treated as a playlist.
func ParseYoutubeURL(rawURL string) ParsedYoutubeURL {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ParsedYoutubeURL{Type: YoutubeURLInvalid}
	}

	if m := youtubePlaylistPattern.FindStringSubmatch(rawURL); m != nil {
		return ParsedYoutubeURL{Type: YoutubeURLPlaylist, PlaylistID: m[1]}
	}

	for _, pattern := range []*regexp.Regexp{youtubeWatchPattern, youtubeEmbedPattern, youtubeShortPattern} {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return ParsedYoutubeURL{Type: YoutubeURLVideo, VideoID: m[1]}
		}
	}

	return ParsedYoutubeURL{Type: YoutubeURLInvalid}
}

// IsValidYoutubeURL reports whether a URL points at a YouTube video or playlist.
func IsValidYoutubeURL(rawURL string) bool {
	return ParseYoutubeURL(rawURL).Type != YoutubeURLInvalid
}

// ParseISODuration converts an ISO 8601 duration like PT1H2M3S into seconds.
func ParseISODuration(duration string) (int, error) {
	m := isoDurationPattern.FindStringSubmatch(strings.TrimSpace(duration))
	if m == nil {
		return 0, fmt.Errorf("invalid ISO 8601 duration: %s", duration)
	}

	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[3]))

	return hours*3600 + minutes*60 + seconds, nil
}

// IsValidISODuration reports whether a string is a parseable ISO 8601 duration.
func IsValidISODuration(duration string) bool {
	_, err := ParseISODuration(duration)
	return err == nil
}

// FormatDuration renders seconds as H:MM:SS, or M:SS when under an hour.
func FormatDuration(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
