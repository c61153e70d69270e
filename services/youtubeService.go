package services

import (
	"context"
	"log"

	"lms/apperrors"
)

// YoutubeVideo is the metadata kept for a single lesson video.
type YoutubeVideo struct {
	VideoID         string `json:"video_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Thumbnail       string `json:"thumbnail"`
	ChannelTitle    string `json:"channel_title"`
	DurationSeconds int    `json:"duration_seconds"`
	Duration        string `json:"duration"`
}

// YoutubePlaylist is a playlist with its resolved videos.
type YoutubePlaylist struct {
	PlaylistID           string         `json:"playlist_id"`
	Videos               []YoutubeVideo `json:"videos"`
	TotalDurationSeconds int            `json:"total_duration_seconds"`
	TotalDuration        string         `json:"total_duration"`
}

// YoutubeData is the union returned for any parsed URL.
type YoutubeData struct {
	Type     string           `json:"type"`
	Video    *YoutubeVideo    `json:"video,omitempty"`
	Playlist *YoutubePlaylist `json:"playlist,omitempty"`
}

// YoutubeAPIClient talks to the YouTube Data API.
type YoutubeAPIClient interface {
	FetchVideos(ctx context.Context, videoIDs []string) ([]YoutubeVideo, error)
	FetchPlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error)
}

// YoutubeCache stores fetched metadata so repeated lesson views skip the API.
type YoutubeCache interface {
	GetVideo(ctx context.Context, videoID string) (*YoutubeVideo, error)
	SetVideo(ctx context.Context, video YoutubeVideo) error
	GetPlaylist(ctx context.Context, playlistID string) (*YoutubePlaylist, error)
	SetPlaylist(ctx context.Context, playlist YoutubePlaylist) error
	DeleteVideo(ctx context.Context, videoID string) error
	DeletePlaylist(ctx context.Context, playlistID string) error
}

// YoutubeService resolves lesson video URLs to metadata, cache first.
type YoutubeService struct {
	client YoutubeAPIClient
	cache  YoutubeCache
}

func NewYoutubeService(client YoutubeAPIClient, cache YoutubeCache) *YoutubeService {
	return &YoutubeService{client: client, cache: cache}
}

// FetchYoutubeData resolves a URL to video or playlist metadata.
func (s *YoutubeService) FetchYoutubeData(ctx context.Context, rawURL string) (*YoutubeData, error) {
	parsed := ParseYoutubeURL(rawURL)

	switch parsed.Type {
	case YoutubeURLVideo:
		video, err := s.fetchVideo(ctx, parsed.VideoID)
		if err != nil {
			return nil, err
		}
		return &YoutubeData{Type: YoutubeURLVideo, Video: video}, nil
	case YoutubeURLPlaylist:
		playlist, err := s.fetchPlaylist(ctx, parsed.PlaylistID)
		if err != nil {
			return nil, err
		}
		return &YoutubeData{Type: YoutubeURLPlaylist, Playlist: playlist}, nil
	default:
		return nil, apperrors.Validation("Invalid YouTube URL!")
	}
}

func (s *YoutubeService) InvalidateVideo(ctx context.Context, videoID string) error {
	return s.cache.DeleteVideo(ctx, videoID)
}

func (s *YoutubeService) InvalidatePlaylist(ctx context.Context, playlistID string) error {
	return s.cache.DeletePlaylist(ctx, playlistID)
}

func (s *YoutubeService) fetchVideo(ctx context.Context, videoID string) (*YoutubeVideo, error) {
	if cached, err := s.cache.GetVideo(ctx, videoID); err == nil && cached != nil {
		return cached, nil
	}

	videos, err := s.client.FetchVideos(ctx, []string{videoID})
	if err != nil {
		return nil, apperrors.Unexpected("Failed to fetch video details!", err)
	}
	if len(videos) == 0 {
		return nil, apperrors.NotFound("Video not found!")
	}

	video := videos[0]
	if err := s.cache.SetVideo(ctx, video); err != nil {
		log.Printf("[YOUTUBE] failed to cache video %s: %v", videoID, err)
	}
	return &video, nil
}

func (s *YoutubeService) fetchPlaylist(ctx context.Context, playlistID string) (*YoutubePlaylist, error) {
	if cached, err := s.cache.GetPlaylist(ctx, playlistID); err == nil && cached != nil {
		return cached, nil
	}

	videoIDs, err := s.client.FetchPlaylistVideoIDs(ctx, playlistID)
	if err != nil {
		return nil, apperrors.Unexpected("Failed to fetch playlist details!", err)
	}
	if len(videoIDs) == 0 {
		return nil, apperrors.NotFound("Playlist not found!")
	}

	videos, err := s.fetchVideosWithCache(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, video := range videos {
		total += video.DurationSeconds
	}

	playlist := YoutubePlaylist{
		PlaylistID:           playlistID,
		Videos:               videos,
		TotalDurationSeconds: total,
		TotalDuration:        FormatDuration(total),
	}

	if err := s.cache.SetPlaylist(ctx, playlist); err != nil {
		log.Printf("[YOUTUBE] failed to cache playlist %s: %v", playlistID, err)
	}
	return &playlist, nil
}

// fetchVideosWithCache serves each video from cache when possible and fetches
// the misses in one API call, preserving playlist order.
func (s *YoutubeService) fetchVideosWithCache(ctx context.Context, videoIDs []string) ([]YoutubeVideo, error) {
	byID := make(map[string]YoutubeVideo, len(videoIDs))
	misses := make([]string, 0, len(videoIDs))

	for _, id := range videoIDs {
		if cached, err := s.cache.GetVideo(ctx, id); err == nil && cached != nil {
			byID[id] = *cached
			continue
		}
		misses = append(misses, id)
	}

	if len(misses) > 0 {
		fetched, err := s.client.FetchVideos(ctx, misses)
		if err != nil {
			return nil, apperrors.Unexpected("Failed to fetch video details!", err)
		}
		for _, video := range fetched {
			byID[video.VideoID] = video
			if err := s.cache.SetVideo(ctx, video); err != nil {
				log.Printf("[YOUTUBE] failed to cache video %s: %v", video.VideoID, err)
			}
		}
	}

	// Videos deleted on YouTube drop out of the result set.
	videos := make([]YoutubeVideo, 0, len(videoIDs))
	for _, id := range videoIDs {
		if video, ok := byID[id]; ok {
			videos = append(videos, video)
		}
	}
	return videos, nil
}
