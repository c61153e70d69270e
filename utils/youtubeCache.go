package utils

import (
	"context"
	"fmt"
	"time"

	"lms/services"
)

const (
	youtubeVideoKey    = "youtube:video:%s"
	youtubePlaylistKey = "youtube:playlist:%s"
)

// YoutubeCacheService stores YouTube metadata in Redis with a configured TTL.
type YoutubeCacheService struct {
	cache *CacheService
	ttl   time.Duration
}

func NewYoutubeCacheService(cache *CacheService, ttlSeconds int) *YoutubeCacheService {
	return &YoutubeCacheService{cache: cache, ttl: time.Duration(ttlSeconds) * time.Second}
}

func (s *YoutubeCacheService) GetVideo(ctx context.Context, videoID string) (*services.YoutubeVideo, error) {
	var video services.YoutubeVideo
	hit, err := s.cache.Get(ctx, fmt.Sprintf(youtubeVideoKey, videoID), &video)
	if err != nil || !hit {
		return nil, err
	}
	return &video, nil
}

func (s *YoutubeCacheService) SetVideo(ctx context.Context, video services.YoutubeVideo) error {
	return s.cache.Set(ctx, fmt.Sprintf(youtubeVideoKey, video.VideoID), video, s.ttl)
}

func (s *YoutubeCacheService) GetPlaylist(ctx context.Context, playlistID string) (*services.YoutubePlaylist, error) {
	var playlist services.YoutubePlaylist
	hit, err := s.cache.Get(ctx, fmt.Sprintf(youtubePlaylistKey, playlistID), &playlist)
	if err != nil || !hit {
		return nil, err
	}
	return &playlist, nil
}

func (s *YoutubeCacheService) SetPlaylist(ctx context.Context, playlist services.YoutubePlaylist) error {
	return s.cache.Set(ctx, fmt.Sprintf(youtubePlaylistKey, playlist.PlaylistID), playlist, s.ttl)
}

func (s *YoutubeCacheService) DeleteVideo(ctx context.Context, videoID string) error {
	return s.cache.InvalidatePattern(ctx, fmt.Sprintf(youtubeVideoKey, videoID))
}

func (s *YoutubeCacheService) DeletePlaylist(ctx context.Context, playlistID string) error {
	return s.cache.InvalidatePattern(ctx, fmt.Sprintf(youtubePlaylistKey, playlistID))
}
