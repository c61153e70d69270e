package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"lms/services"
)

const youtubeAPIBaseURL = "https://www.googleapis.com/youtube/v3"

// YoutubeClient talks to the YouTube Data API v3.
type YoutubeClient struct {
	client *resty.Client
	apiKey string
}

func NewYoutubeClient(apiKey string) *YoutubeClient {
	return &YoutubeClient{
		client: resty.New().SetBaseURL(youtubeAPIBaseURL),
		apiKey: apiKey,
	}
}

type youtubeVideoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type youtubePlaylistItemsResponse struct {
	Items []struct {
		ContentDetails struct {
			VideoID string `json:"videoId"`
		} `json:"contentDetails"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

// FetchVideos loads metadata for up to 50 videos in one call.
func (y *YoutubeClient) FetchVideos(ctx context.Context, videoIDs []string) ([]services.YoutubeVideo, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	var result youtubeVideoListResponse
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "snippet,contentDetails",
			"id":   strings.Join(videoIDs, ","),
			"key":  y.apiKey,
		}).
		SetResult(&result).
		Get("/videos")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("youtube API error: %s", resp.Status())
	}

	videos := make([]services.YoutubeVideo, 0, len(result.Items))
	for _, item := range result.Items {
		seconds, err := services.ParseISODuration(item.ContentDetails.Duration)
		if err != nil {
			seconds = 0
		}
		videos = append(videos, services.YoutubeVideo{
			VideoID:         item.ID,
			Title:           item.Snippet.Title,
			Description:     item.Snippet.Description,
			Thumbnail:       item.Snippet.Thumbnails.High.URL,
			ChannelTitle:    item.Snippet.ChannelTitle,
			DurationSeconds: seconds,
			Duration:        services.FormatDuration(seconds),
		})
	}
	return videos, nil
}

// FetchPlaylistVideoIDs walks playlistItems pages and collects video IDs.
func (y *YoutubeClient) FetchPlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	var videoIDs []string
	pageToken := ""

	for {
		var result youtubePlaylistItemsResponse
		req := y.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"part":       "contentDetails",
				"playlistId": playlistID,
				"maxResults": "50",
				"key":        y.apiKey,
			}).
			SetResult(&result)
		if pageToken != "" {
			req.SetQueryParam("pageToken", pageToken)
		}

		resp, err := req.Get("/playlistItems")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("youtube API error: %s", resp.Status())
		}

		for _, item := range result.Items {
			videoIDs = append(videoIDs, item.ContentDetails.VideoID)
		}

		if result.NextPageToken == "" {
			break
		}
		pageToken = result.NextPageToken
	}

	return videoIDs, nil
}
