package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"channeldesk/channel-api/internal/model"

	"go.uber.org/zap"
)

const (
	channelsURL = "https://www.googleapis.com/youtube/v3/channels"
	searchURL   = "https://www.googleapis.com/youtube/v3/search"
	videosURL   = "https://www.googleapis.com/youtube/v3/videos"

	// Videos at or below this duration count as short-form
	shortFormMaxSeconds = 60
)

var ErrUnsupportedChannelURL = errors.New("unsupported channel URL format. Supported forms: youtube.com/@handle, youtube.com/channel/UC..., youtube.com/c/name")

// YouTubeClient talks to the YouTube Data API v3 using an API key.
type YouTubeClient struct {
	APIKey string
	HTTP   *http.Client
}

func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		APIKey: apiKey,
		HTTP:   &http.Client{Timeout: 15 * time.Second},
	}
}

// RemoteVideo is one provider-side video with enough metadata to upsert a
// posted-video row.
type RemoteVideo struct {
	VideoID      string
	Title        string
	Type         string
	PublishedAt  time.Time
	ThumbnailURL string
	URL          string
	ViewCount    int64
	LikeCount    int64
}

type channelListResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

type searchListResponse struct {
	Items []struct {
		ID struct {
			VideoID   string `json:"videoId"`
			ChannelID string `json:"channelId"`
		} `json:"id"`
		Snippet struct {
			Title       string    `json:"title"`
			PublishedAt time.Time `json:"publishedAt"`
			Thumbnails  struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type videoListResponse struct {
	Items []struct {
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
			LikeCount string `json:"likeCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (y *YouTubeClient) get(ctx context.Context, rawURL string, params url.Values, out any) error {
	params.Set("key", y.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to prepare request, %w", err)
	}

	resp, err := y.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed, %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response, %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse

		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("youtube api: %s", apiErr.Error.Message)
		}

		return fmt.Errorf("youtube api returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response, %w", err)
	}

	return nil
}

// ResolveChannelID turns a public channel URL into the provider's channel
// ID. Handles (@name), raw channel IDs and the legacy /c/ custom URLs are
// supported.
func (y *YouTubeClient) ResolveChannelID(ctx context.Context, channelURL string) (string, error) {
	switch {
	case strings.Contains(channelURL, "/@"):
		handle := urlSegmentAfter(channelURL, "/@")

		var out channelListResponse

		err := y.get(ctx, channelsURL, url.Values{"part": {"id"}, "forHandle": {handle}}, &out)
		if err == nil && len(out.Items) > 0 {
			return out.Items[0].ID, nil
		}

		if err != nil {
			// Older API keys don't support forHandle, fall back to a search
			zap.L().Debug("forHandle lookup failed, falling back to search", zap.Error(err))
		}

		var search searchListResponse

		err = y.get(ctx, searchURL, url.Values{
			"part":       {"snippet"},
			"q":          {handle},
			"type":       {"channel"},
			"maxResults": {"1"},
		}, &search)
		if err != nil {
			return "", err
		}

		if len(search.Items) == 0 {
			return "", fmt.Errorf("channel @%s not found. Check the channel URL", handle)
		}

		return search.Items[0].ID.ChannelID, nil

	case strings.Contains(channelURL, "channel/"):
		return urlSegmentAfter(channelURL, "channel/"), nil

	case strings.Contains(channelURL, "c/"):
		username := urlSegmentAfter(channelURL, "c/")

		var out channelListResponse

		err := y.get(ctx, channelsURL, url.Values{"part": {"id"}, "forUsername": {username}}, &out)
		if err != nil {
			return "", err
		}

		if len(out.Items) == 0 {
			return "", fmt.Errorf("channel for username %q not found", username)
		}

		return out.Items[0].ID, nil

	default:
		return "", ErrUnsupportedChannelURL
	}
}

// FetchRecent lists the channel's 50 most recent videos and resolves each
// one's duration and counters. A single video failing is logged and
// skipped; the rest still come back.
func (y *YouTubeClient) FetchRecent(ctx context.Context, channelID string) ([]RemoteVideo, error) {
	var search searchListResponse

	err := y.get(ctx, searchURL, url.Values{
		"part":       {"snippet"},
		"channelId":  {channelID},
		"type":       {"video"},
		"maxResults": {"50"},
		"order":      {"date"},
	}, &search)
	if err != nil {
		return nil, err
	}

	videos := make([]RemoteVideo, 0, len(search.Items))

	for _, item := range search.Items {
		var details videoListResponse

		err := y.get(ctx, videosURL, url.Values{
			"part": {"contentDetails,statistics"},
			"id":   {item.ID.VideoID},
		}, &details)
		if err != nil {
			zap.L().Error("Failed to fetch video details", zap.String("videoID", item.ID.VideoID), zap.Error(err))
			continue
		}

		if len(details.Items) == 0 {
			continue
		}

		d := details.Items[0]

		videoType := model.TypeLongForm
		if ParseISODuration(d.ContentDetails.Duration) <= shortFormMaxSeconds {
			videoType = model.TypeShortForm
		}

		viewCount, _ := strconv.ParseInt(d.Statistics.ViewCount, 10, 64)
		likeCount, _ := strconv.ParseInt(d.Statistics.LikeCount, 10, 64)

		videos = append(videos, RemoteVideo{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Type:         videoType,
			PublishedAt:  item.Snippet.PublishedAt,
			ThumbnailURL: item.Snippet.Thumbnails.Default.URL,
			URL:          "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			ViewCount:    viewCount,
			LikeCount:    likeCount,
		})
	}

	return videos, nil
}

// FriendlyIngestError maps raw provider errors onto messages an operator
// can act on.
func FriendlyIngestError(err error) string {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "API key"):
		return "YouTube API key is invalid. Check youtube.api_key in your configuration"
	case strings.Contains(msg, "quota"):
		return "YouTube API quota exceeded. Please try again later"
	default:
		return "Failed to fetch videos: " + msg
	}
}

func urlSegmentAfter(s, marker string) string {
	seg := strings.SplitN(s, marker, 2)[1]
	seg = strings.SplitN(seg, "/", 2)[0]
	return strings.SplitN(seg, "?", 2)[0]
}
