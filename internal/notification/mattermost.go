package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate mockgen -source=mattermost.go -destination=mock/mattermost_mock.go -package=mock

// Poster delivers a rendered message to a chat channel.
type Poster interface {
	Post(ctx context.Context, channelID, message, color string) error
}

type mattermostPost struct {
	ChannelID string          `json:"channel_id"`
	Message   string          `json:"message"`
	Props     mattermostProps `json:"props,omitempty"`
}

type mattermostProps struct {
	Attachments []mattermostAttachment `json:"attachments,omitempty"`
}

type mattermostAttachment struct {
	Text  string `json:"text,omitempty"`
	Color string `json:"color,omitempty"`
}

type MattermostClient struct {
	baseURL    string
	botToken   string
	httpClient *http.Client
}

func NewMattermostClient(baseURL, botToken string) *MattermostClient {
	return &MattermostClient{
		baseURL:    baseURL,
		botToken:   botToken,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *MattermostClient) Post(ctx context.Context, channelID, message, color string) error {
	post := mattermostPost{ChannelID: channelID}
	if color == "" {
		post.Message = message
	} else {
		post.Props.Attachments = []mattermostAttachment{{Text: message, Color: color}}
	}

	data, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("marshal post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v4/posts", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.botToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mattermost api error %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
