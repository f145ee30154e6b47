package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dashboard-srv/pkg/log"
)

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"
	userAgent          = "DashboardSrv/1.0"

	colorRed = 15158332

	// MaxMessageLength is Discord's content length limit.
	MaxMessageLength = 2000
	// ReportBugTitle is the embed title for error reports.
	ReportBugTitle = "Dashboard Service Error Report"
	maxDescription = 4096

	defaultTimeout    = 30 * time.Second
	defaultRetryCount = 3
	defaultRetryDelay = time.Second
)

// IDiscord sends operational notifications to a Discord webhook.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	ReportBug(ctx context.Context, message string) error
	GetWebhookURL() string
	Close() error
}

type embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

type webhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds,omitempty"`
}

type discordImpl struct {
	l          log.Logger
	id         string
	token      string
	client     *http.Client
	retryCount int
	retryDelay time.Duration
}

// New creates a Discord webhook client from webhook id and token.
func New(l log.Logger, id, token string) (IDiscord, error) {
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:     l,
		id:    id,
		token: token,
		client: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		retryCount: defaultRetryCount,
		retryDelay: defaultRetryDelay,
	}, nil
}

// SendMessage sends a plain content message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	if len(content) > MaxMessageLength {
		return fmt.Errorf("message too long: %d characters (max: %d)", len(content), MaxMessageLength)
	}
	return d.sendWithRetry(ctx, &webhookPayload{Content: content})
}

// ReportBug sends an error report as a red embed.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	if len(message) > maxDescription {
		message = message[:maxDescription]
	}
	return d.sendWithRetry(ctx, &webhookPayload{
		Embeds: []embed{{
			Title:       ReportBugTitle,
			Description: message,
			Color:       colorRed,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf(webhookURLTemplate, d.id, d.token)
}

func (d *discordImpl) Close() error {
	if d.client != nil {
		d.client.CloseIdleConnections()
	}
	return nil
}

func (d *discordImpl) sendWithRetry(ctx context.Context, payload *webhookPayload) error {
	var lastErr error
	for attempt := 0; attempt <= d.retryCount; attempt++ {
		if attempt > 0 {
			if d.l != nil {
				d.l.Infof(ctx, "pkg.discord.sendWithRetry: retrying attempt %d/%d", attempt, d.retryCount)
			}
			time.Sleep(d.retryDelay)
		}
		err := d.sendRequest(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}
	return fmt.Errorf("failed after %d attempts, last error: %w", d.retryCount+1, lastErr)
}

func (d *discordImpl) sendRequest(ctx context.Context, payload *webhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("discord webhook returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
