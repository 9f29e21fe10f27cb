package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"gdsync/internal/config"
	"gdsync/internal/models"
)

type PushoverNotifier struct {
	config     *config.Config
	httpClient *retryablehttp.Client
	enabled    bool
	apiURL     string
}

type pushoverRequest struct {
	Token     string `json:"token"`
	User      string `json:"user"`
	Message   string `json:"message"`
	Title     string `json:"title,omitempty"`
	Priority  int    `json:"priority,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Sound     string `json:"sound,omitempty"`
}

type pushoverResponse struct {
	Status  int      `json:"status"`
	Request string   `json:"request"`
	Errors  []string `json:"errors,omitempty"`
}

const pushoverAPIURL = "https://api.pushover.net/1/messages.json"

func NewPushoverNotifier(cfg *config.Config) *PushoverNotifier {
	pc := cfg.GetNotifications().Pushover

	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = 30 * time.Second
	client.RetryMax = pc.MaxRetries
	client.RetryWaitMin = 1 * time.Second
	client.RetryWaitMax = 10 * time.Second
	client.Logger = slog.Default()

	return &PushoverNotifier{
		config:     cfg,
		httpClient: client,
		enabled:    pc.Enabled,
		apiURL:     pushoverAPIURL,
	}
}

func (p *PushoverNotifier) IsEnabled() bool {
	return p.enabled
}

// NotifyRunFinished sends the summary notice of a finished run. Clean runs
// use the configured priority; runs with failures are raised.
func (p *PushoverNotifier) NotifyRunFinished(run *models.TransferRun) error {
	if !p.enabled {
		return nil
	}

	cfg := p.config.GetNotifications().Pushover

	req := pushoverRequest{
		Token:     cfg.Token,
		User:      cfg.User,
		Message:   p.buildRunMessage(run),
		Title:     fmt.Sprintf("gdsync: %s", run.SummaryNotice()),
		Priority:  cfg.Priority,
		Timestamp: time.Now().Unix(),
		Sound:     "pushover",
	}

	switch run.Status {
	case models.RunStatusCompletedWithErrors:
		req.Priority = max(cfg.Priority, 1)
		req.Sound = "falling"
	case models.RunStatusFailed:
		req.Priority = max(cfg.Priority, 1)
		req.Sound = "siren"
	case models.RunStatusCancelled:
		req.Sound = "none"
	}

	return p.sendNotification(req)
}

func (p *PushoverNotifier) sendNotification(req pushoverRequest) error {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal pushover request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, "POST", p.apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "gdsync/1.0")

	slog.Debug("sending pushover notification",
		"title", req.Title,
		"priority", req.Priority)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send pushover notification: %w", err)
	}
	defer resp.Body.Close()

	var pushoverResp pushoverResponse
	if err := json.NewDecoder(resp.Body).Decode(&pushoverResp); err != nil {
		return fmt.Errorf("failed to decode pushover response: %w", err)
	}

	if pushoverResp.Status != 1 {
		return fmt.Errorf("pushover API error: %s", strings.Join(pushoverResp.Errors, ", "))
	}

	slog.Info("pushover notification sent successfully",
		"request_id", pushoverResp.Request)

	return nil
}

func (p *PushoverNotifier) buildRunMessage(run *models.TransferRun) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("Direction: %s\n", describeDirection(run.Direction)))
	msg.WriteString(fmt.Sprintf("Scope: %s\n", run.Scope))
	msg.WriteString(fmt.Sprintf("Status: %s\n", run.Status))

	if o := run.Outcome; o != nil {
		msg.WriteString(fmt.Sprintf("Files: %d transferred, %d failed, %d skipped\n",
			o.Succeeded, len(o.Failed), o.Skipped))
		for i, f := range o.Failed {
			if i == 3 {
				msg.WriteString(fmt.Sprintf("... and %d more\n", len(o.Failed)-i))
				break
			}
			msg.WriteString(fmt.Sprintf("Failed: %s (%s)\n", f.Entry.Name, f.Detail))
		}
	}

	if run.ErrorMessage != "" {
		msg.WriteString(fmt.Sprintf("Error: %s\n", run.ErrorMessage))
	}

	if run.StartedAt != nil && run.CompletedAt != nil {
		duration := run.CompletedAt.Sub(*run.StartedAt)
		msg.WriteString(fmt.Sprintf("Duration: %s\n", duration.Round(time.Second)))
	}

	msg.WriteString(fmt.Sprintf("Run ID: %d", run.ID))

	return msg.String()
}

func describeDirection(d models.Direction) string {
	if d.IsPull() {
		return "phone to PC"
	}
	return "PC to phone"
}
