package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"filehive/internal/config"
)

const userAgent = "filehive/0.1.0"

// Event enumerates the notification-worthy run milestones.
type Event string

const (
	EventOrganizationCompleted Event = "organization_completed"
	EventReprocessDetected     Event = "reprocess_detected"
	EventRunFailed             Event = "run_failed"
)

// Payload carries event-specific values used to render the message.
type Payload map[string]string

// Service defines the notification surface exposed to the engine and CLI.
type Service interface {
	Publish(ctx context.Context, event Event, payload Payload) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
		enabled: map[Event]bool{
			EventOrganizationCompleted: cfg.Notifications.Organization,
			EventReprocessDetected:     cfg.Notifications.Reprocess,
			EventRunFailed:             cfg.Notifications.Errors,
		},
	}
}

type message struct {
	title    string
	body     string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
	enabled  map[Event]bool
}

func (n *ntfyService) Publish(ctx context.Context, event Event, payload Payload) error {
	if enabled, ok := n.enabled[event]; ok && !enabled {
		return nil
	}
	msg, err := render(event, payload)
	if err != nil {
		return err
	}
	return n.send(ctx, msg)
}

func render(event Event, payload Payload) (message, error) {
	get := func(key string) string { return strings.TrimSpace(payload[key]) }
	switch event {
	case EventOrganizationCompleted:
		return message{
			title: "filehive - Run Complete",
			body:  fmt.Sprintf("Organized %s file(s) into %s folder(s)", get("succeeded"), get("folders")),
			tags:  []string{"filehive", "organize", "completed"},
		}, nil
	case EventReprocessDetected:
		return message{
			title: "filehive - Already Organized",
			body:  fmt.Sprintf("%s file(s) already carry the marker token", get("count")),
			tags:  []string{"filehive", "reprocess"},
		}, nil
	case EventRunFailed:
		return message{
			title:    "filehive - Run Errors",
			body:     fmt.Sprintf("%s file(s) failed: %s", get("failed"), get("detail")),
			tags:     []string{"filehive", "error"},
			priority: "high",
		}, nil
	default:
		return message{}, fmt.Errorf("unknown notification event %q", event)
	}
}

func (n *ntfyService) send(ctx context.Context, msg message) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(msg.body))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if msg.title != "" {
		req.Header.Set("Title", msg.title)
	}
	if len(msg.tags) > 0 {
		req.Header.Set("Tags", strings.Join(msg.tags, ","))
	}
	if msg.priority != "" && msg.priority != "default" {
		req.Header.Set("Priority", msg.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) Publish(context.Context, Event, Payload) error { return nil }
