package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// Analytics wraps a posthog client and is a no-op when no API key was configured.
type Analytics struct {
	client posthog.Client
	logger *slog.Logger
}

func NewAnalytics(apiKey, endpoint string, logger *slog.Logger) *Analytics {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, analytics disabled")
		return &Analytics{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialise posthog client, analytics disabled", slog.String("error", err.Error()))
		return &Analytics{logger: logger}
	}
	logger.Info("Analytics enabled", slog.String("endpoint", endpoint))
	return &Analytics{client: client, logger: logger}
}

func (a *Analytics) Enabled() bool {
	return a != nil && a.client != nil
}

// Capture enqueues an event for distinctID. Amounts should be passed as strings.
func (a *Analytics) Capture(distinctID, event string, properties map[string]any) {
	if !a.Enabled() {
		return
	}
	a.logger.Debug("Enqueueing analytics event", slog.String("distinct_id", distinctID), slog.String("event", event))
	err := a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

func (a *Analytics) Close() {
	if !a.Enabled() {
		return
	}
	if err := a.client.Close(); err != nil {
		a.logger.Warn("Failed to flush analytics client", slog.String("error", err.Error()))
	}
}
