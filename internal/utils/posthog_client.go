// posthog_client.go wraps posthog.Client so callers don't have to care
// whether analytics is configured.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// PosthogClientWrapper is a nil-safe wrapper around posthog.Client.
type PosthogClientWrapper struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// InitializePosthogClient builds the wrapper; with an empty API key the
// wrapper is inert and every call becomes a no-op.
func InitializePosthogClient(apiKey string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &PosthogClientWrapper{}
	}
	wrapper := PosthogClientWrapper{logger: logger}
	wrapper.posthogClient, _ = posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	return &wrapper
}

// IsInitialized reports whether a real client is behind the wrapper.
func (w *PosthogClientWrapper) IsInitialized() bool {
	return w.posthogClient != nil
}

// Enqueue sends one capture event, no-op when uninitialized.
func (w *PosthogClientWrapper) Enqueue(distinctID string, event string, properties map[string]any) {
	if w.posthogClient == nil {
		return
	}
	w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
}

// Close flushes and shuts down the underlying client.
func (w *PosthogClientWrapper) Close() {
	if w.posthogClient == nil {
		return
	}
	w.posthogClient.Close()
}
