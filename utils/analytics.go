package utils

import (
	"crev/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

var analyticsClient = resty.New().SetTimeout(5 * time.Second)

// TrackEvent posts a single event to the analytics collector. Fire-and-forget:
// failures are logged and never surfaced to the caller, and nothing is sent
// when ANALYTICS_URL is unset.
func TrackEvent(event, email string, properties map[string]interface{}) {
	if config.AppConfig == nil || config.AppConfig.AnalyticsURL == "" {
		return
	}

	payload := map[string]interface{}{
		"id":         uuid.NewString(),
		"event":      event,
		"email":      email,
		"properties": properties,
		"ts":         time.Now().UTC(),
	}

	go func() {
		resp, err := analyticsClient.R().
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			Post(config.AppConfig.AnalyticsURL)
		if err != nil {
			log.Printf("[ANALYTICS] Error sending event %s: %v", event, err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("[ANALYTICS] Collector returned %d for event %s", resp.StatusCode(), event)
		}
	}()
}
