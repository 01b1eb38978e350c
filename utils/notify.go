package utils

import (
	"log"
	"time"

	"learnlink/config"

	"github.com/go-resty/resty/v2"
)

// NotifyBookingEvent posts a booking lifecycle event to the configured webhook.
// Best effort: failures are logged and never surfaced to the request path.
func NotifyBookingEvent(event string, enrollmentID, courseID, userID uint, reference string) {
	url := config.AppConfig.BookingWebhookURL
	if url == "" {
		return
	}

	client := resty.New()
	client.SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":        event,
			"enrollmentId": enrollmentID,
			"courseId":     courseID,
			"userId":       userID,
			"reference":    reference,
			"occurredAt":   time.Now().UTC().Format(time.RFC3339),
		}).
		Post(url)

	if err != nil {
		log.Printf("[BOOKING-WEBHOOK] Error posting %s event: %v", event, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("[BOOKING-WEBHOOK] Webhook responded %d for %s event", resp.StatusCode(), event)
	}
}
