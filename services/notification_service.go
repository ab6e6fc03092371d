package services

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/v4/messaging"
)

// fcmSender is the part of messaging.Client the service uses.
type fcmSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// NotificationService sends push notifications through Firebase Cloud Messaging.
type NotificationService struct {
	FCMClient fcmSender
}

func NewNotificationService(client *messaging.Client) *NotificationService {
	return &NotificationService{FCMClient: client}
}

// alertTexts holds the localized title and body templates per status key.
var alertTexts = map[string]map[string][2]string{
	"en": {
		"approaching-limit": {"Screen time almost up", "%s has %d minutes of screen time left today."},
		"limit-exceeded":    {"Screen time is up", "%s has used all of today's screen time."},
		"bedtime":           {"Bedtime", "%s tried to use the app during bedtime."},
	},
	"ru": {
		"approaching-limit": {"Экранное время заканчивается", "%s: осталось %d мин. экранного времени на сегодня."},
		"limit-exceeded":    {"Экранное время закончилось", "%s: экранное время на сегодня закончилось."},
		"bedtime":           {"Время сна", "%s: приложение открыто во время сна."},
	},
}

// AlertText builds the notification for a status in the given language,
// falling back to English.
func AlertText(lang, status, childName string, remaining int) (string, string) {
	texts, ok := alertTexts[lang]
	if !ok {
		texts = alertTexts["en"]
	}
	t, ok := texts[status]
	if !ok {
		t = alertTexts["en"][status]
	}
	if status == "approaching-limit" {
		return t[0], fmt.Sprintf(t[1], childName, remaining)
	}
	return t[0], fmt.Sprintf(t[1], childName)
}

// SendNotification sends a push notification to one device. The title and
// body arrive already localized, lang is recorded in the data payload.
func (s *NotificationService) SendNotification(deviceToken, title, body string, data map[string]string, lang string) error {
	if deviceToken == "" {
		return fmt.Errorf("device token is empty")
	}

	payload := make(map[string]string, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	if lang != "" {
		payload["lang"] = lang
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  payload,
		Token: deviceToken,
	}

	resp, err := s.FCMClient.Send(context.Background(), message)
	if err != nil {
		log.Printf("[FCM] Failed to send notification %q: %v", title, err)
		return err
	}

	log.Printf("[FCM] Notification sent. ID: %s, Title: %s", resp, title)
	return nil
}
