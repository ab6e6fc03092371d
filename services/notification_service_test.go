package services

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)
	return "projects/kindershelf/messages/1", nil
}

func TestSendNotification(t *testing.T) {
	sender := &fakeSender{}
	service := &NotificationService{FCMClient: sender}

	err := service.SendNotification("device-token", "Bedtime", "Aru tried to use the app during bedtime.",
		map[string]string{"child_id": testChildUID}, "en")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "device-token", msg.Token)
	assert.Equal(t, "Bedtime", msg.Notification.Title)
	assert.Equal(t, testChildUID, msg.Data["child_id"])
	assert.Equal(t, "en", msg.Data["lang"])
}

func TestSendNotificationEmptyToken(t *testing.T) {
	sender := &fakeSender{}
	service := &NotificationService{FCMClient: sender}

	assert.Error(t, service.SendNotification("", "t", "b", nil, "en"))
	assert.Empty(t, sender.sent)
}

func TestSendNotificationPropagatesError(t *testing.T) {
	service := &NotificationService{FCMClient: &fakeSender{err: errors.New("quota exceeded")}}
	assert.EqualError(t, service.SendNotification("token", "t", "b", nil, ""), "quota exceeded")
}

func TestAlertText(t *testing.T) {
	title, body := AlertText("en", "approaching-limit", "Aru", 12)
	assert.Equal(t, "Screen time almost up", title)
	assert.Equal(t, "Aru has 12 minutes of screen time left today.", body)

	title, _ = AlertText("ru", "limit-exceeded", "Aru", 0)
	assert.Equal(t, "Экранное время закончилось", title)

	title, body = AlertText("fr", "bedtime", "Aru", 0)
	assert.Equal(t, "Bedtime", title)
	assert.Equal(t, "Aru tried to use the app during bedtime.", body)
}
