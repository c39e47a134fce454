package mailer

import (
	"context"
	"testing"

	"onelastevent/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		name        string
		kind        model.NotificationKind
		wantSubject string
		wantBody    string
	}{
		{
			name:        "registration confirmed",
			kind:        model.NotificationRegistrationConfirmed,
			wantSubject: "Registration confirmed: Go Conference",
			wantBody:    "confirmed",
		},
		{
			name:        "payment received",
			kind:        model.NotificationPaymentReceived,
			wantSubject: "Payment received: Go Conference",
			wantBody:    "payment",
		},
		{
			name:        "event cancelled",
			kind:        model.NotificationEventCancelled,
			wantSubject: "Event cancelled: Go Conference",
			wantBody:    "request a refund",
		},
		{
			name:        "unknown kind falls back to generic update",
			kind:        model.NotificationKind("SOMETHING_ELSE"),
			wantSubject: "Go Conference",
			wantBody:    "Update",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := renderMessage(&model.Notification{
				Kind:       tt.kind,
				EventTitle: "Go Conference",
			})
			assert.Equal(t, tt.wantSubject, subject)
			assert.Contains(t, body, tt.wantBody)
		})
	}
}

func TestLogMailer_Send(t *testing.T) {
	m := NewLogMailer()
	err := m.Send(context.Background(), "alice@example.com", &model.Notification{
		ID:         uuid.New(),
		Kind:       model.NotificationRegistrationConfirmed,
		EventTitle: "Go Conference",
	})
	assert.NoError(t, err)
}
