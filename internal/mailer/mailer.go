package mailer

import (
	"context"
	"fmt"

	"onelastevent/internal/model"
	"onelastevent/pkg/logger"

	"go.uber.org/zap"
)

type Mailer interface {
	Send(ctx context.Context, recipientEmail string, notification *model.Notification) error
}

// LogMailer 只記 log 的寄信器。實際寄送由外部系統負責，核心不依賴投遞成功。
type LogMailer struct{}

func NewLogMailer() Mailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(ctx context.Context, recipientEmail string, notification *model.Notification) error {
	subject, body := renderMessage(notification)

	logger.WithComponent("mailer").Info("email sent",
		zap.String("to", recipientEmail),
		zap.String("kind", string(notification.Kind)),
		zap.String("subject", subject),
		zap.String("body", body))

	return nil
}

func renderMessage(notification *model.Notification) (subject, body string) {
	switch notification.Kind {
	case model.NotificationRegistrationConfirmed:
		subject = fmt.Sprintf("Registration confirmed: %s", notification.EventTitle)
		body = fmt.Sprintf("Your registration for %q is confirmed. See you there!", notification.EventTitle)
	case model.NotificationPaymentReceived:
		subject = fmt.Sprintf("Payment received: %s", notification.EventTitle)
		body = fmt.Sprintf("We received your payment for %q. Your spot is secured.", notification.EventTitle)
	case model.NotificationEventCancelled:
		subject = fmt.Sprintf("Event cancelled: %s", notification.EventTitle)
		body = fmt.Sprintf("%q has been cancelled by the organizer. If you already paid, you can request a refund from your payments page.", notification.EventTitle)
	default:
		subject = notification.EventTitle
		body = fmt.Sprintf("Update for %q.", notification.EventTitle)
	}
	return subject, body
}
