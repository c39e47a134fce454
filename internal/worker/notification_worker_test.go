package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mailerMocks "onelastevent/internal/mailer/mocks"
	"onelastevent/internal/model"
	"onelastevent/internal/queue"
	queueMocks "onelastevent/internal/queue/mocks"
	repoMocks "onelastevent/internal/repository/mocks"
	"onelastevent/internal/worker"
	apperrors "onelastevent/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationWorker_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers email and acks", func(t *testing.T) {
		q := queueMocks.NewMockNotificationQueue(t)
		users := repoMocks.NewMockUserRepository(t)
		m := mailerMocks.NewMockMailer(t)

		notification := &model.Notification{
			ID:         uuid.New(),
			Kind:       model.NotificationRegistrationConfirmed,
			UserID:     uuid.New(),
			EventTitle: "Go Conference",
		}
		user := &model.User{ID: notification.UserID, Email: "alice@example.com"}

		deliveries := make(chan queue.Delivery, 1)
		acked := make(chan struct{}, 1)
		deliveries <- queue.Delivery{
			Data: notification,
			Ack:  func() { acked <- struct{}{} },
			Nack: func(requeue bool) { t.Error("unexpected nack") },
		}
		close(deliveries)

		q.EXPECT().SubscribeNotifications(ctx).Return((<-chan queue.Delivery)(deliveries), nil).Once()
		users.EXPECT().FindByID(ctx, notification.UserID).Return(user, nil).Once()
		m.EXPECT().Send(ctx, user.Email, notification).Return(nil).Once()

		w := worker.NewNotificationWorker(q, users, m)
		require.NoError(t, w.Start(ctx))

		select {
		case <-acked:
		case <-time.After(2 * time.Second):
			t.Fatal("delivery was not acked")
		}
	})

	t.Run("unknown recipient is dropped", func(t *testing.T) {
		q := queueMocks.NewMockNotificationQueue(t)
		users := repoMocks.NewMockUserRepository(t)
		m := mailerMocks.NewMockMailer(t)

		notification := &model.Notification{ID: uuid.New(), UserID: uuid.New()}

		deliveries := make(chan queue.Delivery, 1)
		acked := make(chan struct{}, 1)
		deliveries <- queue.Delivery{
			Data: notification,
			Ack:  func() { acked <- struct{}{} },
			Nack: func(requeue bool) { t.Error("unexpected nack") },
		}
		close(deliveries)

		q.EXPECT().SubscribeNotifications(ctx).Return((<-chan queue.Delivery)(deliveries), nil).Once()
		users.EXPECT().FindByID(ctx, notification.UserID).Return(nil, apperrors.ErrUserNotFound).Once()

		w := worker.NewNotificationWorker(q, users, m)
		require.NoError(t, w.Start(ctx))

		select {
		case <-acked:
		case <-time.After(2 * time.Second):
			t.Fatal("delivery was not acked")
		}
	})

	t.Run("mail failure nacks with requeue", func(t *testing.T) {
		q := queueMocks.NewMockNotificationQueue(t)
		users := repoMocks.NewMockUserRepository(t)
		m := mailerMocks.NewMockMailer(t)

		notification := &model.Notification{ID: uuid.New(), UserID: uuid.New()}
		user := &model.User{ID: notification.UserID, Email: "bob@example.com"}

		deliveries := make(chan queue.Delivery, 1)
		nacked := make(chan bool, 1)
		deliveries <- queue.Delivery{
			Data: notification,
			Ack:  func() { t.Error("unexpected ack") },
			Nack: func(requeue bool) { nacked <- requeue },
		}
		close(deliveries)

		q.EXPECT().SubscribeNotifications(ctx).Return((<-chan queue.Delivery)(deliveries), nil).Once()
		users.EXPECT().FindByID(ctx, notification.UserID).Return(user, nil).Once()
		m.EXPECT().Send(ctx, user.Email, notification).Return(errors.New("smtp unreachable")).Once()

		w := worker.NewNotificationWorker(q, users, m)
		require.NoError(t, w.Start(ctx))

		select {
		case requeue := <-nacked:
			assert.True(t, requeue)
		case <-time.After(2 * time.Second):
			t.Fatal("delivery was not nacked")
		}
	})

	t.Run("subscribe failure is returned", func(t *testing.T) {
		q := queueMocks.NewMockNotificationQueue(t)
		users := repoMocks.NewMockUserRepository(t)
		m := mailerMocks.NewMockMailer(t)

		q.EXPECT().SubscribeNotifications(ctx).Return(nil, errors.New("redis down")).Once()

		w := worker.NewNotificationWorker(q, users, m)
		assert.Error(t, w.Start(ctx))
	})
}
