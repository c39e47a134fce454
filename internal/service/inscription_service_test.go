package service_test

import (
	"context"
	"testing"

	dbMocks "onelastevent/internal/database/mocks"
	"onelastevent/internal/model"
	notifierMocks "onelastevent/internal/notification/mocks"
	paymentMocks "onelastevent/internal/payment/mocks"
	repoMocks "onelastevent/internal/repository/mocks"
	"onelastevent/internal/service"
	apperrors "onelastevent/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inscriptionServiceMocks struct {
	eventRepo       *repoMocks.MockEventRepository
	inscriptionRepo *repoMocks.MockInscriptionRepository
	paymentRepo     *repoMocks.MockPaymentRepository
	processor       *paymentMocks.MockProcessor
	notifier        *notifierMocks.MockNotifier
}

func setupInscriptionService(t *testing.T) (service.InscriptionService, *inscriptionServiceMocks) {
	m := &inscriptionServiceMocks{
		eventRepo:       repoMocks.NewMockEventRepository(t),
		inscriptionRepo: repoMocks.NewMockInscriptionRepository(t),
		paymentRepo:     repoMocks.NewMockPaymentRepository(t),
		processor:       paymentMocks.NewMockProcessor(t),
		notifier:        notifierMocks.NewMockNotifier(t),
	}
	svc := service.NewInscriptionService(&dbMocks.TxManagerStub{}, m.eventRepo, m.inscriptionRepo, m.paymentRepo, m.processor, m.notifier)
	return svc, m
}

func publishedEvent(price float64) *model.Event {
	return &model.Event{
		ID:       uuid.New(),
		Title:    "Go Conference",
		Capacity: 100,
		Price:    price,
		Currency: "EUR",
		Status:   model.EventStatusPublished,
	}
}

func TestInscriptionService_Register(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - free event confirmed immediately", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		event := publishedEvent(0)

		m.eventRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, event.ID).Return(event, nil).Once()
		m.inscriptionRepo.EXPECT().FindByEventAndUser(mock.Anything, mock.Anything, event.ID, userID).Return(nil, apperrors.ErrInscriptionNotFound).Once()
		m.eventRepo.EXPECT().ReserveCapacity(mock.Anything, mock.Anything, event.ID).Return(true, nil).Once()
		m.inscriptionRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.MatchedBy(func(i *model.Inscription) bool {
			return i.EventID == event.ID && i.UserID == userID && i.Status == model.InscriptionStatusConfirmed
		})).Return(&model.Inscription{ID: uuid.New(), EventID: event.ID, UserID: userID, Status: model.InscriptionStatusConfirmed}, nil).Once()
		m.notifier.EXPECT().RegistrationConfirmed(mock.Anything, userID, event).Return().Once()

		inscription, err := svc.Register(ctx, userID, event.ID)

		require.NoError(t, err)
		assert.Equal(t, model.InscriptionStatusConfirmed, inscription.Status)
	})

	t.Run("Success - paid event stays pending", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		event := publishedEvent(25)

		m.eventRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, event.ID).Return(event, nil).Once()
		m.inscriptionRepo.EXPECT().FindByEventAndUser(mock.Anything, mock.Anything, event.ID, userID).Return(nil, apperrors.ErrInscriptionNotFound).Once()
		m.eventRepo.EXPECT().ReserveCapacity(mock.Anything, mock.Anything, event.ID).Return(true, nil).Once()
		m.inscriptionRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.MatchedBy(func(i *model.Inscription) bool {
			return i.Status == model.InscriptionStatusPending
		})).Return(&model.Inscription{ID: uuid.New(), Status: model.InscriptionStatusPending}, nil).Once()

		inscription, err := svc.Register(ctx, userID, event.ID)

		require.NoError(t, err)
		assert.Equal(t, model.InscriptionStatusPending, inscription.Status)
	})

	t.Run("Success - cancelled inscription reactivated", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		event := publishedEvent(0)
		existing := &model.Inscription{ID: uuid.New(), EventID: event.ID, UserID: userID, Status: model.InscriptionStatusCancelled}

		m.eventRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, event.ID).Return(event, nil).Once()
		m.inscriptionRepo.EXPECT().FindByEventAndUser(mock.Anything, mock.Anything, event.ID, userID).Return(existing, nil).Once()
		m.eventRepo.EXPECT().ReserveCapacity(mock.Anything, mock.Anything, event.ID).Return(true, nil).Once()
		m.inscriptionRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything, existing.ID, model.InscriptionStatusConfirmed).
			Return(&model.Inscription{ID: existing.ID, Status: model.InscriptionStatusConfirmed}, nil).Once()
		m.notifier.EXPECT().RegistrationConfirmed(mock.Anything, userID, event).Return().Once()

		inscription, err := svc.Register(ctx, userID, event.ID)

		require.NoError(t, err)
		assert.Equal(t, existing.ID, inscription.ID)
	})

	t.Run("Failed - ErrAlreadyRegistered", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		event := publishedEvent(0)
		existing := &model.Inscription{ID: uuid.New(), Status: model.InscriptionStatusConfirmed}

		m.eventRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, event.ID).Return(event, nil).Once()
		m.inscriptionRepo.EXPECT().FindByEventAndUser(mock.Anything, mock.Anything, event.ID, userID).Return(existing, nil).Once()

		_, err := svc.Register(ctx, userID, event.ID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
	})

	t.Run("Failed - ErrEventFull", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		event := publishedEvent(0)

		m.eventRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, event.ID).Return(event, nil).Once()
		m.inscriptionRepo.EXPECT().FindByEventAndUser(mock.Anything, mock.Anything, event.ID, userID).Return(nil, apperrors.ErrInscriptionNotFound).Once()
		m.eventRepo.EXPECT().ReserveCapacity(mock.Anything, mock.Anything, event.ID).Return(false, nil).Once()

		_, err := svc.Register(ctx, userID, event.ID)
		assert.ErrorIs(t, err, apperrors.ErrEventFull)
	})

	t.Run("Failed - ErrEventNotAvailable for draft", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		event := publishedEvent(0)
		event.Status = model.EventStatusDraft

		m.eventRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, event.ID).Return(event, nil).Once()

		_, err := svc.Register(ctx, userID, event.ID)
		assert.ErrorIs(t, err, apperrors.ErrEventNotAvailable)
	})
}

func TestInscriptionService_Cancel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	requester := model.Requester{ID: userID, Role: model.RoleParticipant}

	t.Run("Success - free inscription releases capacity", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		inscription := &model.Inscription{ID: uuid.New(), EventID: uuid.New(), UserID: userID, Status: model.InscriptionStatusConfirmed}

		m.inscriptionRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, inscription.ID).Return(inscription, nil).Once()
		m.inscriptionRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything, inscription.ID, model.InscriptionStatusCancelled).
			Return(&model.Inscription{ID: inscription.ID, Status: model.InscriptionStatusCancelled}, nil).Once()
		m.eventRepo.EXPECT().ReleaseCapacity(mock.Anything, mock.Anything, inscription.EventID).Return(nil).Once()
		m.paymentRepo.EXPECT().FindActiveByInscription(mock.Anything, mock.Anything, inscription.ID).Return(nil, apperrors.ErrPaymentNotFound).Once()

		cancelled, err := svc.Cancel(ctx, requester, inscription.ID)

		require.NoError(t, err)
		assert.Equal(t, model.InscriptionStatusCancelled, cancelled.Status)
	})

	t.Run("Success - paid inscription refunded", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		inscription := &model.Inscription{ID: uuid.New(), EventID: uuid.New(), UserID: userID, Status: model.InscriptionStatusConfirmed}
		providerID := "mock_pi_abc123"
		paid := &model.Payment{ID: uuid.New(), Status: model.PaymentStatusPaid, ProviderPaymentID: &providerID}

		m.inscriptionRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, inscription.ID).Return(inscription, nil).Once()
		m.inscriptionRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything, inscription.ID, model.InscriptionStatusCancelled).
			Return(&model.Inscription{ID: inscription.ID, Status: model.InscriptionStatusCancelled}, nil).Once()
		m.eventRepo.EXPECT().ReleaseCapacity(mock.Anything, mock.Anything, inscription.EventID).Return(nil).Once()
		m.paymentRepo.EXPECT().FindActiveByInscription(mock.Anything, mock.Anything, inscription.ID).Return(paid, nil).Once()
		m.processor.EXPECT().Refund(mock.Anything, providerID).Return(nil).Once()
		m.paymentRepo.EXPECT().MarkRefunded(mock.Anything, mock.Anything, paid.ID).
			Return(&model.Payment{ID: paid.ID, Status: model.PaymentStatusRefunded}, nil).Once()

		_, err := svc.Cancel(ctx, requester, inscription.ID)
		require.NoError(t, err)
	})

	t.Run("Success - pending payment voided", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		inscription := &model.Inscription{ID: uuid.New(), EventID: uuid.New(), UserID: userID, Status: model.InscriptionStatusPending}
		pending := &model.Payment{ID: uuid.New(), Status: model.PaymentStatusPending}

		m.inscriptionRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, inscription.ID).Return(inscription, nil).Once()
		m.inscriptionRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything, inscription.ID, model.InscriptionStatusCancelled).
			Return(&model.Inscription{ID: inscription.ID, Status: model.InscriptionStatusCancelled}, nil).Once()
		m.eventRepo.EXPECT().ReleaseCapacity(mock.Anything, mock.Anything, inscription.EventID).Return(nil).Once()
		m.paymentRepo.EXPECT().FindActiveByInscription(mock.Anything, mock.Anything, inscription.ID).Return(pending, nil).Once()
		m.paymentRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything, pending.ID, model.PaymentStatusPending, model.PaymentStatusFailed).
			Return(&model.Payment{ID: pending.ID, Status: model.PaymentStatusFailed}, nil).Once()

		_, err := svc.Cancel(ctx, requester, inscription.ID)
		require.NoError(t, err)
	})

	t.Run("Failed - ErrNotOwner", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		inscription := &model.Inscription{ID: uuid.New(), UserID: uuid.New(), Status: model.InscriptionStatusConfirmed}

		m.inscriptionRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, inscription.ID).Return(inscription, nil).Once()

		_, err := svc.Cancel(ctx, requester, inscription.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	})

	t.Run("Failed - ErrAlreadyCancelled", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		inscription := &model.Inscription{ID: uuid.New(), UserID: userID, Status: model.InscriptionStatusCancelled}

		m.inscriptionRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, inscription.ID).Return(inscription, nil).Once()

		_, err := svc.Cancel(ctx, requester, inscription.ID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyCancelled)
	})

	t.Run("admin can cancel on behalf of user", func(t *testing.T) {
		svc, m := setupInscriptionService(t)
		admin := model.Requester{ID: uuid.New(), Role: model.RoleAdmin}
		inscription := &model.Inscription{ID: uuid.New(), EventID: uuid.New(), UserID: userID, Status: model.InscriptionStatusConfirmed}

		m.inscriptionRepo.EXPECT().FindByIDWithLock(mock.Anything, mock.Anything, inscription.ID).Return(inscription, nil).Once()
		m.inscriptionRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything, inscription.ID, model.InscriptionStatusCancelled).
			Return(&model.Inscription{ID: inscription.ID, Status: model.InscriptionStatusCancelled}, nil).Once()
		m.eventRepo.EXPECT().ReleaseCapacity(mock.Anything, mock.Anything, inscription.EventID).Return(nil).Once()
		m.paymentRepo.EXPECT().FindActiveByInscription(mock.Anything, mock.Anything, inscription.ID).Return(nil, apperrors.ErrPaymentNotFound).Once()

		_, err := svc.Cancel(ctx, admin, inscription.ID)
		require.NoError(t, err)
	})
}
