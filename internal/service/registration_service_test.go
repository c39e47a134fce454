package service_test

import (
	"context"
	"testing"

	"onelastevent/internal/model"
	repoMocks "onelastevent/internal/repository/mocks"
	"onelastevent/internal/service"
	serviceMocks "onelastevent/internal/service/mocks"
	apperrors "onelastevent/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationService_Register(t *testing.T) {
	ctx := context.Background()
	requester := model.Requester{ID: uuid.New(), Role: model.RoleParticipant}

	t.Run("free event routed to direct registration", func(t *testing.T) {
		eventRepo := repoMocks.NewMockEventRepository(t)
		inscriptions := serviceMocks.NewMockInscriptionService(t)
		payments := serviceMocks.NewMockPaymentService(t)
		svc := service.NewRegistrationService(eventRepo, inscriptions, payments)

		event := publishedEvent(0)
		inscription := &model.Inscription{ID: uuid.New(), Status: model.InscriptionStatusConfirmed}

		eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil).Once()
		inscriptions.EXPECT().Register(ctx, requester.ID, event.ID).Return(inscription, nil).Once()

		result, err := svc.Register(ctx, requester, event.ID)

		require.NoError(t, err)
		assert.Equal(t, inscription, result.Inscription)
		assert.Nil(t, result.Payment)
	})

	t.Run("paid event routed to payment flow", func(t *testing.T) {
		eventRepo := repoMocks.NewMockEventRepository(t)
		inscriptions := serviceMocks.NewMockInscriptionService(t)
		payments := serviceMocks.NewMockPaymentService(t)
		svc := service.NewRegistrationService(eventRepo, inscriptions, payments)

		event := publishedEvent(25)
		init := &model.PaymentInit{PaymentID: uuid.New(), Amount: 25, Currency: "EUR", Status: model.PaymentStatusPending}

		eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil).Once()
		payments.EXPECT().Initialize(ctx, requester.ID, event.ID).Return(init, nil).Once()

		result, err := svc.Register(ctx, requester, event.ID)

		require.NoError(t, err)
		assert.Nil(t, result.Inscription)
		assert.Equal(t, init, result.Payment)
	})

	t.Run("draft event rejected", func(t *testing.T) {
		eventRepo := repoMocks.NewMockEventRepository(t)
		inscriptions := serviceMocks.NewMockInscriptionService(t)
		payments := serviceMocks.NewMockPaymentService(t)
		svc := service.NewRegistrationService(eventRepo, inscriptions, payments)

		event := publishedEvent(0)
		event.Status = model.EventStatusDraft
		eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil).Once()

		_, err := svc.Register(ctx, requester, event.ID)
		assert.ErrorIs(t, err, apperrors.ErrEventNotAvailable)
	})
}

func TestRegistrationService_Cancel(t *testing.T) {
	ctx := context.Background()
	requester := model.Requester{ID: uuid.New(), Role: model.RoleParticipant}

	t.Run("delegates to inscription service", func(t *testing.T) {
		eventRepo := repoMocks.NewMockEventRepository(t)
		inscriptions := serviceMocks.NewMockInscriptionService(t)
		payments := serviceMocks.NewMockPaymentService(t)
		svc := service.NewRegistrationService(eventRepo, inscriptions, payments)

		inscriptionID := uuid.New()
		cancelled := &model.Inscription{ID: inscriptionID, Status: model.InscriptionStatusCancelled}
		inscriptions.EXPECT().Cancel(ctx, requester, inscriptionID).Return(cancelled, nil).Once()

		got, err := svc.Cancel(ctx, requester, inscriptionID)

		require.NoError(t, err)
		assert.Equal(t, cancelled, got)
	})
}
