package service

import (
	"context"
	"errors"

	"onelastevent/internal/database"
	"onelastevent/internal/model"
	"onelastevent/internal/notification"
	"onelastevent/internal/payment"
	"onelastevent/internal/repository"
	apperrors "onelastevent/pkg/app_errors"
	"onelastevent/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InscriptionService interface {
	Register(ctx context.Context, userID, eventID uuid.UUID) (*model.Inscription, error)
	Cancel(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Inscription, error)
	GetByID(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Inscription, error)
	ListByUser(ctx context.Context, requester model.Requester, userID uuid.UUID, params model.ListInscriptionsParams) ([]*model.Inscription, int, error)
	ListByEvent(ctx context.Context, requester model.Requester, eventID uuid.UUID) ([]*model.Inscription, error)
}

type InscriptionServiceImpl struct {
	txManager       database.TxManager
	eventRepo       repository.EventRepository
	inscriptionRepo repository.InscriptionRepository
	paymentRepo     repository.PaymentRepository
	processor       payment.Processor
	notifier        notification.Notifier
}

func NewInscriptionService(
	txManager database.TxManager,
	eventRepo repository.EventRepository,
	inscriptionRepo repository.InscriptionRepository,
	paymentRepo repository.PaymentRepository,
	processor payment.Processor,
	notifier notification.Notifier,
) InscriptionService {
	return &InscriptionServiceImpl{
		txManager:       txManager,
		eventRepo:       eventRepo,
		inscriptionRepo: inscriptionRepo,
		paymentRepo:     paymentRepo,
		processor:       processor,
		notifier:        notifier,
	}
}

// Register 對已發佈的活動報名。
// 佔名額的檢查與遞增在同一條 UPDATE 完成，高併發搶最後一個名額只會有一人成功。
// 免費活動直接 CONFIRMED；付費活動建出 PENDING 報名，等付款確認。
// 同一使用者取消後重新報名會重用原本那筆紀錄。
func (s *InscriptionServiceImpl) Register(ctx context.Context, userID, eventID uuid.UUID) (*model.Inscription, error) {
	var (
		inscription *model.Inscription
		event       *model.Event
	)

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		event, err = s.eventRepo.FindByIDWithLock(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if !event.IsPublished() {
			return apperrors.ErrEventNotAvailable
		}

		existing, err := s.inscriptionRepo.FindByEventAndUser(ctx, tx, eventID, userID)
		if err != nil && !errors.Is(err, apperrors.ErrInscriptionNotFound) {
			return err
		}
		if existing != nil && existing.IsActive() {
			return apperrors.ErrAlreadyRegistered
		}

		reserved, err := s.eventRepo.ReserveCapacity(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if !reserved {
			return apperrors.ErrEventFull
		}

		status := model.InscriptionStatusPending
		if event.IsFree() {
			status = model.InscriptionStatusConfirmed
		}

		if existing != nil {
			inscription, err = s.inscriptionRepo.UpdateStatus(ctx, tx, existing.ID, status)
			return err
		}

		inscription, err = s.inscriptionRepo.Create(ctx, tx, &model.Inscription{
			ID:      uuid.New(),
			EventID: eventID,
			UserID:  userID,
			Status:  status,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("inscription_service").Info("user registered",
		zap.String("inscription_id", inscription.ID.String()),
		zap.String("event_id", eventID.String()),
		zap.String("user_id", userID.String()),
		zap.String("status", string(inscription.Status)))

	if inscription.Status == model.InscriptionStatusConfirmed {
		s.notifier.RegistrationConfirmed(ctx, userID, event)
	}

	return inscription, nil
}

// Cancel 取消報名並釋放名額。已付款的報名同時退款，
// 還沒付完的付款直接作廢。
func (s *InscriptionServiceImpl) Cancel(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Inscription, error) {
	var cancelled *model.Inscription

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		inscription, err := s.inscriptionRepo.FindByIDWithLock(ctx, tx, id)
		if err != nil {
			return err
		}

		if !requester.CanManage(inscription.UserID) {
			return apperrors.ErrNotOwner
		}
		if inscription.Status == model.InscriptionStatusCancelled {
			return apperrors.ErrAlreadyCancelled
		}

		cancelled, err = s.inscriptionRepo.UpdateStatus(ctx, tx, id, model.InscriptionStatusCancelled)
		if err != nil {
			return err
		}

		if err := s.eventRepo.ReleaseCapacity(ctx, tx, inscription.EventID); err != nil {
			return err
		}

		return s.settlePayment(ctx, tx, inscription)
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("inscription_service").Info("inscription cancelled",
		zap.String("inscription_id", id.String()))

	return cancelled, nil
}

// settlePayment 結清報名底下佔額度的付款：PAID 退款、PENDING 作廢
func (s *InscriptionServiceImpl) settlePayment(ctx context.Context, tx pgx.Tx, inscription *model.Inscription) error {
	active, err := s.paymentRepo.FindActiveByInscription(ctx, tx, inscription.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPaymentNotFound) {
			return nil
		}
		return err
	}

	switch active.Status {
	case model.PaymentStatusPaid:
		if active.ProviderPaymentID != nil {
			if err := s.processor.Refund(ctx, *active.ProviderPaymentID); err != nil {
				return apperrors.ErrProcessorFailure
			}
		}
		_, err = s.paymentRepo.MarkRefunded(ctx, tx, active.ID)
		return err
	case model.PaymentStatusPending:
		_, err = s.paymentRepo.UpdateStatus(ctx, tx, active.ID, model.PaymentStatusPending, model.PaymentStatusFailed)
		return err
	}

	return nil
}

// GetByID 本人、活動主辦人或管理員可以查看
func (s *InscriptionServiceImpl) GetByID(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Inscription, error) {
	inscription, err := s.inscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if requester.CanManage(inscription.UserID) {
		return inscription, nil
	}

	event, err := s.eventRepo.FindByID(ctx, inscription.EventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != requester.ID {
		return nil, apperrors.ErrNotOwner
	}

	return inscription, nil
}

func (s *InscriptionServiceImpl) ListByUser(ctx context.Context, requester model.Requester, userID uuid.UUID, params model.ListInscriptionsParams) ([]*model.Inscription, int, error) {
	if !requester.CanManage(userID) {
		return nil, 0, apperrors.ErrNotOwner
	}

	return s.inscriptionRepo.ListByUser(ctx, userID, params)
}

// ListByEvent 只有活動主辦人與管理員能看整場活動的報名名單
func (s *InscriptionServiceImpl) ListByEvent(ctx context.Context, requester model.Requester, eventID uuid.UUID) ([]*model.Inscription, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !requester.CanManage(event.OrganizerID) {
		return nil, apperrors.ErrNotOwner
	}

	return s.inscriptionRepo.ListByEvent(ctx, eventID)
}
