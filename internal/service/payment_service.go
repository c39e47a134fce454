package service

import (
	"context"
	"errors"

	"onelastevent/internal/cache"
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

type PaymentService interface {
	Initialize(ctx context.Context, userID, eventID uuid.UUID) (*model.PaymentInit, error)
	CompleteMock(ctx context.Context, requester model.Requester, paymentID uuid.UUID, simulateFailure bool) (*model.Payment, error)
	HandleProviderCallback(ctx context.Context, event *model.ProviderEvent) error
	Refund(ctx context.Context, requester model.Requester, paymentID uuid.UUID) (*model.Payment, error)
	GetStatus(ctx context.Context, requester model.Requester, paymentID uuid.UUID) (*model.Payment, error)
	ListByUser(ctx context.Context, requester model.Requester, userID uuid.UUID) ([]*model.Payment, error)
	ListByEvent(ctx context.Context, requester model.Requester, eventID uuid.UUID) ([]*model.Payment, error)
	EventRevenue(ctx context.Context, requester model.Requester, eventID uuid.UUID) (float64, error)
}

type PaymentServiceImpl struct {
	txManager       database.TxManager
	eventRepo       repository.EventRepository
	inscriptionRepo repository.InscriptionRepository
	paymentRepo     repository.PaymentRepository
	processor       payment.Processor
	dedup           cache.WebhookDedup
	notifier        notification.Notifier
}

func NewPaymentService(
	txManager database.TxManager,
	eventRepo repository.EventRepository,
	inscriptionRepo repository.InscriptionRepository,
	paymentRepo repository.PaymentRepository,
	processor payment.Processor,
	dedup cache.WebhookDedup,
	notifier notification.Notifier,
) PaymentService {
	return &PaymentServiceImpl{
		txManager:       txManager,
		eventRepo:       eventRepo,
		inscriptionRepo: inscriptionRepo,
		paymentRepo:     paymentRepo,
		processor:       processor,
		dedup:           dedup,
		notifier:        notifier,
	}
}

// Initialize 為付費活動開啟付款流程：佔住名額、建出 PENDING 報名與付款，
// 並向金流端建立付款意圖。意圖建立失敗整筆回滾，名額不會被吃掉。
// 同一報名重複呼叫會回傳既有的 PENDING 付款，不會重複佔額度。
func (s *PaymentServiceImpl) Initialize(ctx context.Context, userID, eventID uuid.UUID) (*model.PaymentInit, error) {
	var result *model.PaymentInit

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		event, err := s.eventRepo.FindByIDWithLock(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if !event.IsPublished() {
			return apperrors.ErrEventNotAvailable
		}
		if event.IsFree() {
			return apperrors.ErrEventIsFree
		}

		inscription, err := s.ensurePendingInscription(ctx, tx, eventID, userID)
		if err != nil {
			return err
		}

		// 既有的 PENDING 付款直接重用，讓客戶端拿同一份握手資訊重試
		if active, err := s.paymentRepo.FindActiveByInscription(ctx, tx, inscription.ID); err == nil {
			if active.Status == model.PaymentStatusPaid {
				return apperrors.ErrAlreadyRegistered
			}
			result = toPaymentInit(active)
			return nil
		} else if !errors.Is(err, apperrors.ErrPaymentNotFound) {
			return err
		}

		created, err := s.paymentRepo.Create(ctx, tx, &model.Payment{
			ID:            uuid.New(),
			UserID:        userID,
			EventID:       eventID,
			InscriptionID: &inscription.ID,
			Amount:        event.Price,
			Currency:      event.Currency,
			Provider:      s.processor.Name(),
			Status:        model.PaymentStatusPending,
		})
		if err != nil {
			return err
		}

		intent, err := s.processor.CreateIntent(ctx, created)
		if err != nil {
			logger.WithComponent("payment_service").Error("create intent failed",
				zap.String("payment_id", created.ID.String()),
				zap.Error(err))
			return apperrors.ErrProcessorFailure
		}

		if err := s.paymentRepo.SetProviderInfo(ctx, tx, created.ID, intent.ProviderPaymentID, intent.ClientSecret); err != nil {
			return err
		}

		created.ProviderPaymentID = &intent.ProviderPaymentID
		created.ClientSecret = intent.ClientSecret
		result = toPaymentInit(created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ensurePendingInscription 找出或建出這位使用者在這場活動的 PENDING 報名。
// 已確認的報名不能再開付款；取消過的報名重新佔額度後重新啟用。
func (s *PaymentServiceImpl) ensurePendingInscription(ctx context.Context, tx pgx.Tx, eventID, userID uuid.UUID) (*model.Inscription, error) {
	existing, err := s.inscriptionRepo.FindByEventAndUser(ctx, tx, eventID, userID)
	if err != nil && !errors.Is(err, apperrors.ErrInscriptionNotFound) {
		return nil, err
	}

	if existing != nil {
		switch existing.Status {
		case model.InscriptionStatusConfirmed:
			return nil, apperrors.ErrAlreadyRegistered
		case model.InscriptionStatusPending:
			return existing, nil
		}

		// CANCELLED：重新佔額度後重新啟用同一筆紀錄
		reserved, err := s.eventRepo.ReserveCapacity(ctx, tx, eventID)
		if err != nil {
			return nil, err
		}
		if !reserved {
			return nil, apperrors.ErrEventFull
		}
		return s.inscriptionRepo.UpdateStatus(ctx, tx, existing.ID, model.InscriptionStatusPending)
	}

	reserved, err := s.eventRepo.ReserveCapacity(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}
	if !reserved {
		return nil, apperrors.ErrEventFull
	}

	return s.inscriptionRepo.Create(ctx, tx, &model.Inscription{
		ID:      uuid.New(),
		EventID: eventID,
		UserID:  userID,
		Status:  model.InscriptionStatusPending,
	})
}

// CompleteMock 模擬金流端的扣款結果（開發與測試用）。
// 成功時付款轉 PAID、報名轉 CONFIRMED，在同一個交易內完成。
// 失敗時付款轉 FAILED，報名保持 PENDING，名額仍佔住，可重新發起付款。
func (s *PaymentServiceImpl) CompleteMock(ctx context.Context, requester model.Requester, paymentID uuid.UUID, simulateFailure bool) (*model.Payment, error) {
	var updated *model.Payment

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		p, err := s.paymentRepo.FindByIDWithLock(ctx, tx, paymentID)
		if err != nil {
			return err
		}

		if !requester.CanManage(p.UserID) {
			return apperrors.ErrNotOwner
		}
		if p.Status != model.PaymentStatusPending {
			return apperrors.ErrPaymentNotPending
		}

		if simulateFailure {
			updated, err = s.paymentRepo.UpdateStatus(ctx, tx, paymentID, model.PaymentStatusPending, model.PaymentStatusFailed)
			return err
		}

		updated, err = s.markPaid(ctx, tx, p)
		return err
	})
	if err != nil {
		return nil, err
	}

	if updated.Status == model.PaymentStatusPaid {
		s.notifyPaid(ctx, updated)
	}

	return updated, nil
}

// markPaid 付款轉 PAID 並把關聯報名轉 CONFIRMED，兩者在同一交易內保持一致
func (s *PaymentServiceImpl) markPaid(ctx context.Context, tx pgx.Tx, p *model.Payment) (*model.Payment, error) {
	paid, err := s.paymentRepo.UpdateStatus(ctx, tx, p.ID, model.PaymentStatusPending, model.PaymentStatusPaid)
	if err != nil {
		return nil, err
	}

	if p.InscriptionID != nil {
		if _, err := s.inscriptionRepo.UpdateStatus(ctx, tx, *p.InscriptionID, model.InscriptionStatusConfirmed); err != nil {
			return nil, err
		}
	}

	return paid, nil
}

func (s *PaymentServiceImpl) notifyPaid(ctx context.Context, p *model.Payment) {
	event, err := s.eventRepo.FindByID(ctx, p.EventID)
	if err != nil {
		logger.WithComponent("payment_service").Warn("event lookup for notification failed",
			zap.String("payment_id", p.ID.String()),
			zap.Error(err))
		return
	}

	s.notifier.PaymentReceived(ctx, p.UserID, event)
	s.notifier.RegistrationConfirmed(ctx, p.UserID, event)
}

// HandleProviderCallback 處理金流端 webhook。
// 設計成可安全重放：重複投遞經 Redis 去重擋下，已處理過的付款狀態不再變動，
// 找不到對應付款或未知事件類型都記 log 後回 nil，讓金流端不要一直重送。
// 處理失敗時會撤掉去重標記，同一個投遞重送進來才不會被當成重複擋掉。
func (s *PaymentServiceImpl) HandleProviderCallback(ctx context.Context, event *model.ProviderEvent) error {
	log := logger.WithComponent("payment_service")

	marked := false
	if event.DeliveryID != "" {
		first, err := s.dedup.MarkProcessed(ctx, event.DeliveryID)
		if err != nil {
			// 去重失敗時寧可繼續處理：狀態機的 CAS 保證重放不會造成二次轉換
			log.Warn("webhook dedup unavailable", zap.String("delivery_id", event.DeliveryID), zap.Error(err))
		} else if !first {
			log.Info("duplicate webhook delivery ignored", zap.String("delivery_id", event.DeliveryID))
			return nil
		} else {
			marked = true
		}
	}

	err := s.dispatchCallback(ctx, event)
	if err != nil && marked {
		if forgetErr := s.dedup.Forget(ctx, event.DeliveryID); forgetErr != nil {
			log.Warn("failed to clear webhook dedup marker",
				zap.String("delivery_id", event.DeliveryID),
				zap.Error(forgetErr))
		}
	}
	return err
}

func (s *PaymentServiceImpl) dispatchCallback(ctx context.Context, event *model.ProviderEvent) error {
	switch event.Type {
	case model.ProviderEventPaymentSucceeded:
		return s.applyCallback(ctx, event, true)
	case model.ProviderEventPaymentFailed:
		return s.applyCallback(ctx, event, false)
	default:
		logger.WithComponent("payment_service").Info("unhandled webhook type", zap.String("type", event.Type))
		return nil
	}
}

func (s *PaymentServiceImpl) applyCallback(ctx context.Context, event *model.ProviderEvent, succeeded bool) error {
	log := logger.WithComponent("payment_service")

	var paid *model.Payment
	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		p, err := s.paymentRepo.FindByIDWithLock(ctx, tx, event.Data.PaymentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrPaymentNotFound) {
				log.Warn("webhook for unknown payment", zap.String("payment_id", event.Data.PaymentID.String()))
				return nil
			}
			return err
		}

		if p.Status != model.PaymentStatusPending {
			log.Info("webhook for settled payment ignored",
				zap.String("payment_id", p.ID.String()),
				zap.String("status", string(p.Status)))
			return nil
		}

		if !succeeded {
			_, err = s.paymentRepo.UpdateStatus(ctx, tx, p.ID, model.PaymentStatusPending, model.PaymentStatusFailed)
			return err
		}

		if p.ProviderPaymentID == nil && event.Data.ProviderPaymentID != "" {
			if err := s.paymentRepo.SetProviderInfo(ctx, tx, p.ID, event.Data.ProviderPaymentID, p.ClientSecret); err != nil {
				return err
			}
		}

		paid, err = s.markPaid(ctx, tx, p)
		return err
	})
	if err != nil {
		return err
	}

	if paid != nil {
		s.notifyPaid(ctx, paid)
	}

	return nil
}

// Refund 退款並取消對應的報名、釋放名額，全部在同一個交易內。
// 只有 PAID 的付款能退；付款人本人或管理員才能發起。
func (s *PaymentServiceImpl) Refund(ctx context.Context, requester model.Requester, paymentID uuid.UUID) (*model.Payment, error) {
	var refunded *model.Payment

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		p, err := s.paymentRepo.FindByIDWithLock(ctx, tx, paymentID)
		if err != nil {
			return err
		}

		if !requester.CanManage(p.UserID) {
			return apperrors.ErrNotOwner
		}
		if !p.CanBeRefunded() {
			return apperrors.ErrCannotRefund
		}

		if p.ProviderPaymentID != nil {
			if err := s.processor.Refund(ctx, *p.ProviderPaymentID); err != nil {
				logger.WithComponent("payment_service").Error("processor refund failed",
					zap.String("payment_id", p.ID.String()),
					zap.Error(err))
				return apperrors.ErrProcessorFailure
			}
		}

		refunded, err = s.paymentRepo.MarkRefunded(ctx, tx, paymentID)
		if err != nil {
			return err
		}

		if p.InscriptionID == nil {
			return nil
		}

		inscription, err := s.inscriptionRepo.FindByIDWithLock(ctx, tx, *p.InscriptionID)
		if err != nil {
			return err
		}
		if !inscription.IsActive() {
			return nil
		}

		if _, err := s.inscriptionRepo.UpdateStatus(ctx, tx, inscription.ID, model.InscriptionStatusCancelled); err != nil {
			return err
		}
		return s.eventRepo.ReleaseCapacity(ctx, tx, p.EventID)
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("payment_service").Info("payment refunded",
		zap.String("payment_id", paymentID.String()))

	return refunded, nil
}

// GetStatus 付款人本人或管理員可以查詢
func (s *PaymentServiceImpl) GetStatus(ctx context.Context, requester model.Requester, paymentID uuid.UUID) (*model.Payment, error) {
	p, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if !requester.CanManage(p.UserID) {
		return nil, apperrors.ErrNotOwner
	}

	return p, nil
}

func (s *PaymentServiceImpl) ListByUser(ctx context.Context, requester model.Requester, userID uuid.UUID) ([]*model.Payment, error) {
	if !requester.CanManage(userID) {
		return nil, apperrors.ErrNotOwner
	}

	return s.paymentRepo.ListByUser(ctx, userID)
}

// ListByEvent 只有活動主辦人與管理員能看整場活動的金流
func (s *PaymentServiceImpl) ListByEvent(ctx context.Context, requester model.Requester, eventID uuid.UUID) ([]*model.Payment, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !requester.CanManage(event.OrganizerID) {
		return nil, apperrors.ErrNotOwner
	}

	return s.paymentRepo.ListByEvent(ctx, eventID)
}

func (s *PaymentServiceImpl) EventRevenue(ctx context.Context, requester model.Requester, eventID uuid.UUID) (float64, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if !requester.CanManage(event.OrganizerID) {
		return 0, apperrors.ErrNotOwner
	}

	return s.paymentRepo.RevenueByEvent(ctx, eventID)
}

func toPaymentInit(p *model.Payment) *model.PaymentInit {
	return &model.PaymentInit{
		PaymentID:    p.ID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		ClientSecret: p.ClientSecret,
		Status:       p.Status,
	}
}
