package service

import (
	"context"

	"onelastevent/internal/database"
	"onelastevent/internal/model"
	"onelastevent/internal/notification"
	"onelastevent/internal/repository"
	apperrors "onelastevent/pkg/app_errors"
	"onelastevent/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const DefaultCurrency = "EUR"

type EventService interface {
	Create(ctx context.Context, requester model.Requester, req *model.CreateEventRequest) (*model.Event, error)
	Get(ctx context.Context, requester *model.Requester, id uuid.UUID) (*model.Event, error)
	List(ctx context.Context, requester *model.Requester, params model.ListEventsParams) ([]*model.Event, int, error)
	Update(ctx context.Context, requester model.Requester, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	Publish(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Event, error)
	Unpublish(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Event, error)
	Cancel(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Event, error)
	UploadImage(ctx context.Context, requester model.Requester, id uuid.UUID, imageURL string) (*model.Event, error)
}

type EventServiceImpl struct {
	txManager       database.TxManager
	eventRepo       repository.EventRepository
	inscriptionRepo repository.InscriptionRepository
	notifier        notification.Notifier
}

func NewEventService(
	txManager database.TxManager,
	eventRepo repository.EventRepository,
	inscriptionRepo repository.InscriptionRepository,
	notifier notification.Notifier,
) EventService {
	return &EventServiceImpl{
		txManager:       txManager,
		eventRepo:       eventRepo,
		inscriptionRepo: inscriptionRepo,
		notifier:        notifier,
	}
}

func (s *EventServiceImpl) Create(ctx context.Context, requester model.Requester, req *model.CreateEventRequest) (*model.Event, error) {
	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	event := &model.Event{
		ID:            uuid.New(),
		OrganizerID:   requester.ID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Capacity:      req.Capacity,
		Price:         req.Price,
		Currency:      currency,
		Status:        model.EventStatusDraft,
		Tags:          tags,
	}

	return s.eventRepo.Create(ctx, event)
}

// Get 未發佈的活動只有主辦人與管理員看得到，其他人一律視為不存在
func (s *EventServiceImpl) Get(ctx context.Context, requester *model.Requester, id uuid.UUID) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !event.IsPublished() {
		if requester == nil || !requester.CanManage(event.OrganizerID) {
			return nil, apperrors.ErrEventNotFound
		}
	}

	return event, nil
}

// List 公開列表只回傳 PUBLISHED；主辦人查自己的活動或管理員不受此限
func (s *EventServiceImpl) List(ctx context.Context, requester *model.Requester, params model.ListEventsParams) ([]*model.Event, int, error) {
	if !s.canSeeUnpublished(requester, params) {
		published := model.EventStatusPublished
		params.Status = &published
	}

	return s.eventRepo.List(ctx, params)
}

func (s *EventServiceImpl) canSeeUnpublished(requester *model.Requester, params model.ListEventsParams) bool {
	if requester == nil {
		return false
	}
	if requester.Role.IsAdmin() {
		return true
	}
	return params.OrganizerID != nil && *params.OrganizerID == requester.ID
}

func (s *EventServiceImpl) Update(ctx context.Context, requester model.Requester, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !requester.CanManage(event.OrganizerID) {
		return nil, apperrors.ErrNotOwner
	}
	if event.Status == model.EventStatusCancelled {
		return nil, apperrors.ErrEventCancelled
	}
	// 名額不能縮到比已報名人數還少
	if params.Capacity != nil && *params.Capacity < event.CurrentParticipants {
		return nil, apperrors.ErrInvalidInput
	}

	return s.eventRepo.Update(ctx, id, params)
}

func (s *EventServiceImpl) Publish(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Event, error) {
	var published *model.Event

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		event, err := s.eventRepo.FindByIDWithLock(ctx, tx, id)
		if err != nil {
			return err
		}

		if !requester.CanManage(event.OrganizerID) {
			return apperrors.ErrNotOwner
		}
		switch event.Status {
		case model.EventStatusPublished:
			return apperrors.ErrAlreadyPublished
		case model.EventStatusCancelled:
			return apperrors.ErrEventCancelled
		}
		if !event.ReadyToPublish() {
			return apperrors.ErrIncompleteEvent
		}

		published, err = s.eventRepo.UpdateStatus(ctx, tx, id, model.EventStatusDraft, model.EventStatusPublished)
		return err
	})
	if err != nil {
		return nil, err
	}

	return published, nil
}

func (s *EventServiceImpl) Unpublish(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Event, error) {
	var unpublished *model.Event

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		event, err := s.eventRepo.FindByIDWithLock(ctx, tx, id)
		if err != nil {
			return err
		}

		if !requester.CanManage(event.OrganizerID) {
			return apperrors.ErrNotOwner
		}
		switch event.Status {
		case model.EventStatusDraft:
			return apperrors.ErrNotPublished
		case model.EventStatusCancelled:
			return apperrors.ErrEventCancelled
		}

		unpublished, err = s.eventRepo.UpdateStatus(ctx, tx, id, model.EventStatusPublished, model.EventStatusDraft)
		return err
	})
	if err != nil {
		return nil, err
	}

	return unpublished, nil
}

// Cancel 取消活動並連帶取消所有未取消的報名。
// current_participants 不回收：活動已終結，計數凍結為歷史數字。
// 受影響的報名者在提交後各收到一則取消通知。
func (s *EventServiceImpl) Cancel(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Event, error) {
	var (
		cancelled *model.Event
		affected  []*model.Inscription
	)

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		event, err := s.eventRepo.FindByIDWithLock(ctx, tx, id)
		if err != nil {
			return err
		}

		if !requester.CanManage(event.OrganizerID) {
			return apperrors.ErrNotOwner
		}
		if event.Status == model.EventStatusCancelled {
			return apperrors.ErrEventCancelled
		}

		cancelled, err = s.eventRepo.UpdateStatus(ctx, tx, id, event.Status, model.EventStatusCancelled)
		if err != nil {
			return err
		}

		affected, err = s.inscriptionRepo.CancelAllActiveByEvent(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("event_service").Info("event cancelled",
		zap.String("event_id", id.String()),
		zap.Int("inscriptions_cancelled", len(affected)))

	for _, inscription := range affected {
		s.notifier.EventCancelled(ctx, inscription.UserID, cancelled)
	}

	return cancelled, nil
}

func (s *EventServiceImpl) UploadImage(ctx context.Context, requester model.Requester, id uuid.UUID, imageURL string) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !requester.CanManage(event.OrganizerID) {
		return nil, apperrors.ErrNotOwner
	}
	if event.Status == model.EventStatusCancelled {
		return nil, apperrors.ErrEventCancelled
	}

	return s.eventRepo.Update(ctx, id, model.UpdateEventParams{ImageURL: &imageURL})
}
