package service

import (
	"context"

	"onelastevent/internal/model"
	"onelastevent/internal/repository"
	apperrors "onelastevent/pkg/app_errors"

	"github.com/google/uuid"
)

// RegistrationResult 報名結果。免費活動帶回已確認的報名；
// 付費活動帶回付款握手資訊，等金流端確認後報名才轉 CONFIRMED。
type RegistrationResult struct {
	Inscription *model.Inscription `json:"inscription,omitempty"`
	Payment     *model.PaymentInit `json:"payment,omitempty"`
}

// RegistrationService 報名的統一入口：依活動是否收費
// 決定走免費直接確認，還是先開付款流程。
type RegistrationService interface {
	Register(ctx context.Context, requester model.Requester, eventID uuid.UUID) (*RegistrationResult, error)
	Cancel(ctx context.Context, requester model.Requester, inscriptionID uuid.UUID) (*model.Inscription, error)
}

type RegistrationServiceImpl struct {
	eventRepo          repository.EventRepository
	inscriptionService InscriptionService
	paymentService     PaymentService
}

func NewRegistrationService(
	eventRepo repository.EventRepository,
	inscriptionService InscriptionService,
	paymentService PaymentService,
) RegistrationService {
	return &RegistrationServiceImpl{
		eventRepo:          eventRepo,
		inscriptionService: inscriptionService,
		paymentService:     paymentService,
	}
}

func (s *RegistrationServiceImpl) Register(ctx context.Context, requester model.Requester, eventID uuid.UUID) (*RegistrationResult, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished() {
		return nil, apperrors.ErrEventNotAvailable
	}

	if event.IsFree() {
		inscription, err := s.inscriptionService.Register(ctx, requester.ID, eventID)
		if err != nil {
			return nil, err
		}
		return &RegistrationResult{Inscription: inscription}, nil
	}

	init, err := s.paymentService.Initialize(ctx, requester.ID, eventID)
	if err != nil {
		return nil, err
	}
	return &RegistrationResult{Payment: init}, nil
}

func (s *RegistrationServiceImpl) Cancel(ctx context.Context, requester model.Requester, inscriptionID uuid.UUID) (*model.Inscription, error) {
	return s.inscriptionService.Cancel(ctx, requester, inscriptionID)
}
