package model

import (
	"time"

	"github.com/google/uuid"
)

// InscriptionStatus 報名狀態類型
type InscriptionStatus string

const (
	InscriptionStatusPending   InscriptionStatus = "PENDING"
	InscriptionStatusConfirmed InscriptionStatus = "CONFIRMED"
	InscriptionStatusCancelled InscriptionStatus = "CANCELLED"
)

// IsValid 驗證狀態是否有效
func (s InscriptionStatus) IsValid() bool {
	switch s {
	case InscriptionStatusPending, InscriptionStatusConfirmed, InscriptionStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
// CANCELLED -> PENDING/CONFIRMED 是取消後重新報名的「重新啟用」路徑
func (s InscriptionStatus) CanTransitionTo(target InscriptionStatus) bool {
	transitions := map[InscriptionStatus][]InscriptionStatus{
		InscriptionStatusPending:   {InscriptionStatusConfirmed, InscriptionStatusCancelled},
		InscriptionStatusConfirmed: {InscriptionStatusCancelled},
		InscriptionStatusCancelled: {InscriptionStatusPending, InscriptionStatusConfirmed},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Inscription 報名模型：一位使用者對一場活動的報名紀錄
type Inscription struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	EventID   uuid.UUID         `json:"event_id" db:"event_id"`
	UserID    uuid.UUID         `json:"user_id" db:"user_id"`
	Status    InscriptionStatus `json:"status" db:"status"`
	Notes     *string           `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" db:"updated_at"`
}

// IsActive 檢查報名是否仍佔用名額（未取消）
func (i *Inscription) IsActive() bool {
	return i.Status != InscriptionStatusCancelled
}

// ListInscriptionsParams 報名查詢條件
type ListInscriptionsParams struct {
	Status *InscriptionStatus
	Page   int
	Limit  int
}

func (p *ListInscriptionsParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > 100 {
		p.Limit = 20
	}
}
