package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus 付款狀態類型
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// IsValid 驗證狀態是否有效
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	transitions := map[PaymentStatus][]PaymentStatus{
		PaymentStatusPending:  {PaymentStatusPaid, PaymentStatusFailed},
		PaymentStatusPaid:     {PaymentStatusRefunded},
		PaymentStatusFailed:   {},
		PaymentStatusRefunded: {},
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

// Payment 付款模型，關聯到一筆報名
type Payment struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	UserID            uuid.UUID     `json:"user_id" db:"user_id"`
	EventID           uuid.UUID     `json:"event_id" db:"event_id"`
	InscriptionID     *uuid.UUID    `json:"inscription_id,omitempty" db:"inscription_id"`
	Amount            float64       `json:"amount" db:"amount"`
	Currency          string        `json:"currency" db:"currency"`
	Provider          string        `json:"provider" db:"provider"`
	ProviderPaymentID *string       `json:"provider_payment_id,omitempty" db:"provider_payment_id"`
	ClientSecret      *string       `json:"-" db:"client_secret"`
	Status            PaymentStatus `json:"status" db:"status"`
	RefundedAt        *time.Time    `json:"refunded_at,omitempty" db:"refunded_at"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" db:"updated_at"`
}

// IsActive 檢查付款是否佔用報名的付款額度（同一報名同時只能有一筆 PENDING/PAID）
func (p *Payment) IsActive() bool {
	return p.Status == PaymentStatusPending || p.Status == PaymentStatusPaid
}

// CanBeRefunded 只有已付款的交易可以退款
func (p *Payment) CanBeRefunded() bool {
	return p.Status == PaymentStatusPaid
}

// PaymentInit 付款初始化響應，帶金流端握手資訊
type PaymentInit struct {
	PaymentID    uuid.UUID     `json:"payment_id"`
	Amount       float64       `json:"amount"`
	Currency     string        `json:"currency"`
	ClientSecret *string       `json:"client_secret,omitempty"`
	Status       PaymentStatus `json:"status"`
}

// Provider 回調事件類型，沿用金流端的命名
const (
	ProviderEventPaymentSucceeded = "payment_intent.succeeded"
	ProviderEventPaymentFailed    = "payment_intent.payment_failed"
)

// ProviderEvent 金流端 webhook 回調內容
type ProviderEvent struct {
	// DeliveryID 本次投遞的唯一識別，用於重複投遞去重；可為空
	DeliveryID string            `json:"id"`
	Type       string            `json:"type"`
	Data       ProviderEventData `json:"data"`
}

type ProviderEventData struct {
	// PaymentID 對應本系統 payments.id，由建立 intent 時寫入 metadata
	PaymentID         uuid.UUID `json:"payment_id"`
	ProviderPaymentID string    `json:"provider_payment_id"`
}

// CompleteMockPaymentRequest 模擬付款完成請求（測試/開發用）
type CompleteMockPaymentRequest struct {
	SimulateFailure bool `json:"simulate_failure"`
}
