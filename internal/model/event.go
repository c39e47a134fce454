package model

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus 活動狀態類型
type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// IsValid 驗證狀態是否有效
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s EventStatus) CanTransitionTo(target EventStatus) bool {
	transitions := map[EventStatus][]EventStatus{
		EventStatusDraft:     {EventStatusPublished, EventStatusCancelled},
		EventStatusPublished: {EventStatusDraft, EventStatusCancelled},
		EventStatusCancelled: {}, // 終態，不能轉換到任何狀態
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

// Event 活動模型
type Event struct {
	ID                  uuid.UUID   `json:"id" db:"id"`
	OrganizerID         uuid.UUID   `json:"organizer_id" db:"organizer_id"`
	Title               string      `json:"title" db:"title"`
	Description         *string     `json:"description,omitempty" db:"description"`
	Location            *string     `json:"location,omitempty" db:"location"`
	StartDatetime       *time.Time  `json:"start_datetime,omitempty" db:"start_datetime"`
	EndDatetime         *time.Time  `json:"end_datetime,omitempty" db:"end_datetime"`
	Capacity            int         `json:"capacity" db:"capacity"`
	CurrentParticipants int         `json:"current_participants" db:"current_participants"`
	Price               float64     `json:"price" db:"price"`
	Currency            string      `json:"currency" db:"currency"`
	Status              EventStatus `json:"status" db:"status"`
	ImageURL            *string     `json:"image_url,omitempty" db:"image_url"`
	Tags                []string    `json:"tags" db:"tags"`
	CreatedAt           time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at" db:"updated_at"`
}

// IsFree 檢查活動是否免費
func (e *Event) IsFree() bool {
	return e.Price == 0
}

// HasCapacity 檢查活動是否還有名額
func (e *Event) HasCapacity() bool {
	return e.CurrentParticipants < e.Capacity
}

func (e *Event) IsPublished() bool {
	return e.Status == EventStatusPublished
}

// RemainingSpots 剩餘名額
func (e *Event) RemainingSpots() int {
	if remaining := e.Capacity - e.CurrentParticipants; remaining > 0 {
		return remaining
	}
	return 0
}

// ReadyToPublish 發佈前必須有標題與開始時間
func (e *Event) ReadyToPublish() bool {
	return e.Title != "" && e.StartDatetime != nil
}

// CreateEventRequest 創建活動請求
type CreateEventRequest struct {
	Title         string     `json:"title" binding:"required,max=255"`
	Description   *string    `json:"description,omitempty"`
	Location      *string    `json:"location,omitempty"`
	StartDatetime *time.Time `json:"start_datetime,omitempty"`
	EndDatetime   *time.Time `json:"end_datetime,omitempty"`
	Capacity      int        `json:"capacity" binding:"required,min=1"`
	Price         float64    `json:"price" binding:"min=0"`
	Currency      string     `json:"currency,omitempty" binding:"omitempty,len=3"`
	Tags          []string   `json:"tags,omitempty"`
}

type UpdateEventParams struct {
	Title         *string
	Description   *string
	Location      *string
	StartDatetime *time.Time
	EndDatetime   *time.Time
	Capacity      *int
	Price         *float64
	Currency      *string
	ImageURL      *string
	Tags          []string
}

// ListEventsParams 活動查詢條件
type ListEventsParams struct {
	Status      *EventStatus
	OrganizerID *uuid.UUID
	Search      string
	MinPrice    *float64
	MaxPrice    *float64
	From        *time.Time
	To          *time.Time
	Page        int
	Limit       int
}

func (p *ListEventsParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > 100 {
		p.Limit = 20
	}
}

// EventResponse 活動響應
type EventResponse struct {
	ID                  uuid.UUID   `json:"id"`
	OrganizerID         uuid.UUID   `json:"organizer_id"`
	Title               string      `json:"title"`
	Description         *string     `json:"description,omitempty"`
	Location            *string     `json:"location,omitempty"`
	StartDatetime       *time.Time  `json:"start_datetime,omitempty"`
	EndDatetime         *time.Time  `json:"end_datetime,omitempty"`
	Capacity            int         `json:"capacity"`
	CurrentParticipants int         `json:"current_participants"`
	RemainingSpots      int         `json:"remaining_spots"`
	Price               float64     `json:"price"`
	Currency            string      `json:"currency"`
	Status              EventStatus `json:"status"`
	ImageURL            *string     `json:"image_url,omitempty"`
	Tags                []string    `json:"tags"`
	CreatedAt           time.Time   `json:"created_at"`
}

func (e *Event) ToResponse() *EventResponse {
	return &EventResponse{
		ID:                  e.ID,
		OrganizerID:         e.OrganizerID,
		Title:               e.Title,
		Description:         e.Description,
		Location:            e.Location,
		StartDatetime:       e.StartDatetime,
		EndDatetime:         e.EndDatetime,
		Capacity:            e.Capacity,
		CurrentParticipants: e.CurrentParticipants,
		RemainingSpots:      e.RemainingSpots(),
		Price:               e.Price,
		Currency:            e.Currency,
		Status:              e.Status,
		ImageURL:            e.ImageURL,
		Tags:                e.Tags,
		CreatedAt:           e.CreatedAt,
	}
}
