package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventStatus_IsValid(t *testing.T) {
	assert.True(t, EventStatusDraft.IsValid())
	assert.True(t, EventStatusPublished.IsValid())
	assert.True(t, EventStatusCancelled.IsValid())
	assert.False(t, EventStatus("ARCHIVED").IsValid())
	assert.False(t, EventStatus("").IsValid())
}

func TestEventStatus_CanTransitionTo(t *testing.T) {
	t.Run("Draft", func(t *testing.T) {
		assert.True(t, EventStatusDraft.CanTransitionTo(EventStatusPublished))
		assert.True(t, EventStatusDraft.CanTransitionTo(EventStatusCancelled))
		assert.False(t, EventStatusDraft.CanTransitionTo(EventStatusDraft))
	})

	t.Run("Published", func(t *testing.T) {
		assert.True(t, EventStatusPublished.CanTransitionTo(EventStatusDraft))
		assert.True(t, EventStatusPublished.CanTransitionTo(EventStatusCancelled))
		assert.False(t, EventStatusPublished.CanTransitionTo(EventStatusPublished))
	})

	t.Run("Cancelled is terminal", func(t *testing.T) {
		assert.False(t, EventStatusCancelled.CanTransitionTo(EventStatusDraft))
		assert.False(t, EventStatusCancelled.CanTransitionTo(EventStatusPublished))
	})
}

func TestEvent_Capacity(t *testing.T) {
	event := &Event{Capacity: 10, CurrentParticipants: 9}
	assert.True(t, event.HasCapacity())
	assert.Equal(t, 1, event.RemainingSpots())

	event.CurrentParticipants = 10
	assert.False(t, event.HasCapacity())
	assert.Equal(t, 0, event.RemainingSpots())

	// 超賣後剩餘名額不顯示負數
	event.CurrentParticipants = 11
	assert.Equal(t, 0, event.RemainingSpots())
}

func TestEvent_IsFree(t *testing.T) {
	assert.True(t, (&Event{Price: 0}).IsFree())
	assert.False(t, (&Event{Price: 25.5}).IsFree())
}

func TestEvent_ReadyToPublish(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)

	assert.True(t, (&Event{Title: "Go Meetup", StartDatetime: &start}).ReadyToPublish())
	assert.False(t, (&Event{Title: "", StartDatetime: &start}).ReadyToPublish())
	assert.False(t, (&Event{Title: "Go Meetup"}).ReadyToPublish())
}

func TestEvent_ToResponse(t *testing.T) {
	event := &Event{
		ID:                  uuid.New(),
		Title:               "Go Meetup",
		Capacity:            100,
		CurrentParticipants: 40,
		Price:               10,
		Currency:            "EUR",
		Status:              EventStatusPublished,
	}

	resp := event.ToResponse()
	assert.Equal(t, event.ID, resp.ID)
	assert.Equal(t, 60, resp.RemainingSpots)
	assert.Equal(t, EventStatusPublished, resp.Status)
}

func TestListEventsParams_Normalize(t *testing.T) {
	p := ListEventsParams{}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = ListEventsParams{Page: -1, Limit: 500}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = ListEventsParams{Page: 3, Limit: 50}
	p.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.Limit)
}
