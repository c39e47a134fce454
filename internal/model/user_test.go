package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequester_CanManage(t *testing.T) {
	ownerID := uuid.New()

	t.Run("owner can manage own resource", func(t *testing.T) {
		requester := Requester{ID: ownerID, Role: RoleParticipant}
		assert.True(t, requester.CanManage(ownerID))
	})

	t.Run("admin can manage any resource", func(t *testing.T) {
		requester := Requester{ID: uuid.New(), Role: RoleAdmin}
		assert.True(t, requester.CanManage(ownerID))
	})

	t.Run("other users cannot", func(t *testing.T) {
		requester := Requester{ID: uuid.New(), Role: RoleOrganizer}
		assert.False(t, requester.CanManage(ownerID))
	})
}
