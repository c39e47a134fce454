package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInscriptionStatus_CanTransitionTo(t *testing.T) {
	t.Run("Pending", func(t *testing.T) {
		assert.True(t, InscriptionStatusPending.CanTransitionTo(InscriptionStatusConfirmed))
		assert.True(t, InscriptionStatusPending.CanTransitionTo(InscriptionStatusCancelled))
	})

	t.Run("Confirmed", func(t *testing.T) {
		assert.True(t, InscriptionStatusConfirmed.CanTransitionTo(InscriptionStatusCancelled))
		assert.False(t, InscriptionStatusConfirmed.CanTransitionTo(InscriptionStatusPending))
	})

	t.Run("Cancelled allows reactivation", func(t *testing.T) {
		assert.True(t, InscriptionStatusCancelled.CanTransitionTo(InscriptionStatusPending))
		assert.True(t, InscriptionStatusCancelled.CanTransitionTo(InscriptionStatusConfirmed))
	})
}

func TestInscription_IsActive(t *testing.T) {
	assert.True(t, (&Inscription{Status: InscriptionStatusPending}).IsActive())
	assert.True(t, (&Inscription{Status: InscriptionStatusConfirmed}).IsActive())
	assert.False(t, (&Inscription{Status: InscriptionStatusCancelled}).IsActive())
}
