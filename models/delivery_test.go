package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatusNext_LinearChain(t *testing.T) {
	chain := []DeliveryStatus{
		DeliveryPending,
		DeliveryCooking,
		DeliveryPacked,
		DeliveryOutForDelivery,
		DeliveryDelivered,
	}

	for i := 0; i < len(chain)-1; i++ {
		next, ok := chain[i].Next()
		assert.True(t, ok)
		assert.Equal(t, chain[i+1], next)
	}
}

func TestDeliveryStatusNext_TerminalStatuses(t *testing.T) {
	_, ok := DeliveryDelivered.Next()
	assert.False(t, ok)

	_, ok = DeliverySkipped.Next()
	assert.False(t, ok)

	assert.True(t, DeliveryDelivered.IsTerminal())
	assert.True(t, DeliverySkipped.IsTerminal())
	assert.False(t, DeliveryPending.IsTerminal())
	assert.False(t, DeliveryOutForDelivery.IsTerminal())
}
