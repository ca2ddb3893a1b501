package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusPlaced, OrderStatusAccepted))
	assert.True(t, CanTransition(OrderStatusPlaced, OrderStatusRejected))
	assert.True(t, CanTransition(OrderStatusAccepted, OrderStatusReady))
	assert.True(t, CanTransition(OrderStatusReady, OrderStatusCompleted))

	// 不在表里的流转一律拒绝
	assert.False(t, CanTransition(OrderStatusPlaced, OrderStatusReady))
	assert.False(t, CanTransition(OrderStatusCompleted, OrderStatusPlaced))
	assert.False(t, CanTransition(OrderStatusRejected, OrderStatusAccepted))
	assert.False(t, CanTransition(OrderStatusAccepted, OrderStatusAccepted))
}
