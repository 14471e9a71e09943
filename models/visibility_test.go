package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProductVisibility(t *testing.T) {
	now := time.Now()

	active := Product{IsActive: true}
	assert.Equal(t, VisibilityActive, active.Visibility())

	flagged := Product{IsActive: false}
	assert.Equal(t, VisibilityDisabled, flagged.Visibility())

	stamped := Product{IsActive: true, DeletedAt: &now}
	assert.Equal(t, VisibilityDisabled, stamped.Visibility())
}

func TestVisibilityValid(t *testing.T) {
	assert.True(t, VisibilityActive.Valid())
	assert.True(t, VisibilityDisabled.Valid())
	assert.False(t, Visibility("archived").Valid())
	assert.False(t, Visibility("").Valid())
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestDeliveryTypeValid(t *testing.T) {
	assert.True(t, DeliveryTypeDelivery.Valid())
	assert.True(t, DeliveryTypePickup.Valid())
	assert.False(t, DeliveryType("courier").Valid())
}
