package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	number := NewOrderNumber(now)

	// "ORD" + 14-digit timestamp + 8 hex characters
	require.Len(t, number, 25)
	assert.Equal(t, "ORD20250314092653", number[:17])
	assert.Regexp(t, `^[0-9A-F]{8}$`, number[17:])
}

func TestNewOrderNumber_NonUTCInput(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	now := time.Date(2025, 3, 14, 17, 26, 53, 0, loc)

	number := NewOrderNumber(now)

	// The timestamp portion is always rendered in UTC.
	assert.Equal(t, "ORD20250314092653", number[:17])
}

func TestOrderApplyStatus_StampsTimestamps(t *testing.T) {
	order := &Order{Status: OrderStatusPending}
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	order.ApplyStatus(OrderStatusShipped, now)
	assert.Equal(t, OrderStatusShipped, order.Status)
	require.NotNil(t, order.ShippedAt)
	assert.Equal(t, now, *order.ShippedAt)
	assert.Nil(t, order.DeliveredAt)
	assert.Nil(t, order.CancelledAt)

	later := now.Add(2 * time.Hour)
	order.ApplyStatus(OrderStatusDelivered, later)
	assert.Equal(t, OrderStatusDelivered, order.Status)
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, later, *order.DeliveredAt)

	// The earlier shipped timestamp is untouched.
	assert.Equal(t, now, *order.ShippedAt)
}

func TestOrderApplyStatus_RepeatedTransitionRestamps(t *testing.T) {
	order := &Order{Status: OrderStatusPending}
	first := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	second := first.Add(30 * time.Minute)

	order.ApplyStatus(OrderStatusCancelled, first)
	order.ApplyStatus(OrderStatusCancelled, second)

	require.NotNil(t, order.CancelledAt)
	assert.Equal(t, second, *order.CancelledAt)
}

func TestOrderApplyStatus_NoTimestampForPendingAndConfirmed(t *testing.T) {
	order := &Order{Status: OrderStatusPending}
	now := time.Now()

	order.ApplyStatus(OrderStatusConfirmed, now)
	assert.Equal(t, OrderStatusConfirmed, order.Status)
	assert.Nil(t, order.ShippedAt)
	assert.Nil(t, order.DeliveredAt)
	assert.Nil(t, order.CancelledAt)
}

func TestOrderStatusIsValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
	for _, status := range valid {
		assert.True(t, status.IsValid(), "expected %s to be valid", status)
	}

	assert.False(t, OrderStatus("refunded").IsValid())
	assert.False(t, OrderStatus("").IsValid())
	assert.False(t, OrderStatus("PENDING").IsValid())
}
