package customerorder_test

import (
	"testing"
	"time"

	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, price kernel.Money) *customerorder.CustomerOrder {
	t.Helper()
	o, err := customerorder.NewCustomerOrder(kernel.NewUUID(), kernel.NewUUID(), " Nguyen Van A, 0901234567 ", price, nil, now)
	require.NoError(t, err)
	return o
}

func TestNewCustomerOrder(t *testing.T) {
	t.Run("should create pending order at full price", func(t *testing.T) {
		o := newOrder(t, 620_000_000)

		require.NoError(t, o.Validate())
		assert.Equal(t, customerorder.Pending, o.Status())
		assert.Equal(t, "Nguyen Van A, 0901234567", o.CustomerInfo())
		assert.Equal(t, kernel.Money(620_000_000), o.PriceAfter())
		assert.Zero(t, o.DiscountApplied())
		assert.Nil(t, o.VoucherID())
	})

	t.Run("should reject zero price and empty customer", func(t *testing.T) {
		o, err := customerorder.NewCustomerOrder(kernel.NewUUID(), kernel.NewUUID(), "", 0, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}

func TestCustomerOrder_ApplyDiscount(t *testing.T) {
	t.Run("should lock in the discount", func(t *testing.T) {
		o := newOrder(t, 620_000_000)
		voucherID := kernel.NewUUID()

		require.NoError(t, o.ApplyDiscount(voucherID, 10_000_000))

		assert.True(t, o.VoucherID().IsEqual(voucherID))
		assert.Equal(t, kernel.Money(10_000_000), o.DiscountApplied())
		assert.Equal(t, kernel.Money(610_000_000), o.PriceAfter())
	})

	t.Run("should clamp price after at zero", func(t *testing.T) {
		o := newOrder(t, 5_000)

		require.NoError(t, o.ApplyDiscount(kernel.NewUUID(), 10_000))

		assert.Zero(t, o.PriceAfter())
	})

	t.Run("should reject negative discount", func(t *testing.T) {
		o := newOrder(t, 5_000)

		assert.ErrorIs(t, o.ApplyDiscount(kernel.NewUUID(), -1), errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject when order is closed", func(t *testing.T) {
		o := newOrder(t, 5_000)
		require.NoError(t, o.Cancel(now))

		assert.ErrorIs(t, o.ApplyDiscount(kernel.NewUUID(), 1_000), errs.ErrPreconditionFailed)
	})
}

func TestCustomerOrder_Transitions(t *testing.T) {
	later := now.Add(time.Hour)

	o := newOrder(t, 1_000_000)
	require.NoError(t, o.Complete(later))
	assert.Equal(t, customerorder.Completed, o.Status())
	assert.Equal(t, later, o.UpdatedAt())

	err := o.Cancel(later)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "CustomerOrder cannot move from COMPLETED to CANCELLED")

	c := newOrder(t, 1_000_000)
	require.NoError(t, c.Cancel(later))
	assert.ErrorIs(t, c.Complete(later), errs.ErrInvalidTransition)
}

func TestParseStatus(t *testing.T) {
	s, err := customerorder.ParseStatus("CANCELLED")
	require.NoError(t, err)
	assert.Equal(t, customerorder.Cancelled, s)

	_, err = customerorder.ParseStatus("DELIVERED")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
