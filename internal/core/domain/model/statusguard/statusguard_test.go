package statusguard_test

import (
	"testing"

	"dealership/internal/core/domain/model/statusguard"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = map[statusguard.Kind][]string{
	statusguard.PurchaseOrder: {"DRAFT", "SUBMITTED", "CONFIRMED", "CANCELLED"},
	statusguard.VehicleUnit:   {"ON_ORDER", "AT_DEALER", "DELIVERED"},
	statusguard.CustomerOrder: {"PENDING", "COMPLETED", "CANCELLED"},
	statusguard.Delivery:      {"PENDING", "RESERVED", "DELIVERED", "COMPLETED", "CANCELLED"},
}

func TestCanTransition_AllowedEdges(t *testing.T) {
	allowed := []struct {
		kind     statusguard.Kind
		from, to string
	}{
		{statusguard.PurchaseOrder, "DRAFT", "SUBMITTED"},
		{statusguard.PurchaseOrder, "SUBMITTED", "CONFIRMED"},
		{statusguard.PurchaseOrder, "DRAFT", "CANCELLED"},
		{statusguard.PurchaseOrder, "SUBMITTED", "CANCELLED"},
		{statusguard.VehicleUnit, "ON_ORDER", "AT_DEALER"},
		{statusguard.VehicleUnit, "AT_DEALER", "DELIVERED"},
		{statusguard.CustomerOrder, "PENDING", "COMPLETED"},
		{statusguard.CustomerOrder, "PENDING", "CANCELLED"},
		{statusguard.Delivery, "PENDING", "DELIVERED"},
		{statusguard.Delivery, "PENDING", "COMPLETED"},
		{statusguard.Delivery, "RESERVED", "DELIVERED"},
		{statusguard.Delivery, "RESERVED", "COMPLETED"},
		{statusguard.Delivery, "PENDING", "CANCELLED"},
		{statusguard.Delivery, "RESERVED", "CANCELLED"},
	}

	for _, e := range allowed {
		assert.True(t, statusguard.CanTransition(e.kind, e.from, e.to), "%s %s -> %s", e.kind, e.from, e.to)
		require.NoError(t, statusguard.AssertTransition(e.kind, e.from, e.to))
	}
}

func TestCanTransition_TerminalStatesNeverMove(t *testing.T) {
	for kind, statuses := range allStatuses {
		for _, from := range statuses {
			if !statusguard.IsTerminal(kind, from) {
				continue
			}
			for _, to := range statuses {
				assert.False(t, statusguard.CanTransition(kind, from, to), "%s %s -> %s", kind, from, to)
			}
		}
	}
}

func TestCanTransition_NoSelfLoops(t *testing.T) {
	for kind, statuses := range allStatuses {
		for _, s := range statuses {
			assert.False(t, statusguard.CanTransition(kind, s, s), "%s %s -> %s", kind, s, s)
		}
	}
}

func TestCanTransition_RejectedEdges(t *testing.T) {
	t.Run("PO cannot skip SUBMITTED", func(t *testing.T) {
		err := statusguard.AssertTransition(statusguard.PurchaseOrder, "DRAFT", "CONFIRMED")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "PurchaseOrder", transitionErr.EntityKind)
		assert.Equal(t, "DRAFT", transitionErr.From)
		assert.Equal(t, "CONFIRMED", transitionErr.To)
	})

	t.Run("vehicle cannot be marked arrived twice", func(t *testing.T) {
		assert.False(t, statusguard.CanTransition(statusguard.VehicleUnit, "AT_DEALER", "AT_DEALER"))
	})

	t.Run("vehicle cannot skip arrival", func(t *testing.T) {
		assert.False(t, statusguard.CanTransition(statusguard.VehicleUnit, "ON_ORDER", "DELIVERED"))
	})

	t.Run("vehicle cannot go back", func(t *testing.T) {
		assert.False(t, statusguard.CanTransition(statusguard.VehicleUnit, "AT_DEALER", "ON_ORDER"))
	})

	t.Run("PO cannot go back to DRAFT", func(t *testing.T) {
		assert.False(t, statusguard.CanTransition(statusguard.PurchaseOrder, "SUBMITTED", "DRAFT"))
	})
}

func TestCanTransition_UnknownInputs(t *testing.T) {
	assert.False(t, statusguard.CanTransition(statusguard.PurchaseOrder, "draft", "SUBMITTED"))
	assert.False(t, statusguard.CanTransition(statusguard.PurchaseOrder, "DRAFT", "Submitted"))
	assert.False(t, statusguard.CanTransition("Invoice", "DRAFT", "SUBMITTED"))
	assert.False(t, statusguard.CanTransition(statusguard.Delivery, "Delivered", "CANCELLED"))
	assert.False(t, statusguard.IsKnown(statusguard.Delivery, "Delivered"))
	assert.False(t, statusguard.IsTerminal(statusguard.Delivery, "UNKNOWN"))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "PENDING", statusguard.Canonical(statusguard.Delivery, "RESERVED"))
	assert.Equal(t, "DELIVERED", statusguard.Canonical(statusguard.Delivery, "COMPLETED"))
	assert.Equal(t, "COMPLETED", statusguard.Canonical(statusguard.CustomerOrder, "COMPLETED"))
}

func TestAssertDeliveryCreatable(t *testing.T) {
	require.NoError(t, statusguard.AssertDeliveryCreatable("AT_DEALER"))

	for _, status := range []string{"ON_ORDER", "DELIVERED", "at_dealer", ""} {
		err := statusguard.AssertDeliveryCreatable(status)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed, status)
		assert.NotErrorIs(t, err, errs.ErrInvalidTransition)
	}
}

func TestAssertVINAssignable(t *testing.T) {
	require.NoError(t, statusguard.AssertVINAssignable("ON_ORDER"))
	require.NoError(t, statusguard.AssertVINAssignable("AT_DEALER"))
	require.ErrorIs(t, statusguard.AssertVINAssignable("DELIVERED"), errs.ErrPreconditionFailed)
	require.ErrorIs(t, statusguard.AssertVINAssignable("LOST"), errs.ErrPreconditionFailed)
}
