package errs_test

import (
	"errors"
	"testing"

	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("voucher", "FLAT10M")

		assert.Equal(t, "voucher", err.ParamName)
		assert.Equal(t, "object not found: FLAT10M", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("vehicle", "42", cause)

		assert.Equal(t,
			"object not found: param is: vehicle, ID is: 42 (cause: connection reset)",
			err.Error())
		assert.Equal(t, cause, err.Cause)
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("code", "PCT05")

	assert.Equal(t, "object already exists: code is PCT05", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestValueErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("vin"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: vin",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("percent", errors.New("must be positive")),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: percent (cause: must be positive)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("title"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: title",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("percent", 150, 0, 100),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 150 is percent, min value is 0, max value is 100",
		},
		{
			name:     "version",
			err:      errs.NewVersionIsInvalidErrorWithCause("voucher", errors.New("stale")),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: voucher (cause: stale)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestValueIsOutOfRangeError_SanitizesNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("note", "line one\nline two", 0, 10)

	assert.Contains(t, err.Error(), "line one line two")
	assert.NotContains(t, err.Error(), "\n")
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("PurchaseOrder", "DRAFT", "CONFIRMED")

	assert.Equal(t, "PurchaseOrder", err.EntityKind)
	assert.Equal(t, "DRAFT", err.From)
	assert.Equal(t, "CONFIRMED", err.To)
	assert.Equal(t,
		"invalid status transition: PurchaseOrder cannot move from DRAFT to CONFIRMED",
		err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	var target *errs.InvalidTransitionError
	require.ErrorAs(t, errors.Join(errors.New("other"), err), &target)
	assert.Equal(t, "CONFIRMED", target.To)
}

func TestPreconditionFailedError(t *testing.T) {
	err := errs.NewPreconditionFailedError("VehicleUnit", "status ON_ORDER is not AT_DEALER")

	assert.Equal(t,
		"precondition failed: VehicleUnit status ON_ORDER is not AT_DEALER",
		err.Error())
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.NotErrorIs(t, err, errs.ErrInvalidTransition)
}
