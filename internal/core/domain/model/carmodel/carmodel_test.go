package carmodel_test

import (
	"testing"

	"dealership/internal/core/domain/model/carmodel"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarModel(t *testing.T) {
	msrp := kernel.Money(620_000_000)

	c, err := carmodel.NewCarModel(kernel.NewUUID(), "Toyota", "Corolla", " 1.8 AT ", &msrp)

	require.NoError(t, err)
	assert.Equal(t, "Toyota Corolla 1.8 AT", c.DisplayName())
	assert.Equal(t, msrp, *c.MSRP())
}

func TestNewCarModel_Invalid(t *testing.T) {
	negative := kernel.Money(-1)

	_, err := carmodel.NewCarModel(kernel.NewUUID(), "", "", "", &negative)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCarModel_DisplayNameWithoutVariant(t *testing.T) {
	c, err := carmodel.NewCarModel(kernel.NewUUID(), "Honda", "Civic", "", nil)

	require.NoError(t, err)
	assert.Equal(t, "Honda Civic", c.DisplayName())
}
