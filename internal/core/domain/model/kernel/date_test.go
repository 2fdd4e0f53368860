package kernel_test

import (
	"testing"
	"time"

	"dealership/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_UsesLocationOfTime(t *testing.T) {
	hcm := time.FixedZone("ICT", 7*60*60)
	// 2025-03-01 01:00 in Ho Chi Minh City is still 2025-02-28 in UTC.
	local := time.Date(2025, time.March, 1, 1, 0, 0, 0, hcm)

	assert.Equal(t, "2025-03-01", kernel.DateOf(local).String())
	assert.Equal(t, "2025-02-28", kernel.DateOf(local.UTC()).String())
}

func TestDate_Compare(t *testing.T) {
	d := kernel.NewDate(2025, time.June, 10)

	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.False(t, d.Before(d))
	assert.False(t, d.After(d))
	assert.True(t, d.Equal(kernel.DateOf(time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC))))
}

func TestParseDate(t *testing.T) {
	d, err := kernel.ParseDate("2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, kernel.NewDate(2025, time.December, 31), d)

	_, err = kernel.ParseDate("31/12/2025")
	require.Error(t, err)
}

func TestDatePtr_RoundTrip(t *testing.T) {
	assert.Nil(t, kernel.DatePtr(nil))
	assert.Nil(t, kernel.TimePtr(nil))

	d := kernel.NewDate(2024, time.February, 29)
	assert.Equal(t, d, *kernel.DatePtr(kernel.TimePtr(&d)))
}
