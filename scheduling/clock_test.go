package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameDate_NormalizesToUTC(t *testing.T) {
	// Stored delivery dates are UTC midnight; the wall clock may not be
	deliveryDate := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	// 22:30 on June 11 in UTC-3 is already June 12 in UTC
	behindUTC := time.FixedZone("UTC-3", -3*60*60)
	assert.False(t, SameDate(deliveryDate, time.Date(2024, 6, 11, 22, 30, 0, 0, behindUTC)))

	// 01:30 on June 12 in UTC+2 is still June 11 in UTC
	aheadUTC := time.FixedZone("UTC+2", 2*60*60)
	assert.True(t, SameDate(deliveryDate, time.Date(2024, 6, 12, 1, 30, 0, 0, aheadUTC)))
}

func TestDateOf_NormalizesToUTC(t *testing.T) {
	aheadUTC := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2024, 6, 12, 1, 30, 0, 0, aheadUTC)

	got := DateOf(local)

	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestAt_BuildsUTCInstant(t *testing.T) {
	behindUTC := time.FixedZone("UTC-3", -3*60*60)
	date := time.Date(2024, 6, 11, 10, 0, 0, 0, behindUTC)

	got := At(date, "18:00")

	assert.Equal(t, time.Date(2024, 6, 11, 18, 0, 0, 0, time.UTC), got)
}

func TestAt_UnparseableTimeFallsBackToMidnight(t *testing.T) {
	date := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, date, At(date, "late afternoon"))
}
