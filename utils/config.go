package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/models"
)

// Engine configuration, environment-level with in-code defaults. The .env
// file is loaded once by db.InitDB.

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		LogError(err, "Invalid value for "+key+", using the default")
		return fallback
	}
	return value
}

// SkipCutoff is the minimum lead time before a scheduled delivery for a
// skip request to remain eligible.
func SkipCutoff() time.Duration {
	return time.Duration(envInt("SKIP_CUTOFF_MINUTES", 120)) * time.Minute
}

// PauseCutoff is the minimum lead time before the next active delivery for
// a pause request to remain eligible.
func PauseCutoff() time.Duration {
	return time.Duration(envInt("PAUSE_CUTOFF_MINUTES", 120)) * time.Minute
}

// ServingsForCadence maps a subscription cadence to its committed serving
// count (weekly plans ship 5, monthly plans 20 unless overridden).
func ServingsForCadence(cadence models.Cadence) int {
	switch cadence {
	case models.MonthlyCadence:
		return envInt("MONTHLY_SERVINGS", 20)
	default:
		return envInt("WEEKLY_SERVINGS", 5)
	}
}

// MaterializeDaysAhead is how far the day-ahead job looks when promoting
// planned placeholders into real delivery rows.
func MaterializeDaysAhead() int {
	return envInt("MATERIALIZE_DAYS_AHEAD", 1)
}
