package composer

import (
	"batch-schedule-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	monday    = models.WeekDay{ID: "mon", Label: "Monday", Order: 1}
	tuesday   = models.WeekDay{ID: "tue", Label: "Tuesday", Order: 2}
	wednesday = models.WeekDay{ID: "wed", Label: "Wednesday", Order: 3}
	thursday  = models.WeekDay{ID: "thu", Label: "Thursday", Order: 4}
	friday    = models.WeekDay{ID: "fri", Label: "Friday", Order: 5}
	saturday  = models.WeekDay{ID: "sat", Label: "Saturday", Order: 6}
	sunday    = models.WeekDay{ID: "sun", Label: "Sunday", Order: 7}

	allDays = []models.WeekDay{monday, tuesday, wednesday, thursday, friday, saturday, sunday}
)

func newTestCatalog(t *testing.T) *DayCatalog {
	t.Helper()
	catalog, err := NewDayCatalog(allDays)
	require.NoError(t, err)
	return catalog
}

func tod(value string) models.TimeOfDay {
	return models.MustParseTimeOfDay(value)
}

func window(day models.WeekDay, from, to string) models.TimeWindow {
	w := models.NewTimeWindow(day)
	w.FromTime = tod(from)
	w.ToTime = tod(to)
	return w
}

func dayIDs(entries []models.TimeWindow) []string {
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.Day.ID
	}
	return ids
}
