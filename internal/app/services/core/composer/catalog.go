package composer

import (
	"batch-schedule-service/internal/app/models"
	"fmt"
	"sort"
)

const DaysInWeek = 7

// DayCatalog is the read-only ordered set of weekdays shared by both composers.
type DayCatalog struct {
	days  []models.WeekDay
	index map[string]int
}

func NewDayCatalog(days []models.WeekDay) (*DayCatalog, error) {
	if len(days) != DaysInWeek {
		return nil, fmt.Errorf("%w: got %d days", ErrInvalidCatalog, len(days))
	}

	sorted := make([]models.WeekDay, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	index := make(map[string]int, len(sorted))
	for i, day := range sorted {
		if day.ID == "" {
			return nil, fmt.Errorf("%w: day at position %d has no id", ErrInvalidCatalog, i)
		}
		if day.Order != i+1 {
			return nil, fmt.Errorf("%w: day %s has order %d", ErrInvalidCatalog, day.ID, day.Order)
		}
		if _, exists := index[day.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate day %s", ErrInvalidCatalog, day.ID)
		}
		index[day.ID] = i
	}

	return &DayCatalog{
		days:  sorted,
		index: index,
	}, nil
}

func (c *DayCatalog) Days() []models.WeekDay {
	days := make([]models.WeekDay, len(c.days))
	copy(days, c.days)
	return days
}

func (c *DayCatalog) Len() int {
	return len(c.days)
}

func (c *DayCatalog) At(index int) (models.WeekDay, bool) {
	if index < 0 || index >= len(c.days) {
		return models.WeekDay{}, false
	}
	return c.days[index], true
}

func (c *DayCatalog) Lookup(dayID string) (models.WeekDay, bool) {
	i, ok := c.index[dayID]
	if !ok {
		return models.WeekDay{}, false
	}
	return c.days[i], true
}

// IndexOf returns the catalog position of dayID, or -1.
func (c *DayCatalog) IndexOf(dayID string) int {
	i, ok := c.index[dayID]
	if !ok {
		return -1
	}
	return i
}

// Before reports whether a comes before b in canonical order.
func Before(a, b models.WeekDay) bool {
	return a.Order < b.Order
}

// Resolve turns persisted days into windows. Ids of days missing from the
// catalog are returned separately.
func (c *DayCatalog) Resolve(days []models.ScheduledDay) ([]models.TimeWindow, []string) {
	windows := make([]models.TimeWindow, 0, len(days))
	var unknown []string
	for _, persisted := range days {
		day, ok := c.Lookup(persisted.DayID)
		if !ok {
			unknown = append(unknown, persisted.DayID)
			continue
		}
		windows = append(windows, models.TimeWindow{
			ID:       persisted.ID,
			Day:      day,
			FromTime: persisted.FromTime,
			ToTime:   persisted.ToTime,
			Editable: true,
		})
	}
	return windows, unknown
}
