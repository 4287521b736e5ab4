package composer

import (
	"batch-schedule-service/internal/app/models"
	"sort"
)

// WeeklySchedule is an ordered list of TimeWindow entries, one per day, kept
// sorted ascending by day order. The slice order is the serialized order.
type WeeklySchedule struct {
	entries          []models.TimeWindow
	applyUniformTime bool
}

func NewWeeklySchedule() *WeeklySchedule {
	return &WeeklySchedule{}
}

// LoadWeeklySchedule builds a schedule from persisted windows. Windows are sorted
// by day order, later duplicates of a day are dropped and every entry is editable.
func LoadWeeklySchedule(windows []models.TimeWindow) *WeeklySchedule {
	schedule := &WeeklySchedule{entries: normalize(windows)}
	for i := range schedule.entries {
		schedule.entries[i].Editable = true
	}
	return schedule
}

// RestoreWeeklySchedule rebuilds a schedule from a session snapshot, keeping the
// lock flags and the uniform-apply mode.
func RestoreWeeklySchedule(entries []models.TimeWindow, applyUniformTime bool) *WeeklySchedule {
	schedule := &WeeklySchedule{
		entries:          normalize(entries),
		applyUniformTime: applyUniformTime,
	}
	if len(schedule.entries) > 0 {
		schedule.entries[0].Editable = true
	}
	return schedule
}

func normalize(windows []models.TimeWindow) []models.TimeWindow {
	entries := make([]models.TimeWindow, 0, len(windows))
	seen := make(map[string]struct{}, len(windows))
	for _, window := range windows {
		if _, ok := seen[window.Day.ID]; ok {
			continue
		}
		seen[window.Day.ID] = struct{}{}
		entries = append(entries, window)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return Before(entries[i].Day, entries[j].Day)
	})
	return entries
}

// Entries returns a copy of the current entries in order.
func (s *WeeklySchedule) Entries() []models.TimeWindow {
	entries := make([]models.TimeWindow, len(s.entries))
	copy(entries, s.entries)
	return entries
}

func (s *WeeklySchedule) Len() int {
	return len(s.entries)
}

func (s *WeeklySchedule) ApplyUniformTime() bool {
	return s.applyUniformTime
}

func (s *WeeklySchedule) Entry(index int) (models.TimeWindow, bool) {
	if index < 0 || index >= len(s.entries) {
		return models.TimeWindow{}, false
	}
	return s.entries[index], true
}

// IndexOf returns the position of the entry for dayID, or -1.
func (s *WeeklySchedule) IndexOf(dayID string) int {
	for i, entry := range s.entries {
		if entry.Day.ID == dayID {
			return i
		}
	}
	return -1
}

func (s *WeeklySchedule) IsValid() bool {
	return ScheduleIsValid(s.entries)
}

// insert places window right after the last entry with a smaller day order,
// or at 0 when there is none, and returns its position.
func (s *WeeklySchedule) insert(window models.TimeWindow) int {
	position := 0
	for i, entry := range s.entries {
		if entry.Day.Order < window.Day.Order {
			position = i + 1
		}
	}

	s.entries = append(s.entries, models.TimeWindow{})
	copy(s.entries[position+1:], s.entries[position:])
	s.entries[position] = window
	return position
}

func (s *WeeklySchedule) removeAt(index int) {
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
}

func (s *WeeklySchedule) unlockAll() {
	for i := range s.entries {
		s.entries[i].Editable = true
	}
}
