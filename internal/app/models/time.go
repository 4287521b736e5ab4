package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	timeOfDayLayout      = "15:04:05"
	timeOfDayShortLayout = "15:04"
)

// TimeOfDay is a wall-clock time stored as "HH:mm:ss". The zero value means unset.
type TimeOfDay string

// ParseTimeOfDay accepts "HH:mm" or "HH:mm:ss". An empty input yields the unset value.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	for _, layout := range []string{timeOfDayLayout, timeOfDayShortLayout} {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return TimeOfDay(parsed.Format(timeOfDayLayout)), nil
		}
	}
	return "", fmt.Errorf("invalid time of day %q, expected HH:mm or HH:mm:ss", value)
}

func MustParseTimeOfDay(value string) TimeOfDay {
	t, err := ParseTimeOfDay(value)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) IsSet() bool {
	return t != ""
}

// Display strips the trailing seconds.
func (t TimeOfDay) Display() string {
	if len(t) == len(timeOfDayLayout) {
		return string(t[:len(timeOfDayShortLayout)])
	}
	return string(t)
}

func (t TimeOfDay) String() string {
	return string(t)
}

type TimeField string

const (
	TimeFieldFrom TimeField = "fromTime"
	TimeFieldTo   TimeField = "toTime"
)

func (f TimeField) IsValid() bool {
	return f == TimeFieldFrom || f == TimeFieldTo
}

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (m *TimeModel) SetCreatedAtUpdatedAt() {
	currentTime := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = currentTime
	}
	m.UpdatedAt = currentTime
}
