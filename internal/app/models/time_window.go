package models

import "batch-schedule-service/internal/pkg/dto/responses"

// TimeWindow is one day of a weekly schedule. ID stays empty until the window
// has been persisted.
type TimeWindow struct {
	ID       string    `json:"id,omitempty"`
	Day      WeekDay   `json:"day"`
	FromTime TimeOfDay `json:"fromTime"`
	ToTime   TimeOfDay `json:"toTime"`
	Editable bool      `json:"editable"`
}

func NewTimeWindow(day WeekDay) TimeWindow {
	return TimeWindow{
		Day:      day,
		Editable: true,
	}
}

func (w TimeWindow) Get(field TimeField) TimeOfDay {
	if field == TimeFieldTo {
		return w.ToTime
	}
	return w.FromTime
}

func (w *TimeWindow) Set(field TimeField, value TimeOfDay) {
	if field == TimeFieldTo {
		w.ToTime = value
		return
	}
	w.FromTime = value
}

func (w *TimeWindow) CopyTimesFrom(source TimeWindow) {
	w.FromTime = source.FromTime
	w.ToTime = source.ToTime
}

func (w TimeWindow) ConvertIntoResponse() responses.TimeWindow {
	return responses.TimeWindow{
		ID:       w.ID,
		DayID:    w.Day.ID,
		DayLabel: w.Day.Label,
		DayOrder: w.Day.Order,
		FromTime: w.FromTime.String(),
		ToTime:   w.ToTime.String(),
		Editable: w.Editable,
	}
}

func (w TimeWindow) ConvertIntoScheduledDay() ScheduledDay {
	return ScheduledDay{
		ID:       w.ID,
		DayID:    w.Day.ID,
		FromTime: w.FromTime,
		ToTime:   w.ToTime,
	}
}
