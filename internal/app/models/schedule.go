package models

import (
	"batch-schedule-service/internal/pkg/dto/responses"
	"time"
)

// ScheduledDay is the persisted form of a TimeWindow. The day is stored by id
// and resolved against the day catalog when loaded.
type ScheduledDay struct {
	ID       string    `json:"id" bson:"id"`
	DayID    string    `json:"dayId" bson:"dayId"`
	FromTime TimeOfDay `json:"fromTime" bson:"fromTime"`
	ToTime   TimeOfDay `json:"toTime" bson:"toTime"`
}

type BatchSchedule struct {
	BatchID   string         `json:"batchId" bson:"_id"`
	Days      []ScheduledDay `json:"days" bson:"days"`
	TimeModel `bson:",inline"`
}

type ModuleSchedule struct {
	ID        string         `json:"id" bson:"_id"`
	BatchID   string         `json:"batchId" bson:"batchId"`
	ModuleID  string         `json:"moduleId" bson:"moduleId"`
	Days      []ScheduledDay `json:"days" bson:"days"`
	TimeModel `bson:",inline"`
}

func ModuleScheduleID(batchID, moduleID string) string {
	return batchID + ":" + moduleID
}

// ScheduleSavedEvent is published and archived after every successful submit.
type ScheduleSavedEvent struct {
	Kind      string         `json:"kind"`
	BatchID   string         `json:"batchId"`
	ModuleID  string         `json:"moduleId,omitempty"`
	SessionID string         `json:"sessionId"`
	Days      []ScheduledDay `json:"days"`
	SavedAt   time.Time      `json:"savedAt"`
}

func (e ScheduleSavedEvent) ConvertIntoResponse(windows []TimeWindow) responses.SavedSchedule {
	days := make([]responses.TimeWindow, len(windows))
	for i, window := range windows {
		days[i] = window.ConvertIntoResponse()
	}
	return responses.SavedSchedule{
		BatchID:  e.BatchID,
		ModuleID: e.ModuleID,
		Days:     days,
		SavedAt:  e.SavedAt,
	}
}

// PrepareForPersistence gives every unsaved window in place an id from newID
// and returns the persisted form of all windows.
func PrepareForPersistence(windows []TimeWindow, newID func() string) []ScheduledDay {
	days := make([]ScheduledDay, len(windows))
	for i := range windows {
		if windows[i].ID == "" {
			windows[i].ID = newID()
		}
		days[i] = windows[i].ConvertIntoScheduledDay()
	}
	return days
}
