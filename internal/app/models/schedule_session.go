package models

import "time"

// BatchScheduleSession is the redis snapshot of an open batch timetable edit.
type BatchScheduleSession struct {
	ID               string       `json:"id"`
	BatchID          string       `json:"batchId"`
	Entries          []TimeWindow `json:"entries"`
	ApplyUniformTime bool         `json:"applyUniformTime"`
	OpenedAt         time.Time    `json:"openedAt"`
}

// ModuleScheduleSession is the redis snapshot of an open module overlay edit.
type ModuleScheduleSession struct {
	ID               string             `json:"id"`
	BatchID          string             `json:"batchId"`
	ModuleID         string             `json:"moduleId"`
	Slots            []OverlaySlotState `json:"slots"`
	ApplyUniformTime bool               `json:"applyUniformTime"`
	OpenedAt         time.Time          `json:"openedAt"`
}

// OverlaySlotState is one catalog day. A nil Window means the slot is unmarked.
type OverlaySlotState struct {
	Day    WeekDay     `json:"day"`
	Window *TimeWindow `json:"window,omitempty"`
}
