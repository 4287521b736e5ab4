package responses

import "time"

type WeekDay struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

type TimeWindow struct {
	ID       string `json:"id,omitempty"`
	DayID    string `json:"dayId"`
	DayLabel string `json:"dayLabel"`
	DayOrder int    `json:"dayOrder"`
	FromTime string `json:"fromTime"`
	ToTime   string `json:"toTime"`
	Editable bool   `json:"editable"`
}

type BatchScheduleSession struct {
	SessionID        string       `json:"sessionId"`
	BatchID          string       `json:"batchId"`
	ApplyUniformTime bool         `json:"applyUniformTime"`
	Entries          []TimeWindow `json:"entries"`
	IsValid          bool         `json:"isValid"`
	Alerts           []string     `json:"alerts,omitempty"`
}

type OverlaySlot struct {
	Index    int         `json:"index"`
	Day      WeekDay     `json:"day"`
	IsMarked bool        `json:"isMarked"`
	Window   *TimeWindow `json:"window,omitempty"`
}

type ModuleScheduleSession struct {
	SessionID        string        `json:"sessionId"`
	BatchID          string        `json:"batchId"`
	ModuleID         string        `json:"moduleId"`
	ApplyUniformTime bool          `json:"applyUniformTime"`
	MarkedCount      int           `json:"markedCount"`
	Slots            []OverlaySlot `json:"slots"`
	IsValid          bool          `json:"isValid"`
	Alerts           []string      `json:"alerts,omitempty"`
}

type SavedSchedule struct {
	BatchID  string       `json:"batchId"`
	ModuleID string       `json:"moduleId,omitempty"`
	Days     []TimeWindow `json:"days"`
	SavedAt  time.Time    `json:"savedAt"`
}
