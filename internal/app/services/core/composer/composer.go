package composer

import (
	"batch-schedule-service/internal/app/models"
	"fmt"
)

// ScheduleComposer runs the edit operations of a batch timetable. The anchor is
// the entry at index 0, whatever day it holds.
//
// A composer is not safe for concurrent use.
type ScheduleComposer struct {
	schedule  *WeeklySchedule
	confirmer Confirmer
	notifier  Notifier
}

// NewScheduleComposer wraps schedule. A nil confirmer declines every removal
// and a nil notifier drops alerts.
func NewScheduleComposer(schedule *WeeklySchedule, confirmer Confirmer, notifier Notifier) *ScheduleComposer {
	if schedule == nil {
		schedule = NewWeeklySchedule()
	}
	if confirmer == nil {
		confirmer = StaticConfirmer(false)
	}
	if notifier == nil {
		notifier = &AlertRecorder{}
	}
	return &ScheduleComposer{
		schedule:  schedule,
		confirmer: confirmer,
		notifier:  notifier,
	}
}

func (c *ScheduleComposer) Schedule() *WeeklySchedule {
	return c.schedule
}

// ToggleDay removes the entry for day when present, after confirmation, and
// inserts a new entry in day order otherwise.
func (c *ScheduleComposer) ToggleDay(day models.WeekDay) error {
	if index := c.schedule.IndexOf(day.ID); index >= 0 {
		return c.removeDay(index, day)
	}
	c.insertDay(day)
	return nil
}

func (c *ScheduleComposer) removeDay(index int, day models.WeekDay) error {
	if !c.confirmer.Confirm(fmt.Sprintf(RemoveDayConfirmMessage, day.Label)) {
		return ErrUserRejected
	}

	c.schedule.removeAt(index)

	// the remaining entries may be locked to the anchor that just left
	if index == 0 && c.schedule.Len() > 0 {
		c.schedule.applyUniformTime = false
		c.schedule.unlockAll()
	}
	return nil
}

func (c *ScheduleComposer) insertDay(day models.WeekDay) {
	position := c.schedule.insert(models.NewTimeWindow(day))
	if !c.schedule.applyUniformTime || c.schedule.Len() < 2 {
		return
	}

	entries := c.schedule.entries
	if position > 0 {
		entries[position].CopyTimesFrom(entries[0])
		entries[position].Editable = false
		return
	}

	// new anchor: it takes the displaced anchor's times, the displaced one keeps them and locks
	entries[0].CopyTimesFrom(entries[1])
	entries[0].Editable = true
	entries[1].Editable = false
}

// SetApplyToAll switches uniform-apply. Enabling needs an anchor with both times
// set and different, otherwise the operator is alerted, ErrInvalidAnchorState is
// returned and nothing changes.
func (c *ScheduleComposer) SetApplyToAll(enable bool) error {
	if !enable {
		c.schedule.applyUniformTime = false
		c.schedule.unlockAll()
		return nil
	}

	anchor, ok := c.schedule.Entry(0)
	if !ok || !isValidAnchor(anchor) {
		c.notifier.Alert(AnchorAlertMessage)
		return ErrInvalidAnchorState
	}

	c.schedule.applyUniformTime = true
	entries := c.schedule.entries
	entries[0].Editable = true
	for i := 1; i < len(entries); i++ {
		entries[i].CopyTimesFrom(anchor)
		entries[i].Editable = false
	}
	return nil
}

// OnTimeChange propagates the anchor's times to every other entry when the
// anchor was edited under uniform-apply.
func (c *ScheduleComposer) OnTimeChange(index int, field models.TimeField) {
	if index != 0 || c.schedule.Len() < 2 || !c.schedule.applyUniformTime {
		return
	}

	entries := c.schedule.entries
	for i := 1; i < len(entries); i++ {
		entries[i].CopyTimesFrom(entries[0])
	}
}

// FillEmptyFromAnchor copies the anchor's field into every other entry where
// that field is still unset. Set values are never overwritten.
func (c *ScheduleComposer) FillEmptyFromAnchor(field models.TimeField) {
	anchor, ok := c.schedule.Entry(0)
	if !ok {
		return
	}
	value := anchor.Get(field)
	if !value.IsSet() {
		return
	}

	entries := c.schedule.entries
	for i := 1; i < len(entries); i++ {
		if !entries[i].Get(field).IsSet() {
			entries[i].Set(field, value)
		}
	}
}

// SetTime stores value on the entry at index. Edits of the anchor fill empty
// fields first and then propagate under uniform-apply.
func (c *ScheduleComposer) SetTime(index int, field models.TimeField, value models.TimeOfDay) {
	if index < 0 || index >= c.schedule.Len() {
		return
	}

	c.schedule.entries[index].Set(field, value)
	if index == 0 {
		c.FillEmptyFromAnchor(field)
	}
	c.OnTimeChange(index, field)
}
