package composer

import "batch-schedule-service/internal/app/models"

// OverlaySlot is either unmarked or marked with a window. A marked slot always
// carries a window, possibly with unset times.
type OverlaySlot struct {
	day    models.WeekDay
	window *models.TimeWindow
}

func (s OverlaySlot) Day() models.WeekDay {
	return s.day
}

func (s OverlaySlot) IsMarked() bool {
	return s.window != nil
}

func (s OverlaySlot) Window() (models.TimeWindow, bool) {
	if s.window == nil {
		return models.TimeWindow{}, false
	}
	return *s.window, true
}

// ModuleScheduleOverlay holds one slot per catalog day, index-aligned with the
// catalog. Slots are marked and unmarked, never inserted or removed. The anchor
// is the lowest-index marked slot.
//
// An overlay is not safe for concurrent use.
type ModuleScheduleOverlay struct {
	catalog          *DayCatalog
	slots            []OverlaySlot
	applyUniformTime bool
	notifier         Notifier
}

func NewModuleScheduleOverlay(catalog *DayCatalog, notifier Notifier) *ModuleScheduleOverlay {
	if notifier == nil {
		notifier = &AlertRecorder{}
	}
	slots := make([]OverlaySlot, catalog.Len())
	for i, day := range catalog.days {
		slots[i] = OverlaySlot{day: day}
	}
	return &ModuleScheduleOverlay{
		catalog:  catalog,
		slots:    slots,
		notifier: notifier,
	}
}

// RestoreModuleScheduleOverlay rebuilds an overlay from a session snapshot.
// Snapshot slots are matched to the catalog by day id.
func RestoreModuleScheduleOverlay(catalog *DayCatalog, states []models.OverlaySlotState, applyUniformTime bool, notifier Notifier) *ModuleScheduleOverlay {
	overlay := NewModuleScheduleOverlay(catalog, notifier)
	for _, state := range states {
		index := catalog.IndexOf(state.Day.ID)
		if index < 0 || state.Window == nil {
			continue
		}
		window := *state.Window
		window.Day = overlay.slots[index].day
		overlay.slots[index].window = &window
	}
	overlay.applyUniformTime = applyUniformTime
	if anchor := overlay.anchorIndex(); anchor >= 0 {
		overlay.slots[anchor].window.Editable = true
	}
	return overlay
}

// Patch marks the slot of every persisted window and takes its values.
// Windows for days outside the catalog are ignored.
func (o *ModuleScheduleOverlay) Patch(windows []models.TimeWindow) {
	for _, persisted := range windows {
		index := o.catalog.IndexOf(persisted.Day.ID)
		if index < 0 {
			continue
		}
		window := persisted
		window.Day = o.slots[index].day
		window.Editable = true
		o.slots[index].window = &window
	}
}

func (o *ModuleScheduleOverlay) Len() int {
	return len(o.slots)
}

func (o *ModuleScheduleOverlay) Slots() []OverlaySlot {
	slots := make([]OverlaySlot, len(o.slots))
	for i, slot := range o.slots {
		slots[i] = OverlaySlot{day: slot.day}
		if slot.window != nil {
			window := *slot.window
			slots[i].window = &window
		}
	}
	return slots
}

func (o *ModuleScheduleOverlay) Slot(index int) (OverlaySlot, bool) {
	if index < 0 || index >= len(o.slots) {
		return OverlaySlot{}, false
	}
	return o.Slots()[index], true
}

func (o *ModuleScheduleOverlay) ApplyUniformTime() bool {
	return o.applyUniformTime
}

func (o *ModuleScheduleOverlay) MarkedCount() int {
	count := 0
	for _, slot := range o.slots {
		if slot.IsMarked() {
			count++
		}
	}
	return count
}

func (o *ModuleScheduleOverlay) anchorIndex() int {
	for i, slot := range o.slots {
		if slot.IsMarked() {
			return i
		}
	}
	return -1
}

// OnSlotToggle flips the slot at index. A newly marked slot behind the anchor
// copies the anchor's times and locks under uniform-apply. Unmarking clears the
// slot's values.
func (o *ModuleScheduleOverlay) OnSlotToggle(index int) {
	if index < 0 || index >= len(o.slots) {
		return
	}
	if o.slots[index].IsMarked() {
		o.unmark(index)
		return
	}

	window := models.NewTimeWindow(o.slots[index].day)
	anchor := o.anchorIndex()
	if o.applyUniformTime && anchor >= 0 && anchor < index {
		window.CopyTimesFrom(*o.slots[anchor].window)
		window.Editable = false
	}
	o.slots[index].window = &window
}

// DeleteSlotTiming unmarks the slot at index without asking for confirmation.
func (o *ModuleScheduleOverlay) DeleteSlotTiming(index int) {
	if index < 0 || index >= len(o.slots) || !o.slots[index].IsMarked() {
		return
	}
	o.unmark(index)
}

func (o *ModuleScheduleOverlay) unmark(index int) {
	wasAnchor := index == o.anchorIndex()
	o.slots[index].window = nil

	if wasAnchor && o.applyUniformTime {
		o.applyUniformTime = false
		o.unlockMarked()
	}
}

func (o *ModuleScheduleOverlay) unlockMarked() {
	for _, slot := range o.slots {
		if slot.window != nil {
			slot.window.Editable = true
		}
	}
}

// SetApplyToAll switches uniform-apply over the marked slots. Enabling needs a
// marked anchor with both times set and different, otherwise the operator is
// alerted, ErrInvalidAnchorState is returned and nothing changes.
func (o *ModuleScheduleOverlay) SetApplyToAll(enable bool) error {
	if !enable {
		o.applyUniformTime = false
		o.unlockMarked()
		return nil
	}

	anchor := o.anchorIndex()
	if anchor < 0 || !isValidAnchor(*o.slots[anchor].window) {
		o.notifier.Alert(OverlayAnchorAlertMessage)
		return ErrInvalidAnchorState
	}

	o.applyUniformTime = true
	o.slots[anchor].window.Editable = true
	o.propagateFrom(anchor)
	return nil
}

func (o *ModuleScheduleOverlay) propagateFrom(anchor int) {
	source := *o.slots[anchor].window
	for i := anchor + 1; i < len(o.slots); i++ {
		if o.slots[i].window == nil {
			continue
		}
		o.slots[i].window.CopyTimesFrom(source)
		o.slots[i].window.Editable = false
	}
}

// SetSlotTime stores value on a marked slot. Edits of the anchor under
// uniform-apply propagate to every other marked slot. Unmarked slots are ignored.
func (o *ModuleScheduleOverlay) SetSlotTime(index int, field models.TimeField, value models.TimeOfDay) {
	if index < 0 || index >= len(o.slots) || !o.slots[index].IsMarked() {
		return
	}

	o.slots[index].window.Set(field, value)
	if o.applyUniformTime && index == o.anchorIndex() {
		o.propagateFrom(index)
	}
}

// MarkedWindows returns the windows of marked slots in catalog order.
func (o *ModuleScheduleOverlay) MarkedWindows() []models.TimeWindow {
	windows := make([]models.TimeWindow, 0, o.MarkedCount())
	for _, slot := range o.slots {
		if slot.window != nil {
			windows = append(windows, *slot.window)
		}
	}
	return windows
}

func (o *ModuleScheduleOverlay) IsValid() bool {
	return OverlayIsValid(o.slots)
}

func (o *ModuleScheduleOverlay) Snapshot() []models.OverlaySlotState {
	states := make([]models.OverlaySlotState, len(o.slots))
	for i, slot := range o.slots {
		states[i] = models.OverlaySlotState{Day: slot.day}
		if slot.window != nil {
			window := *slot.window
			states[i].Window = &window
		}
	}
	return states
}
