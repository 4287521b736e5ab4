package composer

import (
	"batch-schedule-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOverlay(t *testing.T) (*ModuleScheduleOverlay, *AlertRecorder) {
	t.Helper()
	alerts := &AlertRecorder{}
	return NewModuleScheduleOverlay(newTestCatalog(t), alerts), alerts
}

func slotWindow(t *testing.T, o *ModuleScheduleOverlay, index int) models.TimeWindow {
	t.Helper()
	slot, ok := o.Slot(index)
	require.True(t, ok)
	window, marked := slot.Window()
	require.True(t, marked, "slot %d should be marked", index)
	return window
}

func TestModuleScheduleOverlay_ScenarioD(t *testing.T) {
	o, alerts := newTestOverlay(t)
	require.Equal(t, 7, o.Len())
	require.Equal(t, 0, o.MarkedCount())

	o.OnSlotToggle(2)
	assert.Equal(t, 1, o.MarkedCount())

	err := o.SetApplyToAll(true)

	assert.ErrorIs(t, err, ErrInvalidAnchorState)
	assert.False(t, o.ApplyUniformTime(), "flag should stay false")
	assert.Equal(t, []string{OverlayAnchorAlertMessage}, alerts.Messages())
}

func TestModuleScheduleOverlay_Toggle(t *testing.T) {
	t.Run("Slots follow the catalog", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		for i, slot := range o.Slots() {
			assert.Equal(t, allDays[i], slot.Day())
			assert.False(t, slot.IsMarked())
		}
	})

	t.Run("Unmarking clears values", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(4)
		o.SetSlotTime(4, models.TimeFieldFrom, tod("09:00"))

		o.OnSlotToggle(4)
		assert.Equal(t, 0, o.MarkedCount())

		o.OnSlotToggle(4)
		window := slotWindow(t, o, 4)
		assert.False(t, window.FromTime.IsSet(), "re-marked slot should start empty")
	})

	t.Run("Marking behind the anchor copies and locks under uniform apply", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(1)
		o.SetSlotTime(1, models.TimeFieldFrom, tod("09:00"))
		o.SetSlotTime(1, models.TimeFieldTo, tod("11:00"))
		require.NoError(t, o.SetApplyToAll(true))

		o.OnSlotToggle(5)

		window := slotWindow(t, o, 5)
		assert.Equal(t, tod("09:00"), window.FromTime)
		assert.Equal(t, tod("11:00"), window.ToTime)
		assert.False(t, window.Editable)
	})

	t.Run("Marking ahead of the anchor copies nothing", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(3)
		o.SetSlotTime(3, models.TimeFieldFrom, tod("09:00"))
		o.SetSlotTime(3, models.TimeFieldTo, tod("11:00"))
		require.NoError(t, o.SetApplyToAll(true))

		o.OnSlotToggle(0)

		window := slotWindow(t, o, 0)
		assert.False(t, window.FromTime.IsSet())
		assert.True(t, window.Editable)
	})

	t.Run("Marking without uniform apply copies nothing", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(0)
		o.SetSlotTime(0, models.TimeFieldFrom, tod("09:00"))

		o.OnSlotToggle(2)

		assert.False(t, slotWindow(t, o, 2).FromTime.IsSet())
	})

	t.Run("Unmarking the anchor under uniform apply unlocks the rest", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(0)
		o.OnSlotToggle(2)
		o.SetSlotTime(0, models.TimeFieldFrom, tod("09:00"))
		o.SetSlotTime(0, models.TimeFieldTo, tod("10:00"))
		require.NoError(t, o.SetApplyToAll(true))
		require.False(t, slotWindow(t, o, 2).Editable)

		o.OnSlotToggle(0)

		assert.False(t, o.ApplyUniformTime())
		window := slotWindow(t, o, 2)
		assert.True(t, window.Editable)
		assert.Equal(t, tod("09:00"), window.FromTime, "values are kept")
	})

	t.Run("Out of range index is ignored", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(7)
		o.OnSlotToggle(-1)
		assert.Equal(t, 0, o.MarkedCount())
	})
}

func TestModuleScheduleOverlay_SetApplyToAll(t *testing.T) {
	t.Run("No marked slot is rejected", func(t *testing.T) {
		o, alerts := newTestOverlay(t)

		assert.ErrorIs(t, o.SetApplyToAll(true), ErrInvalidAnchorState)
		assert.Len(t, alerts.Messages(), 1)
	})

	t.Run("Degenerate anchor is rejected", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(1)
		o.OnSlotToggle(3)
		o.SetSlotTime(1, models.TimeFieldFrom, tod("09:00"))
		o.SetSlotTime(1, models.TimeFieldTo, tod("09:00"))
		o.SetSlotTime(3, models.TimeFieldFrom, tod("12:00"))

		assert.ErrorIs(t, o.SetApplyToAll(true), ErrInvalidAnchorState)
		assert.Equal(t, tod("12:00"), slotWindow(t, o, 3).FromTime, "nothing should be propagated")
	})

	t.Run("Copies to marked slots only", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(1)
		o.OnSlotToggle(4)
		o.OnSlotToggle(6)
		o.SetSlotTime(1, models.TimeFieldFrom, tod("13:00"))
		o.SetSlotTime(1, models.TimeFieldTo, tod("14:30"))

		require.NoError(t, o.SetApplyToAll(true))

		assert.True(t, slotWindow(t, o, 1).Editable)
		for _, index := range []int{4, 6} {
			window := slotWindow(t, o, index)
			assert.Equal(t, tod("13:00"), window.FromTime)
			assert.Equal(t, tod("14:30"), window.ToTime)
			assert.False(t, window.Editable)
		}
		for _, index := range []int{0, 2, 3, 5} {
			slot, _ := o.Slot(index)
			assert.False(t, slot.IsMarked(), "unmarked slots are untouched")
		}
		assert.True(t, o.IsValid())
	})

	t.Run("Disable unlocks marked slots", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(0)
		o.OnSlotToggle(1)
		o.SetSlotTime(0, models.TimeFieldFrom, tod("09:00"))
		o.SetSlotTime(0, models.TimeFieldTo, tod("10:00"))
		require.NoError(t, o.SetApplyToAll(true))

		require.NoError(t, o.SetApplyToAll(false))

		assert.False(t, o.ApplyUniformTime())
		assert.True(t, slotWindow(t, o, 1).Editable)
	})

	t.Run("Anchor edit propagates to marked slots", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(2)
		o.OnSlotToggle(5)
		o.SetSlotTime(2, models.TimeFieldFrom, tod("09:00"))
		o.SetSlotTime(2, models.TimeFieldTo, tod("10:00"))
		require.NoError(t, o.SetApplyToAll(true))

		o.SetSlotTime(2, models.TimeFieldTo, tod("12:00"))

		assert.Equal(t, tod("12:00"), slotWindow(t, o, 5).ToTime)
	})
}

func TestModuleScheduleOverlay_DeleteSlotTiming(t *testing.T) {
	o, _ := newTestOverlay(t)
	o.OnSlotToggle(3)
	o.SetSlotTime(3, models.TimeFieldFrom, tod("09:00"))

	o.DeleteSlotTiming(3)
	assert.Equal(t, 0, o.MarkedCount())

	o.DeleteSlotTiming(3)
	assert.Equal(t, 0, o.MarkedCount(), "deleting an unmarked slot is a no-op")
}

func TestModuleScheduleOverlay_PatchAndSnapshot(t *testing.T) {
	t.Run("Patch marks persisted days", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		persisted := window(thursday, "10:00", "12:00")
		persisted.ID = "w-thu"

		o.Patch([]models.TimeWindow{
			persisted,
			window(models.WeekDay{ID: "holiday", Order: 9}, "10:00", "11:00"),
		})

		assert.Equal(t, 1, o.MarkedCount())
		window := slotWindow(t, o, 3)
		assert.Equal(t, "w-thu", window.ID)
		assert.True(t, window.Editable)
	})

	t.Run("Marked windows come out in catalog order", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(6)
		o.OnSlotToggle(0)
		o.OnSlotToggle(3)

		assert.Equal(t, []string{"mon", "thu", "sun"}, dayIDs(o.MarkedWindows()))
	})

	t.Run("Marked slot without times is invalid", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(0)
		o.SetSlotTime(0, models.TimeFieldFrom, tod("09:00"))

		assert.False(t, o.IsValid())
	})

	t.Run("Snapshot round trip", func(t *testing.T) {
		catalog := newTestCatalog(t)
		o := NewModuleScheduleOverlay(catalog, nil)
		o.OnSlotToggle(1)
		o.OnSlotToggle(2)
		o.SetSlotTime(1, models.TimeFieldFrom, tod("09:00"))
		o.SetSlotTime(1, models.TimeFieldTo, tod("10:00"))
		require.NoError(t, o.SetApplyToAll(true))

		restored := RestoreModuleScheduleOverlay(catalog, o.Snapshot(), o.ApplyUniformTime(), nil)

		assert.Equal(t, o.Snapshot(), restored.Snapshot())
		assert.True(t, restored.ApplyUniformTime())
		assert.Equal(t, 2, restored.MarkedCount())
	})

	t.Run("Slots returns copies", func(t *testing.T) {
		o, _ := newTestOverlay(t)
		o.OnSlotToggle(0)

		slots := o.Slots()
		window, _ := slots[0].Window()
		window.FromTime = tod("09:00")

		assert.False(t, slotWindow(t, o, 0).FromTime.IsSet())
	})
}
