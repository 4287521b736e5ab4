package composer

import "batch-schedule-service/internal/app/models"

// IsDegenerate reports a window whose times are both set and equal.
// Only equality is checked, not ordering.
func IsDegenerate(window models.TimeWindow) bool {
	return window.FromTime.IsSet() && window.ToTime.IsSet() && window.FromTime == window.ToTime
}

func HasCompleteWindow(window models.TimeWindow) bool {
	return window.FromTime.IsSet() && window.ToTime.IsSet()
}

func isValidAnchor(window models.TimeWindow) bool {
	return HasCompleteWindow(window) && !IsDegenerate(window)
}

// ScheduleIsValid reports whether no populated entry has from == to.
func ScheduleIsValid(entries []models.TimeWindow) bool {
	for _, entry := range entries {
		if IsDegenerate(entry) {
			return false
		}
	}
	return true
}

// OverlayIsValid reports whether every marked slot has a complete, non-degenerate window.
func OverlayIsValid(slots []OverlaySlot) bool {
	for _, slot := range slots {
		window, marked := slot.Window()
		if !marked {
			continue
		}
		if !HasCompleteWindow(window) || IsDegenerate(window) {
			return false
		}
	}
	return true
}
