package constvars

const (
	GetDayCatalogSuccessMessage = "get day catalog successfully"

	ScheduleSessionOpenedMessage     = "schedule session opened successfully"
	ScheduleSessionFetchedMessage    = "schedule session fetched successfully"
	ScheduleDayToggledMessage        = "schedule day toggled successfully"
	ScheduleApplyToAllUpdatedMessage = "apply to all updated successfully"
	ScheduleTimeUpdatedMessage       = "schedule time updated successfully"
	ScheduleSubmittedMessage         = "schedule saved successfully"
	ScheduleSessionCancelledMessage  = "schedule session cancelled successfully"

	ModuleScheduleSessionOpenedMessage     = "module schedule session opened successfully"
	ModuleScheduleSessionFetchedMessage    = "module schedule session fetched successfully"
	ModuleScheduleSlotToggledMessage       = "module schedule slot toggled successfully"
	ModuleScheduleSlotDeletedMessage       = "module schedule slot timing deleted successfully"
	ModuleScheduleApplyToAllUpdatedMessage = "module apply to all updated successfully"
	ModuleScheduleTimeUpdatedMessage       = "module schedule time updated successfully"
	ModuleScheduleSubmittedMessage         = "module schedule saved successfully"
	ModuleScheduleSessionCancelledMessage  = "module schedule session cancelled successfully"
)
