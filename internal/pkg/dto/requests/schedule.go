package requests

type ToggleScheduleDay struct {
	Confirmed bool `json:"confirmed"`
}

type ApplyToAll struct {
	Enable *bool `json:"enable" validate:"required"`
}

type SetScheduleTime struct {
	Field string `json:"field" validate:"required,time_field"`
	Value string `json:"value" validate:"omitempty,time_of_day"`
}
