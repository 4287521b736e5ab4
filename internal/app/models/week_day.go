package models

import "batch-schedule-service/internal/pkg/dto/responses"

type WeekDay struct {
	ID    string `json:"id" bson:"_id"`
	Label string `json:"label" bson:"label"`
	Order int    `json:"order" bson:"order"`
}

func (d WeekDay) ConvertIntoResponse() responses.WeekDay {
	return responses.WeekDay{
		ID:    d.ID,
		Label: d.Label,
		Order: d.Order,
	}
}
