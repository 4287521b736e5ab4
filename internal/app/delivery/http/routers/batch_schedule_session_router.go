package routers

import (
	"batch-schedule-service/internal/app/services/core/batchschedules"

	"github.com/go-chi/chi/v5"
)

func attachBatchScheduleSessionRoutes(router chi.Router, c *batchschedules.BatchScheduleController) {
	router.Get("/", c.GetSession)
	router.Delete("/", c.CancelSession)
	router.Post("/days/{dayID}/toggle", c.ToggleDay)
	router.Put("/apply-to-all", c.SetApplyToAll)
	router.Put("/entries/{index}/time", c.SetTime)
	router.Post("/submit", c.Submit)
}
