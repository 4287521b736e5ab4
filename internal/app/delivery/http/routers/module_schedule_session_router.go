package routers

import (
	"batch-schedule-service/internal/app/services/core/moduleschedules"

	"github.com/go-chi/chi/v5"
)

func attachModuleScheduleSessionRoutes(router chi.Router, c *moduleschedules.ModuleScheduleController) {
	router.Get("/", c.GetSession)
	router.Delete("/", c.CancelSession)
	router.Post("/slots/{index}/toggle", c.ToggleSlot)
	router.Delete("/slots/{index}", c.DeleteSlotTiming)
	router.Put("/apply-to-all", c.SetApplyToAll)
	router.Put("/slots/{index}/time", c.SetSlotTime)
	router.Post("/submit", c.Submit)
}
