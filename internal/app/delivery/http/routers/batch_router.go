package routers

import (
	"batch-schedule-service/internal/app/services/core/batchschedules"
	"batch-schedule-service/internal/app/services/core/moduleschedules"

	"github.com/go-chi/chi/v5"
)

func attachBatchRoutes(router chi.Router, batchController *batchschedules.BatchScheduleController, moduleController *moduleschedules.ModuleScheduleController) {
	router.Post("/schedule-sessions", batchController.OpenSession)
	router.Post("/modules/{moduleID}/schedule-sessions", moduleController.OpenSession)
}
