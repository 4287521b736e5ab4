package routers

import (
	"batch-schedule-service/internal/app/services/core/daycatalog"

	"github.com/go-chi/chi/v5"
)

func attachDayCatalogRoutes(router chi.Router, c *daycatalog.DayCatalogController) {
	router.Get("/", c.FindAll)
}
