package routers

import (
	"batch-schedule-service/internal/app/config"
	"batch-schedule-service/internal/app/delivery/http/middlewares"
	"batch-schedule-service/internal/app/services/core/batchschedules"
	"batch-schedule-service/internal/app/services/core/daycatalog"
	"batch-schedule-service/internal/app/services/core/moduleschedules"
	"batch-schedule-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	dayCatalogController *daycatalog.DayCatalogController,
	batchScheduleController *batchschedules.BatchScheduleController,
	moduleScheduleController *moduleschedules.ModuleScheduleController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route(fmt.Sprintf("/%s", constvars.ResourceDays), func(r chi.Router) {
				attachDayCatalogRoutes(r, dayCatalogController)
			})

			r.Route(fmt.Sprintf("/%s/{%s}", constvars.ResourceBatches, constvars.URLParamBatchID), func(r chi.Router) {
				attachBatchRoutes(r, batchScheduleController, moduleScheduleController)
			})

			r.Route(fmt.Sprintf("/%s/{%s}", constvars.ResourceScheduleSessions, constvars.URLParamSessionID), func(r chi.Router) {
				attachBatchScheduleSessionRoutes(r, batchScheduleController)
			})

			r.Route(fmt.Sprintf("/%s/{%s}", constvars.ResourceModuleScheduleSession, constvars.URLParamSessionID), func(r chi.Router) {
				attachModuleScheduleSessionRoutes(r, moduleScheduleController)
			})
		})
	})
}
