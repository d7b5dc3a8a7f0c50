package routers

import (
	"mindwell-service/internal/app/delivery/http/middlewares"
	"mindwell-service/internal/app/services/core/profiles"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *profiles.ProfileController) {
	router.Use(middlewares.Authentication)

	router.Get("/", profileController.FindProfile)
	router.Put("/", profileController.UpdateProfile)
	router.Get("/risk-summary", profileController.FindRiskSummary)
}
