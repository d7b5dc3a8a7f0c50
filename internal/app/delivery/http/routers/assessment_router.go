package routers

import (
	"fmt"
	"mindwell-service/internal/app/delivery/http/middlewares"
	"mindwell-service/internal/app/services/core/assessments"
	"mindwell-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *assessments.AssessmentController) {
	// The question catalog is static and public.
	router.Get("/questions", assessmentController.FindQuestions)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authentication)
		r.Post("/", assessmentController.SubmitAssessment)
		r.Get("/", assessmentController.FindAssessments)
		r.Get(fmt.Sprintf("/{%s}", constvars.URLParamAssessmentID), assessmentController.FindAssessmentByID)
	})
}
