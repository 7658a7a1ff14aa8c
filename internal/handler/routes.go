package handler

import (
	"quiz-brief/internal/logger"
	"quiz-brief/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API routes on app. Study set retrieval, grading
// and deletion are only mounted when study sets are stored.
func RegisterRoutes(app *fiber.App, study *StudyHandler, health *HealthHandler, vm *middleware.ValidationMiddleware) {
	app.Get("/healthz", health.Health)

	api := app.Group("/api")
	api.Post("/summaries", study.Summarize)
	api.Post("/questions", study.GenerateQuestions)
	api.Post("/study-sets", study.CreateStudySet)

	if !study.StoresStudySets() {
		logger.Get().Warn("No study set store configured. GET, grade and DELETE study set routes are disabled.")
		return
	}
	api.Get("/study-sets/:id", vm.ValidateStudySetID(), study.GetStudySet)
	api.Post("/study-sets/:id/grade", vm.ValidateStudySetID(), study.Grade)
	api.Delete("/study-sets/:id", vm.ValidateStudySetID(), study.DeleteStudySet)
}
