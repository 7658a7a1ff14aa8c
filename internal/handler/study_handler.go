package handler

import (
	"quiz-brief/internal/domain"
	"quiz-brief/internal/dto"
	"quiz-brief/internal/logger"
	"quiz-brief/internal/middleware"
	"quiz-brief/internal/service"
	"quiz-brief/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StudyHandler handles summarize, quiz and study set HTTP requests
type StudyHandler struct {
	summarizer domain.Summarizer
	generator  domain.QuizGenerator
	study      service.StudyService
	validator  *validation.Validator
}

// NewStudyHandler creates a new StudyHandler instance
func NewStudyHandler(summarizer domain.Summarizer, generator domain.QuizGenerator, study service.StudyService, validator *validation.Validator) *StudyHandler {
	return &StudyHandler{
		summarizer: summarizer,
		generator:  generator,
		study:      study,
		validator:  validator,
	}
}

// Summarize godoc
// @Summary Summarize a text
// @Description Produces a plain-text summary of the submitted text
// @Tags pipeline
// @Accept json
// @Produce json
// @Param request body dto.SummarizeRequest true "Source text"
// @Success 200 {object} dto.SummarizeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /summaries [post]
func (h *StudyHandler) Summarize(c *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateText("text", req.Text); len(errs) > 0 {
		return errs
	}

	summary, err := h.summarizer.Summarize(c.UserContext(), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(dto.SummarizeResponse{Summary: summary})
}

// GenerateQuestions godoc
// @Summary Generate quiz questions
// @Description Derives multiple-choice questions from a summary
// @Tags pipeline
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest true "Summary"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /questions [post]
func (h *StudyHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateText("summary", req.Summary); len(errs) > 0 {
		return errs
	}

	questions, err := h.generator.GenerateQuestions(c.UserContext(), req.Summary)
	if err != nil {
		return err
	}
	return c.JSON(dto.QuestionsResponse{Questions: questions})
}

// CreateStudySet godoc
// @Summary Create a study set
// @Description Summarizes the text, generates questions and stores both
// @Tags study-sets
// @Accept json
// @Produce json
// @Param request body dto.CreateStudySetRequest true "Source text"
// @Success 201 {object} dto.StudySetResponse "Stored for later retrieval"
// @Success 200 {object} dto.StudySetResponse "No store configured; not retrievable later"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /study-sets [post]
func (h *StudyHandler) CreateStudySet(c *fiber.Ctx) error {
	var req dto.CreateStudySetRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateText("text", req.Text); len(errs) > 0 {
		return errs
	}

	set, err := h.study.CreateStudySet(c.UserContext(), req.Text)
	if err != nil {
		return err
	}

	resp := dto.StudySetResponse{StudySet: set, Stored: h.study.StoresStudySets()}
	if !resp.Stored {
		return c.JSON(resp)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetStudySet godoc
// @Summary Get a study set
// @Tags study-sets
// @Produce json
// @Param id path string true "Study set ID (ULID)"
// @Success 200 {object} domain.StudySet
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /study-sets/{id} [get]
func (h *StudyHandler) GetStudySet(c *fiber.Ctx) error {
	id := studySetID(c)

	set, err := h.study.GetStudySet(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(set)
}

// Grade godoc
// @Summary Grade answers for a study set
// @Description Scores one selected choice index per question
// @Tags study-sets
// @Accept json
// @Produce json
// @Param id path string true "Study set ID (ULID)"
// @Param request body dto.GradeRequest true "Selected choices"
// @Success 200 {object} domain.GradeResult
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /study-sets/{id}/grade [post]
func (h *StudyHandler) Grade(c *fiber.Ctx) error {
	id := studySetID(c)

	var req dto.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateGradeRequest(req.Answers); len(errs) > 0 {
		return errs
	}

	result, err := h.study.Grade(c.UserContext(), id, &domain.AnswerSheet{Answers: req.Answers})
	if err != nil {
		logger.Get().Debug("Grading failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return c.JSON(result)
}

// DeleteStudySet godoc
// @Summary Delete a study set
// @Tags study-sets
// @Param id path string true "Study set ID (ULID)"
// @Success 204 "No Content"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /study-sets/{id} [delete]
func (h *StudyHandler) DeleteStudySet(c *fiber.Ctx) error {
	if err := h.study.DeleteStudySet(c.UserContext(), studySetID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StoresStudySets reports whether the retrieval routes have anything to serve.
func (h *StudyHandler) StoresStudySets() bool {
	return h.study.StoresStudySets()
}

func studySetID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalStudySetID).(string); ok {
		return id
	}
	return c.Params("id")
}
