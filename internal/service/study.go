package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"quiz-brief/internal/domain"
	"quiz-brief/internal/logger"
	"quiz-brief/internal/util"

	"go.uber.org/zap"
)

// StudyService runs the summarize-then-quiz pipeline and grades answers.
type StudyService interface {
	CreateStudySet(ctx context.Context, sourceText string) (*domain.StudySet, error)
	GetStudySet(ctx context.Context, id string) (*domain.StudySet, error)
	Grade(ctx context.Context, id string, sheet *domain.AnswerSheet) (*domain.GradeResult, error)
	DeleteStudySet(ctx context.Context, id string) error
	// StoresStudySets reports whether created sets can be fetched, graded and deleted later.
	StoresStudySets() bool
}

type studyService struct {
	summarizer     domain.Summarizer
	generator      domain.QuizGenerator
	store          StudySetStore
	maxSourceChars int
}

// NewStudyService creates a new StudyService. maxSourceChars <= 0 disables the length check.
func NewStudyService(summarizer domain.Summarizer, generator domain.QuizGenerator, store StudySetStore, maxSourceChars int) StudyService {
	return &studyService{
		summarizer:     summarizer,
		generator:      generator,
		store:          store,
		maxSourceChars: maxSourceChars,
	}
}

// CreateStudySet summarizes sourceText, derives questions from the summary
// and stores the result. A failure in either stage aborts with no partial result.
func (s *studyService) CreateStudySet(ctx context.Context, sourceText string) (*domain.StudySet, error) {
	if strings.TrimSpace(sourceText) == "" {
		return nil, domain.NewInvalidInputError("source text cannot be empty")
	}
	chars := utf8.RuneCountInString(sourceText)
	if s.maxSourceChars > 0 && chars > s.maxSourceChars {
		return nil, domain.ValidationErrors{domain.NewOutOfRangeError("text", chars, 1, s.maxSourceChars)}
	}

	summary, err := s.summarizer.Summarize(ctx, sourceText)
	if err != nil {
		return nil, err
	}

	questions, err := s.generator.GenerateQuestions(ctx, summary)
	if err != nil {
		return nil, err
	}

	set := domain.NewStudySet(util.NewULID(), chars, summary, questions)
	if err := s.store.Put(ctx, set); err != nil {
		return nil, err
	}

	logger.Get().Info("Study set created",
		zap.String("id", set.ID),
		zap.Int("source_chars", chars),
		zap.Int("num_questions", len(set.Questions)))
	return set, nil
}

// GetStudySet loads a previously created study set.
func (s *studyService) GetStudySet(ctx context.Context, id string) (*domain.StudySet, error) {
	return s.store.Get(ctx, id)
}

// Grade checks the answer sheet against the stored study set.
func (s *studyService) Grade(ctx context.Context, id string, sheet *domain.AnswerSheet) (*domain.GradeResult, error) {
	if sheet == nil {
		return nil, domain.NewInvalidInputError("answer sheet cannot be empty")
	}

	set, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sheet.Validate(set); err != nil {
		return nil, err
	}

	result := sheet.Grade(set)
	logger.Get().Info("Study set graded",
		zap.String("id", id),
		zap.Int("correct", result.CorrectCount),
		zap.Int("total", result.Total))
	return result, nil
}

// DeleteStudySet removes a stored study set. Deleting an unknown ID is not an error.
func (s *studyService) DeleteStudySet(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	logger.Get().Info("Study set deleted", zap.String("id", id))
	return nil
}

func (s *studyService) StoresStudySets() bool {
	return s.store.Persistent()
}
