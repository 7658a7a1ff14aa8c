package service

import (
	"context"
	"fmt"
	"strings"

	"quiz-brief/internal/domain"
	"quiz-brief/internal/logger"
	"quiz-brief/internal/quizparse"

	"go.uber.org/zap"
)

// QuestionCount is the number of questions requested from the model.
const QuestionCount = 3

const quizSystemInstruction = "You are an expert in generating quiz questions from summarized content."

var quizPromptPrefix = fmt.Sprintf(
	"Generate %d quiz questions based on the following summary, only add '%s' behind correct choice. "+
		"Put each question on its own line followed by its choices, one per line, prefixed with a), b), c) and so on. "+
		"Separate questions with a blank line and do not use markdown:",
	QuestionCount, quizparse.CorrectMarker,
)

// quizGenerator implements domain.QuizGenerator
type quizGenerator struct {
	client domain.CompletionClient
	opts   quizparse.Options
}

// NewQuizGenerator creates a new QuizGenerator using the default reply grammar.
func NewQuizGenerator(client domain.CompletionClient) domain.QuizGenerator {
	return NewQuizGeneratorWithOptions(client, quizparse.Options{})
}

// NewQuizGeneratorWithOptions creates a new QuizGenerator with explicit parser options.
func NewQuizGeneratorWithOptions(client domain.CompletionClient, opts quizparse.Options) domain.QuizGenerator {
	return &quizGenerator{client: client, opts: opts}
}

// GenerateQuestions implements domain.QuizGenerator
func (g *quizGenerator) GenerateQuestions(ctx context.Context, summaryText string) ([]domain.Question, error) {
	if strings.TrimSpace(summaryText) == "" {
		return nil, domain.NewInvalidInputError("summary text cannot be empty")
	}

	raw, err := g.client.Complete(ctx, quizPromptPrefix+"\n\n"+summaryText, quizSystemInstruction)
	if err != nil {
		logger.Get().Error("Quiz generation call failed", zap.Error(err))
		return nil, err
	}

	logger.Get().Debug("Raw quiz reply received", zap.String("raw_response", raw))

	questions, err := quizparse.ParseWithOptions(raw, g.opts)
	if err != nil {
		logger.Get().Error("Failed to parse quiz reply", zap.Error(err), zap.String("raw_response", raw))
		return nil, err
	}

	if len(questions) != QuestionCount {
		logger.Get().Warn("Model returned an unexpected number of questions",
			zap.Int("requested", QuestionCount),
			zap.Int("parsed", len(questions)))
	}
	for i, q := range questions {
		if n := len(q.CorrectIndexes()); n != 1 {
			logger.Get().Warn("Question does not have exactly one correct choice",
				zap.Int("question_index", i),
				zap.Int("correct_choices", n))
		}
	}

	logger.Get().Info("Quiz questions generated", zap.Int("num_questions", len(questions)))
	return questions, nil
}
