package service

import (
	"context"
	"strings"

	"quiz-brief/internal/domain"
	"quiz-brief/internal/logger"

	"go.uber.org/zap"
)

const (
	summarySystemInstruction = "You are an expert at summarizing transcripts."
	summaryPromptPrefix      = "Summarize the following text without any markdown formatting:"
)

// summarizer implements domain.Summarizer
type summarizer struct {
	client domain.CompletionClient
}

// NewSummarizer creates a new Summarizer backed by the completion client
func NewSummarizer(client domain.CompletionClient) domain.Summarizer {
	return &summarizer{client: client}
}

// Summarize implements domain.Summarizer. Errors from the completion client
// are returned unchanged.
func (s *summarizer) Summarize(ctx context.Context, sourceText string) (string, error) {
	if strings.TrimSpace(sourceText) == "" {
		return "", domain.NewInvalidInputError("source text cannot be empty")
	}

	logger.Get().Info("Summarizing source text", zap.Int("source_chars", len(sourceText)))

	summary, err := s.client.Complete(ctx, summaryPromptPrefix+"\n\n"+sourceText, summarySystemInstruction)
	if err != nil {
		logger.Get().Error("Summarization failed", zap.Error(err))
		return "", err
	}

	summary = strings.TrimSpace(summary)
	logger.Get().Debug("Summary generated", zap.Int("summary_chars", len(summary)))
	return summary, nil
}
