package domain

import "context"

// CompletionClient performs a single round trip with the text-completion service.
type CompletionClient interface {
	// Complete sends systemInstruction and promptText, separated by a blank
	// line, and returns the trimmed reply.
	Complete(ctx context.Context, promptText, systemInstruction string) (string, error)
}

// Summarizer produces a plain-text summary of a source text.
type Summarizer interface {
	Summarize(ctx context.Context, sourceText string) (string, error)
}

// QuizGenerator derives multiple-choice questions from a summary.
type QuizGenerator interface {
	GenerateQuestions(ctx context.Context, summaryText string) ([]Question, error)
}
