package dto

import "quiz-brief/internal/domain"

// SummarizeRequest is the body of POST /api/summaries
// @Description Source text to summarize
type SummarizeRequest struct {
	Text string `json:"text"`
}

// SummarizeResponse carries the generated summary
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// GenerateQuestionsRequest is the body of POST /api/questions
// @Description Summary to derive quiz questions from
type GenerateQuestionsRequest struct {
	Summary string `json:"summary"`
}

// QuestionsResponse lists generated quiz questions
type QuestionsResponse struct {
	Questions []domain.Question `json:"questions"`
}

// CreateStudySetRequest is the body of POST /api/study-sets
type CreateStudySetRequest struct {
	Text string `json:"text"`
}

// GradeRequest is the body of POST /api/study-sets/:id/grade
// @Description Selected choice index per question, in question order
type GradeRequest struct {
	Answers []int `json:"answers"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// StudySetResponse is a study set plus whether it can be fetched again
type StudySetResponse struct {
	*domain.StudySet
	// Stored is false when no store is configured; the set then exists only in this response.
	Stored bool `json:"stored"`
}
