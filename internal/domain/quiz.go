package domain

import (
	"strconv"
	"time"
)

// Choice is one answer option of a multiple-choice question
type Choice struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is a quiz question with its ordered answer choices
type Question struct {
	Text    string   `json:"question"`
	Choices []Choice `json:"choices"`
}

// CorrectIndexes returns the positions of every choice flagged as correct.
func (q Question) CorrectIndexes() []int {
	var idx []int
	for i, c := range q.Choices {
		if c.Correct {
			idx = append(idx, i)
		}
	}
	return idx
}

// StudySet bundles a summary with the questions generated from it
type StudySet struct {
	ID          string     `json:"id"`
	SourceChars int        `json:"source_chars"`
	Summary     string     `json:"summary"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewStudySet creates a new StudySet instance
func NewStudySet(id string, sourceChars int, summary string, questions []Question) *StudySet {
	if questions == nil {
		questions = []Question{}
	}
	return &StudySet{
		ID:          id,
		SourceChars: sourceChars,
		Summary:     summary,
		Questions:   questions,
		CreatedAt:   time.Now().UTC(),
	}
}

// AnswerSheet holds the selected choice index for each question, in question order
type AnswerSheet struct {
	Answers []int `json:"answers"`
}

// NoChoice is the conventional answer for a question that has no choices.
const NoChoice = -1

// QuestionVerdict is the grading outcome for a single question.
// Gradable is false for questions without choices; they never count toward Total.
type QuestionVerdict struct {
	Question       string `json:"question"`
	Selected       int    `json:"selected"`
	CorrectIndexes []int  `json:"correct_indexes"`
	Correct        bool   `json:"correct"`
	Gradable       bool   `json:"gradable"`
}

// GradeResult is the outcome of grading an AnswerSheet against a StudySet
type GradeResult struct {
	StudySetID   string            `json:"study_set_id"`
	Verdicts     []QuestionVerdict `json:"verdicts"`
	CorrectCount int               `json:"correct_count"`
	Total        int               `json:"total"`
	Score        float64           `json:"score"`
}

// Validate checks that the sheet has one answer per question and that every
// answer to a question with choices names an existing choice. Answers to
// questions without choices are not checked.
func (a *AnswerSheet) Validate(set *StudySet) error {
	var errs ValidationErrors
	if len(a.Answers) != len(set.Questions) {
		errs = append(errs, NewOutOfRangeError("answers", len(a.Answers), len(set.Questions), len(set.Questions)))
		return errs
	}
	for i, sel := range a.Answers {
		n := len(set.Questions[i].Choices)
		if n == 0 {
			continue
		}
		if sel < 0 || sel >= n {
			field := "answers[" + strconv.Itoa(i) + "]"
			errs = append(errs, NewOutOfRangeError(field, sel, 0, n-1))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Grade scores the sheet. A question counts as correct when the selected
// choice is flagged correct. Questions without choices are reported with
// Gradable false and left out of Total. Call Validate first.
func (a *AnswerSheet) Grade(set *StudySet) *GradeResult {
	result := &GradeResult{
		StudySetID: set.ID,
		Verdicts:   make([]QuestionVerdict, 0, len(set.Questions)),
	}
	for i, q := range set.Questions {
		sel := a.Answers[i]
		verdict := QuestionVerdict{
			Question:       q.Text,
			Selected:       sel,
			CorrectIndexes: q.CorrectIndexes(),
		}
		if len(q.Choices) > 0 {
			verdict.Gradable = true
			verdict.Correct = sel >= 0 && sel < len(q.Choices) && q.Choices[sel].Correct
			result.Total++
			if verdict.Correct {
				result.CorrectCount++
			}
		}
		result.Verdicts = append(result.Verdicts, verdict)
	}
	if result.Total > 0 {
		result.Score = float64(result.CorrectCount) / float64(result.Total)
	}
	return result
}
