package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet() *StudySet {
	return NewStudySet("01HGZ8VNRYXS8QKNJV5GRWPWDQ", 120, "summary", []Question{
		{Text: "Q1", Choices: []Choice{{Text: "a", Correct: true}, {Text: "b"}}},
		{Text: "Q2", Choices: []Choice{{Text: "a"}, {Text: "b"}, {Text: "c", Correct: true}}},
	})
}

func TestNewStudySet_NilQuestions(t *testing.T) {
	set := NewStudySet("id", 1, "s", nil)
	assert.NotNil(t, set.Questions)
	assert.Empty(t, set.Questions)
	assert.False(t, set.CreatedAt.IsZero())
}

func TestQuestion_CorrectIndexes(t *testing.T) {
	q := Question{Choices: []Choice{{Correct: true}, {}, {Correct: true}}}
	assert.Equal(t, []int{0, 2}, q.CorrectIndexes())
	assert.Nil(t, Question{}.CorrectIndexes())
}

func TestAnswerSheet_Validate(t *testing.T) {
	set := newTestSet()

	tests := []struct {
		name       string
		answers    []int
		wantFields []string
	}{
		{"valid", []int{0, 2}, nil},
		{"too few answers", []int{0}, []string{"answers"}},
		{"too many answers", []int{0, 1, 2}, []string{"answers"}},
		{"negative index", []int{-1, 0}, []string{"answers[0]"}},
		{"index past end", []int{2, 3}, []string{"answers[0]", "answers[1]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&AnswerSheet{Answers: tt.answers}).Validate(set)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			var fields []string
			for _, e := range verrs {
				fields = append(fields, e.Field)
				assert.Equal(t, CodeOutOfRange, e.Code)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestAnswerSheet_Grade(t *testing.T) {
	set := newTestSet()

	result := (&AnswerSheet{Answers: []int{0, 1}}).Grade(set)
	assert.Equal(t, set.ID, result.StudySetID)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.CorrectCount)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
	require.Len(t, result.Verdicts, 2)
	assert.True(t, result.Verdicts[0].Correct)
	assert.False(t, result.Verdicts[1].Correct)
	assert.Equal(t, []int{2}, result.Verdicts[1].CorrectIndexes)
	assert.Equal(t, "Q2", result.Verdicts[1].Question)
}

func TestAnswerSheet_Grade_EmptySet(t *testing.T) {
	set := NewStudySet("id", 1, "s", nil)
	result := (&AnswerSheet{}).Grade(set)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0.0, result.Score)
}

func newSetWithChoicelessQuestion() *StudySet {
	return NewStudySet("01HGZ8VNRYXS8QKNJV5GRWPWDQ", 80, "summary", []Question{
		{Text: "Q1", Choices: []Choice{{Text: "only", Correct: true}}},
		{Text: "Q2", Choices: []Choice{}},
	})
}

func TestAnswerSheet_Validate_ChoicelessQuestion(t *testing.T) {
	set := newSetWithChoicelessQuestion()

	for _, answers := range [][]int{{0, 0}, {0, NoChoice}, {0, 7}} {
		assert.NoError(t, (&AnswerSheet{Answers: answers}).Validate(set), "answers=%v", answers)
	}

	// The answer count is still enforced.
	assert.Error(t, (&AnswerSheet{Answers: []int{0}}).Validate(set))
}

func TestAnswerSheet_Grade_ChoicelessQuestion(t *testing.T) {
	set := newSetWithChoicelessQuestion()

	sheet := &AnswerSheet{Answers: []int{0, 3}}
	require.NoError(t, sheet.Validate(set))
	result := sheet.Grade(set)

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.CorrectCount)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	require.Len(t, result.Verdicts, 2)
	assert.True(t, result.Verdicts[0].Gradable)
	assert.False(t, result.Verdicts[1].Gradable)
	assert.False(t, result.Verdicts[1].Correct)
	assert.Equal(t, 3, result.Verdicts[1].Selected)
}

func TestAnswerSheet_EmptySheetForEmptySet(t *testing.T) {
	set := NewStudySet("id", 1, "s", nil)
	sheet := &AnswerSheet{Answers: []int{}}
	require.NoError(t, sheet.Validate(set))
	result := sheet.Grade(set)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Verdicts)
}
