package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quiz-brief/internal/domain"
	"quiz-brief/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStudyService_CreateStudySet_Success(t *testing.T) {
	summarizer := new(MockSummarizer)
	generator := new(MockQuizGenerator)
	store := new(MockStudySetStore)
	questions := sampleStudySet().Questions

	summarizer.On("Summarize", mock.Anything, "source text").Return("the summary", nil).Once()
	generator.On("GenerateQuestions", mock.Anything, "the summary").Return(questions, nil).Once()
	store.On("Put", mock.Anything, mock.AnythingOfType("*domain.StudySet")).Return(nil).Once()

	svc := NewStudyService(summarizer, generator, store, 100)
	set, err := svc.CreateStudySet(context.Background(), "source text")
	require.NoError(t, err)

	assert.True(t, util.IsValidULID(set.ID))
	assert.Equal(t, len("source text"), set.SourceChars)
	assert.Equal(t, "the summary", set.Summary)
	assert.Equal(t, questions, set.Questions)
	assert.False(t, set.CreatedAt.IsZero())

	summarizer.AssertExpectations(t)
	generator.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestStudyService_CreateStudySet_SummarizeFails(t *testing.T) {
	summarizer := new(MockSummarizer)
	generator := new(MockQuizGenerator)
	store := new(MockStudySetStore)
	serviceErr := domain.NewLLMServiceError(errors.New("unreachable"))

	summarizer.On("Summarize", mock.Anything, mock.Anything).Return("", serviceErr).Once()

	svc := NewStudyService(summarizer, generator, store, 0)
	set, err := svc.CreateStudySet(context.Background(), "source text")
	assert.Nil(t, set)
	assert.Same(t, serviceErr, err)
	generator.AssertNotCalled(t, "GenerateQuestions", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestStudyService_CreateStudySet_ParseFails(t *testing.T) {
	summarizer := new(MockSummarizer)
	generator := new(MockQuizGenerator)
	store := new(MockStudySetStore)
	parseErr := domain.NewParseError("bad reply", 2, 3)

	summarizer.On("Summarize", mock.Anything, mock.Anything).Return("summary", nil)
	generator.On("GenerateQuestions", mock.Anything, "summary").Return(nil, parseErr)

	svc := NewStudyService(summarizer, generator, store, 0)
	_, err := svc.CreateStudySet(context.Background(), "source text")
	assert.True(t, domain.IsCode(err, domain.CodeParse))
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestStudyService_CreateStudySet_InputChecks(t *testing.T) {
	summarizer := new(MockSummarizer)
	svc := NewStudyService(summarizer, new(MockQuizGenerator), new(MockStudySetStore), 10)

	_, err := svc.CreateStudySet(context.Background(), "   ")
	assert.True(t, domain.IsCode(err, domain.CodeInvalidInput))

	_, err = svc.CreateStudySet(context.Background(), strings.Repeat("x", 11))
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "text", verrs[0].Field)

	summarizer.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
}

func TestStudyService_Grade(t *testing.T) {
	set := sampleStudySet()
	store := new(MockStudySetStore)
	store.On("Get", mock.Anything, set.ID).Return(set, nil)

	svc := NewStudyService(new(MockSummarizer), new(MockQuizGenerator), store, 0)

	result, err := svc.Grade(context.Background(), set.ID, &domain.AnswerSheet{Answers: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, []int{1}, result.Verdicts[0].CorrectIndexes)

	result, err = svc.Grade(context.Background(), set.ID, &domain.AnswerSheet{Answers: []int{2}})
	require.NoError(t, err)
	assert.Equal(t, 0, result.CorrectCount)
	assert.False(t, result.Verdicts[0].Correct)

	_, err = svc.Grade(context.Background(), set.ID, &domain.AnswerSheet{Answers: []int{7}})
	var verrs domain.ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	_, err = svc.Grade(context.Background(), set.ID, nil)
	assert.True(t, domain.IsCode(err, domain.CodeInvalidInput))
}

func TestStudyService_Grade_NotFound(t *testing.T) {
	store := new(MockStudySetStore)
	store.On("Get", mock.Anything, "01HGZ8VNRYXS8QKNJV5GRWPWDQ").
		Return(nil, domain.NewStudySetNotFoundError("01HGZ8VNRYXS8QKNJV5GRWPWDQ"))

	svc := NewStudyService(new(MockSummarizer), new(MockQuizGenerator), store, 0)
	_, err := svc.Grade(context.Background(), "01HGZ8VNRYXS8QKNJV5GRWPWDQ", &domain.AnswerSheet{Answers: []int{0}})
	assert.True(t, domain.IsCode(err, domain.CodeStudySetNotFound))
}

func TestStudyService_DeleteStudySet(t *testing.T) {
	store := new(MockStudySetStore)
	store.On("Delete", mock.Anything, "01HGZ8VNRYXS8QKNJV5GRWPWDQ").Return(nil).Once()
	store.On("Delete", mock.Anything, "01HGZ8VNRYXS8QKNJV5GRWPWDR").
		Return(domain.NewInternalError("failed to delete study set", errors.New("conn reset"))).Once()

	svc := NewStudyService(new(MockSummarizer), new(MockQuizGenerator), store, 0)

	require.NoError(t, svc.DeleteStudySet(context.Background(), "01HGZ8VNRYXS8QKNJV5GRWPWDQ"))
	err := svc.DeleteStudySet(context.Background(), "01HGZ8VNRYXS8QKNJV5GRWPWDR")
	assert.True(t, domain.IsCode(err, domain.CodeInternal))
	store.AssertExpectations(t)
}

func TestStudyService_StoresStudySets(t *testing.T) {
	store := new(MockStudySetStore)
	store.On("Persistent").Return(true).Once()
	assert.True(t, NewStudyService(new(MockSummarizer), new(MockQuizGenerator), store, 0).StoresStudySets())

	noop := NewStudySetStore(nil, 0)
	assert.False(t, NewStudyService(new(MockSummarizer), new(MockQuizGenerator), noop, 0).StoresStudySets())
}

func TestStudyService_Grade_ChoicelessQuestion(t *testing.T) {
	set := domain.NewStudySet("01HGZ8VNRYXS8QKNJV5GRWPWDQ", 10, "summary", []domain.Question{
		{Text: "Q1", Choices: []domain.Choice{{Text: "yes", Correct: true}, {Text: "no"}}},
		{Text: "Q2", Choices: []domain.Choice{}},
	})
	store := new(MockStudySetStore)
	store.On("Get", mock.Anything, set.ID).Return(set, nil)

	svc := NewStudyService(new(MockSummarizer), new(MockQuizGenerator), store, 0)
	result, err := svc.Grade(context.Background(), set.ID, &domain.AnswerSheet{Answers: []int{0, domain.NoChoice}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.CorrectCount)
	assert.False(t, result.Verdicts[1].Gradable)
}
