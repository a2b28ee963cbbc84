package services

import (
	"errors"
	"testing"

	"github.com/anjiri1684/exercise_platform/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (f *fixture) testCase(t *testing.T, question *models.Question, input, expected string) *models.TestCase {
	t.Helper()

	tc := &models.TestCase{QuestionID: question.ID, Input: input, ExpectedOutput: expected}
	require.NoError(t, f.db.Create(tc).Error)
	return tc
}

func TestGrade_AllTestCasesPass(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	question := f.question(t, "Echo")
	first := f.testCase(t, question, "hello", "hello")
	second := f.testCase(t, question, "world", "world")
	answer := f.answer(t, question, false)

	svc := NewGradingService(db)
	results, err := svc.Grade(answer, map[uuid.UUID]string{
		first.ID:  "hello",
		second.ID: "world",
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.True(t, result.Passed)
	}
	assert.True(t, answer.Correct)

	var reloaded models.Answer
	require.NoError(t, db.First(&reloaded, "id = ?", answer.ID).Error)
	assert.True(t, reloaded.Correct)
}

func TestGrade_OneTestCaseFails(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	question := f.question(t, "Echo")
	first := f.testCase(t, question, "hello", "hello")
	second := f.testCase(t, question, "world", "world")
	answer := f.answer(t, question, false)

	svc := NewGradingService(db)
	results, err := svc.Grade(answer, map[uuid.UUID]string{
		first.ID:  "hello",
		second.ID: "wrold",
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, answer.Correct)

	passed := 0
	for _, result := range results {
		if result.Passed {
			passed++
		}
	}
	assert.Equal(t, 1, passed)
}

func TestGrade_NoTestCasesNeverCorrect(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	question := f.question(t, "Unfinished")
	answer := f.answer(t, question, false)

	svc := NewGradingService(db)
	results, err := svc.Grade(answer, nil)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, answer.Correct)
}

func TestGrade_MissingOutputRejected(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	question := f.question(t, "Echo")
	f.testCase(t, question, "hello", "hello")
	answer := f.answer(t, question, false)

	svc := NewGradingService(db)
	_, err := svc.Grade(answer, map[uuid.UUID]string{})

	require.Error(t, err)
	var verrs models.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "output")
}

func TestGrade_FailedGradingPersistsNothing(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	question := f.question(t, "Echo")
	f.testCase(t, question, "hello", "hello")

	// Answer creation and grading share one transaction, so a refused
	// grading must not leave an ungraded answer behind.
	err := db.Transaction(func(tx *gorm.DB) error {
		answer := &models.Answer{
			QuestionID: question.ID,
			UserID:     f.user.ID,
			TeamID:     f.team.ID,
			Content:    "solution",
		}
		if err := tx.Create(answer).Error; err != nil {
			return err
		}
		_, err := NewGradingService(tx).Grade(answer, map[uuid.UUID]string{})
		return err
	})
	require.Error(t, err)

	var answers int64
	db.Model(&models.Answer{}).Count(&answers)
	assert.Zero(t, answers)

	var results int64
	db.Model(&models.AnswerTestCaseResult{}).Count(&results)
	assert.Zero(t, results)
}

func TestResultFor_MatchesBothForeignKeys(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	question := f.question(t, "Echo")
	matching := f.testCase(t, question, "hello", "hello")
	other := f.testCase(t, question, "world", "world")
	answer := f.answer(t, question, false)

	svc := NewGradingService(db)
	_, err := svc.Grade(answer, map[uuid.UUID]string{
		matching.ID: "hello",
		other.ID:    "world",
	})
	require.NoError(t, err)

	results, err := svc.ResultFor(answer, matching)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, answer.ID, results[0].AnswerID)
	assert.Equal(t, matching.ID, results[0].TestCaseID)
	assert.Equal(t, answer.ID, results[0].Answer.ID)
	assert.Equal(t, matching.ID, results[0].TestCase.ID)
	assert.Equal(t, "hello", results[0].Output)
}

func TestResultFor_NoMatches(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	question := f.question(t, "Echo")
	testCase := f.testCase(t, question, "hello", "hello")
	answer := f.answer(t, question, false)

	svc := NewGradingService(db)
	results, err := svc.ResultFor(answer, testCase)

	require.NoError(t, err)
	assert.Empty(t, results)
}
