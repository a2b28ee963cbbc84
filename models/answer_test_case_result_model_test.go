package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func buildAnsweredQuestion(t *testing.T, db *gorm.DB) (*Answer, *TestCase) {
	t.Helper()

	user := validUser("Grace", "grace@example.com")
	require.NoError(t, db.Create(user).Error)

	team := &Team{Name: "Graders", InviteCode: "GRADE123", OwnerID: user.ID}
	require.NoError(t, db.Create(team).Error)

	exercise := &Exercise{Title: "Basics"}
	require.NoError(t, db.Create(exercise).Error)

	question := &Question{ExerciseID: exercise.ID, Title: "Sum two numbers"}
	require.NoError(t, db.Create(question).Error)

	testCase := &TestCase{QuestionID: question.ID, Input: "1 2", ExpectedOutput: "3"}
	require.NoError(t, db.Create(testCase).Error)

	answer := &Answer{QuestionID: question.ID, UserID: user.ID, TeamID: team.ID, Content: "a+b"}
	require.NoError(t, db.Create(answer).Error)

	return answer, testCase
}

func TestAnswerTestCaseResult_OutputRequired(t *testing.T) {
	db := setupTestDB(t)
	answer, testCase := buildAnsweredQuestion(t, db)

	result := &AnswerTestCaseResult{AnswerID: answer.ID, TestCaseID: testCase.ID, Output: ""}
	err := db.Create(result).Error
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "output")
	assert.Contains(t, verrs["output"], "can't be blank")
}

func TestAnswerTestCaseResult_PersistsWithOutput(t *testing.T) {
	db := setupTestDB(t)
	answer, testCase := buildAnsweredQuestion(t, db)

	result := &AnswerTestCaseResult{AnswerID: answer.ID, TestCaseID: testCase.ID, Output: "3", Passed: true}
	require.NoError(t, db.Create(result).Error)

	var reloaded AnswerTestCaseResult
	require.NoError(t, db.Preload("Answer").Preload("TestCase").First(&reloaded, "id = ?", result.ID).Error)
	assert.Equal(t, answer.ID, reloaded.Answer.ID)
	assert.Equal(t, testCase.ID, reloaded.TestCase.ID)
}

func TestQuestionDependency_OperatorValidated(t *testing.T) {
	db := setupTestDB(t)

	exercise := &Exercise{Title: "Graphs"}
	require.NoError(t, db.Create(exercise).Error)

	q1 := &Question{ExerciseID: exercise.ID, Title: "First"}
	q2 := &Question{ExerciseID: exercise.ID, Title: "Second"}
	require.NoError(t, db.Create(q1).Error)
	require.NoError(t, db.Create(q2).Error)

	dep := &QuestionDependency{Question1ID: q1.ID, Question2ID: q2.ID, Operator: "XOR"}
	err := db.Create(dep).Error
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "operator")

	dep.Operator = DependencyAnd
	assert.NoError(t, db.Create(dep).Error)
}
