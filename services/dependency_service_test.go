package services

import (
	"fmt"
	"testing"

	"github.com/anjiri1684/exercise_platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrDependenciesCompleted_NoEdges(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	question := f.question(t, "Standalone")

	svc := NewDependencyService(db)
	done, err := svc.OrDependenciesCompleted(question, f.team)

	require.NoError(t, err)
	assert.True(t, done)
}

func TestOrDependenciesCompleted_SatisfiedByCorrectAnswer(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	prerequisite := f.question(t, "Prerequisite")
	question := f.question(t, "Gated")
	f.dependency(t, question, prerequisite, models.DependencyOr)
	f.answer(t, prerequisite, true)

	svc := NewDependencyService(db)
	done, err := svc.OrDependenciesCompleted(question, f.team)

	require.NoError(t, err)
	assert.True(t, done)
}

func TestOrDependenciesCompleted_IncorrectAnswerOnly(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	prerequisite := f.question(t, "Prerequisite")
	question := f.question(t, "Gated")
	f.dependency(t, question, prerequisite, models.DependencyOr)
	f.answer(t, prerequisite, false)

	svc := NewDependencyService(db)
	done, err := svc.OrDependenciesCompleted(question, f.team)

	require.NoError(t, err)
	assert.False(t, done)
}

func TestOrDependenciesCompleted_IgnoresOtherTeams(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	prerequisite := f.question(t, "Prerequisite")
	question := f.question(t, "Gated")
	f.dependency(t, question, prerequisite, models.DependencyOr)
	f.answer(t, prerequisite, true)

	otherTeam := &models.Team{Name: "Rivals", InviteCode: "RIVAL123", OwnerID: f.user.ID}
	require.NoError(t, db.Create(otherTeam).Error)

	svc := NewDependencyService(db)
	done, err := svc.OrDependenciesCompleted(question, otherTeam)

	require.NoError(t, err)
	assert.False(t, done)
}

func TestAndDependenciesCompleted_NoEdges(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	question := f.question(t, "Standalone")

	svc := NewDependencyService(db)
	done, err := svc.AndDependenciesCompleted(question, f.team)

	require.NoError(t, err)
	assert.True(t, done)
}

func TestAndDependenciesCompleted_AllSatisfied(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	first := f.question(t, "First prerequisite")
	second := f.question(t, "Second prerequisite")
	question := f.question(t, "Gated")
	f.dependency(t, question, first, models.DependencyAnd)
	f.dependency(t, question, second, models.DependencyAnd)
	f.answer(t, first, true)
	f.answer(t, second, true)

	svc := NewDependencyService(db)
	done, err := svc.AndDependenciesCompleted(question, f.team)

	require.NoError(t, err)
	assert.True(t, done)
}

func TestAndDependenciesCompleted_PartiallySatisfied(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	first := f.question(t, "First prerequisite")
	second := f.question(t, "Second prerequisite")
	question := f.question(t, "Gated")
	f.dependency(t, question, first, models.DependencyAnd)
	f.dependency(t, question, second, models.DependencyAnd)
	f.answer(t, first, true)

	svc := NewDependencyService(db)
	done, err := svc.AndDependenciesCompleted(question, f.team)

	require.NoError(t, err)
	assert.False(t, done)
}

type stubChecker struct {
	or  bool
	and bool
}

func (s stubChecker) OrDependenciesCompleted(*models.Question, *models.Team) (bool, error) {
	return s.or, nil
}

func (s stubChecker) AndDependenciesCompleted(*models.Question, *models.Team) (bool, error) {
	return s.and, nil
}

func TestAbleToAnswer_Combinations(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	question := f.question(t, "Gated")

	tests := []struct {
		or       bool
		and      bool
		expected bool
	}{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("or=%v and=%v", tt.or, tt.and), func(t *testing.T) {
			svc := NewDependencyServiceWithChecker(db, stubChecker{or: tt.or, and: tt.and})
			able, err := svc.AbleToAnswer(question, f.team)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, able)
		})
	}
}

func TestAbleToAnswer_UsesRealChecksByDefault(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	orPrereq := f.question(t, "OR prerequisite")
	andPrereq := f.question(t, "AND prerequisite")
	question := f.question(t, "Gated")
	f.dependency(t, question, orPrereq, models.DependencyOr)
	f.dependency(t, question, andPrereq, models.DependencyAnd)
	f.answer(t, orPrereq, true)

	svc := NewDependencyService(db)
	able, err := svc.AbleToAnswer(question, f.team)
	require.NoError(t, err)
	assert.False(t, able)

	f.answer(t, andPrereq, true)

	able, err = svc.AbleToAnswer(question, f.team)
	require.NoError(t, err)
	assert.True(t, able)
}
