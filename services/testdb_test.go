package services

import (
	"path/filepath"
	"testing"

	"github.com/anjiri1684/exercise_platform/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Exercise{},
		&models.Question{},
		&models.QuestionDependency{},
		&models.TestCase{},
		&models.Answer{},
		&models.AnswerTestCaseResult{},
		&models.Certificate{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

type fixture struct {
	db       *gorm.DB
	user     *models.User
	team     *models.Team
	exercise *models.Exercise
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()

	isFalse := false
	user := &models.User{
		Name:     "Student",
		Email:    "student@example.com",
		Password: "secret123",
		Teacher:  &isFalse,
		Admin:    &isFalse,
	}
	require.NoError(t, db.Create(user).Error)

	team := &models.Team{Name: "Solvers", InviteCode: "SOLVE123", OwnerID: user.ID}
	require.NoError(t, db.Create(team).Error)
	require.NoError(t, db.Model(team).Association("Members").Append(user))

	exercise := &models.Exercise{Title: "Warmup"}
	require.NoError(t, db.Create(exercise).Error)

	return &fixture{db: db, user: user, team: team, exercise: exercise}
}

func (f *fixture) question(t *testing.T, title string) *models.Question {
	t.Helper()

	question := &models.Question{ExerciseID: f.exercise.ID, Title: title}
	require.NoError(t, f.db.Create(question).Error)
	return question
}

func (f *fixture) dependency(t *testing.T, dependent, prerequisite *models.Question, operator string) {
	t.Helper()

	dep := &models.QuestionDependency{
		Question1ID: dependent.ID,
		Question2ID: prerequisite.ID,
		Operator:    operator,
	}
	require.NoError(t, f.db.Create(dep).Error)
}

func (f *fixture) answer(t *testing.T, question *models.Question, correct bool) *models.Answer {
	t.Helper()

	answer := &models.Answer{
		QuestionID: question.ID,
		UserID:     f.user.ID,
		TeamID:     f.team.ID,
		Content:    "solution",
	}
	require.NoError(t, f.db.Create(answer).Error)
	if correct {
		answer.Correct = true
		require.NoError(t, f.db.Save(answer).Error)
	}
	return answer
}
