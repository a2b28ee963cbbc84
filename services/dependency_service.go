package services

import (
	"github.com/anjiri1684/exercise_platform/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DependencyChecker reports whether the prerequisite questions gating a
// question have been completed by a team.
type DependencyChecker interface {
	OrDependenciesCompleted(question *models.Question, team *models.Team) (bool, error)
	AndDependenciesCompleted(question *models.Question, team *models.Team) (bool, error)
}

type DependencyService struct {
	db      *gorm.DB
	checker DependencyChecker
}

func NewDependencyService(db *gorm.DB) *DependencyService {
	s := &DependencyService{db: db}
	s.checker = s
	return s
}

// NewDependencyServiceWithChecker substitutes the prerequisite checks, e.g.
// with fixed-return doubles in tests.
func NewDependencyServiceWithChecker(db *gorm.DB, checker DependencyChecker) *DependencyService {
	return &DependencyService{db: db, checker: checker}
}

// OrDependenciesCompleted is vacuously true when the question has no OR
// edges; otherwise at least one prerequisite must have a correct answer
// recorded by someone on the team.
func (s *DependencyService) OrDependenciesCompleted(question *models.Question, team *models.Team) (bool, error) {
	deps, err := s.dependencies(question, models.DependencyOr)
	if err != nil {
		return false, err
	}
	if len(deps) == 0 {
		return true, nil
	}

	for _, dep := range deps {
		done, err := s.completedByTeam(dep.Question2ID, team)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
	return false, nil
}

// AndDependenciesCompleted is vacuously true when the question has no AND
// edges; otherwise every prerequisite must have a correct answer recorded by
// someone on the team.
func (s *DependencyService) AndDependenciesCompleted(question *models.Question, team *models.Team) (bool, error) {
	deps, err := s.dependencies(question, models.DependencyAnd)
	if err != nil {
		return false, err
	}

	for _, dep := range deps {
		done, err := s.completedByTeam(dep.Question2ID, team)
		if err != nil {
			return false, err
		}
		if !done {
			return false, nil
		}
	}
	return true, nil
}

// AbleToAnswer is true iff both dependency groups are completed for the
// (question, team) pair. Both checks are pure reads.
func (s *DependencyService) AbleToAnswer(question *models.Question, team *models.Team) (bool, error) {
	orDone, err := s.checker.OrDependenciesCompleted(question, team)
	if err != nil {
		return false, err
	}
	andDone, err := s.checker.AndDependenciesCompleted(question, team)
	if err != nil {
		return false, err
	}
	return orDone && andDone, nil
}

// Only direct prerequisites are consulted, so cyclic dependency graphs
// cannot cause unbounded evaluation.
func (s *DependencyService) dependencies(question *models.Question, operator string) ([]models.QuestionDependency, error) {
	var deps []models.QuestionDependency
	err := s.db.Where("question_1_id = ? AND operator = ?", question.ID, operator).Find(&deps).Error
	return deps, err
}

func (s *DependencyService) completedByTeam(questionID uuid.UUID, team *models.Team) (bool, error) {
	var count int64
	err := s.db.Model(&models.Answer{}).
		Where("question_id = ? AND team_id = ? AND correct = ?", questionID, team.ID, true).
		Count(&count).Error
	return count > 0, err
}
