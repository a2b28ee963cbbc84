package services

import (
	"github.com/anjiri1684/exercise_platform/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GradingService struct {
	db *gorm.DB
}

func NewGradingService(db *gorm.DB) *GradingService {
	return &GradingService{db: db}
}

// Grade compares the submitted per-test-case outputs against the question's
// expected outputs, stores one result row per test case and marks the answer
// correct when every case passed. A question without test cases never grades
// correct.
func (s *GradingService) Grade(answer *models.Answer, outputs map[uuid.UUID]string) ([]models.AnswerTestCaseResult, error) {
	var testCases []models.TestCase
	if err := s.db.Where("question_id = ?", answer.QuestionID).Find(&testCases).Error; err != nil {
		return nil, err
	}

	results := make([]models.AnswerTestCaseResult, 0, len(testCases))
	allPassed := len(testCases) > 0
	for _, tc := range testCases {
		output := outputs[tc.ID]
		passed := output == tc.ExpectedOutput
		if !passed {
			allPassed = false
		}
		results = append(results, models.AnswerTestCaseResult{
			AnswerID:   answer.ID,
			TestCaseID: tc.ID,
			Output:     output,
			Passed:     passed,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range results {
			if err := tx.Create(&results[i]).Error; err != nil {
				return err
			}
		}
		answer.Correct = allPassed
		return tx.Save(answer).Error
	})
	if err != nil {
		return nil, err
	}

	for i := range results {
		results[i].TestCase = testCases[i]
	}
	return results, nil
}

// ResultFor returns the stored result rows linking the given answer and test
// case, with both back-references loaded. Normal cardinality is 0 or 1.
func (s *GradingService) ResultFor(answer *models.Answer, testCase *models.TestCase) ([]models.AnswerTestCaseResult, error) {
	var results []models.AnswerTestCaseResult
	err := s.db.Preload("Answer").Preload("TestCase").
		Where("answer_id = ? AND test_case_id = ?", answer.ID, testCase.ID).
		Find(&results).Error
	return results, err
}
