package handlers

import (
	"github.com/anjiri1684/exercise_platform/database"
	"github.com/anjiri1684/exercise_platform/models"
	"github.com/anjiri1684/exercise_platform/services"
	"github.com/anjiri1684/exercise_platform/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListTeamExercises returns the exercises assigned to the team together with
// each question's unlock state for that team.
func ListTeamExercises(c *fiber.Ctx) error {
	team, err := loadTeamAsMember(c)
	if err != nil {
		return err
	}

	var exercises []models.Exercise
	err = database.DB.
		Preload("Questions.Dependencies").
		Preload("Questions.TestCases").
		Joins("JOIN team_exercises ON team_exercises.exercise_id = exercises.id").
		Where("team_exercises.team_id = ?", team.ID).
		Find(&exercises).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	deps := services.NewDependencyService(database.DB)

	type questionView struct {
		models.Question
		AbleToAnswer bool `json:"able_to_answer"`
		Completed    bool `json:"completed"`
	}
	type exerciseView struct {
		models.Exercise
		Questions []questionView `json:"questions"`
	}

	views := make([]exerciseView, 0, len(exercises))
	for _, exercise := range exercises {
		view := exerciseView{Exercise: exercise}
		for _, question := range exercise.Questions {
			able, err := deps.AbleToAnswer(&question, team)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
			}

			var correctCount int64
			database.DB.Model(&models.Answer{}).
				Where("question_id = ? AND team_id = ? AND correct = ?", question.ID, team.ID, true).
				Count(&correctCount)

			question.TestCases = visibleTestCases(question.TestCases)
			view.Questions = append(view.Questions, questionView{
				Question:     question,
				AbleToAnswer: able,
				Completed:    correctCount > 0,
			})
		}
		view.Exercise.Questions = nil
		views = append(views, view)
	}

	return c.JSON(views)
}

type SubmitAnswerRequest struct {
	Content string `json:"content" validate:"required"`
	Outputs []struct {
		TestCaseID string `json:"test_case_id" validate:"required"`
		Output     string `json:"output" validate:"required"`
	} `json:"outputs" validate:"required,min=1,dive"`
}

// SubmitAnswer records an answer for the team, refuses it while prerequisite
// questions are incomplete, grades it against the question's test cases and
// notifies connected team members.
func SubmitAnswer(c *fiber.Ctx) error {
	team, err := loadTeamAsMember(c)
	if err != nil {
		return err
	}

	questionID := c.Params("questionId")
	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	var req SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	deps := services.NewDependencyService(database.DB)
	able, err := deps.AbleToAnswer(&question, team)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if !able {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Prerequisite questions have not been completed by your team"})
	}

	outputs := make(map[uuid.UUID]string, len(req.Outputs))
	for _, out := range req.Outputs {
		testCaseID, err := uuid.Parse(out.TestCaseID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid test case id"})
		}
		outputs[testCaseID] = out.Output
	}

	// The answer row and its grading results commit together, so a refused
	// grading leaves nothing behind.
	var answer models.Answer
	var results []models.AnswerTestCaseResult
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		answer = models.Answer{
			QuestionID: question.ID,
			UserID:     currentUserID(c),
			TeamID:     team.ID,
			Content:    req.Content,
		}
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}

		grader := services.NewGradingService(tx)
		var gradeErr error
		results, gradeErr = grader.Grade(&answer, outputs)
		return gradeErr
	})
	if err != nil {
		return renderModelError(c, err, "Failed to save answer")
	}

	websocket.Broadcast <- &websocket.TeamEvent{
		TeamID:     team.ID,
		ActorID:    answer.UserID,
		Event:      "answer_graded",
		QuestionID: question.ID,
		Correct:    answer.Correct,
	}

	if answer.Correct {
		go services.CheckAndGenerateCertificate(answer)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"answer":  answer,
		"correct": answer.Correct,
		"results": visibleResults(results),
	})
}

func GetAnswerResults(c *fiber.Ctx) error {
	answerID := c.Params("answerId")

	var answer models.Answer
	if err := database.DB.First(&answer, "id = ?", answerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Answer not found"})
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ?", answer.TeamID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team not found"})
	}
	if !isTeamMember(&team, currentUserID(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden: not a member of this team"})
	}

	var results []models.AnswerTestCaseResult
	err := database.DB.Preload("TestCase").
		Where("answer_id = ?", answer.ID).
		Find(&results).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"answer":  answer,
		"results": visibleResults(results),
	})
}

// visibleResults blanks the stored output of hidden test cases so students
// only learn pass/fail for them.
func visibleResults(results []models.AnswerTestCaseResult) []models.AnswerTestCaseResult {
	for i := range results {
		if results[i].TestCase.Hidden {
			results[i].Output = ""
			results[i].TestCase.Input = ""
			results[i].TestCase.ExpectedOutput = ""
		}
	}
	return results
}

func isTeamMember(team *models.Team, userID uuid.UUID) bool {
	if team.OwnerID == userID {
		return true
	}
	var count int64
	database.DB.Table("team_members").
		Where("team_id = ? AND user_id = ?", team.ID, userID).
		Count(&count)
	return count > 0
}

// visibleTestCases blanks hidden test case data but keeps the IDs, so members
// can submit an output for every case without seeing the hidden ones.
func visibleTestCases(testCases []models.TestCase) []models.TestCase {
	for i := range testCases {
		if testCases[i].Hidden {
			testCases[i].Input = ""
			testCases[i].ExpectedOutput = ""
		}
	}
	return testCases
}

// loadTeamAsMember loads the team from the route and checks that the current
// user belongs to it.
func loadTeamAsMember(c *fiber.Ctx) (*models.Team, error) {
	teamID := c.Params("teamId")

	var team models.Team
	if err := database.DB.First(&team, "id = ?", teamID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Team not found")
	}

	if !isTeamMember(&team, currentUserID(c)) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Forbidden: not a member of this team")
	}

	return &team, nil
}
