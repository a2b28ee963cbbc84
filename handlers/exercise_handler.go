package handlers

import (
	"time"

	"github.com/anjiri1684/exercise_platform/database"
	"github.com/anjiri1684/exercise_platform/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExerciseRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
}

func CreateExercise(c *fiber.Ctx) error {
	var req ExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	exercise := models.Exercise{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	}

	if err := database.DB.Create(&exercise).Error; err != nil {
		return renderModelError(c, err, "Failed to create exercise")
	}

	return c.Status(fiber.StatusCreated).JSON(exercise)
}

func ListExercises(c *fiber.Ctx) error {
	var exercises []models.Exercise
	database.DB.Find(&exercises)
	return c.JSON(exercises)
}

func GetExercise(c *fiber.Ctx) error {
	exerciseID := c.Params("exerciseId")
	var exercise models.Exercise
	if err := database.DB.Preload("Questions.Dependencies").Preload("Questions.TestCases").First(&exercise, "id = ?", exerciseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
	}
	return c.JSON(exercise)
}

func UpdateExercise(c *fiber.Ctx) error {
	exerciseID := c.Params("exerciseId")
	var exercise models.Exercise
	if err := database.DB.First(&exercise, "id = ?", exerciseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
	}

	var req ExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	exercise.Title = req.Title
	exercise.Description = req.Description
	exercise.Deadline = req.Deadline
	if err := database.DB.Save(&exercise).Error; err != nil {
		return renderModelError(c, err, "Failed to update exercise")
	}

	return c.JSON(exercise)
}

func DeleteExercise(c *fiber.Ctx) error {
	exerciseID := c.Params("exerciseId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var exercise models.Exercise
		if err := tx.First(&exercise, "id = ?", exerciseID).Error; err != nil {
			return err
		}
		if err := tx.Model(&exercise).Association("Teams").Clear(); err != nil {
			return err
		}
		return tx.Delete(&exercise).Error
	})

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete exercise"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type QuestionRequest struct {
	Title     string `json:"title" validate:"required"`
	Statement string `json:"statement"`
}

func CreateQuestion(c *fiber.Ctx) error {
	exerciseID, err := uuid.Parse(c.Params("exerciseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var exercise models.Exercise
	if err := database.DB.First(&exercise, "id = ?", exerciseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
	}

	question := models.Question{
		ExerciseID: exerciseID,
		Title:      req.Title,
		Statement:  req.Statement,
	}

	if err := database.DB.Create(&question).Error; err != nil {
		return renderModelError(c, err, "Failed to create question")
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

func GetQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	var question models.Question
	if err := database.DB.Preload("Dependencies").Preload("TestCases").First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}
	return c.JSON(question)
}

func UpdateQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	question.Title = req.Title
	question.Statement = req.Statement
	if err := database.DB.Save(&question).Error; err != nil {
		return renderModelError(c, err, "Failed to update question")
	}

	return c.JSON(question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	result := database.DB.Delete(&models.Question{}, "id = ?", questionID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete question"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type DependencyRequest struct {
	PrerequisiteID string `json:"prerequisite_id" validate:"required"`
	Operator       string `json:"operator" validate:"required,oneof=OR AND"`
}

func CreateQuestionDependency(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	var req DependencyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	prerequisiteID, err := uuid.Parse(req.PrerequisiteID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid prerequisite id"})
	}
	if prerequisiteID == questionID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A question cannot depend on itself"})
	}

	var question, prerequisite models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}
	if err := database.DB.First(&prerequisite, "id = ?", prerequisiteID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Prerequisite question not found"})
	}

	dependency := models.QuestionDependency{
		Question1ID: questionID,
		Question2ID: prerequisiteID,
		Operator:    req.Operator,
	}

	if err := database.DB.Create(&dependency).Error; err != nil {
		return renderModelError(c, err, "Failed to create dependency")
	}

	return c.Status(fiber.StatusCreated).JSON(dependency)
}

func DeleteQuestionDependency(c *fiber.Ctx) error {
	dependencyID := c.Params("dependencyId")
	result := database.DB.Delete(&models.QuestionDependency{}, "id = ?", dependencyID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete dependency"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dependency not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type TestCaseRequest struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output" validate:"required"`
	Hidden         bool   `json:"hidden"`
}

func CreateTestCase(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	var req TestCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	testCase := models.TestCase{
		QuestionID:     questionID,
		Input:          req.Input,
		ExpectedOutput: req.ExpectedOutput,
		Hidden:         req.Hidden,
	}

	if err := database.DB.Create(&testCase).Error; err != nil {
		return renderModelError(c, err, "Failed to create test case")
	}

	return c.Status(fiber.StatusCreated).JSON(testCase)
}

func DeleteTestCase(c *fiber.Ctx) error {
	testCaseID := c.Params("testCaseId")
	result := database.DB.Delete(&models.TestCase{}, "id = ?", testCaseID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete test case"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Test case not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
