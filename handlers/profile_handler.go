package handlers

import (
	"github.com/anjiri1684/exercise_platform/database"
	"github.com/anjiri1684/exercise_platform/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func currentUserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	return userID
}

type UpdateProfileRequest struct {
	Name *string `json:"name"`
}

func GetProfile(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return renderModelError(c, err, "Failed to update profile")
	}

	return c.JSON(user)
}

// GetMyTeams returns the union of teams the user owns and teams the user is
// a member of.
func GetMyTeams(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	teams, err := user.TeamsFromWhereBelongs(database.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(teams)
}

func GetMyProgress(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var totalAnswers int64
	database.DB.Model(&models.Answer{}).
		Where("user_id = ?", userID).
		Count(&totalAnswers)

	var correctAnswers int64
	database.DB.Model(&models.Answer{}).
		Where("user_id = ? AND correct = ?", userID, true).
		Count(&correctAnswers)

	var recentAnswers []models.Answer
	database.DB.Preload("Question").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(20).
		Find(&recentAnswers)

	return c.JSON(fiber.Map{
		"total_answers":   totalAnswers,
		"correct_answers": correctAnswers,
		"recent_answers":  recentAnswers,
	})
}
