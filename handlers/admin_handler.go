package handlers

import (
	"github.com/anjiri1684/exercise_platform/database"
	"github.com/anjiri1684/exercise_platform/models"
	"github.com/gofiber/fiber/v2"
)

func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}

func GetUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	var user models.User
	if err := database.DB.Preload("TeamsCreated").Preload("Teams").First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

type UpdateUserFlagsRequest struct {
	Teacher *bool `json:"teacher"`
	Admin   *bool `json:"admin"`
}

func UpdateUserFlags(c *fiber.Ctx) error {
	userID := c.Params("userId")
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateUserFlagsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Teacher != nil {
		user.Teacher = req.Teacher
	}
	if req.Admin != nil {
		user.Admin = req.Admin
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return renderModelError(c, err, "Failed to update user")
	}

	return c.JSON(user)
}

func DeleteUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var ownedTeams int64
	database.DB.Model(&models.Team{}).Where("owner_id = ?", userID).Count(&ownedTeams)
	if ownedTeams > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "User still owns teams; transfer or delete them first"})
	}

	result := database.DB.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func ListCertificates(c *fiber.Ctx) error {
	var certificates []models.Certificate
	if err := database.DB.Preload("Team").Preload("Exercise").Find(&certificates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(certificates)
}
