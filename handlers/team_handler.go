package handlers

import (
	"errors"

	"github.com/anjiri1684/exercise_platform/database"
	"github.com/anjiri1684/exercise_platform/models"
	"github.com/anjiri1684/exercise_platform/notifications"
	"github.com/anjiri1684/exercise_platform/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRequest struct {
	Name string `json:"name" validate:"required"`
}

func CreateTeam(c *fiber.Ctx) error {
	var req TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ownerID := currentUserID(c)

	var team models.Team
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		inviteCode, err := utils.GenerateUniqueInviteCode(tx)
		if err != nil {
			return errors.New("failed to generate unique invite code")
		}

		team = models.Team{
			Name:       req.Name,
			InviteCode: inviteCode,
			OwnerID:    ownerID,
		}
		if err := tx.Create(&team).Error; err != nil {
			return err
		}

		// The owner also joins the member list so team queries stay uniform.
		var owner models.User
		if err := tx.First(&owner, "id = ?", ownerID).Error; err != nil {
			return err
		}
		return tx.Model(&team).Association("Members").Append(&owner)
	})

	if err != nil {
		return renderModelError(c, err, "Failed to create team")
	}

	return c.Status(fiber.StatusCreated).JSON(team)
}

func GetTeam(c *fiber.Ctx) error {
	teamID := c.Params("teamId")

	var team models.Team
	if err := database.DB.Preload("Members").Preload("Exercises").First(&team, "id = ?", teamID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team not found"})
	}

	return c.JSON(team)
}

func UpdateTeam(c *fiber.Ctx) error {
	team, _, err := loadTeamAsOwner(c)
	if err != nil {
		return err
	}

	var req TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	team.Name = req.Name
	if err := database.DB.Save(team).Error; err != nil {
		return renderModelError(c, err, "Failed to update team")
	}

	return c.JSON(team)
}

func DeleteTeam(c *fiber.Ctx) error {
	team, _, err := loadTeamAsOwner(c)
	if err != nil {
		return err
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(team).Association("Members").Clear(); err != nil {
			return err
		}
		if err := tx.Model(team).Association("Exercises").Clear(); err != nil {
			return err
		}
		return tx.Delete(team).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete team"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func JoinTeam(c *fiber.Ctx) error {
	type Request struct {
		InviteCode string `json:"invite_code" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var team models.Team
	if err := database.DB.Where("invite_code = ?", req.InviteCode).First(&team).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invalid invite code"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", currentUserID(c)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if err := database.DB.Model(&team).Association("Members").Append(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to join team"})
	}

	return c.JSON(team)
}

type MemberRequest struct {
	Email string `json:"email" validate:"required"`
}

func AddTeamMember(c *fiber.Ctx) error {
	team, owner, err := loadTeamAsOwner(c)
	if err != nil {
		return err
	}

	var req MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var member models.User
	if err := database.DB.Where("email = ?", req.Email).First(&member).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No user with that email"})
	}

	if err := database.DB.Model(team).Association("Members").Append(&member); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add member"})
	}

	go notifications.SendTeamInvite(owner.Name, team.Name, team.InviteCode, member.Name, member.Email)

	return c.JSON(team)
}

func RemoveTeamMember(c *fiber.Ctx) error {
	team, _, err := loadTeamAsOwner(c)
	if err != nil {
		return err
	}

	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid member id"})
	}

	if memberID == team.OwnerID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "The owner cannot be removed from the team"})
	}

	member := models.User{ID: memberID}
	if err := database.DB.Model(team).Association("Members").Delete(&member); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove member"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type AssignExerciseRequest struct {
	ExerciseID string `json:"exercise_id" validate:"required"`
}

func AssignExercise(c *fiber.Ctx) error {
	teamID := c.Params("teamId")

	var team models.Team
	if err := database.DB.First(&team, "id = ?", teamID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team not found"})
	}

	var req AssignExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var exercise models.Exercise
	if err := database.DB.First(&exercise, "id = ?", req.ExerciseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
	}

	if err := database.DB.Model(&team).Association("Exercises").Append(&exercise); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assign exercise"})
	}

	return c.JSON(team)
}

// loadTeamAsOwner loads the team from the route and checks that the current
// user is its recorded owner.
func loadTeamAsOwner(c *fiber.Ctx) (*models.Team, *models.User, error) {
	teamID := c.Params("teamId")

	var team models.Team
	if err := database.DB.First(&team, "id = ?", teamID).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Team not found")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", currentUserID(c)).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	if !user.IsOwner(&team) {
		return nil, nil, fiber.NewError(fiber.StatusForbidden, "Forbidden: only the team owner can do this")
	}

	return &team, &user, nil
}
