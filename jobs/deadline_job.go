package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/anjiri1684/exercise_platform/database"
	"github.com/anjiri1684/exercise_platform/models"
	"github.com/anjiri1684/exercise_platform/notifications"
	"github.com/google/uuid"
)

func SendDeadlineReminders() {
	log.Println("Running job: SendDeadlineReminders...")

	now := time.Now()
	lowerBound := now.Add(24 * time.Hour)
	upperBound := now.Add(24*time.Hour + 5*time.Minute)

	var dueExercises []models.Exercise

	err := database.DB.
		Preload("Teams.Members").
		Where("deadline BETWEEN ? AND ?", lowerBound, upperBound).
		Find(&dueExercises).Error

	if err != nil {
		log.Printf("Error checking for due exercises: %v", err)
		return
	}

	if len(dueExercises) == 0 {
		return
	}

	for _, exercise := range dueExercises {
		for _, team := range exercise.Teams {
			if teamCompletedExercise(team.ID, exercise.ID) {
				continue
			}

			log.Printf("Sending deadline reminder for exercise %s to team %s", exercise.ID, team.ID)

			emailSubject := fmt.Sprintf("Reminder: '%s' is due in 24 hours!", exercise.Title)
			emailBody := fmt.Sprintf(
				"<h1>Exercise Deadline Reminder</h1><p>Hi there,</p><p>Your team <b>%s</b> still has unanswered questions in <b>%s</b>, which is due on %s.</p>",
				team.Name,
				exercise.Title,
				exercise.Deadline.Format("January 2, 2006 at 3:04 PM"),
			)

			for _, member := range team.Members {
				go notifications.SendEmail(member.Name, member.Email, emailSubject, emailBody)
			}
		}
	}
}

func teamCompletedExercise(teamID, exerciseID uuid.UUID) bool {
	var totalQuestions int64
	database.DB.Model(&models.Question{}).
		Where("exercise_id = ?", exerciseID).
		Count(&totalQuestions)

	if totalQuestions == 0 {
		return true
	}

	var completedQuestions int64
	database.DB.Model(&models.Answer{}).
		Joins("JOIN questions on answers.question_id = questions.id").
		Where("answers.team_id = ? AND answers.correct = ? AND questions.exercise_id = ?", teamID, true, exerciseID).
		Distinct("answers.question_id").
		Count(&completedQuestions)

	return completedQuestions >= totalQuestions
}
