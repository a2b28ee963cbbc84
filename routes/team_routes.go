package routes

import (
	"github.com/anjiri1684/exercise_platform/handlers"
	"github.com/anjiri1684/exercise_platform/middleware"
	"github.com/gofiber/fiber/v2"
)

func TeamRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	teams := api.Group("/teams", middleware.Protected())
	teams.Post("", handlers.CreateTeam)
	teams.Post("/join", handlers.JoinTeam)
	teams.Get("/:teamId", handlers.GetTeam)
	teams.Put("/:teamId", handlers.UpdateTeam)
	teams.Delete("/:teamId", handlers.DeleteTeam)
	teams.Post("/:teamId/members", handlers.AddTeamMember)
	teams.Delete("/:teamId/members/:memberId", handlers.RemoveTeamMember)
	teams.Post("/:teamId/exercises", middleware.TeacherRequired(), handlers.AssignExercise)

	teams.Get("/:teamId/exercises", handlers.ListTeamExercises)
	teams.Post("/:teamId/questions/:questionId/answers", handlers.SubmitAnswer)
}
