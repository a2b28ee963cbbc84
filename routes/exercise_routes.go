package routes

import (
	"github.com/anjiri1684/exercise_platform/handlers"
	"github.com/anjiri1684/exercise_platform/middleware"
	"github.com/gofiber/fiber/v2"
)

func ExerciseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	exercises := api.Group("/admin/exercises", middleware.Protected(), middleware.TeacherRequired())
	exercises.Post("", handlers.CreateExercise)
	exercises.Get("", handlers.ListExercises)
	exercises.Get("/:exerciseId", handlers.GetExercise)
	exercises.Put("/:exerciseId", handlers.UpdateExercise)
	exercises.Delete("/:exerciseId", handlers.DeleteExercise)
	exercises.Post("/:exerciseId/questions", handlers.CreateQuestion)

	questions := api.Group("/admin/questions", middleware.Protected(), middleware.TeacherRequired())
	questions.Get("/:questionId", handlers.GetQuestion)
	questions.Put("/:questionId", handlers.UpdateQuestion)
	questions.Delete("/:questionId", handlers.DeleteQuestion)
	questions.Post("/:questionId/dependencies", handlers.CreateQuestionDependency)
	questions.Post("/:questionId/test-cases", handlers.CreateTestCase)

	api.Delete("/admin/dependencies/:dependencyId", middleware.Protected(), middleware.TeacherRequired(), handlers.DeleteQuestionDependency)
	api.Delete("/admin/test-cases/:testCaseId", middleware.Protected(), middleware.TeacherRequired(), handlers.DeleteTestCase)

	answers := api.Group("/answers", middleware.Protected())
	answers.Get("/:answerId/results", handlers.GetAnswerResults)
}
