package courseRoutes

import (
	controllers "learnlink/controllers/course"
	"learnlink/middleware"
	"learnlink/models"
	validators "learnlink/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course publication, browsing, favorites and reviews
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Publication and browsing
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor, models.RoleAdmin), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:courseId", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Delete("/:courseId", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteCourse)

	// Favorites
	courseGroup.Post("/:courseId/favorite", middleware.JWTMiddleware, validators.CourseID(), controllers.ToggleFavorite)
	app.Get("/api/favorites", middleware.JWTMiddleware, controllers.GetFavorites)

	// Reviews
	courseGroup.Post("/:courseId/review", middleware.JWTMiddleware, validators.CourseID(), controllers.UpsertReview)
	courseGroup.Get("/:courseId/reviews", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseReviews)
}
