package routes

import (
	"daily-diet/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	users *controllers.UserController,
	meals *controllers.MealController,
	health *controllers.HealthController,
	auth gin.HandlerFunc,
) *gin.Engine {
	r := gin.Default()

	r.GET("/health", health.Check)

	// Public registration route
	r.POST("/users", users.Register)

	// Meal routes, all behind the identity cookie
	m := r.Group("/meals")
	m.Use(auth)
	{
		m.GET("", meals.ListMeals)
		m.POST("", meals.CreateMeal)
		m.GET("/diet-metrics", meals.GetDietMetrics)
		m.GET("/:id", meals.GetMeal)
		m.PUT("/:id", meals.UpdateMeal)
		m.DELETE("/:id", meals.DeleteMeal)
	}

	return r
}
