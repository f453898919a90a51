package api

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	programService service.ProgramService,
	catalogService service.CatalogService,
) {
	authHandler := NewAuthHandler(authService)
	programHandler := NewProgramHandler(programService)
	catalogHandler := NewCatalogHandler(catalogService)

	authMiddleware := AuthMiddleware(authService.GetJWTSecret())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
		})

		// --- Program Routes ---
		// Any authenticated user; the program is always the caller's own.
		programGroup := protected.Group("/programs/me")
		{
			programGroup.GET("", programHandler.GetMyProgram)
			programGroup.GET("/exists", programHandler.HasProgram)
			programGroup.POST("", programHandler.GenerateProgram)
			programGroup.PUT("", programHandler.UpdateProgram)
			programGroup.POST("/export", programHandler.ExportProgram)
		}

		// --- Catalog Administration ---
		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			adminGroup.POST("/exercises", catalogHandler.CreateExercise)
			adminGroup.GET("/exercises", catalogHandler.ListExercises)
			adminGroup.GET("/exercises/:id", catalogHandler.GetExercise)

			adminGroup.POST("/recipes", catalogHandler.CreateRecipe)
			adminGroup.GET("/recipes", catalogHandler.ListRecipes)
			adminGroup.GET("/recipes/:id", catalogHandler.GetRecipe)
		}
	}
}
