package router

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealsmith/backend/config"
	"github.com/mealsmith/backend/internal/api"
	"github.com/mealsmith/backend/internal/middleware"
)

// SetupRouter configures the application routes.
func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	validator middleware.TokenValidator,
	recipeHandler *api.RecipeHandler,
	llmHandler *api.LLMHandler,
) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	router.GET("/health", api.Health)

	v1 := router.Group("/api/v1")

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		recipes := protected.Group("/recipes")
		{
			recipes.POST("/generate", llmHandler.GenerateRecipes)
			recipes.GET("/drafts/:id", llmHandler.GetDraft)
			recipes.DELETE("/drafts/:id", llmHandler.DeleteDraft)

			recipes.POST("", recipeHandler.CreateRecipe)
			recipes.GET("", recipeHandler.ListRecipes)
			recipes.GET("/:id", recipeHandler.GetRecipe)
			recipes.PATCH("/:id", recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
			recipes.POST("/:id/favourite", recipeHandler.FavouriteRecipe)
			recipes.DELETE("/:id/favourite", recipeHandler.UnfavouriteRecipe)
			recipes.POST("/:id/nutrition", recipeHandler.EnrichNutrition)
		}
	}

	return router
}
