package router

import (
	"log"

	"promptlab/config"
	"promptlab/controllers"
	"promptlab/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares.
// Rotas públicas de catálogo/teste + grupo admin atrás do segredo compartilhado.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	// Public (no auth)
	api.GET("/prompts", Logger(), controllers.GetPrompts)
	api.GET("/prompts/search", Logger(), controllers.SearchPrompts)
	api.GET("/prompts/:id", Logger(), controllers.GetPromptByID)
	api.POST("/prompts/:id/test", Logger(), controllers.TestPrompt)
	api.GET("/recent-generations", Logger(), controllers.GetRecentGenerations)

	// Admin routes (shared secret via Bearer)
	admin := api.Group("/admin")
	admin.Use(controllers.AdminRequired(cfg.Security.AdminSecret))

	admin.POST("/prompts", Logger(), controllers.CreatePrompt)
	admin.PUT("/prompts/:id", Logger(), controllers.UpdatePrompt)
	admin.DELETE("/prompts/:id", Logger(), controllers.DeletePrompt)
	admin.GET("/prompts/:id/tests", Logger(), controllers.GetPromptTests)
	admin.POST("/prompts/import", Logger(), controllers.BulkImportPrompts)
	admin.POST("/prompts/parse", Logger(), controllers.ParsePrompt)
	admin.GET("/stats", Logger(), controllers.GetStats)

	log.Printf("Routes initialized")
}
