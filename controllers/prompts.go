package controllers

import (
	"net/http"

	dbpkg "promptlab/db"
	"promptlab/models"

	"github.com/gin-gonic/gin"
)

// GET /api/prompts
func GetPrompts(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	prompts, err := listPrompts(db)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"prompts": prompts})
}

// GET /api/prompts/search?q=
func SearchPrompts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		RespondError(c, "query parameter 'q' is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	prompts, err := searchPrompts(db, query)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"prompts": prompts})
}

// GET /api/prompts/:id
func GetPromptByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	var prompt models.Prompt
	if err := db.First(&prompt, id).Error; err != nil {
		RespondError(c, "prompt not found", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"prompt": prompt})
}
