package controllers

import (
	"net/http"

	dbpkg "promptlab/db"

	"github.com/gin-gonic/gin"
)

// GET /api/recent-generations (público)
//
// Feed das 20 gerações de imagem mais recentes com o título do prompt de
// origem. As URLs são hospedadas pelo provedor e expiram sozinhas.
func GetRecentGenerations(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	generations, err := recentGenerations(db)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"generations": generations})
}
