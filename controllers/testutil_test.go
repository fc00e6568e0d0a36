package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dbpkg "promptlab/db"
	"promptlab/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// uma conexão só: o :memory: do sqlite é por conexão
	db.DB().SetMaxOpenConns(1)
	db.LogMode(false)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Prompt{},
		&models.PromptTest{},
	).Error)
	t.Cleanup(func() { db.Close() })
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(db))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func timeAt(t *testing.T, value string) time.Time {
	tm, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return tm
}

func seedPrompt(t *testing.T, db *gorm.DB, p models.Prompt) models.Prompt {
	if p.Title == "" {
		p.Title = "Prompt"
	}
	if p.Description == "" {
		p.Description = "desc"
	}
	if p.Category == "" {
		p.Category = "General"
	}
	if p.PromptText == "" {
		p.PromptText = "Do {thing}"
	}
	if p.Role == "" {
		p.Role = "assistant"
	}
	if p.InputType == "" {
		p.InputType = "text"
	}
	if p.Objective == "" {
		p.Objective = "demo"
	}
	if p.OutputFormat == "" {
		p.OutputFormat = "text"
	}
	if p.PromptType == "" {
		p.PromptType = models.PROMPT_TYPE_TEXT
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}
