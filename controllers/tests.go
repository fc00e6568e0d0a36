package controllers

import (
	"encoding/json"
	"net/http"

	dbpkg "promptlab/db"
	"promptlab/models"
	"promptlab/tools"

	"github.com/gin-gonic/gin"
)

type TestPromptPayload struct {
	Inputs map[string]interface{} `json:"inputs"`
	Model  string                 `json:"model"`
}

// runPrompt indireta o despacho para permitir stub do provedor nos testes.
var runPrompt = tools.RunPrompt

// POST /api/prompts/:id/test
//
// Despacho com sucesso grava exatamente um PromptTest e soma exatamente 1 no
// usageCount do prompt. Falha do provedor não grava nada e não incrementa.
func TestPrompt(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var payload TestPromptPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Inputs == nil || payload.Model == "" {
		RespondError(c, "inputs and model are required", http.StatusBadRequest)
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

	result, err := runPrompt(c.Request.Context(), prompt.PromptText, payload.Inputs, payload.Model)
	if err != nil {
		RespondError(c, "failed to test prompt: "+err.Error(), http.StatusBadGateway)
		return
	}

	inputJSON, _ := json.Marshal(payload.Inputs)
	test := models.PromptTest{
		PromptID:   prompt.ID,
		Input:      string(inputJSON),
		Output:     result.Output,
		OutputType: result.OutputType,
		Model:      payload.Model,
	}
	if err := db.Create(&test).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := incrementPromptUsage(db, prompt.ID); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, result)
}

// GET /api/admin/prompts/:id/tests (admin)
func GetPromptTests(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	if err := db.First(&models.Prompt{}, id).Error; err != nil {
		RespondError(c, "prompt not found", http.StatusNotFound)
		return
	}
	tests, err := listPromptTests(db, id)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"tests": tests})
}
