package controllers

import (
	"encoding/json"
	"net/http"

	dbpkg "promptlab/db"
	"promptlab/importer"
	"promptlab/models"

	"github.com/gin-gonic/gin"
)

// POST /api/admin/prompts (admin)
func CreatePrompt(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	prompt, err := importer.ParseSingle(raw)
	if err != nil {
		RespondError(c, "invalid prompt data: "+err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	if err := db.Create(&prompt).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"prompt": prompt})
}

// PUT /api/admin/prompts/:id (admin)
//
// Update parcial: só os campos presentes no corpo são aplicados; o resto do
// registro fica como está. O gorm renova o updatedAt no Save.
func UpdatePrompt(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	var cand importer.Candidate
	if err := json.Unmarshal(raw, &cand); err != nil {
		RespondError(c, "invalid prompt data", http.StatusBadRequest)
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

	applyCandidate(&prompt, cand)

	if err := db.Save(&prompt).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"prompt": prompt})
}

// applyCandidate copia para o registro apenas as chaves presentes no corpo,
// com o mesmo defaulting por campo do import.
func applyCandidate(p *models.Prompt, cand importer.Candidate) {
	patch := importer.Build(cand)

	if _, ok := cand["title"]; ok {
		p.Title = patch.Title
	}
	if _, ok := cand["description"]; ok {
		p.Description = patch.Description
	}
	if _, ok := cand["category"]; ok {
		p.Category = patch.Category
	}
	if _, ok := cand["promptText"]; ok {
		p.PromptText = patch.PromptText
	}
	if _, ok := cand["role"]; ok {
		p.Role = patch.Role
	}
	if _, ok := cand["inputType"]; ok {
		p.InputType = patch.InputType
	}
	if _, ok := cand["objective"]; ok {
		p.Objective = patch.Objective
	}
	if _, ok := cand["outputFormat"]; ok {
		p.OutputFormat = patch.OutputFormat
	}
	if _, ok := cand["modelCompatibility"]; ok {
		p.ModelCompatibility = patch.ModelCompatibility
	}
	if _, ok := cand["inputFields"]; ok {
		p.InputFields = patch.InputFields
	}
	if _, ok := cand["tags"]; ok {
		p.Tags = patch.Tags
	}
	if _, ok := cand["rating"]; ok {
		p.Rating = patch.Rating
	}
	if _, ok := cand["promptType"]; ok {
		p.PromptType = patch.PromptType
	}
}

// DELETE /api/admin/prompts/:id (admin)
func DeletePrompt(c *gin.Context) {
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
	if err := deletePromptCascade(db, id); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}

// POST /api/admin/prompts/import (admin)
//
// O corpo é o conteúdo bruto do arquivo. Cada candidato válido vira um create
// independente e sequencial; candidato inválido é ignorado e contado, nunca
// derruba o lote. Não há deduplicação: reimportar cria duplicatas.
func BulkImportPrompts(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		RespondError(c, "file content is required", http.StatusBadRequest)
		return
	}

	candidates, err := importer.Parse(raw)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	imported := 0
	skipped := 0
	for _, cand := range candidates {
		prompt := importer.Build(cand)
		if missing := prompt.MissingFields(); missing != "" {
			skipped++
			continue
		}
		if err := db.Create(&prompt).Error; err != nil {
			skipped++
			continue
		}
		imported++
	}

	RespondSuccess(c, gin.H{"imported": imported, "skipped": skipped})
}

// POST /api/admin/prompts/parse (admin)
//
// Variante de registro único: valida e devolve o registro normalizado sem
// persistir nada. Qualquer campo obrigatório ausente falha a operação toda.
func ParsePrompt(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		RespondError(c, "file content is required", http.StatusBadRequest)
		return
	}

	prompt, err := importer.ParseSingle(raw)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"prompt": prompt})
}

// GET /api/admin/stats (admin)
func GetStats(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	stats, err := promptStats(db)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{
		"totalPrompts":  stats.TotalPrompts,
		"totalSearches": stats.TotalUsage,
		"totalTests":    stats.TotalUsage,
	})
}
