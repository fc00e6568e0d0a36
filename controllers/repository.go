package controllers

import (
	"strings"
	"time"

	"promptlab/models"

	"github.com/jinzhu/gorm"
)

// Ordenação padrão do catálogo: melhor avaliados primeiro, depois mais usados.
const promptOrder = "rating desc, usage_count desc"

func listPrompts(db *gorm.DB) ([]models.Prompt, error) {
	prompts := []models.Prompt{}
	err := db.Order(promptOrder).Find(&prompts).Error
	return prompts, err
}

// searchPrompts filtra por substring (case-insensitive) em title, description
// e category, OU por pertencimento exato na lista de tags. A coluna tags é
// texto JSON, então o elemento exato aparece como `"<query>"` dentro dela.
func searchPrompts(db *gorm.DB, query string) ([]models.Prompt, error) {
	like := "%" + strings.ToLower(query) + "%"
	tagLike := `%"` + query + `"%`

	prompts := []models.Prompt{}
	err := db.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ? OR tags LIKE ?",
			like, like, like, tagLike).
		Order(promptOrder).
		Find(&prompts).Error
	return prompts, err
}

// deletePromptCascade remove primeiro os testes dependentes e depois o prompt,
// na mesma transação: nenhuma linha de teste órfã pode sobrar.
func deletePromptCascade(db *gorm.DB, id int64) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Delete(&models.PromptTest{}, "prompt_id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Prompt{}, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// incrementPromptUsage soma 1 com update relativo no SQL; incrementos
// concorrentes para o mesmo prompt não se perdem.
func incrementPromptUsage(db *gorm.DB, id int64) error {
	return db.Model(&models.Prompt{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
}

func listPromptTests(db *gorm.DB, promptID int64) ([]models.PromptTest, error) {
	tests := []models.PromptTest{}
	err := db.
		Where("prompt_id = ?", promptID).
		Order("created_at desc").
		Find(&tests).Error
	return tests, err
}

// Generation é um registro de teste de imagem junto com o título do prompt.
type Generation struct {
	ID          int64      `json:"id"`
	PromptID    int64      `json:"promptId"`
	Input       string     `json:"input"`
	Output      string     `json:"output"`
	OutputType  string     `json:"outputType"`
	Model       string     `json:"model"`
	CreatedAt   *time.Time `json:"createdAt"`
	PromptTitle string     `json:"promptTitle"`
}

// recentGenerations devolve as 20 gerações de imagem mais recentes.
func recentGenerations(db *gorm.DB) ([]Generation, error) {
	generations := []Generation{}
	err := db.
		Table("prompt_tests").
		Select("prompt_tests.id, prompt_tests.prompt_id, prompt_tests.input, prompt_tests.output, prompt_tests.output_type, prompt_tests.model, prompt_tests.created_at, prompts.title as prompt_title").
		Joins("inner join prompts on prompts.id = prompt_tests.prompt_id").
		Where("prompt_tests.output_type = ?", models.OUTPUT_TYPE_IMAGE).
		Order("prompt_tests.created_at desc").
		Limit(20).
		Scan(&generations).Error
	return generations, err
}

type statsSummary struct {
	TotalPrompts int `json:"totalPrompts"`
	TotalUsage   int `json:"totalUsage"`
}

func promptStats(db *gorm.DB) (statsSummary, error) {
	var out statsSummary
	if err := db.Model(&models.Prompt{}).Count(&out.TotalPrompts).Error; err != nil {
		return out, err
	}
	row := struct{ Total int }{}
	if err := db.Model(&models.Prompt{}).
		Select("COALESCE(SUM(usage_count), 0) as total").
		Scan(&row).Error; err != nil {
		return out, err
	}
	out.TotalUsage = row.Total
	return out, nil
}
