package models

import "time"

/************************************************
/**** MARK: OUTPUT TYPES ****/
/************************************************/
const OUTPUT_TYPE_TEXT = "text"
const OUTPUT_TYPE_IMAGE = "image"

// PromptTest registra uma execução de teste (append-only, nunca atualizado).
// Output guarda o texto gerado ou a URL da imagem quando OutputType = image.
type PromptTest struct {
	ID         int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	PromptID   int64      `gorm:"column:prompt_id;not null;index" json:"promptId"`
	Input      string     `gorm:"type:text;not null" json:"input"`
	Output     string     `gorm:"type:text;not null" json:"output"`
	OutputType string     `gorm:"column:output_type;not null;default:'text'" json:"outputType"`
	Model      string     `gorm:"not null" json:"model"`
	CreatedAt  *time.Time `json:"createdAt"`
}
