package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

/************************************************
/**** MARK: PROMPT TYPES ****/
/************************************************/
const PROMPT_TYPE_TEXT = "text"
const PROMPT_TYPE_IMAGE = "image"

/************************************************
/**** MARK: INPUT FIELD TYPES ****/
/************************************************/
const FIELD_TYPE_TEXT = "text"
const FIELD_TYPE_TEXTAREA = "textarea"
const FIELD_TYPE_SELECT = "select"
const FIELD_TYPE_NUMBER = "number"

// InputField descreve um campo parametrizado do template.
// O name deve corresponder a um placeholder {name} no promptText.
type InputField struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// StringList é persistida como texto JSON (funciona em sqlite3 e postgres).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// InputFieldList é persistida como texto JSON.
type InputFieldList []InputField

func (l InputFieldList) Value() (driver.Value, error) {
	if l == nil {
		l = InputFieldList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *InputFieldList) Scan(src interface{}) error {
	if src == nil {
		*l = InputFieldList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into InputFieldList", src)
	}
}

// Prompt representa um template reutilizável do catálogo.
type Prompt struct {
	ID                 int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Title              string         `gorm:"not null" json:"title" form:"title"`
	Description        string         `gorm:"type:text;not null" json:"description" form:"description"`
	Category           string         `gorm:"not null;index" json:"category" form:"category"`
	PromptText         string         `gorm:"column:prompt_text;type:text;not null" json:"promptText"`
	Role               string         `gorm:"not null" json:"role" form:"role"`
	InputType          string         `gorm:"column:input_type;not null" json:"inputType"`
	Objective          string         `gorm:"not null" json:"objective" form:"objective"`
	OutputFormat       string         `gorm:"column:output_format;not null" json:"outputFormat"`
	ModelCompatibility StringList     `gorm:"column:model_compatibility;type:text" json:"modelCompatibility"`
	InputFields        InputFieldList `gorm:"column:input_fields;type:text" json:"inputFields"`
	PromptType         string         `gorm:"column:prompt_type;not null;default:'text'" json:"promptType"`
	Rating             int            `gorm:"default:0" json:"rating" form:"rating"`
	UsageCount         int            `gorm:"column:usage_count;default:0" json:"usageCount"`
	Tags               StringList     `gorm:"type:text" json:"tags"`
	CreatedAt          *time.Time     `json:"createdAt"`
	UpdatedAt          *time.Time     `json:"updatedAt"`
}

// MissingFields devolve o primeiro campo obrigatório ausente ("" quando ok).
func (p Prompt) MissingFields() string {
	if p.Title == "" {
		return "title"
	} else if p.Description == "" {
		return "description"
	} else if p.Category == "" {
		return "category"
	} else if p.PromptText == "" {
		return "promptText"
	} else if p.Role == "" {
		return "role"
	} else if p.InputType == "" {
		return "inputType"
	} else if p.Objective == "" {
		return "objective"
	} else if p.OutputFormat == "" {
		return "outputFormat"
	}
	return ""
}
