package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"promptlab/models"
)

// ErrFormatNotRecognized indica que o arquivo não é JSON nem usa nenhum dos
// delimitadores suportados. Falha a importação inteira.
var ErrFormatNotRecognized = errors.New("file format not recognized")

// Delimitadores aceitos, em ordem de prioridade: o primeiro presente no
// conteúdo (não o primeiro em posição) divide o arquivo inteiro.
var delimiters = []string{"---", "===", "###"}

// Candidate é um registro bruto extraído do arquivo, ainda não validado.
// Um candidato nil (parte JSON válida que não é objeto) falha a validação
// e conta como ignorado, nunca como erro do lote.
type Candidate map[string]interface{}

// Parse extrai a sequência ordenada de candidatos do conteúdo do arquivo:
//  1. o conteúdo inteiro como JSON (array → um candidato por elemento,
//     objeto → candidato único);
//  2. senão, divide no primeiro delimitador encontrado e parseia cada parte
//     por separado, descartando as que não parseiam;
//  3. senão, ErrFormatNotRecognized.
func Parse(content []byte) ([]Candidate, error) {
	var whole interface{}
	if err := json.Unmarshal(content, &whole); err == nil {
		switch v := whole.(type) {
		case []interface{}:
			out := make([]Candidate, 0, len(v))
			for _, item := range v {
				out = append(out, asCandidate(item))
			}
			return out, nil
		default:
			return []Candidate{asCandidate(v)}, nil
		}
	}

	text := string(content)
	for _, delim := range delimiters {
		if !strings.Contains(text, delim) {
			continue
		}
		var out []Candidate
		for _, part := range strings.Split(text, delim) {
			var parsed interface{}
			if err := json.Unmarshal([]byte(strings.TrimSpace(part)), &parsed); err != nil {
				continue // parte inválida não derruba o lote
			}
			out = append(out, asCandidate(parsed))
		}
		return out, nil
	}

	return nil, ErrFormatNotRecognized
}

func asCandidate(v interface{}) Candidate {
	if m, ok := v.(map[string]interface{}); ok {
		return Candidate(m)
	}
	return nil
}

// Build monta um Prompt a partir do candidato aplicando os defaults
// documentados: listas ausentes ou de tipo errado viram vazias, rating vira 0
// e promptType cai em "text". Campos obrigatórios ausentes aparecem depois
// via Prompt.MissingFields.
func Build(c Candidate) models.Prompt {
	p := models.Prompt{
		Title:              stringField(c, "title"),
		Description:        stringField(c, "description"),
		Category:           stringField(c, "category"),
		PromptText:         stringField(c, "promptText"),
		Role:               stringField(c, "role"),
		InputType:          stringField(c, "inputType"),
		Objective:          stringField(c, "objective"),
		OutputFormat:       stringField(c, "outputFormat"),
		ModelCompatibility: listField(c, "modelCompatibility"),
		InputFields:        fieldListField(c, "inputFields"),
		Tags:               listField(c, "tags"),
		Rating:             intField(c, "rating"),
		PromptType:         stringField(c, "promptType"),
	}
	if p.PromptType == "" {
		p.PromptType = models.PROMPT_TYPE_TEXT
	}
	return p
}

// ParseSingle é a variante de registro único: o conteúdo precisa ser um
// objeto JSON válido com todos os campos obrigatórios, senão a operação
// inteira falha (nada de preenchimento parcial).
func ParseSingle(content []byte) (models.Prompt, error) {
	var raw interface{}
	if err := json.Unmarshal(content, &raw); err != nil {
		return models.Prompt{}, fmt.Errorf("invalid JSON: %w", err)
	}
	c := asCandidate(raw)
	if c == nil {
		return models.Prompt{}, errors.New("content is not a JSON object")
	}

	p := Build(c)
	if missing := p.MissingFields(); missing != "" {
		return models.Prompt{}, fmt.Errorf("missing required field: %s", missing)
	}
	return p, nil
}

func stringField(c Candidate, key string) string {
	s, _ := c[key].(string)
	return s
}

func intField(c Candidate, key string) int {
	// números JSON chegam como float64
	if f, ok := c[key].(float64); ok {
		return int(f)
	}
	return 0
}

func listField(c Candidate, key string) models.StringList {
	items, ok := c[key].([]interface{})
	if !ok {
		return models.StringList{}
	}
	out := make(models.StringList, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func fieldListField(c Candidate, key string) models.InputFieldList {
	items, ok := c[key].([]interface{})
	if !ok {
		return models.InputFieldList{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return models.InputFieldList{}
	}
	var fields models.InputFieldList
	if err := json.Unmarshal(b, &fields); err != nil {
		return models.InputFieldList{}
	}
	return fields
}
