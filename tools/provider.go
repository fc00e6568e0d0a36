package tools

import (
	"context"
	"strings"
)

/************************************************
/**** MARK: PROVIDERS ****/
/************************************************/

// Provider identifica o backend externo de geração.
type Provider string

const PROVIDER_ANTHROPIC Provider = "anthropic"
const PROVIDER_DALLE Provider = "dalle"
const PROVIDER_OPENAI Provider = "openai"

// ResolveProvider deriva o backend uma única vez a partir do prefixo do nome
// do modelo: claude-* vai para a Anthropic, dall-e-* gera imagem, qualquer
// outro nome cai no backend texto padrão (OpenAI).
func ResolveProvider(model string) Provider {
	switch {
	case strings.HasPrefix(model, "claude-"):
		return PROVIDER_ANTHROPIC
	case strings.HasPrefix(model, "dall-e-"):
		return PROVIDER_DALLE
	default:
		return PROVIDER_OPENAI
	}
}

// Result é a forma normalizada da resposta de qualquer backend.
// OutputType é "text" ou "image" (Output vira URL no caso de imagem).
type Result struct {
	Output     string `json:"output"`
	OutputType string `json:"outputType"`
}

// RunPrompt substitui os placeholders e despacha para o backend do modelo.
// Uma única tentativa, síncrona: falha do provedor vira erro, sem retry e sem
// fallback para outro backend.
func RunPrompt(ctx context.Context, template string, inputs map[string]interface{}, model string) (Result, error) {
	finalPrompt := SubstitutePlaceholders(template, inputs)

	switch ResolveProvider(model) {
	case PROVIDER_ANTHROPIC:
		output, err := GenerateWithAnthropic(ctx, finalPrompt, model)
		if err != nil {
			return Result{}, err
		}
		return Result{Output: output, OutputType: "text"}, nil
	case PROVIDER_DALLE:
		url, err := GenerateImageWithDalle(ctx, finalPrompt, model)
		if err != nil {
			return Result{}, err
		}
		return Result{Output: url, OutputType: "image"}, nil
	default:
		output, err := GenerateWithOpenAI(ctx, finalPrompt, model)
		if err != nil {
			return Result{}, err
		}
		return Result{Output: output, OutputType: "text"}, nil
	}
}
