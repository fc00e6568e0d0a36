package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// GenerateImageWithDalle pede uma única imagem 1024x1024 em qualidade padrão
// e devolve a URL hospedada pelo provedor. A URL expira em poucas horas; os
// bytes da imagem nunca são espelhados localmente.
func GenerateImageWithDalle(ctx context.Context, finalPrompt string, model string) (string, error) {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if base := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}
	client := openai.NewClient(opts...)

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:  finalPrompt,
		Model:   openai.ImageModel(model),
		N:       openai.Int(1),
		Size:    openai.ImageGenerateParamsSize1024x1024,
		Quality: openai.ImageGenerateParamsQualityStandard,
	})
	if err != nil {
		return "", fmt.Errorf("dall-e error: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("no image generated")
	}
	return resp.Data[0].URL, nil
}
