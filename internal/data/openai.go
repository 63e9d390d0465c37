package data

import (
	"context"

	"github.com/afklabs/afk-responder/internal/biz/repo"
	"github.com/afklabs/afk-responder/openaichat"
)

// openaiRepo adapts the OpenAI-compatible client to the responder
// interface. The persisted model name is a Gemini identifier, so this repo
// substitutes its own configured model.
type openaiRepo struct {
	client *openaichat.Client
	model  string
}

// NewOpenAIRepo creates a responder backed by an OpenAI-compatible
// endpoint. model overrides the settings-stored model name.
func NewOpenAIRepo(client *openaichat.Client, model string) repo.ResponderRepo {
	return &openaiRepo{client: client, model: model}
}

func (r *openaiRepo) Generate(ctx context.Context, model, prompt string) (string, error) {
	if r.model != "" {
		model = r.model
	}
	return r.client.Generate(ctx, model, prompt)
}
