package data

import (
	"context"

	"github.com/afklabs/afk-responder/gemini"
	"github.com/afklabs/afk-responder/internal/biz/repo"
)

// geminiRepo adapts the Gemini client to the responder interface.
type geminiRepo struct {
	client *gemini.Client
}

// NewGeminiRepo creates a responder backed by Gemini.
func NewGeminiRepo(client *gemini.Client) repo.ResponderRepo {
	return &geminiRepo{client: client}
}

func (r *geminiRepo) Generate(ctx context.Context, model, prompt string) (string, error) {
	return r.client.Generate(ctx, model, prompt)
}
